// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"context"
	"fmt"

	"github.com/ik5/audtool/audio"
	"github.com/ik5/audtool/formats/wav"
	"github.com/ik5/audtool/silence"
	"github.com/ik5/audtool/store"
)

// SilenceFile is the store key of the pre-rendered clip for a class.
func SilenceFile(prefix string, seconds int) string {
	return fmt.Sprintf("%v%ds.wav", prefix, seconds)
}

// LoadSilence builds a catalog from the WAV clips "<prefix><n>s.wav" for
// every silence class.
func LoadSilence(ctx context.Context, st store.Store, prefix string) (*silence.Catalog, error) {
	clips := make(map[int]audio.Buffer, len(silence.Classes))
	for _, seconds := range silence.Classes {
		name := SilenceFile(prefix, seconds)

		data, err := st.Load(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("%w: load %v: %w", audio.ErrIOFailure, name, err)
		}

		clip, err := wav.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("%w: decode %v: %w", audio.ErrCodecFailure, name, err)
		}
		clips[seconds] = clip
	}
	return silence.NewCatalog(clips)
}
