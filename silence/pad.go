// SPDX-License-Identifier: EPL-2.0

package silence

import (
	"fmt"

	"github.com/ik5/audtool/audio"
)

// Prepend puts seconds of silence in front of buf. Classes are walked from
// largest to smallest and every clip is sequenced in front of the result so
// far, so the smallest clips end up first.
func Prepend(p Provider, buf audio.Buffer, seconds int) (audio.Buffer, error) {
	counts, err := Decompose(seconds)
	if err != nil {
		return audio.Buffer{}, err
	}

	format := buf.Format()
	out := buf
	for i := len(Classes) - 1; i >= 0; i-- {
		if counts[i] == 0 {
			continue
		}
		clip, err := p.Clip(format, Classes[i])
		if err != nil {
			return audio.Buffer{}, fmt.Errorf("silence %ds: %w", Classes[i], err)
		}
		for range counts[i] {
			out, err = audio.Sequence(format, clip, out)
			if err != nil {
				return audio.Buffer{}, err
			}
		}
	}
	return out, nil
}

// Lead returns seconds of silence built from p's clips alone.
func Lead(p Provider, format audio.Format, seconds int) (audio.Buffer, error) {
	empty, err := audio.NewBuffer(format, nil)
	if err != nil {
		return audio.Buffer{}, err
	}
	return Prepend(p, empty, seconds)
}
