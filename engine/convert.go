// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/ik5/audtool/audio"
)

// Convert re-encodes in as to, keeping its name.
func (e *Engine) Convert(ctx context.Context, in Asset, to Encoding) (Asset, error) {
	if in.Encoding == to {
		return in, nil
	}

	buf, err := e.load(ctx, in)
	if err != nil {
		return Asset{}, err
	}

	return e.save(ctx, Asset{Name: in.Name, Encoding: to}, buf)
}

// Import stores the payload read from r as an asset. The payload must decode
// with enc's codec. An empty name gets a random UUID.
func (e *Engine) Import(ctx context.Context, r io.Reader, name string, enc Encoding) (Asset, error) {
	codec, err := e.codecs.Lookup(string(enc))
	if err != nil {
		return Asset{}, err
	}
	if name == "" {
		name = uuid.NewString()
	}
	a := Asset{Name: name, Encoding: enc}

	data, err := io.ReadAll(r)
	if err != nil {
		return Asset{}, fmt.Errorf("%w: read %v: %w", audio.ErrIOFailure, a, err)
	}
	if _, err := codec.Decode(data); err != nil {
		return Asset{}, fmt.Errorf("%w: decode %v: %w", audio.ErrCodecFailure, a, err)
	}

	if err := e.store.Save(ctx, a.File(), data); err != nil {
		return Asset{}, fmt.Errorf("%w: save %v: %w", audio.ErrIOFailure, a, err)
	}
	return a, nil
}
