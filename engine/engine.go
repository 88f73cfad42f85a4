// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"context"
	"fmt"

	"github.com/ik5/audtool/audio"
	"github.com/ik5/audtool/formats/aiff"
	"github.com/ik5/audtool/formats/mp3"
	"github.com/ik5/audtool/formats/vorbis"
	"github.com/ik5/audtool/formats/wav"
	"github.com/ik5/audtool/silence"
	"github.com/ik5/audtool/store"
)

// Engine runs assembly operations against a store. Safe for concurrent use
// as long as the store, codecs and silence provider are.
type Engine struct {
	store   store.Store
	codecs  *audio.Registry
	silence silence.Provider
	mixMode audio.MixMode
	target  *audio.Format
}

type Option func(*Engine)

// WithMixMode selects the mixer used by Blend and BlendWithOffset.
func WithMixMode(m audio.MixMode) Option {
	return func(e *Engine) { e.mixMode = m }
}

// WithTargetFormat conforms every decoded input to f before use.
func WithTargetFormat(f audio.Format) Option {
	return func(e *Engine) { e.target = &f }
}

// WithSilence sets the clips used to pad BlendWithOffset.
func WithSilence(p silence.Provider) Option {
	return func(e *Engine) {
		if p != nil {
			e.silence = p
		}
	}
}

// WithRegistry replaces the default codecs.
func WithRegistry(r *audio.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.codecs = r
		}
	}
}

// New returns an Engine over st with DefaultRegistry codecs, synthesized
// silence and byte mixing.
func New(st store.Store, opts ...Option) *Engine {
	e := &Engine{
		store:   st,
		codecs:  DefaultRegistry(),
		silence: silence.NewSynth(),
		mixMode: audio.MixBytes,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DefaultRegistry registers wav, mp3, ogg and aiff. opts configure the mp3
// encoder.
func DefaultRegistry(opts ...mp3.Option) *audio.Registry {
	r := audio.NewRegistry()
	r.Register(string(WAV), wav.Codec{})
	r.Register(string(MP3), mp3.New(opts...))
	r.Register(string(Ogg), vorbis.Codec{})
	r.Register(string(AIFF), aiff.Codec{})
	return r
}

// Store returns the store the engine reads and writes.
func (e *Engine) Store() store.Store { return e.store }

// Codecs returns the engine's codec registry.
func (e *Engine) Codecs() *audio.Registry { return e.codecs }

// MixMode returns the mixer used for blending.
func (e *Engine) MixMode() audio.MixMode { return e.mixMode }

// load reads and decodes a, conforming it to the target format when set.
func (e *Engine) load(ctx context.Context, a Asset) (audio.Buffer, error) {
	codec, err := e.codecs.Lookup(string(a.Encoding))
	if err != nil {
		return audio.Buffer{}, err
	}

	data, err := e.store.Load(ctx, a.File())
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("%w: load %v: %w", audio.ErrIOFailure, a, err)
	}

	buf, err := codec.Decode(data)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("%w: decode %v: %w", audio.ErrCodecFailure, a, err)
	}

	if e.target != nil {
		if buf, err = audio.Conform(buf, *e.target); err != nil {
			return audio.Buffer{}, fmt.Errorf("conform %v: %w", a, err)
		}
	}
	return buf, nil
}

// loadAll decodes assets in order.
func (e *Engine) loadAll(ctx context.Context, assets ...Asset) ([]audio.Buffer, error) {
	bufs := make([]audio.Buffer, 0, len(assets))
	for _, a := range assets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		buf, err := e.load(ctx, a)
		if err != nil {
			return nil, err
		}
		bufs = append(bufs, buf)
	}
	return bufs, nil
}

// save encodes buf and writes it as out.
func (e *Engine) save(ctx context.Context, out Asset, buf audio.Buffer) (Asset, error) {
	codec, err := e.codecs.Lookup(string(out.Encoding))
	if err != nil {
		return Asset{}, err
	}

	data, err := codec.Encode(buf)
	if err != nil {
		return Asset{}, fmt.Errorf("%w: encode %v: %w", audio.ErrCodecFailure, out, err)
	}

	if err := e.store.Save(ctx, out.File(), data); err != nil {
		return Asset{}, fmt.Errorf("%w: save %v: %w", audio.ErrIOFailure, out, err)
	}
	return out, nil
}
