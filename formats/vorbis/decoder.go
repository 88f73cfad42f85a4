// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"fmt"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audtool/audio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// source streams the decoder output as an audio.Source.
type source struct {
	dec      oggReader
	channels int
	frameBuf []float32
}

func newSource(dec oggReader) *source {
	return &source{
		dec:      dec,
		channels: dec.Channels(),
		frameBuf: make([]float32, 4096),
	}
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.frameBuf) }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// oggvorbis only returns whole frames
	want := len(dst) - len(dst)%s.channels
	if cap(s.frameBuf) < want {
		s.frameBuf = make([]float32, want)
	}
	s.frameBuf = s.frameBuf[:want]

	n, err := s.dec.Read(s.frameBuf)
	copy(dst, s.frameBuf[:n])
	if n == 0 && err == nil {
		return 0, nil
	}
	return n, err
}

// Decode renders Ogg Vorbis data as 16-bit PCM.
func Decode(data []byte) (audio.Buffer, error) {
	dec, err := oggvorbis.NewReader(bytes.NewReader(data))
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("decode vorbis: %w", err)
	}
	return decodeStream(dec)
}

func decodeStream(dec oggReader) (audio.Buffer, error) {
	src := newSource(dec)
	buf, err := audio.Collect(src, src.BufSize())
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("decode vorbis: %w", err)
	}
	return buf, nil
}

// Codec decodes Ogg Vorbis. Encoding is not supported.
type Codec struct{}

func (Codec) Decode(data []byte) (audio.Buffer, error) { return Decode(data) }

func (Codec) Encode(audio.Buffer) ([]byte, error) {
	return nil, fmt.Errorf("%w: vorbis encoding", audio.ErrUnsupportedFormat)
}

var _ audio.Codec = Codec{}
