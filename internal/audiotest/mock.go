// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// SineSource streams a float sine wave with the same signal on every
// channel. It satisfies audio.Source.
type SineSource struct {
	sampleRate int
	channels   int
	frames     int
	pos        int
	step       float64
}

// NewSineSource returns frames of a freq Hz sine at full scale.
func NewSineSource(sampleRate, channels, frames int, freq float64) *SineSource {
	return &SineSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		step:       2 * math.Pi * freq / float64(sampleRate),
	}
}

func (s *SineSource) SampleRate() int { return s.sampleRate }
func (s *SineSource) Channels() int   { return s.channels }
func (s *SineSource) BufSize() int    { return 4096 }
func (s *SineSource) Close() error    { return nil }

func (s *SineSource) ReadSamples(dst []float32) (int, error) {
	n := min(len(dst)/s.channels, s.frames-s.pos)
	if n <= 0 {
		return 0, io.EOF
	}

	for i := range n {
		v := float32(math.Sin(s.step * float64(s.pos+i)))
		for c := range s.channels {
			dst[i*s.channels+c] = v
		}
	}
	s.pos += n

	if s.pos >= s.frames {
		return n * s.channels, io.EOF
	}
	return n * s.channels, nil
}
