// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audtool/utils"
)

// bufferSource streams a 16-bit Buffer as float32 samples.
type bufferSource struct {
	buf Buffer
	pos int // byte offset
}

// NewBufferSource exposes a 16-bit PCM buffer as a Source.
func NewBufferSource(buf Buffer) (Source, error) {
	if buf.format.SampleWidth() != 2 {
		return nil, fmt.Errorf("%w: %s is not 16-bit", ErrUnsupportedConversion, buf.format)
	}
	return &bufferSource{buf: buf}, nil
}

func (s *bufferSource) SampleRate() int { return s.buf.format.SampleRate }
func (s *bufferSource) Channels() int   { return s.buf.format.Channels }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	data := s.buf.data
	if s.pos >= len(data) {
		return 0, io.EOF
	}

	n := min(len(dst), (len(data)-s.pos)/2)
	for i := range n {
		dst[i] = utils.Int16ToFloat32(int16(binary.LittleEndian.Uint16(data[s.pos+2*i:])))
	}
	s.pos += 2 * n

	if s.pos >= len(data) {
		return n, io.EOF
	}
	return n, nil
}

const maxIdleReads = 100

// Collect drains src into a 16-bit Buffer.
func Collect(src Source, bufferSize int) (Buffer, error) {
	channels := src.Channels()
	format := Format{SampleRate: src.SampleRate(), FrameSize: 2 * channels, Channels: channels}
	if err := format.Validate(); err != nil {
		return Buffer{}, err
	}
	if bufferSize < channels {
		bufferSize = 4096
	}
	bufferSize -= bufferSize % channels

	buf := make([]float32, bufferSize)
	out := make([]byte, 0, bufferSize*2)
	idle := 0
	for {
		n, err := src.ReadSamples(buf)
		if n == 0 && err == nil {
			idle++
			if idle > maxIdleReads {
				return Buffer{}, io.ErrNoProgress
			}
			continue
		}
		idle = 0
		for i := range n {
			out = binary.LittleEndian.AppendUint16(out, uint16(utils.Float32ToInt16(buf[i])))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return Buffer{}, fmt.Errorf("%w", err)
		}
	}

	// a source may end on a partial frame
	out = out[:len(out)-len(out)%format.FrameSize]
	return wrap(format, out), nil
}
