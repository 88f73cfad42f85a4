// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"fmt"
)

// Format describes raw PCM data. FrameSize is the number of bytes in one
// frame across all channels.
type Format struct {
	SampleRate int
	FrameSize  int
	Channels   int
}

// Validate reports whether f can describe PCM data.
func (f Format) Validate() error {
	if f.SampleRate <= 0 || f.FrameSize <= 0 || f.Channels <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidFormat, f)
	}
	if f.FrameSize%f.Channels != 0 {
		return fmt.Errorf("%w: frame size %d not divisible by %d channels", ErrInvalidFormat, f.FrameSize, f.Channels)
	}
	return nil
}

// Compatible reports whether buffers in f and o can be combined.
func (f Format) Compatible(o Format) bool {
	return f.SampleRate == o.SampleRate && f.FrameSize == o.FrameSize
}

// SampleWidth is the number of bytes of a single channel sample.
func (f Format) SampleWidth() int {
	if f.Channels == 0 {
		return 0
	}
	return f.FrameSize / f.Channels
}

// BitDepth is SampleWidth expressed in bits.
func (f Format) BitDepth() int { return f.SampleWidth() * 8 }

// BytesPerSecond is FrameSize × SampleRate.
func (f Format) BytesPerSecond() int { return f.FrameSize * f.SampleRate }

func (f Format) String() string {
	return fmt.Sprintf("%dHz/%dch/%dbit", f.SampleRate, f.Channels, f.BitDepth())
}

// Buffer is an immutable block of PCM frames. Operations on buffers always
// return new buffers, so a Buffer may be shared between goroutines.
type Buffer struct {
	format Format
	data   []byte
}

// NewBuffer copies data into a new Buffer.
func NewBuffer(format Format, data []byte) (Buffer, error) {
	if err := format.Validate(); err != nil {
		return Buffer{}, err
	}
	if len(data)%format.FrameSize != 0 {
		return Buffer{}, fmt.Errorf("%w: %d bytes, frame size %d", ErrPartialFrame, len(data), format.FrameSize)
	}
	owned := make([]byte, len(data))
	copy(owned, data)
	return Buffer{format: format, data: owned}, nil
}

// Silence returns seconds of silent frames. 8-bit PCM is unsigned, so its
// silence is the midpoint 0x80; wider samples are signed zeros.
func Silence(format Format, seconds int) (Buffer, error) {
	if err := format.Validate(); err != nil {
		return Buffer{}, err
	}
	if seconds < 0 {
		return Buffer{}, fmt.Errorf("%w: %d seconds", ErrOutOfRange, seconds)
	}

	data := make([]byte, seconds*format.BytesPerSecond())
	if format.SampleWidth() == 1 {
		for i := range data {
			data[i] = silence8
		}
	}
	return Buffer{format: format, data: data}, nil
}

// silence8 is the zero level of unsigned 8-bit PCM.
const silence8 = 0x80

// wrap takes ownership of data without copying.
func wrap(format Format, data []byte) Buffer {
	return Buffer{format: format, data: data}
}

func (b Buffer) Format() Format { return b.format }

// Len is the size of the sample data in bytes.
func (b Buffer) Len() int { return len(b.data) }

// Frames is the number of frames held by b.
func (b Buffer) Frames() int {
	if b.format.FrameSize == 0 {
		return 0
	}
	return len(b.data) / b.format.FrameSize
}

// Bytes returns the sample data. The slice must not be modified.
func (b Buffer) Bytes() []byte { return b.data }

// Equal reports whether both buffers share format and content.
func (b Buffer) Equal(o Buffer) bool {
	return b.format == o.format && bytes.Equal(b.data, o.data)
}
