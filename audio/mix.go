// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"fmt"
)

// MixMode selects how overlapping samples are combined.
type MixMode int

const (
	// MixBytes averages every byte as an independent signed value.
	MixBytes MixMode = iota
	// MixSamples averages whole little-endian signed samples.
	MixSamples
)

func (m MixMode) String() string {
	switch m {
	case MixBytes:
		return "bytes"
	case MixSamples:
		return "samples"
	default:
		return fmt.Sprintf("MixMode(%d)", int(m))
	}
}

// ParseMixMode is the inverse of MixMode.String.
func ParseMixMode(s string) (MixMode, error) {
	switch s {
	case "", "bytes":
		return MixBytes, nil
	case "samples":
		return MixSamples, nil
	}
	return MixBytes, fmt.Errorf("unknown mix mode %q", s)
}

// Mix blends two buffers with the given mode. Within the overlap each output
// unit is (short+long)>>1; past the end of the shorter buffer it is long>>1,
// so the tail of the longer input plays at half amplitude. The result has the
// length and format of the longer input. Mix(a, b) == Mix(b, a).
//
// Besides being Compatible, both inputs must have the same channel count:
// equal frame sizes with different layouts (mono 32-bit and stereo 16-bit)
// interpret the same bytes as different samples.
func (m MixMode) Mix(a, b Buffer) (Buffer, error) {
	if !a.format.Compatible(b.format) || a.format.Channels != b.format.Channels {
		return Buffer{}, fmt.Errorf("%w: %s and %s", ErrFormatMismatch, a.format, b.format)
	}

	short, long := a, b
	if len(a.data) > len(b.data) {
		short, long = b, a
	}

	switch m {
	case MixBytes:
		return wrap(long.format, mixBytes(short.data, long.data)), nil
	case MixSamples:
		width := long.format.SampleWidth()
		if width == 1 {
			return wrap(long.format, mixBytes(short.data, long.data)), nil
		}
		out, err := mixSamples(short.data, long.data, width)
		if err != nil {
			return Buffer{}, err
		}
		return wrap(long.format, out), nil
	}

	return Buffer{}, fmt.Errorf("unknown mix mode %d", int(m))
}

// Mix blends a and b byte by byte.
func Mix(a, b Buffer) (Buffer, error) { return MixBytes.Mix(a, b) }

func mixBytes(short, long []byte) []byte {
	out := make([]byte, len(long))
	for i := range short {
		out[i] = byte((int(int8(short[i])) + int(int8(long[i]))) >> 1)
	}
	for i := len(short); i < len(long); i++ {
		out[i] = byte(int8(long[i]) >> 1)
	}
	return out
}

func mixSamples(short, long []byte, width int) ([]byte, error) {
	var get func([]byte) int64
	var put func([]byte, int64)

	switch width {
	case 2:
		get = func(b []byte) int64 { return int64(int16(binary.LittleEndian.Uint16(b))) }
		put = func(b []byte, v int64) { binary.LittleEndian.PutUint16(b, uint16(int16(v))) }
	case 3:
		get = func(b []byte) int64 {
			v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
			if v&0x800000 != 0 {
				v |= ^0xFFFFFF
			}
			return int64(v)
		}
		put = func(b []byte, v int64) {
			b[0], b[1], b[2] = byte(v), byte(v>>8), byte(v>>16)
		}
	case 4:
		get = func(b []byte) int64 { return int64(int32(binary.LittleEndian.Uint32(b))) }
		put = func(b []byte, v int64) { binary.LittleEndian.PutUint32(b, uint32(int32(v))) }
	default:
		return nil, fmt.Errorf("%w: %d-byte samples", ErrUnsupportedConversion, width)
	}

	out := make([]byte, len(long))
	i := 0
	for ; i+width <= len(short); i += width {
		put(out[i:i+width], (get(short[i:i+width])+get(long[i:i+width]))>>1)
	}
	for ; i+width <= len(long); i += width {
		put(out[i:i+width], get(long[i:i+width])>>1)
	}
	return out, nil
}
