// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Sequence concatenates buffers in order into a new buffer of the given
// format. Every buffer must be compatible with format and at least two
// buffers are required.
func Sequence(format Format, buffers ...Buffer) (Buffer, error) {
	if len(buffers) < 2 {
		return Buffer{}, fmt.Errorf("%w: sequence needs at least 2 buffers, got %d", ErrEmptyInput, len(buffers))
	}
	if err := format.Validate(); err != nil {
		return Buffer{}, err
	}

	total := 0
	for i, b := range buffers {
		if !format.Compatible(b.format) {
			return Buffer{}, fmt.Errorf("%w: buffer %d is %s, want %s", ErrFormatMismatch, i, b.format, format)
		}
		total += len(b.data)
	}

	out := make([]byte, 0, total)
	for _, b := range buffers {
		out = append(out, b.data...)
	}

	return wrap(format, out), nil
}
