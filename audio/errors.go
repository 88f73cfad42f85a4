// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrFormatMismatch is returned when two operands do not share sample rate and frame size.
	ErrFormatMismatch = errors.New("audio format mismatch")

	// ErrUnsupportedFormat is returned when an encoding is not one of the registered set.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrEmptyInput is returned when an operation receives too few inputs.
	ErrEmptyInput = errors.New("not enough audio input")

	// ErrOutOfRange is returned for negative offsets or durations.
	ErrOutOfRange = errors.New("range out of bounds")

	// ErrCodecFailure wraps failures reported by a codec.
	ErrCodecFailure = errors.New("codec failure")

	// ErrIOFailure wraps failures reported by an asset store.
	ErrIOFailure = errors.New("asset i/o failure")

	ErrInvalidFormat         = errors.New("invalid audio format")
	ErrPartialFrame          = errors.New("data length is not a multiple of frame size")
	ErrUnsupportedConversion = errors.New("unsupported format conversion")
)
