// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Trim copies durationSeconds of audio starting startSeconds into buf.
// A range running past the end is truncated to the available data; a start
// beyond the end yields an empty buffer.
func Trim(buf Buffer, startSeconds, durationSeconds int) (Buffer, error) {
	if startSeconds < 0 || durationSeconds < 0 {
		return Buffer{}, fmt.Errorf("%w: start=%d duration=%d", ErrOutOfRange, startSeconds, durationSeconds)
	}

	bps := buf.format.BytesPerSecond()
	if bps <= 0 || startSeconds >= len(buf.data)/bps+1 {
		return wrap(buf.format, []byte{}), nil
	}

	// Both products stay within len(buf.data)+bps, so they cannot overflow.
	skip := startSeconds * bps
	if skip >= len(buf.data) {
		return wrap(buf.format, []byte{}), nil
	}
	remaining := len(buf.data) - skip
	durationSeconds = min(durationSeconds, remaining/bps+1)

	end := skip + min(durationSeconds*bps, remaining)
	out := make([]byte, end-skip)
	copy(out, buf.data[skip:end])

	return wrap(buf.format, out), nil
}
