// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

var (
	// ErrEncoderFailed is returned when ffmpeg exits with an error.
	ErrEncoderFailed = errors.New("mp3 encoder failed")

	// ErrNoOutput is returned when ffmpeg succeeds but produces nothing.
	ErrNoOutput = errors.New("mp3 encoder produced no output")
)
