// SPDX-License-Identifier: EPL-2.0

package silence

import "errors"

var (
	// ErrUnknownClass is returned for a duration that is not a catalog class.
	ErrUnknownClass = errors.New("unknown silence class")

	// ErrMissingClip is returned when a catalog lacks a clip for a class.
	ErrMissingClip = errors.New("missing silence clip")
)
