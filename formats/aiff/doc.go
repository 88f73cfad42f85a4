// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio files.
//
// This package uses github.com/go-audio/aiff to parse the container. AIFF
// stores samples big-endian; Decode returns them as little-endian 16-bit
// PCM so they combine with WAV and MP3 input.
//
//	buf, err := aiff.Decode(data)
//	if errors.Is(err, aiff.ErrOnlyPCM16bitSupported) {
//	    // 8, 24 or 32-bit file
//	}
//
// AIFF is an input only encoding: Codec.Encode fails with
// audio.ErrUnsupportedFormat.
package aiff
