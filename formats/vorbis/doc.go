// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio.
//
// This package uses github.com/jfreymuth/oggvorbis. Vorbis decodes to
// float samples, which are rendered as 16-bit little-endian PCM at the
// stream's sample rate and channel count.
//
//	buf, err := vorbis.Decode(data)
//
// Vorbis is an input only encoding: Codec.Encode fails with
// audio.ErrUnsupportedFormat.
package vorbis
