// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes and encodes MP3 audio.
//
// Decoding uses github.com/hajimehoshi/go-mp3 and needs no external tools.
// Encoding pipes a WAV rendition of the buffer through ffmpeg with the
// libmp3lame encoder (github.com/u2takey/ffmpeg-go builds the command).
//
// # Output Format
//
// Decode always yields:
//   - 16-bit little-endian samples
//   - 2 channels
//   - the sample rate of the MP3 stream
//
// Use audio.Conform to turn the result into mono or another rate:
//
//	buf, _ := mp3.Decode(data)
//	mono, _ := audio.Conform(buf, audio.Format{SampleRate: 8000, FrameSize: 2, Channels: 1})
//
// # Encoding
//
// The default is VBR quality 2, which matches LAME's "standard" preset.
//
//	codec := mp3.New(mp3.WithFFmpeg("/usr/bin/ffmpeg"), mp3.WithBitrate(128))
//	data, err := codec.Encode(buf)
//
// ffmpeg must be on the PATH (or configured with WithFFmpeg). Encoder
// failures wrap ErrEncoderFailed and carry the last line ffmpeg printed.
package mp3
