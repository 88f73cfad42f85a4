// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM audio in the RIFF/WAVE container.
//
// Decoding uses github.com/go-audio/wav to walk the RIFF chunks, so files
// with LIST, fact or other extra chunks are accepted. The raw contents of
// the data chunk become an audio.Buffer without any sample conversion.
//
// # Supported Formats
//
//   - Integer PCM (format tag 1, or WAVE_FORMAT_EXTENSIBLE)
//   - 8, 16, 24 and 32 bits per sample
//   - Any channel count and sample rate
//
// # Decoding
//
//	buf, err := wav.Decode(data)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not RIFF/WAVE
//	}
//
// # Encoding
//
// Write emits the canonical 44-byte header followed by the sample data:
//
//	file, _ := os.Create("output.wav")
//	err := wav.Write(file, buf)
//
// The header is derived from the buffer's format, so a Decode of the
// output yields the same buffer again.
//
// # Registry
//
// Codec adapts the package to audio.Codec:
//
//	registry.Register("wav", wav.Codec{})
package wav
