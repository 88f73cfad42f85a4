// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM primitives used to assemble audio clips.
//
// This package contains the core building blocks:
//   - Format and Buffer for raw PCM data
//   - Sequence for concatenating buffers
//   - Mix for overlaying two buffers
//   - Trim and Duration for time based operations
//   - Source, Resampler and ChannelMixer for format conversion
//   - Registry of codecs by encoding
//
// # Buffers
//
// A Buffer couples raw little-endian PCM bytes with the Format that
// describes them:
//
//	format := audio.Format{SampleRate: 8000, FrameSize: 2, Channels: 1}
//	buf, err := audio.NewBuffer(format, pcm)
//
// Buffers are immutable. Every operation returns a new buffer and never
// touches its inputs.
//
// # Combining
//
// Sequence plays buffers back to back. Mix overlays two buffers: within the
// overlap every unit is the average of both inputs and past the shorter
// input the longer one continues at half amplitude.
//
//	joined, err := audio.Sequence(format, a, b)
//	blended, err := audio.Mix(a, b)
//
// Two buffers can be combined when they share sample rate and frame size,
// otherwise ErrFormatMismatch is returned.
//
// Mix averages individual bytes, which is what most telephony prompt
// tooling does. MixSamples.Mix averages whole samples instead and keeps
// 16, 24 and 32-bit audio free of cross-byte artifacts.
//
// # Conversion
//
// The Source interface streams float32 samples in [-1.0, 1.0]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// NewBufferSource exposes a 16-bit Buffer as a Source, Resampler changes its
// rate with cubic interpolation, ChannelMixer changes its channel count and
// Collect turns the result back into a Buffer. Conform chains them:
//
//	out, err := audio.Conform(buf, audio.Format{SampleRate: 16000, FrameSize: 2, Channels: 1})
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. All other failures
// wrap one of the package errors and can be tested with errors.Is.
package audio
