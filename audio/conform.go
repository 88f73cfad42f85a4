// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Conform converts a 16-bit buffer to target's sample rate and channel
// count. Buffers already in target format are returned unchanged.
//
// The pipeline is: buffer -> Resampler (cubic) -> ChannelMixer -> buffer.
func Conform(buf Buffer, target Format) (Buffer, error) {
	if err := target.Validate(); err != nil {
		return Buffer{}, err
	}
	if buf.format == target {
		return buf, nil
	}
	if target.SampleWidth() != 2 {
		return Buffer{}, fmt.Errorf("%w: target %s is not 16-bit", ErrUnsupportedConversion, target)
	}

	src, err := NewBufferSource(buf)
	if err != nil {
		return Buffer{}, err
	}
	if buf.format.SampleRate != target.SampleRate {
		src = NewResampler(src, target.SampleRate)
	}
	if buf.format.Channels != target.Channels {
		src, err = NewChannelMixer(src, target.Channels)
		if err != nil {
			return Buffer{}, err
		}
	}

	return Collect(src, src.BufSize()*target.Channels)
}
