// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"math"

	"github.com/ik5/audtool/audio"
)

// Constant returns seconds of audio in format where every byte is v.
func Constant(format audio.Format, seconds int, v byte) audio.Buffer {
	data := make([]byte, seconds*format.BytesPerSecond())
	for i := range data {
		data[i] = v
	}
	return mustBuffer(format, data)
}

// Ramp returns seconds of audio where every byte of second n is n.
func Ramp(format audio.Format, seconds int) audio.Buffer {
	bps := format.BytesPerSecond()
	data := make([]byte, seconds*bps)
	for i := range data {
		data[i] = byte(i / bps)
	}
	return mustBuffer(format, data)
}

// Tone returns a 16-bit sine wave at freq Hz with the given peak amplitude.
// Every channel carries the same signal.
func Tone(format audio.Format, seconds int, freq float64, amplitude int16) audio.Buffer {
	frames := seconds * format.SampleRate
	data := make([]byte, 0, frames*format.FrameSize)
	for i := range frames {
		v := int16(float64(amplitude) * math.Sin(2*math.Pi*freq*float64(i)/float64(format.SampleRate)))
		for range format.Channels {
			data = binary.LittleEndian.AppendUint16(data, uint16(v))
		}
	}
	return mustBuffer(format, data)
}

func mustBuffer(format audio.Format, data []byte) audio.Buffer {
	buf, err := audio.NewBuffer(format, data)
	if err != nil {
		panic(err)
	}
	return buf
}
