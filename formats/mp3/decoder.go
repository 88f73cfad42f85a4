// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audtool/audio"
)

// go-mp3 always produces 16-bit little-endian stereo.
const (
	channels  = 2
	frameSize = 4
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Decode turns MP3 data into a 16-bit stereo Buffer at the stream's
// sample rate.
func Decode(data []byte) (audio.Buffer, error) {
	dec, err := gomp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("decode mp3: %w", err)
	}
	return decodeStream(dec)
}

func decodeStream(dec mp3Reader) (audio.Buffer, error) {
	format := audio.Format{SampleRate: dec.SampleRate(), FrameSize: frameSize, Channels: channels}

	pcm, err := io.ReadAll(dec)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("decode mp3: %w", err)
	}
	pcm = pcm[:len(pcm)-len(pcm)%frameSize]

	return audio.NewBuffer(format, pcm)
}
