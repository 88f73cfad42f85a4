// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audtool/audio"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Decode converts big-endian AIFF samples to a little-endian 16-bit Buffer.
func Decode(data []byte) (audio.Buffer, error) {
	dec := aiff.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return audio.Buffer{}, ErrNotAiffFile
	}

	dec.ReadInfo()

	// Check bit depth - only support 16-bit for now
	if dec.BitDepth != 16 {
		return audio.Buffer{}, fmt.Errorf("%w: %d-bit", ErrOnlyPCM16bitSupported, dec.BitDepth)
	}

	return decodeStream(dec)
}

func decodeStream(dec aiffReader) (audio.Buffer, error) {
	f := dec.Format()
	if f == nil || f.NumChannels <= 0 || f.SampleRate <= 0 {
		return audio.Buffer{}, ErrUnsupportedAiffLayout
	}
	format := audio.Format{SampleRate: f.SampleRate, FrameSize: 2 * f.NumChannels, Channels: f.NumChannels}

	intBuf := &goaudio.IntBuffer{
		Data:           make([]int, 4096*f.NumChannels),
		Format:         f,
		SourceBitDepth: 16,
	}

	var pcm []byte
	for {
		n, err := dec.PCMBuffer(intBuf)
		for _, v := range intBuf.Data[:n] {
			pcm = binary.LittleEndian.AppendUint16(pcm, uint16(int16(v)))
		}
		if err == io.EOF || (n == 0 && err == nil) {
			break
		}
		if err != nil {
			return audio.Buffer{}, fmt.Errorf("decode aiff: %w", err)
		}
	}
	pcm = pcm[:len(pcm)-len(pcm)%format.FrameSize]

	return audio.NewBuffer(format, pcm)
}

// Codec decodes 16-bit AIFF. Encoding is not supported.
type Codec struct{}

func (Codec) Decode(data []byte) (audio.Buffer, error) { return Decode(data) }

func (Codec) Encode(audio.Buffer) ([]byte, error) {
	return nil, fmt.Errorf("%w: aiff encoding", audio.ErrUnsupportedFormat)
}

var _ audio.Codec = Codec{}
