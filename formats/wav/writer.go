// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audtool/audio"
)

// HeaderSize is the size of the canonical RIFF/WAVE header written by Write.
const HeaderSize = 44

// Write stores buf as a canonical PCM WAV: RIFF header, 16-byte fmt chunk
// and a single data chunk. The header is taken from buf's format.
func Write(w io.Writer, buf audio.Buffer) error {
	format := buf.Format()
	if err := format.Validate(); err != nil {
		return err
	}
	if int64(buf.Len()) > math.MaxUint32-HeaderSize {
		return fmt.Errorf("%w: %d bytes", ErrTooLarge, buf.Len())
	}

	numChannels := uint16(format.Channels)
	bitsPerSample := uint16(format.BitDepth())
	byteRate := uint32(format.BytesPerSecond())
	blockAlign := uint16(format.FrameSize)
	dataSize := uint32(buf.Len())
	riffSize := 36 + dataSize + dataSize%2

	header := make([]byte, HeaderSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(format.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	// large buffers go out in 8KB chunks
	const chunkSize = 8192
	data := buf.Bytes()
	for i := 0; i < len(data); i += chunkSize {
		end := min(i+chunkSize, len(data))
		if _, err := w.Write(data[i:end]); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	// RIFF chunks are word aligned
	if len(data)%2 == 1 {
		if _, err := w.Write([]byte{0}); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// Encode returns buf as WAV file bytes.
func Encode(buf audio.Buffer) ([]byte, error) {
	out := bytes.NewBuffer(make([]byte, 0, HeaderSize+buf.Len()+1))
	if err := Write(out, buf); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
