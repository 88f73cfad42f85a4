// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/audtool/audio"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

// Decode parses a WAV container and returns its PCM data as a Buffer.
// Chunks other than fmt and data are skipped. A data chunk that ends on a
// partial frame is truncated to whole frames.
func Decode(data []byte) (audio.Buffer, error) {
	if len(data) < 12 || !bytes.Equal(data[0:4], []byte("RIFF")) || !bytes.Equal(data[8:12], []byte("WAVE")) {
		return audio.Buffer{}, ErrNotWavFile
	}

	rs := bytes.NewReader(data)
	dec := gowav.NewDecoder(rs)
	if err := dec.FwdToPCM(); err != nil {
		return audio.Buffer{}, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}
	if err := dec.Err(); err != nil {
		return audio.Buffer{}, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}
	if dec.PCMChunk == nil || dec.NumChans == 0 {
		return audio.Buffer{}, ErrUnsupportedWavLayout
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return audio.Buffer{}, fmt.Errorf("%w: format tag %#x", ErrOnlyPCMSupported, dec.WavAudioFormat)
	}

	format, err := formatOf(int(dec.SampleRate), int(dec.NumChans), int(dec.BitDepth))
	if err != nil {
		return audio.Buffer{}, err
	}

	// the decoder rounds odd chunk sizes up to the pad byte
	declared := dec.PCMSize
	if pos, err := rs.Seek(0, io.SeekCurrent); err == nil && pos >= 4 {
		declared = int(binary.LittleEndian.Uint32(data[pos-4 : pos]))
	}

	pcm, err := io.ReadAll(dec.PCMChunk)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("read data chunk: %w", err)
	}
	pcm = pcm[:min(len(pcm), declared)]
	pcm = pcm[:len(pcm)-len(pcm)%format.FrameSize]

	return audio.NewBuffer(format, pcm)
}

// Read is Decode over a stream.
func Read(r io.Reader) (audio.Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("%w", err)
	}
	return Decode(data)
}

func formatOf(sampleRate, channels, bitDepth int) (audio.Format, error) {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return audio.Format{}, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	format := audio.Format{
		SampleRate: sampleRate,
		FrameSize:  channels * bitDepth / 8,
		Channels:   channels,
	}
	if err := format.Validate(); err != nil {
		return audio.Format{}, err
	}
	return format, nil
}
