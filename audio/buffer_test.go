// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
)

var (
	mono16   = Format{SampleRate: 8000, FrameSize: 2, Channels: 1}
	stereo16 = Format{SampleRate: 8000, FrameSize: 4, Channels: 2}
)

// filled returns seconds of audio in format where every byte is v.
func filled(t testing.TB, format Format, seconds int, v byte) Buffer {
	t.Helper()

	data := make([]byte, seconds*format.BytesPerSecond())
	for i := range data {
		data[i] = v
	}
	buf, err := NewBuffer(format, data)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}
	return buf
}

func TestFormat_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  Format
		wantErr bool
	}{
		{name: "mono 16-bit", format: mono16},
		{name: "stereo 16-bit", format: stereo16},
		{name: "stereo 24-bit", format: Format{SampleRate: 48000, FrameSize: 6, Channels: 2}},
		{name: "zero rate", format: Format{SampleRate: 0, FrameSize: 2, Channels: 1}, wantErr: true},
		{name: "zero frame", format: Format{SampleRate: 8000, FrameSize: 0, Channels: 1}, wantErr: true},
		{name: "zero channels", format: Format{SampleRate: 8000, FrameSize: 2, Channels: 0}, wantErr: true},
		{name: "frame not divisible", format: Format{SampleRate: 8000, FrameSize: 3, Channels: 2}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.format.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Validate() error = %v, want ErrInvalidFormat", err)
			}
		})
	}
}

func TestFormat_Derived(t *testing.T) {
	t.Parallel()

	f := Format{SampleRate: 44100, FrameSize: 4, Channels: 2}

	if got := f.SampleWidth(); got != 2 {
		t.Errorf("SampleWidth() = %d, want 2", got)
	}
	if got := f.BitDepth(); got != 16 {
		t.Errorf("BitDepth() = %d, want 16", got)
	}
	if got := f.BytesPerSecond(); got != 176400 {
		t.Errorf("BytesPerSecond() = %d, want 176400", got)
	}
	if got := f.String(); got != "44100Hz/2ch/16bit" {
		t.Errorf("String() = %q", got)
	}
}

func TestFormat_Compatible(t *testing.T) {
	t.Parallel()

	// channel layout is not part of compatibility, only rate and frame size
	mono32 := Format{SampleRate: 8000, FrameSize: 4, Channels: 1}
	if !stereo16.Compatible(mono32) {
		t.Error("stereo16 should be compatible with a 4-byte mono frame at the same rate")
	}
	if mono16.Compatible(stereo16) {
		t.Error("mono16 should not be compatible with stereo16")
	}
	if mono16.Compatible(Format{SampleRate: 16000, FrameSize: 2, Channels: 1}) {
		t.Error("different sample rates should not be compatible")
	}
}

func TestNewBuffer_Copies(t *testing.T) {
	t.Parallel()

	data := []byte{1, 2, 3, 4}
	buf, err := NewBuffer(mono16, data)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}

	data[0] = 99
	if buf.Bytes()[0] != 1 {
		t.Error("NewBuffer() did not copy its input")
	}
	if buf.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", buf.Frames())
	}
	if buf.Len() != 4 {
		t.Errorf("Len() = %d, want 4", buf.Len())
	}
}

func TestNewBuffer_PartialFrame(t *testing.T) {
	t.Parallel()

	_, err := NewBuffer(stereo16, []byte{1, 2, 3})
	if !errors.Is(err, ErrPartialFrame) {
		t.Errorf("NewBuffer() error = %v, want ErrPartialFrame", err)
	}
}

func TestSilence(t *testing.T) {
	t.Parallel()

	buf, err := Silence(stereo16, 3)
	if err != nil {
		t.Fatalf("Silence() error = %v", err)
	}
	if buf.Len() != 3*stereo16.BytesPerSecond() {
		t.Errorf("Len() = %d, want %d", buf.Len(), 3*stereo16.BytesPerSecond())
	}
	for i, b := range buf.Bytes() {
		if b != 0 {
			t.Fatalf("byte %d = %d, want 0", i, b)
		}
	}

	if _, err := Silence(stereo16, -1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Silence(-1) error = %v, want ErrOutOfRange", err)
	}
}

func TestSilence_Unsigned8(t *testing.T) {
	t.Parallel()

	for _, format := range []Format{
		{SampleRate: 8000, FrameSize: 1, Channels: 1},
		{SampleRate: 8000, FrameSize: 2, Channels: 2},
	} {
		buf, err := Silence(format, 1)
		if err != nil {
			t.Fatalf("Silence(%v) error = %v", format, err)
		}
		if buf.Len() != format.BytesPerSecond() {
			t.Errorf("Silence(%v) Len() = %d", format, buf.Len())
		}
		for i, b := range buf.Bytes() {
			if b != 0x80 {
				t.Fatalf("Silence(%v) byte %d = %#x, want 0x80", format, i, b)
			}
		}
	}
}

func TestBuffer_Equal(t *testing.T) {
	t.Parallel()

	a := filled(t, mono16, 1, 7)
	b := filled(t, mono16, 1, 7)
	c := filled(t, mono16, 1, 8)

	if !a.Equal(b) {
		t.Error("identical buffers should be equal")
	}
	if a.Equal(c) {
		t.Error("buffers with different data should not be equal")
	}

	d, _ := NewBuffer(Format{SampleRate: 8000, FrameSize: 2, Channels: 2}, a.Bytes())
	if a.Equal(d) {
		t.Error("buffers with different formats should not be equal")
	}
}
