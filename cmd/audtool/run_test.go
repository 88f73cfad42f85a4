// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/audtool/audio"
	"github.com/ik5/audtool/engine"
	"github.com/ik5/audtool/formats/wav"
	"github.com/ik5/audtool/internal/audiotest"
	"github.com/ik5/audtool/store"
)

var mono = audio.Format{SampleRate: 8000, FrameSize: 2, Channels: 1}

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()

	st := store.NewMemory()
	for name, seconds := range map[string]int{"audio1.wav": 6, "audio2.wav": 4} {
		data, err := wav.Encode(audiotest.Constant(mono, seconds, 8))
		if err != nil {
			t.Fatal(err)
		}
		if err := st.Save(context.Background(), name, data); err != nil {
			t.Fatal(err)
		}
	}
	return engine.New(st)
}

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts options
		args []string
		want string
	}{
		{name: "join", args: []string{"join", "audio1.wav", "audio2.wav"}, want: "join-audio1-audio2.wav\n"},
		{name: "blend", args: []string{"blend", "audio1.wav", "audio2.wav"}, want: "blend-audio1-audio2.wav\n"},
		{name: "offset", args: []string{"offset", "audio1.wav", "audio2.wav", "2", "10"}, want: "offset-audio1-audio2-2-10.wav\n"},
		{name: "cut", args: []string{"cut", "audio1.wav", "1", "3"}, want: "cut-audio1-1-3.wav\n"},
		{name: "named", opts: options{name: "intro"}, args: []string{"cut", "audio1.wav", "0", "1"}, want: "intro.wav\n"},
		{name: "duration", args: []string{"duration", "audio2.wav"}, want: "audio2.wav\t4.000\n"},
		{name: "encodings", args: []string{"encodings"}, want: "aiff mp3 ogg wav\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout bytes.Buffer
			err := run(context.Background(), newEngine(t), tt.opts, tt.args, nil, &stdout)
			if err != nil {
				t.Fatalf("run(%v) error = %v", tt.args, err)
			}
			if stdout.String() != tt.want {
				t.Errorf("run(%v) printed %q, want %q", tt.args, stdout.String(), tt.want)
			}
		})
	}
}

func TestRun_Import(t *testing.T) {
	t.Parallel()

	data, _ := wav.Encode(audiotest.Constant(mono, 1, 0))
	path := filepath.Join(t.TempDir(), "take.wav")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	e := newEngine(t)
	ctx := context.Background()

	var stdout bytes.Buffer
	if err := run(ctx, e, options{}, []string{"import", path, "voice"}, nil, &stdout); err != nil {
		t.Fatalf("run(import) error = %v", err)
	}
	if stdout.String() != "voice.wav\n" {
		t.Errorf("run(import) printed %q", stdout.String())
	}

	stdout.Reset()
	err := run(ctx, e, options{encoding: "wav"}, []string{"import", "-", "piped"}, bytes.NewReader(data), &stdout)
	if err != nil {
		t.Fatalf("run(import -) error = %v", err)
	}
	if stdout.String() != "piped.wav\n" {
		t.Errorf("run(import -) printed %q", stdout.String())
	}

	if err := run(ctx, e, options{}, []string{"import", "-"}, bytes.NewReader(data), &stdout); err == nil {
		t.Errorf("run(import -) without -f should fail")
	}
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts options
		args []string
		want string
	}{
		{name: "unknown command", args: []string{"mix"}, want: "unknown command mix"},
		{name: "missing args", args: []string{"cut", "audio1.wav"}, want: "usage: cut"},
		{name: "bad seconds", args: []string{"cut", "audio1.wav", "one", "2"}, want: "seconds"},
		{name: "bad asset", args: []string{"duration", "audio1"}, want: "unsupported audio format"},
		{name: "bad encoding", opts: options{encoding: "flac"}, args: []string{"join", "audio1.wav", "audio2.wav"}, want: "output"},
		{name: "missing asset", args: []string{"duration", "nope.wav"}, want: "asset not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := run(context.Background(), newEngine(t), tt.opts, tt.args, nil, &bytes.Buffer{})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("run(%v) error = %v, want containing %q", tt.args, err, tt.want)
			}
		})
	}
}

func TestCommandNames(t *testing.T) {
	t.Parallel()

	want := "blend, convert, cut, duration, encodings, import, join, offset"
	if got := commandNames(); got != want {
		t.Errorf("commandNames() = %v, want %v", got, want)
	}
}
