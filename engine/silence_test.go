// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ik5/audtool/audio"
	"github.com/ik5/audtool/internal/audiotest"
	"github.com/ik5/audtool/store"
)

func TestLoadSilence(t *testing.T) {
	t.Parallel()

	st := store.NewMemory()
	for _, s := range []int{1, 2, 3, 5, 10} {
		put(t, st, fmt.Sprintf("gap%ds", s), audiotest.Constant(mono, s, 0))
	}

	cat, err := LoadSilence(context.Background(), st, "gap")
	if err != nil {
		t.Fatalf("LoadSilence() error = %v", err)
	}
	if cat.Format() != mono {
		t.Errorf("Format() = %v, want %v", cat.Format(), mono)
	}

	clip, err := cat.Clip(mono, 5)
	if err != nil || audio.Duration(clip) != 5 {
		t.Errorf("Clip(5) = %v, %v", audio.Duration(clip), err)
	}

	fg := put(t, st, "voice", audiotest.Constant(mono, 1, 40))
	bg := put(t, st, "music", audiotest.Constant(mono, 1, 20))
	e := New(st, WithSilence(cat))

	out, err := e.BlendWithOffset(context.Background(), Output{}, fg, bg, 16, 1)
	if err != nil {
		t.Fatalf("BlendWithOffset() error = %v", err)
	}
	if d := audio.Duration(get(t, st, out)); d != 17 {
		t.Errorf("Duration() = %v, want 17", d)
	}
}

func TestLoadSilence_Missing(t *testing.T) {
	t.Parallel()

	st := store.NewMemory()
	put(t, st, "gap1s", audiotest.Constant(mono, 1, 0))

	_, err := LoadSilence(context.Background(), st, "gap")
	if !errors.Is(err, audio.ErrIOFailure) || !errors.Is(err, store.ErrNotFound) {
		t.Errorf("LoadSilence() error = %v, want ErrIOFailure and ErrNotFound", err)
	}
}
