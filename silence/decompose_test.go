// SPDX-License-Identifier: EPL-2.0

package silence

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/ik5/audtool/audio"
)

func TestDecompose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		seconds int
		want    Counts
	}{
		{seconds: 0, want: Counts{}},
		{seconds: 1, want: Counts{1, 0, 0, 0, 0}},
		{seconds: 4, want: Counts{1, 0, 1, 0, 0}},
		{seconds: 6, want: Counts{1, 0, 0, 1, 0}},
		{seconds: 9, want: Counts{1, 0, 1, 1, 0}},
		{seconds: 16, want: Counts{1, 0, 0, 1, 1}},
		{seconds: 30, want: Counts{0, 0, 0, 0, 3}},
		{seconds: 38, want: Counts{0, 0, 1, 1, 3}},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.seconds), func(t *testing.T) {
			t.Parallel()

			got, err := Decompose(tt.seconds)
			if err != nil {
				t.Fatalf("Decompose(%d) error = %v", tt.seconds, err)
			}
			if got != tt.want {
				t.Errorf("Decompose(%d) = %v, want %v", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestDecompose_Sixteen(t *testing.T) {
	t.Parallel()

	got, _ := Decompose(16)
	for class, want := range map[int]int{10: 1, 5: 1, 3: 0, 2: 0, 1: 1} {
		if got.Of(class) != want {
			t.Errorf("Of(%d) = %d, want %d", class, got.Of(class), want)
		}
	}
	if got.Clips() != 3 {
		t.Errorf("Clips() = %d, want 3", got.Clips())
	}
}

func TestDecompose_SumsToInput(t *testing.T) {
	t.Parallel()

	for s := range 1000 {
		got, err := Decompose(s)
		if err != nil {
			t.Fatalf("Decompose(%d) error = %v", s, err)
		}
		if got.Seconds() != s {
			t.Fatalf("Decompose(%d).Seconds() = %d", s, got.Seconds())
		}
		for i, n := range got {
			if n < 0 {
				t.Fatalf("Decompose(%d)[%d] = %d", s, i, n)
			}
		}
	}
}

func TestDecompose_Negative(t *testing.T) {
	t.Parallel()

	if _, err := Decompose(-1); !errors.Is(err, audio.ErrOutOfRange) {
		t.Errorf("Decompose(-1) error = %v, want ErrOutOfRange", err)
	}
}

func TestDecomposeWith(t *testing.T) {
	t.Parallel()

	got, err := DecomposeWith([]int{1, 4, 15}, 23)
	if err != nil {
		t.Fatalf("DecomposeWith() error = %v", err)
	}
	if want := []int{0, 2, 1}; !slices.Equal(got, want) {
		t.Errorf("DecomposeWith() = %v, want %v", got, want)
	}

	// greedy is not optimal here: 12 = 4+4+4, but the 10s clip is taken first
	got, err = DecomposeWith([]int{1, 4, 10}, 12)
	if err != nil {
		t.Fatalf("DecomposeWith() error = %v", err)
	}
	if want := []int{2, 0, 1}; !slices.Equal(got, want) {
		t.Errorf("DecomposeWith() = %v, want %v", got, want)
	}

	if _, err := DecomposeWith([]int{2, 5}, 3); !errors.Is(err, ErrUnknownClass) {
		t.Errorf("DecomposeWith(3) error = %v, want ErrUnknownClass", err)
	}
}

func BenchmarkDecompose(b *testing.B) {
	for b.Loop() {
		_, _ = Decompose(3599)
	}
}
