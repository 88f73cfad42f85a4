// SPDX-License-Identifier: EPL-2.0

package silence

import (
	"fmt"

	"github.com/ik5/audtool/audio"
)

// Classes are the clip durations in seconds, smallest first.
var Classes = [5]int{1, 2, 3, 5, 10}

// Counts holds how many clips of each class make up a lead-in.
// Counts[i] belongs to Classes[i].
type Counts [5]int

// Seconds is the total duration covered by c.
func (c Counts) Seconds() int {
	total := 0
	for i, n := range c {
		total += n * Classes[i]
	}
	return total
}

// Clips is the number of clips in c.
func (c Counts) Clips() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Of returns the count for a class duration, 0 when it is not a class.
func (c Counts) Of(seconds int) int {
	for i, class := range Classes {
		if class == seconds {
			return c[i]
		}
	}
	return 0
}

// Decompose splits seconds into clip counts, taking the largest class that
// still fits until nothing remains.
func Decompose(seconds int) (Counts, error) {
	var counts Counts
	if seconds < 0 {
		return counts, fmt.Errorf("%w: %d seconds of silence", audio.ErrOutOfRange, seconds)
	}

	remaining := seconds
	for i := len(Classes) - 1; i >= 0 && remaining > 0; i-- {
		counts[i] = remaining / Classes[i]
		remaining -= counts[i] * Classes[i]
	}
	return counts, nil
}

// DecomposeWith runs the same greedy split over an arbitrary set of
// classes, given smallest first. It fails when the classes cannot cover
// seconds exactly.
func DecomposeWith(classes []int, seconds int) ([]int, error) {
	if seconds < 0 {
		return nil, fmt.Errorf("%w: %d seconds of silence", audio.ErrOutOfRange, seconds)
	}

	counts := make([]int, len(classes))
	remaining := seconds
	for i := len(classes) - 1; i >= 0 && remaining > 0; i-- {
		if classes[i] <= 0 {
			return nil, fmt.Errorf("%w: %ds", ErrUnknownClass, classes[i])
		}
		counts[i] = remaining / classes[i]
		remaining -= counts[i] * classes[i]
	}
	if remaining != 0 {
		return nil, fmt.Errorf("%w: %ds left over", ErrUnknownClass, remaining)
	}
	return counts, nil
}

// classIndex finds seconds in Classes.
func classIndex(seconds int) (int, error) {
	for i, class := range Classes {
		if class == seconds {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %ds", ErrUnknownClass, seconds)
}
