// Package bench times list concatenation across two bridges over a
// geometric schedule of list sizes.
//
// A run builds one random long list per size, reverses it outside the
// timed region, and then times concat(list, reverse(list)) on each
// bridge. The result is a three-column table: size plus one elapsed
// column per bridge.
package bench

import (
	"fmt"
	"math"
)

// Default schedule parameters.
const (
	DefaultStart  = 4.0
	DefaultStep   = 1.0
	DefaultLength = 16
)

// Schedule describes the list sizes a run visits.
// Size i is ceil(2^(Start + i*Step)) for i in [0, Length).
type Schedule struct {
	Start  float64 `json:"start"`
	Step   float64 `json:"step"`
	Length int     `json:"length"`
}

// DefaultSchedule returns 16 sizes from 16 to 2^19.
func DefaultSchedule() Schedule {
	return Schedule{Start: DefaultStart, Step: DefaultStep, Length: DefaultLength}
}

// maxExponent keeps sizes addressable as int on every platform.
const maxExponent = 30

// Validate rejects schedules that produce no sizes or sizes too large to allocate.
func (s Schedule) Validate() error {
	if s.Length <= 0 {
		return fmt.Errorf("schedule length must be positive, got %d", s.Length)
	}
	if math.IsNaN(s.Start) || math.IsNaN(s.Step) || math.IsInf(s.Start, 0) || math.IsInf(s.Step, 0) {
		return fmt.Errorf("schedule start and step must be finite")
	}
	if s.Start < 0 {
		return fmt.Errorf("schedule start must be non-negative, got %g", s.Start)
	}
	if s.Step < 0 {
		return fmt.Errorf("schedule step must be non-negative, got %g", s.Step)
	}
	if last := s.Start + float64(s.Length-1)*s.Step; last > maxExponent {
		return fmt.Errorf("schedule reaches 2^%g, limit is 2^%d", last, maxExponent)
	}
	return nil
}

// Sizes expands the schedule. Sizes are not deduplicated; a zero step
// repeats the first size Length times.
func (s Schedule) Sizes() []int {
	if s.Length <= 0 {
		return nil
	}
	out := make([]int, s.Length)
	for i := range out {
		out[i] = int(math.Ceil(math.Exp2(s.Start + float64(i)*s.Step)))
	}
	return out
}
