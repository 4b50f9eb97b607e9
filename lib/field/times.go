package field

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phil-mansfield/fieldio/lib/format"
)

// AllTimesSentinel is the integer selector meaning "every timestep".
const AllTimesSentinel = -1

// Times selects which timesteps Load and Write operate on. The zero value
// selects nothing.
type Times struct {
	all bool
	steps []int
}

// AllTimes selects every timestep: 0 through MaxTime-1 for Load, and every
// cached timestep for Write.
func AllTimes() Times { return Times{ all: true } }

// Time selects a single timestep. Time(AllTimesSentinel) is AllTimes().
func Time(t int) Times {
	if t == AllTimesSentinel { return AllTimes() }
	return Times{ steps: []int{ t } }
}

// TimeList selects an explicit, ordered sequence of timesteps.
func TimeList(ts ...int) Times {
	steps := make([]int, len(ts))
	copy(steps, ts)
	return Times{ steps: steps }
}

// All returns true if every timestep is selected.
func (ts Times) All() bool { return ts.all }

// Steps returns the explicitly selected timesteps. It is nil for AllTimes().
func (ts Times) Steps() []int { return ts.steps }

func (ts Times) String() string {
	if ts.all { return "all" }
	s := make([]string, len(ts.steps))
	for i := range ts.steps { s[i] = strconv.Itoa(ts.steps[i]) }
	return strings.Join(s, ",")
}

// ParseTimes converts a dynamically typed selector into Times. Valid
// selectors are AllTimesSentinel, a non-negative int, a []int of
// non-negative values, or a Times. Anything else returns an error wrapping
// ErrInvalidTime.
func ParseTimes(x interface{}) (Times, error) {
	switch xx := x.(type) {
	case Times:
		return xx, xx.validate()
	case int:
		ts := Time(xx)
		return ts, ts.validate()
	case []int:
		ts := TimeList(xx...)
		return ts, ts.validate()
	}
	return Times{ }, fmt.Errorf("%w: selectors must be %d, an int, or an " +
		"[]int, not %T.", ErrInvalidTime, AllTimesSentinel, x)
}

// ParseTimesString parses a textual selector: "all", "-1", or a sequence
// format like "7", "0, 5, 10", or "0..100 - 63" (see lib/format). Sequences
// are expanded into ascending order.
func ParseTimesString(s string) (Times, error) {
	s = strings.TrimSpace(s)
	if s == "all" || s == strconv.Itoa(AllTimesSentinel) {
		return AllTimes(), nil
	}

	steps, err := format.ExpandSequenceFormat(s)
	if err != nil {
		return Times{ }, fmt.Errorf("%w: '%s' is not 'all' or a valid " +
			"timestep sequence. %s", ErrInvalidTime, s, err.Error())
	}

	ts := Times{ steps: steps }
	return ts, ts.validate()
}

func (ts Times) validate() error {
	if ts.all { return nil }
	for _, t := range ts.steps {
		if t < 0 {
			return fmt.Errorf("%w: timestep %d is negative.",
				ErrInvalidTime, t)
		}
	}
	return nil
}
