/*package format handles fieldio's miniature language for timestep
sequences, e.g:

   Times = 0..100 - 63
   Times = 0, 5, 10..20

Sequence formats are a generic way to specify non-contiguous sequences of
natural numbers. They consist of a series of tokens separated by "+", "-", or
",". Each token can be either a number or two numbers separated by "..". E.g.:

  100
  0..100
  0..10 + 100
  0..100 - 63 - 10..20
  1, 4, 9

These strings build up sequences of numbers by adding/removing individual
numbers and contiguous, inclusive ranges. "," is the same as "+". For
example, 1, 2, 3, 15, 16, 17 could be written as 1..17 - 4..14. This is
useful for skipping corrupted timesteps.

All spaces around "-", "+", and "," symbols are ignored.
*/
package format

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	// Any expanded formats which would have more than BigNumber elements are
	// assumed to be bugs.
	BigNumber = 1<<20
)

// ExpandSequenceFormat expands a sequence format string into a sorted sequence
// of distinct integers. Adding a number twice or removing a number that
// isn't present is an error.
func ExpandSequenceFormat(format string) ([]int, error) {
	tok, err := tokeniseSequenceFormat(format)
	if err != nil { return nil, err }
	adds, subs, err := addsSubsSequenceFormat(tok)
	if err != nil { return nil, err }

	m := map[int]bool{ }
	for i := range adds {
		start, end, _ := sequenceFormatBounds(adds[i])
		if end - start >= BigNumber - len(m) {
			return nil, fmt.Errorf("The sequence '%s' would have more than " +
				"%d elements.", format, BigNumber)
		}
		for d := 0; d <= end - start; d++ {
			n := start + d
			if m[n] {
				return nil, fmt.Errorf("The number %d is added more than " +
					"once.", n)
			}
			m[n] = true
		}
	}

	for i := range subs {
		start, end, _ := sequenceFormatBounds(subs[i])
		for d := 0; d <= end - start; d++ {
			n := start + d
			if !m[n] {
				return nil, fmt.Errorf("The number %d is removed more times " +
					"than it was inserted.", n)
			}
			delete(m, n)
		}
	}

	out := make([]int, 0, len(m))
	for n := range m { out = append(out, n) }
	sort.Ints(out)
	return out, nil
}

// tokeniseSequenceFormat splits a sequence format string into numbers,
// ranges, and "+"/"-" operators. Commas become "+".
func tokeniseSequenceFormat(format string) ([]string, error) {
	r := strings.NewReplacer(",", " + ", "+", " + ", "-", " - ")
	tok := strings.Fields(r.Replace(format))
	if len(tok) == 0 {
		return nil, fmt.Errorf("The sequence format is empty.")
	}
	return tok, nil
}

func isOperator(tok string) bool { return tok == "+" || tok == "-" }

// addsSubsSequenceFormat sorts the operands of a token stream into the
// ranges being added and the ranges being removed. A leading operand with
// no operator is added.
func addsSubsSequenceFormat(tok []string) (adds, subs []string, err error) {
	if len(tok) == 0 {
		return nil, nil, fmt.Errorf("The sequence format is empty.")
	}
	if !isOperator(tok[0]) {
		tok = append([]string{ "+" }, tok...)
	}

	adds, subs = []string{ }, []string{ }
	for i := 0; i < len(tok); i += 2 {
		op := tok[i]
		if !isOperator(op) {
			return nil, nil, fmt.Errorf("Expected '+' or '-' before '%s'.", op)
		} else if i + 1 == len(tok) {
			return nil, nil, fmt.Errorf("The sequence format ends with a " +
				"dangling '%s'.", op)
		}

		operand := tok[i+1]
		if err := isSequenceFormatToken(operand); err != nil {
			return nil, nil, fmt.Errorf("Can't parse '%s': %s", operand, err)
		}

		if op == "+" {
			adds = append(adds, operand)
		} else {
			subs = append(subs, operand)
		}
	}

	return adds, subs, nil
}

// isSequenceFormatToken returns a nil error if tok is a number or an
// inclusive range.
func isSequenceFormatToken(tok string) error {
	_, _, err := sequenceFormatBounds(tok)
	return err
}

// sequenceFormatBounds returns the inclusive range covered by a single
// token. A plain number n covers n..n.
func sequenceFormatBounds(tok string) (start, end int, err error) {
	if len(tok) == 0 {
		return 0, 0, fmt.Errorf("the token is empty.")
	}

	bounds := strings.Split(tok, "..")
	switch len(bounds) {
	case 1:
		n, err := strconv.Atoi(bounds[0])
		if err != nil || n < 0 {
			return 0, 0, fmt.Errorf("'%s' is not a non-negative integer.",
				bounds[0])
		}
		return n, n, nil
	case 2:
		start, err1 := strconv.Atoi(bounds[0])
		if err1 != nil || start < 0 {
			return 0, 0, fmt.Errorf("'%s' is not a non-negative integer.",
				bounds[0])
		}
		end, err2 := strconv.Atoi(bounds[1])
		if err2 != nil || end < 0 {
			return 0, 0, fmt.Errorf("'%s' is not a non-negative integer.",
				bounds[1])
		}
		if end < start {
			return 0, 0, fmt.Errorf("lower bound %d is larger than upper " +
				"bound %d.", start, end)
		}
		return start, end, nil
	}
	return 0, 0, fmt.Errorf("it has more than one '..'.")
}
