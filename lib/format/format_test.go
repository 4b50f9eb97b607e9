package format

import (
	"fmt"
	"math"
	"testing"

	"github.com/phil-mansfield/fieldio/lib/eq"
)

func TestIsSequenceFormatToken(t *testing.T) {
	tests := []struct{
		tok string
		valid bool
	} {
		{"", false},
		{"1", true},
		{"a", false},
		{"1..30", true},
		{"a..30", false},
		{"1..a", false},
		{"30..1", false},
		{"a..b", false},
		{"1..30..60", false},
		{fmt.Sprintf("0..%d", math.MaxInt), true},
		{fmt.Sprintf("0..%d0", math.MaxInt), false},
	}

	for i := range tests {
		err := isSequenceFormatToken(tests[i].tok)
		if tests[i].valid && err != nil {
			t.Errorf("%d) Expected token '%s' to be valid, but got error '%s'.",
				i, tests[i].tok, err.Error())
		} else if !tests[i].valid && err == nil {
			t.Errorf("%d) Expected token '%s' to be invalid, but got no error.",
				i, tests[i].tok)
		}
	}
}

func TestTokeniseSequenceFormat(t *testing.T) {
	tests := []struct{
		format string
		tok []string
		valid bool
	} {
		{"", nil, false},
		{"   ", nil, false},
		{"0", []string{"0"}, true},
		{"10..20", []string{"10..20"}, true},
		{"a..b", []string{"a..b"}, true},
		{"0+1", []string{"0", "+", "1"}, true},
		{"0 - 1", []string{"0", "-", "1"}, true},
		{"0,1", []string{"0", "+", "1"}, true},
		{" 0 , 5 ,10", []string{"0", "+", "5", "+", "10"}, true},
		{"-0..100 + 0..200-9", []string{"-", "0..100", "+", "0..200",
			"-", "9"}, true},
	}

	for i := range tests {
		tok, err := tokeniseSequenceFormat(tests[i].format)
		if tests[i].valid && err != nil {
			t.Errorf("%d) Expected '%s' to be valid, but got error '%s'.",
				i, tests[i].format, err.Error())
		} else if !tests[i].valid && err == nil {
			t.Errorf("%d) Expected '%s' to be invalid, but got no error.",
				i, tests[i].format)
		} else if tests[i].valid && !eq.Strings(tok, tests[i].tok) {
			t.Errorf("%d) Expected '%s' to tokenize to %q, got %q.",
				i, tests[i].format, tests[i].tok, tok)
		}
	}
}

func TestAddsSubsSequenceFormat(t *testing.T) {
	tests := []struct {
		tok, adds, subs []string
		valid bool
	} {
		{[]string{}, nil, nil, false},
		{[]string{"1"}, []string{"1"}, []string{}, true},
		{[]string{"+", "1"}, []string{"1"}, []string{}, true},
		{[]string{"-", "1"}, []string{}, []string{"1"}, true},
		{[]string{"1", "+", "2..10"}, []string{"1", "2..10"}, []string{}, true},
		{[]string{"1", "-", "2..10"}, []string{"1"}, []string{"2..10"}, true},
		{[]string{"1", "2"}, nil, nil, false},
		{[]string{"1", "+", "2", "+"}, nil, nil, false},
		{[]string{"1", "+", "+", "2"}, nil, nil, false},
		{[]string{"1", "*", "2"}, nil, nil, false},
		{[]string{"a", "+", "2"}, nil, nil, false},
		{[]string{"1", "+", "a..2"}, nil, nil, false},
	}

	for i := range tests {
		adds, subs, err := addsSubsSequenceFormat(tests[i].tok)
		if tests[i].valid && err != nil {
			t.Errorf("%d) Expected %s could be processed, got error '%s'",
				i, tests[i].tok, err.Error())
		} else if !tests[i].valid && err == nil {
			t.Errorf("%d) Expected %s could not be processed, but got no " +
				"error.", i, tests[i].tok)
		} else if tests[i].valid && (!eq.Strings(adds, tests[i].adds) ||
			!eq.Strings(subs, tests[i].subs)) {
			t.Errorf("%d) Expected %s would be processed into adds = %s, " +
				"subs = %s, but got adds = %s, subs = %s", i, tests[i].tok,
				tests[i].adds, tests[i].subs, adds, subs)
		}
	}
}

func TestExpandSequenceFormat(t *testing.T) {
	maxRange := fmt.Sprintf("0..%d", math.MaxInt)
	tests := []struct{
		format string
		n []int
		valid bool
	} {
		{"", nil, false},
		{"a", nil, false},
		{"10..a", nil, false},
		{"1", []int{ 1 }, true},
		{"1..5", []int{ 1, 2, 3, 4, 5 }, true},
		{"+ 1..5", []int{ 1, 2, 3, 4, 5 }, true},
		{"-1", nil, false},
		{"1 + 2", []int{1, 2}, true},
		{"1 + 1", nil, false},
		{"3..5 + 1 + 7..9", []int{1, 3, 4, 5, 7, 8, 9}, true},
		{"-3 + 3..5 - 4", []int{5}, true},
		{"1..10 - 2..9", []int{1, 10}, true},
		{"3..5 - 1", nil, false},
		{"3..5 - 4 - 4", nil, false},
		{"3..5 + 6-", nil, false},
		{"10, 2, 7", []int{2, 7, 10}, true},
		{"0..999", nil, true},
		{"0..2000000", nil, false},
		{"0..1048575", nil, true},
		{"0..1048576", nil, false},
		{"0..1000 + 2000..1050000", nil, false},
		{maxRange, nil, false},
		{"1 + " + maxRange, nil, false},
		{fmt.Sprint(math.MaxInt), []int{math.MaxInt}, true},
		{fmt.Sprintf("%d..%d", math.MaxInt-1, math.MaxInt),
			[]int{math.MaxInt-1, math.MaxInt}, true},
		{"1..3 - " + maxRange, nil, false},
	}

	for i := range tests {
		n, err := ExpandSequenceFormat(tests[i].format)

		if tests[i].valid && err != nil {
			t.Errorf("%d) Expected '%s' could be expanded, got error '%s'",
				i, tests[i].format, err.Error())
		} else if !tests[i].valid && err == nil {
			t.Errorf("%d) Expected '%s' should fail, but got no error.",
				i, tests[i].format)
		} else if tests[i].valid && tests[i].n != nil &&
			!eq.Ints(n, tests[i].n) {
			t.Errorf("%d) Expected '%s' to expand to %d, got %d",
				i, tests[i].format, tests[i].n, n)
		}
	}
}
