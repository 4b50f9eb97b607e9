package lib

import (
	"fmt"
	"strings"
)

// Mode is one of the things the fieldio command can do.
type Mode string
const (
	HelpMode Mode = "help"
	CheckMode Mode = "check"
	StatsMode Mode = "stats"
	ConvertMode Mode = "convert"
	PlaneMode Mode = "plane"
)

// Modes lists every valid Mode.
var Modes = []Mode{ HelpMode, CheckMode, StatsMode, ConvertMode, PlaneMode }

// ParseMode returns an error if s isn't one of Modes.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s { return m, nil }
	}
	names := make([]string, len(Modes))
	for i := range Modes { names[i] = "'" + string(Modes[i]) + "'" }
	return "", fmt.Errorf("You attempted to run fieldio in the mode '%s', " +
		"but the only valid modes are %s.", s, strings.Join(names, ", "))
}

// CheckStrictness indicates how functions related to the "check" mode
// should behave when it encounters an error.
type CheckStrictness int
const (
	CrashOnError CheckStrictness = iota
	WarnOnError
)

// ParseStrictness converts "crash" or "warn" to a CheckStrictness.
func ParseStrictness(s string) (CheckStrictness, error) {
	switch strings.ToLower(s) {
	case "crash": return CrashOnError, nil
	case "warn": return WarnOnError, nil
	}
	return CrashOnError, fmt.Errorf("Strictness = '%s', but the only valid " +
		"values are 'crash' and 'warn'.", s)
}
