package lib

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"github.com/phil-mansfield/fieldio/lib/field"
	"github.com/phil-mansfield/fieldio/lib/mesh"
)

// fieldSectionPrefix starts the name of every config section describing a
// field, e.g. [field.ux].
const fieldSectionPrefix = "field."

// defaults holds the value of every variable that can be set in the [mesh]
// and [run] sections or on the command line. Keys are lower case.
var defaults = map[string]string{
	"nx": "", "ny": "", "nz": "",
	"times": "all",
	"timestamplen": strconv.Itoa(field.DefaultTimestampLen),
	"output": "",
	"precision": "",
	"strictness": "crash",
	"loglevel": "info",
	"fields": "",
	"axis": "2",
	"index": "0",
}

// RawArgs stores the unprocessed values which the user assigned to each config
// variable.
type RawArgs struct {
	vars map[string]string
	fields []field.Config
}

// Args stores configuration information. It is a post-processed version of
// RawArgs.
type Args struct {
	Mesh mesh.Grid
	Fields []field.Config
	Times field.Times
	TimestampLen int

	// Output is prepended to each field's name to make the file root used by
	// convert mode. If empty, fields are rewritten under their own roots.
	Output string
	// Precision overrides the precision of converted fields. Empty keeps it.
	Precision string

	Strictness CheckStrictness
	LogLevel log.Level

	// Axis and Index select the plane printed by plane mode.
	Axis, Index int
}

// ParseCommandLine parses the command line arguments (without the program
// name) and returns the mode fieldio is being run in, the name of the config
// file, and any arguments which were set. Expects that the arguments are
// presented in the order:
// $ fieldio <mode> <config file> [--<Arg1> <Value1>] [--<Arg2> <Value2>]
// The help mode doesn't need a config file.
func ParseCommandLine(
	argv []string,
) (mode Mode, configFile string, args *RawArgs, err error) {
	if len(argv) == 0 {
		return HelpMode, "", &RawArgs{ vars: map[string]string{ } }, nil
	}

	mode, err = ParseMode(argv[0])
	if err != nil { return "", "", nil, err }

	rest := argv[1:]
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "--") {
		configFile, rest = rest[0], rest[1:]
	} else if mode != HelpMode {
		return "", "", nil, fmt.Errorf("The '%s' mode requires a config " +
			"file, given as the second argument.", mode)
	}

	args = &RawArgs{ vars: map[string]string{ } }
	if len(rest) % 2 != 0 {
		return "", "", nil, fmt.Errorf("Command line arguments must come in " +
			"'--<Name> <Value>' pairs, but %d values were given after the " +
			"config file.", len(rest))
	}
	for i := 0; i < len(rest); i += 2 {
		if !strings.HasPrefix(rest[i], "--") {
			return "", "", nil, fmt.Errorf("Expected a '--<Name>' argument, " +
				"but got '%s'.", rest[i])
		}
		key := strings.ToLower(strings.TrimPrefix(rest[i], "--"))
		if _, ok := defaults[key]; !ok {
			return "", "", nil, unknownVariable(key)
		}
		args.vars[key] = rest[i + 1]
	}

	return mode, configFile, args, nil
}

// ParseConfigFile parses arguements from a config file.
func ParseConfigFile(fileName string) (*RawArgs, error) {
	file, err := ini.LoadSources(ini.LoadOptions{ InsensitiveKeys: true },
		fileName)
	if err != nil {
		return nil, fmt.Errorf("The config file %s could not be read: %w",
			fileName, err)
	}
	return parseINI(file)
}

func parseINI(file *ini.File) (*RawArgs, error) {
	args := &RawArgs{ vars: map[string]string{ } }

	for _, sec := range file.Sections() {
		name := sec.Name()
		switch {
		case name == "mesh" || name == "run":
			for _, key := range sec.Keys() {
				if _, ok := defaults[key.Name()]; !ok {
					return nil, unknownVariable(key.Name())
				}
				args.vars[key.Name()] = key.String()
			}
		case strings.HasPrefix(name, fieldSectionPrefix):
			cfg, err := parseFieldSection(sec)
			if err != nil { return nil, err }
			args.fields = append(args.fields, cfg)
		case name == ini.DefaultSection:
			if len(sec.Keys()) > 0 {
				return nil, fmt.Errorf("The variable '%s' is set outside " +
					"of any section.", sec.Keys()[0].Name())
			}
		default:
			return nil, fmt.Errorf("The config section [%s] isn't " +
				"recognized. Only [mesh], [run], and [field.<name>] are " +
				"valid.", name)
		}
	}

	return args, nil
}

// parseFieldSection converts a [field.<name>] section into a field.Config.
// Every key other than "description" is passed through as a property.
func parseFieldSection(sec *ini.Section) (field.Config, error) {
	name := strings.TrimPrefix(sec.Name(), fieldSectionPrefix)
	for _, key := range []string{ "description", "filename", "direction" } {
		if !sec.HasKey(key) {
			return field.Config{ }, fmt.Errorf("The section [%s] is " +
				"missing the required variable '%s'.", sec.Name(), key)
		}
	}

	cfg := field.Config{
		Name: name, Description: sec.Key("description").String(),
		Properties: map[string]string{ },
	}
	for _, key := range sec.Keys() {
		if key.Name() == "description" { continue }
		cfg.Properties[key.Name()] = key.String()
	}
	return cfg, nil
}

func unknownVariable(key string) error {
	names := make([]string, 0, len(defaults))
	for name := range defaults { names = append(names, name) }
	sort.Strings(names)
	return fmt.Errorf("The variable '%s' isn't recognized. Valid variables " +
		"are %s.", key, names)
}

// Overwrite arguments in arg1 which have been set in arg2.
func (arg1 *RawArgs) Overwrite(arg2 *RawArgs) {
	for key, val := range arg2.vars { arg1.vars[key] = val }
	if len(arg2.fields) > 0 { arg1.fields = arg2.fields }
}

func (args *RawArgs) get(key string) string {
	if val, ok := args.vars[key]; ok { return val }
	return defaults[key]
}

func (args *RawArgs) getInt(key string) (int, error) {
	s := args.get(key)
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("The variable '%s' must be an integer, but was " +
			"set to '%s'.", key, s)
	}
	return n, nil
}

// Process converts the raw user input to a format which is more useful for
// internal functions. Very simple validation will be done here, but nothing
// which requires interacting with external files.
func (args *RawArgs) Process() (*Args, error) {
	out := &Args{ Output: args.get("output"), Precision: args.get("precision") }
	var err error

	if out.Mesh.Nx, err = args.getInt("nx"); err != nil { return nil, err }
	if out.Mesh.Ny, err = args.getInt("ny"); err != nil { return nil, err }
	if out.Mesh.Nz, err = args.getInt("nz"); err != nil { return nil, err }
	if err = out.Mesh.Validate(); err != nil { return nil, err }

	if out.Times, err = field.ParseTimesString(args.get("times"));
		err != nil {
		return nil, err
	}

	if out.TimestampLen, err = args.getInt("timestamplen"); err != nil {
		return nil, err
	} else if out.TimestampLen < 0 {
		return nil, fmt.Errorf("TimestampLen must be non-negative, not %d.",
			out.TimestampLen)
	}

	switch out.Precision {
	case "", "single", "double":
	default:
		return nil, fmt.Errorf("Precision = '%s', but the only valid " +
			"values are 'single' and 'double'.", out.Precision)
	}

	if out.Strictness, err = ParseStrictness(args.get("strictness"));
		err != nil {
		return nil, err
	}
	if out.LogLevel, err = log.ParseLevel(args.get("loglevel")); err != nil {
		return nil, err
	}

	if out.Axis, err = args.getInt("axis"); err != nil { return nil, err }
	if out.Index, err = args.getInt("index"); err != nil { return nil, err }
	if out.Axis < 0 || out.Axis > 2 {
		return nil, fmt.Errorf("Axis must be 0, 1, or 2, not %d.", out.Axis)
	}

	out.Fields, err = selectFields(args.fields, args.get("fields"))
	if err != nil { return nil, err }

	return out, nil
}

// selectFields returns the fields named in the comma-separated list, in
// list order. An empty list selects every field.
func selectFields(fields []field.Config, list string) ([]field.Config, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("No [field.<name>] sections were given.")
	}
	if strings.TrimSpace(list) == "" { return fields, nil }

	out := []field.Config{ }
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		found := false
		for i := range fields {
			if fields[i].Name == name {
				out = append(out, fields[i])
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("Fields includes '%s', but no " +
				"[field.%s] section exists.", name, name)
		}
	}
	return out, nil
}
