package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/phil-mansfield/fieldio/lib"
	"github.com/phil-mansfield/fieldio/lib/error"
	"github.com/phil-mansfield/fieldio/lib/field"
)

func main() {
	// Parse arguements.
	mode, configFile, cmdArgs, err := lib.ParseCommandLine(os.Args[1:])
	if err != nil { error.External("%s", err.Error()) }

	if mode == lib.HelpMode {
		lib.PrintHelp(os.Stdout)
		return
	}

	rawArgs, err := lib.ParseConfigFile(configFile)
	if err != nil { error.External("%s", err.Error()) }
	rawArgs.Overwrite(cmdArgs)

	// Do processing that doesn't need external validation.
	args, err := rawArgs.Process()
	if err != nil { error.External("%s", err.Error()) }
	log.SetLevel(args.LogLevel)

	// Run the chosen mode.
	switch mode {
	case lib.CheckMode:
		Check(args)
	case lib.StatsMode:
		Stats(args)
	case lib.ConvertMode:
		Convert(args)
	case lib.PlaneMode:
		Plane(args)
	default:
		error.Internal("The mode '%s' was parsed but has no handler.", mode)
	}
}

// Check runs the "check" mode, which tests that every configured field can
// be read at every requested timestep.
func Check(args *lib.Args) {
	errs := lib.Check(args)
	if len(errs) == 0 {
		fmt.Println("No errors detected.")
		return
	}
	if args.Strictness == lib.CrashOnError {
		error.External("%s", errs[0].Error())
	}
	error.External("%d errors detected.", len(errs))
}

// Stats runs the "stats" mode, which prints a summary of every timestep of
// every field.
func Stats(args *lib.Args) {
	sums := []lib.Summary{ }
	for _, cfg := range args.Fields {
		f, err := field.New(cfg)
		if err != nil { error.External("%s", err.Error()) }

		s, err := lib.Stats(f, args.Mesh, args.Times)
		if err != nil { error.External("%s", err.Error()) }
		sums = append(sums, s...)
	}

	if err := lib.PrintSummaries(os.Stdout, sums); err != nil {
		error.External("%s", err.Error())
	}
}

// Convert runs the "convert" mode, which rewrites every field with a new
// file root, timestamp width, or precision.
func Convert(args *lib.Args) {
	for _, cfg := range args.Fields {
		names, err := lib.Convert(args, cfg)
		if err != nil { error.External("%s", err.Error()) }
		log.Infof("Wrote %d files for the field '%s'.", len(names), cfg.Name)
	}
}

// Plane runs the "plane" mode, which prints a 2D cut through every timestep
// of every field.
func Plane(args *lib.Args) {
	for _, cfg := range args.Fields {
		f, err := field.New(cfg)
		if err != nil { error.External("%s", err.Error()) }

		err = lib.PrintPlanes(os.Stdout, f, args.Mesh, args.Times,
			args.Axis, args.Index)
		if err != nil { error.External("%s", err.Error()) }
	}
}
