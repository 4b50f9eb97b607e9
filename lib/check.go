package lib

/* check.go contains the core functions of fieldio's "check" mode. */

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/phil-mansfield/fieldio/lib/field"
	"github.com/phil-mansfield/fieldio/lib/mesh"
)

// Check runs the "check" mode on the provided Args: every field must be
// constructible and every requested timestep must be loadable. With
// CrashOnError, Check stops at the first problem. With WarnOnError, every
// problem is logged as a warning and Check keeps going. The problems found
// are returned; an empty result means everything passed.
func Check(args *Args) []error {
	errs := []error{ }
	report := func(err error) bool {
		errs = append(errs, err)
		if args.Strictness == CrashOnError { return false }
		log.Warn(err.Error())
		return true
	}

	for _, cfg := range args.Fields {
		f, err := field.New(cfg)
		if err != nil {
			if !report(err) { return errs }
			continue
		}

		steps, err := Steps(f, args.Mesh, args.Times)
		if err != nil {
			if !report(err) { return errs }
			continue
		}

		for _, t := range steps {
			name, _, err := f.Locate(args.Mesh, t)
			if err != nil {
				if !report(err) { return errs }
				continue
			}
			log.WithFields(log.Fields{
				"field": f.Name, "time": t, "file": name,
			}).Debug("Timestep is readable.")
		}
	}

	return errs
}

// Steps resolves a time selector into explicit timesteps for the driver
// modes. AllTimes() selects only the timesteps that have files, so sparse
// output doesn't stop the driver; an error is returned if there are none.
func Steps(f *field.Field, m mesh.Mesh, ts field.Times) ([]int, error) {
	if !ts.All() { return ts.Steps(), nil }

	steps, err := f.Available(m)
	if err != nil { return nil, err }
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: no timestep files of the field '%s' " +
			"with root %s match the %v mesh.", field.ErrNotFound, f.Name,
			f.FileRoot, mesh.Of(m))
	}
	return steps, nil
}
