package lib

/* convert.go contains fieldio's "convert" mode, which rewrites fields under
a new file root, timestamp width, or precision. */

import (
	log "github.com/sirupsen/logrus"

	"github.com/phil-mansfield/fieldio/lib/field"
)

// OutputConfig returns the configuration of the field that cfg is converted
// into: its file root is Output + name when Output is set, and its precision
// is overridden when Precision is set.
func OutputConfig(args *Args, cfg field.Config) field.Config {
	props := map[string]string{ }
	for key, val := range cfg.Properties { props[key] = val }

	if args.Output != "" { props["filename"] = args.Output + cfg.Name }
	if args.Precision != "" { props["precision"] = args.Precision }

	return field.Config{
		Name: cfg.Name, Description: cfg.Description, Properties: props,
	}
}

// Convert loads the selected timesteps of the field described by cfg and
// writes them out as described by OutputConfig. It returns the names of the
// written files.
func Convert(args *Args, cfg field.Config) ([]string, error) {
	in, err := field.New(cfg)
	if err != nil { return nil, err }
	out, err := field.New(OutputConfig(args, cfg))
	if err != nil { return nil, err }
	defer in.Clear()
	defer out.Clear()

	steps, err := Steps(in, args.Mesh, args.Times)
	if err != nil { return nil, err }

	names := make([]string, 0, len(steps))
	for _, t := range steps {
		if err := in.Load(args.Mesh, field.Time(t)); err != nil {
			return names, err
		}
		vol, _ := in.Data(t)
		if err := out.Set(t, vol.Convert(out.Precision)); err != nil {
			return names, err
		}
		if err := out.Write(field.Time(t), args.TimestampLen); err != nil {
			return names, err
		}

		// Only one timestep is held at a time.
		in.Clear()
		out.Clear()

		name := out.Filename(t, args.TimestampLen)
		names = append(names, name)
		log.WithFields(log.Fields{
			"field": cfg.Name, "time": t, "file": name,
			"precision": out.Precision,
		}).Info("Converted timestep.")
	}

	return names, nil
}
