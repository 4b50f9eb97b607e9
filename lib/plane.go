package lib

/* plane.go contains fieldio's "plane" mode, which prints a 2D cut through
each selected timestep. */

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/phil-mansfield/fieldio/lib/field"
	"github.com/phil-mansfield/fieldio/lib/mesh"
)

// PrintPlanes loads each selected timestep of f and writes the plane where
// the index along axis equals index to wr. The field is cleared afterwards.
func PrintPlanes(
	wr io.Writer, f *field.Field, m mesh.Mesh, ts field.Times, axis, index int,
) error {
	defer f.Clear()

	steps, err := Steps(f, m, ts)
	if err != nil { return err }

	for _, t := range steps {
		if err := f.Load(m, field.Time(t)); err != nil { return err }
		vol, _ := f.Data(t)
		f.Clear()

		plane, err := vol.Plane(axis, index)
		if err != nil { return err }

		_, err = fmt.Fprintf(wr, "# %s t=%d axis=%d index=%d\n%v\n\n",
			f.Name, t, axis, index, mat.Formatted(plane, mat.Squeeze()))
		if err != nil { return err }
	}
	return nil
}
