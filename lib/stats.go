package lib

/* stats.go contains fieldio's "stats" mode, which summarizes each loaded
timestep. */

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/phil-mansfield/fieldio/lib/field"
	"github.com/phil-mansfield/fieldio/lib/mesh"
)

// Summary describes the values of one timestep of a field. Std is the
// unbiased standard deviation and is NaN for single-element volumes.
type Summary struct {
	Field string
	Time int
	Min, Max, Mean, Std float64
}

// Summarize computes the Summary of a single volume.
func Summarize(name string, t int, vol *field.Volume) Summary {
	x := vol.Values()
	mean, std := stat.MeanStdDev(x, nil)
	return Summary{
		Field: name, Time: t,
		Min: floats.Min(x), Max: floats.Max(x), Mean: mean, Std: std,
	}
}

// Stats loads the selected timesteps of f and summarizes them in timestep
// order. The field is cleared afterwards.
func Stats(f *field.Field, m mesh.Mesh, ts field.Times) ([]Summary, error) {
	defer f.Clear()

	steps, err := Steps(f, m, ts)
	if err != nil { return nil, err }
	if err := f.Load(m, field.TimeList(steps...)); err != nil {
		return nil, err
	}

	out := make([]Summary, 0, len(steps))
	for _, t := range f.Loaded() {
		vol, _ := f.Data(t)
		out = append(out, Summarize(f.Name, t, vol))
	}
	return out, nil
}

// PrintSummaries writes a table of summaries to wr.
func PrintSummaries(wr io.Writer, sums []Summary) error {
	tw := tabwriter.NewWriter(wr, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "field\ttime\tmin\tmax\tmean\tstd")
	for _, s := range sums {
		fmt.Fprintf(tw, "%s\t%d\t%.6g\t%.6g\t%.6g\t%.6g\n",
			s.Field, s.Time, s.Min, s.Max, s.Mean, s.Std)
	}
	return tw.Flush()
}
