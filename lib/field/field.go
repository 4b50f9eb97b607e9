/*package field reads and writes the raw binary scalar-field snapshots
written by Incompact3D-style solvers. Each timestep of a field is a flat
dump of Nx*Ny*Nz floats in column-major order, stored under a file name
built from the field's file root and the timestep number.
*/
package field

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/phil-mansfield/fieldio/lib/mesh"
)

const (
	// MaxPadding is the largest number of extra zeros Load will put between
	// the file root and the timestep.
	MaxPadding = 9
	// DefaultMaxTime is the number of timesteps probed by Load(AllTimes()).
	// It corresponds to timestamps with up to four digits.
	DefaultMaxTime = 1000
	// DefaultTimestampLen is the minimum width of timestamps written by
	// Write.
	DefaultTimestampLen = 3
)

// Config is the configuration record a Field is built from. Properties
// holds the raw "filename", "direction", and optional "precision",
// "byteorder", and "maxtime" values.
type Config struct {
	Name, Description string
	Properties map[string]string
}

// Field is one named physical quantity stored as a sequence of per-timestep
// files. Loaded timesteps are cached in memory until Clear is called. A
// Field must not be used from multiple goroutines at once.
//
// New fills in the defaults for a Field, but a literal Field works too:
// its cache is created on first use. A zero MaxTime makes Load(AllTimes())
// a no-op, and a nil Order means SystemByteOrder().
type Field struct {
	Name, Description string
	// FileRoot is the prefix of every timestep's file name.
	FileRoot string
	// Direction is passed through and never interpreted here.
	Direction string
	Precision Precision
	Order binary.ByteOrder
	// MaxTime bounds the timesteps probed by Load(AllTimes()).
	MaxTime int

	data map[int]*Volume
}

// New creates a Field from a configuration record.
func New(cfg Config) (*Field, error) {
	props := cfg.Properties
	if cfg.Name == "" {
		return nil, fmt.Errorf("Fields must be given a name.")
	} else if cfg.Description == "" {
		return nil, fmt.Errorf("The field '%s' has no description.", cfg.Name)
	}
	root, ok := props["filename"]
	if !ok || root == "" {
		return nil, fmt.Errorf("The field '%s' has no 'filename' property.",
			cfg.Name)
	}
	dir, ok := props["direction"]
	if !ok {
		return nil, fmt.Errorf("The field '%s' has no 'direction' property.",
			cfg.Name)
	}

	f := &Field{
		Name: cfg.Name, Description: cfg.Description,
		FileRoot: root, Direction: dir,
		Precision: Double, Order: SystemByteOrder(),
		MaxTime: DefaultMaxTime, data: map[int]*Volume{ },
	}

	if prec, ok := props["precision"]; ok {
		f.Precision = ParsePrecision(prec)
	}

	if s, ok := props["byteorder"]; ok {
		order, err := ParseByteOrder(s)
		if err != nil {
			return nil, fmt.Errorf("Field '%s': %w", cfg.Name, err)
		}
		f.Order = order
	}

	if s, ok := props["maxtime"]; ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("The field '%s' has maxtime = '%s', but " +
				"it must be a non-negative integer.", cfg.Name, s)
		}
		f.MaxTime = n
	}

	return f, nil
}

// Read reads a single raw binary file into a Volume shaped like m. The file
// must contain exactly Nx*Ny*Nz elements of the given precision; otherwise
// a *SizeError is returned. A nil order means SystemByteOrder().
func Read(
	fileName string, m mesh.Mesh, prec Precision, order binary.ByteOrder,
) (*Volume, error) {
	g := mesh.Of(m)
	if err := g.Validate(); err != nil { return nil, err }
	if order == nil { order = SystemByteOrder() }

	file, err := os.Open(fileName)
	if err != nil { return nil, err }
	defer file.Close()

	info, err := file.Stat()
	if err != nil { return nil, err }
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a field file.",
			fileName)
	}

	expected := int64(g.N())*int64(prec.Size())
	if info.Size() != expected {
		return nil, &SizeError{
			fileName, info.Size(), expected, g.Nx, g.Ny, g.Nz, prec,
		}
	}

	vol := NewVolume(g.Nx, g.Ny, g.Nz, prec)
	if err := vol.decode(bufio.NewReader(file), order); err != nil {
		return nil, fmt.Errorf("Could not read %s: %w", fileName, err)
	}
	return vol, nil
}

// Candidates returns the file names probed for timestep t, in probe order:
// the file root, then 0 through MaxPadding zeros, then the timestep.
func (f *Field) Candidates(t int) []string {
	names := make([]string, MaxPadding + 1)
	ts := strconv.Itoa(t)
	for zeros := range names {
		names[zeros] = f.FileRoot + strings.Repeat("0", zeros) + ts
	}
	return names
}

// Filename returns the name Write uses for timestep t: the timestep padded
// on the left with zeros to at least timestampLen digits.
func (f *Field) Filename(t, timestampLen int) string {
	return fmt.Sprintf("%s%0*d", f.FileRoot, timestampLen, t)
}

// Locate reads timestep t from the first padding candidate that can be read
// successfully. The field's cache is not modified. If every candidate
// fails, the returned error is a *NotFoundError.
func (f *Field) Locate(m mesh.Mesh, t int) (string, *Volume, error) {
	if t < 0 {
		return "", nil, fmt.Errorf("%w: timestep %d is negative.",
			ErrInvalidTime, t)
	}
	if err := mesh.Of(m).Validate(); err != nil { return "", nil, err }

	names := f.Candidates(t)
	var last error
	for _, name := range names {
		vol, err := Read(name, m, f.Precision, f.Order)
		if err == nil { return name, vol, nil }

		log.WithFields(log.Fields{
			"field": f.Name, "time": t, "file": name,
		}).Debugf("Probe failed: %s", err)
		last = err
	}

	return "", nil, &NotFoundError{ f.Name, f.FileRoot, t, names, last }
}

// Load reads the selected timesteps into the cache. AllTimes() selects 0
// through MaxTime-1. Load stops at the first timestep that can't be found
// and returns a *NotFoundError; timesteps loaded before it stay cached.
func (f *Field) Load(m mesh.Mesh, ts Times) error {
	if err := ts.validate(); err != nil { return err }
	if err := mesh.Of(m).Validate(); err != nil { return err }

	steps := ts.Steps()
	if ts.All() {
		steps = make([]int, f.MaxTime)
		for i := range steps { steps[i] = i }
	}

	for _, t := range steps {
		name, vol, err := f.Locate(m, t)
		if err != nil { return err }
		f.cache(t, vol)

		log.WithFields(log.Fields{
			"field": f.Name, "time": t, "file": name,
		}).Debug("Loaded timestep.")
	}

	return nil
}

// Available returns the timesteps in 0 through MaxTime-1 that have a
// candidate file of the right size for m. Nothing is read or cached.
func (f *Field) Available(m mesh.Mesh) ([]int, error) {
	g := mesh.Of(m)
	if err := g.Validate(); err != nil { return nil, err }
	expected := int64(g.N())*int64(f.Precision.Size())

	steps := []int{ }
	for t := 0; t < f.MaxTime; t++ {
		for _, name := range f.Candidates(t) {
			info, err := os.Stat(name)
			if err == nil && info.Mode().IsRegular() &&
				info.Size() == expected {
				steps = append(steps, t)
				break
			}
		}
	}
	return steps, nil
}

// Write writes the selected timesteps to disk under Filename(t,
// timestampLen), overwriting existing files. AllTimes() selects every
// cached timestep. Cached volumes are never modified.
func (f *Field) Write(ts Times, timestampLen int) error {
	if err := ts.validate(); err != nil { return err }
	if timestampLen < 0 {
		return fmt.Errorf("The timestamp length must be non-negative, not " +
			"%d.", timestampLen)
	}

	steps := ts.Steps()
	if ts.All() { steps = f.Loaded() }

	for _, t := range steps {
		vol, ok := f.data[t]
		if !ok {
			return fmt.Errorf("%w: timestep %d of the field '%s' can't be " +
				"written before it's loaded.", ErrNotLoaded, t, f.Name)
		}

		name := f.Filename(t, timestampLen)
		if err := writeVolume(name, vol, f.Order); err != nil { return err }

		log.WithFields(log.Fields{
			"field": f.Name, "time": t, "file": name,
		}).Debug("Wrote timestep.")
	}

	return nil
}

func writeVolume(fileName string, vol *Volume, order binary.ByteOrder) error {
	if order == nil { order = SystemByteOrder() }

	file, err := os.Create(fileName)
	if err != nil { return err }

	wr := bufio.NewWriter(file)
	if err := vol.encode(wr, order); err != nil {
		file.Close()
		return fmt.Errorf("Could not write %s: %w", fileName, err)
	}
	if err := wr.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("Could not write %s: %w", fileName, err)
	}
	return file.Close()
}

// Clear drops every cached timestep.
func (f *Field) Clear() {
	f.data = map[int]*Volume{ }
}

// Data returns the cached volume for timestep t.
func (f *Field) Data(t int) (*Volume, bool) {
	vol, ok := f.data[t]
	return vol, ok
}

// Set caches vol as timestep t. vol must have the field's precision.
func (f *Field) Set(t int, vol *Volume) error {
	if t < 0 {
		return fmt.Errorf("%w: timestep %d is negative.", ErrInvalidTime, t)
	} else if vol == nil {
		return fmt.Errorf("The field '%s' was given a nil volume for " +
			"timestep %d.", f.Name, t)
	} else if vol.Precision() != f.Precision {
		return fmt.Errorf("The field '%s' has %s precision, but was given a " +
			"%s precision volume.", f.Name, f.Precision, vol.Precision())
	}
	f.cache(t, vol)
	return nil
}

func (f *Field) cache(t int, vol *Volume) {
	if f.data == nil { f.data = map[int]*Volume{ } }
	f.data[t] = vol
}

// Loaded returns the cached timesteps in ascending order.
func (f *Field) Loaded() []int {
	steps := make([]int, 0, len(f.data))
	for t := range f.data { steps = append(steps, t) }
	sort.Ints(steps)
	return steps
}
