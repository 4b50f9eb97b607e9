package field

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTime is returned for time selectors that aren't
	// AllTimesSentinel, a non-negative int, or a list of them.
	ErrInvalidTime = errors.New("invalid time selector")
	// ErrNotFound is returned when no padding variant of a timestep's file
	// name can be read.
	ErrNotFound = errors.New("timestep file not found")
	// ErrNotLoaded is returned when writing a timestep that isn't cached.
	ErrNotLoaded = errors.New("timestep not loaded")
	// ErrShape is returned when a file or array doesn't contain exactly
	// Nx*Ny*Nz elements.
	ErrShape = errors.New("element count does not match mesh")
)

// SizeError reports a file whose size doesn't correspond to the mesh.
type SizeError struct {
	FileName string
	Size, Expected int64
	Nx, Ny, Nz int
	Precision Precision
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("The file %s has %d bytes, but a (%d, %d, %d) mesh " +
		"of %s precision elements requires exactly %d bytes.", e.FileName,
		e.Size, e.Nx, e.Ny, e.Nz, e.Precision, e.Expected)
}

func (e *SizeError) Unwrap() error { return ErrShape }

// NotFoundError reports that every padding variant of a timestep's file
// name failed. Last is the failure of the final candidate.
type NotFoundError struct {
	Field, FileRoot string
	Time int
	Candidates []string
	Last error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No file for timestep %d of the field '%s' could be " +
		"read. The candidates %s were tried, and the last one failed with: " +
		"%v", e.Time, e.Field, e.Candidates, e.Last)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
func (e *NotFoundError) Unwrap() error { return e.Last }
