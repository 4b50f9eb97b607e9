package field

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Volume is a 3D array of shape (Nx, Ny, Nz) holding one timestep of a
// field. Elements are stored flat in column-major order, so element
// (i, j, k) lives at i + Nx*(j + Ny*k). This is the same order used on disk.
type Volume struct {
	nx, ny, nz int
	prec Precision

	f32 []float32
	f64 []float64
}

// NewVolume allocates a zeroed volume with the given shape and precision.
func NewVolume(nx, ny, nz int, prec Precision) *Volume {
	v := &Volume{ nx: nx, ny: ny, nz: nz, prec: prec }
	n := nx*ny*nz
	switch prec {
	case Single: v.f32 = make([]float32, n)
	case Double: v.f64 = make([]float64, n)
	default:
		panic(fmt.Sprintf("Internal error: unrecognized Precision %d.",
			int(prec)))
	}
	return v
}

// NewVolumeFloat64 wraps a column-major []float64 as a Double volume. The
// slice is not copied.
func NewVolumeFloat64(nx, ny, nz int, x []float64) (*Volume, error) {
	if len(x) != nx*ny*nz {
		return nil, fmt.Errorf("%w: %d elements cannot fill a (%d, %d, %d) " +
			"volume.", ErrShape, len(x), nx, ny, nz)
	}
	return &Volume{ nx: nx, ny: ny, nz: nz, prec: Double, f64: x }, nil
}

// NewVolumeFloat32 wraps a column-major []float32 as a Single volume. The
// slice is not copied.
func NewVolumeFloat32(nx, ny, nz int, x []float32) (*Volume, error) {
	if len(x) != nx*ny*nz {
		return nil, fmt.Errorf("%w: %d elements cannot fill a (%d, %d, %d) " +
			"volume.", ErrShape, len(x), nx, ny, nz)
	}
	return &Volume{ nx: nx, ny: ny, nz: nz, prec: Single, f32: x }, nil
}

func (v *Volume) Shape() (nx, ny, nz int) { return v.nx, v.ny, v.nz }
func (v *Volume) Len() int { return v.nx*v.ny*v.nz }
func (v *Volume) Precision() Precision { return v.prec }

// Float32s returns the flat storage of a Single volume and nil otherwise.
func (v *Volume) Float32s() []float32 { return v.f32 }
// Float64s returns the flat storage of a Double volume and nil otherwise.
func (v *Volume) Float64s() []float64 { return v.f64 }

func (v *Volume) index(i, j, k int) int {
	if i < 0 || i >= v.nx || j < 0 || j >= v.ny || k < 0 || k >= v.nz {
		panic(fmt.Sprintf("Index (%d, %d, %d) is out of range for a volume " +
			"with shape (%d, %d, %d).", i, j, k, v.nx, v.ny, v.nz))
	}
	return i + v.nx*(j + v.ny*k)
}

// At returns element (i, j, k).
func (v *Volume) At(i, j, k int) float64 {
	idx := v.index(i, j, k)
	if v.prec == Single { return float64(v.f32[idx]) }
	return v.f64[idx]
}

// Set assigns element (i, j, k). Single volumes round x to float32.
func (v *Volume) Set(i, j, k int, x float64) {
	idx := v.index(i, j, k)
	if v.prec == Single {
		v.f32[idx] = float32(x)
	} else {
		v.f64[idx] = x
	}
}

// Values returns a float64 copy of the flat storage.
func (v *Volume) Values() []float64 {
	out := make([]float64, v.Len())
	if v.prec == Single {
		for i := range v.f32 { out[i] = float64(v.f32[i]) }
	} else {
		copy(out, v.f64)
	}
	return out
}

// Convert returns a copy of the volume stored with the given precision.
func (v *Volume) Convert(prec Precision) *Volume {
	out := NewVolume(v.nx, v.ny, v.nz, prec)
	switch {
	case v.prec == Single && prec == Single: copy(out.f32, v.f32)
	case v.prec == Double && prec == Double: copy(out.f64, v.f64)
	case prec == Single:
		for i := range v.f64 { out.f32[i] = float32(v.f64[i]) }
	default:
		for i := range v.f32 { out.f64[i] = float64(v.f32[i]) }
	}
	return out
}

// Equal returns true if the two volumes have the same shape, precision, and
// bit-for-bit identical elements.
func (v *Volume) Equal(w *Volume) bool {
	if v.nx != w.nx || v.ny != w.ny || v.nz != w.nz || v.prec != w.prec {
		return false
	}
	if v.prec == Single {
		for i := range v.f32 {
			if math.Float32bits(v.f32[i]) != math.Float32bits(w.f32[i]) {
				return false
			}
		}
		return true
	}
	for i := range v.f64 {
		if math.Float64bits(v.f64[i]) != math.Float64bits(w.f64[i]) {
			return false
		}
	}
	return true
}

// Plane returns the 2D cut through the volume where the index along axis
// equals index. Fixing axis 0 gives an (Ny, Nz) matrix, axis 1 an (Nx, Nz)
// matrix, and axis 2 an (Nx, Ny) matrix.
func (v *Volume) Plane(axis, index int) (*mat.Dense, error) {
	dims := [3]int{ v.nx, v.ny, v.nz }
	if axis < 0 || axis > 2 {
		return nil, fmt.Errorf("The axis %d doesn't exist. Only 0, 1, and 2 " +
			"are valid.", axis)
	} else if index < 0 || index >= dims[axis] {
		return nil, fmt.Errorf("The index %d is out of range for axis %d, " +
			"which has %d points.", index, axis, dims[axis])
	}

	var rows, cols int
	switch axis {
	case 0: rows, cols = v.ny, v.nz
	case 1: rows, cols = v.nx, v.nz
	case 2: rows, cols = v.nx, v.ny
	}

	m := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			switch axis {
			case 0: m.Set(r, c, v.At(index, r, c))
			case 1: m.Set(r, c, v.At(r, index, c))
			case 2: m.Set(r, c, v.At(r, c, index))
			}
		}
	}
	return m, nil
}

// decode fills the volume's storage from rd.
func (v *Volume) decode(rd io.Reader, order binary.ByteOrder) error {
	if v.prec == Single { return binary.Read(rd, order, v.f32) }
	return binary.Read(rd, order, v.f64)
}

// encode writes the volume's storage to wr. The volume itself is only read
// from.
func (v *Volume) encode(wr io.Writer, order binary.ByteOrder) error {
	if v.prec == Single { return binary.Write(wr, order, v.f32) }
	return binary.Write(wr, order, v.f64)
}
