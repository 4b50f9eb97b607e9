/*package mesh describes the structured meshes that field snapshots are
stored on. Only the resolution matters to the I/O layer.
*/
package mesh

import (
	"fmt"
)

// Mesh is anything that can report its resolution along each axis.
type Mesh interface {
	Dims() (nx, ny, nz int)
}

// Grid is a structured mesh with Nx, Ny, and Nz points along the x-, y-,
// and z- axes.
type Grid struct {
	Nx, Ny, Nz int
}

var _ Mesh = Grid{ }

func (g Grid) Dims() (nx, ny, nz int) { return g.Nx, g.Ny, g.Nz }

// N returns the total number of points in the grid.
func (g Grid) N() int { return g.Nx*g.Ny*g.Nz }

// Validate returns an error if any of the grid's dimensions are
// non-positive.
func (g Grid) Validate() error {
	if g.Nx <= 0 || g.Ny <= 0 || g.Nz <= 0 {
		return fmt.Errorf("The mesh resolution must be positive along " +
			"every axis, but (Nx, Ny, Nz) = (%d, %d, %d).", g.Nx, g.Ny, g.Nz)
	}
	return nil
}

// Of converts any Mesh into a Grid.
func Of(m Mesh) Grid {
	nx, ny, nz := m.Dims()
	return Grid{ nx, ny, nz }
}
