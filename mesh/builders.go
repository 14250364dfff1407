/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mesh

import (
	"fmt"

	"github.com/suparena/meshstore/errors"
)

// UnitInterval divides [0, 1] into n segments.
func UnitInterval(n int) (*Mesh, error) {
	if err := checkDivisions(n); err != nil {
		return nil, err
	}

	coords := make([][]float64, n+1)
	for i := range coords {
		coords[i] = []float64{float64(i) / float64(n)}
	}
	cells := make([][]int, n)
	for i := range cells {
		cells[i] = []int{i, i + 1}
	}
	return New(fmt.Sprintf("unit-interval-%d", n), 1, coords, cells)
}

// UnitSquare divides [0, 1]^2 into nx by ny squares, each split into two
// triangles along the diagonal from its lower-left to upper-right corner.
func UnitSquare(nx, ny int) (*Mesh, error) {
	if err := checkDivisions(nx, ny); err != nil {
		return nil, err
	}

	vertex := func(i, j int) int { return j*(nx+1) + i }

	coords := make([][]float64, 0, (nx+1)*(ny+1))
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			coords = append(coords, []float64{float64(i) / float64(nx), float64(j) / float64(ny)})
		}
	}

	cells := make([][]int, 0, 2*nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			v00, v10 := vertex(i, j), vertex(i+1, j)
			v01, v11 := vertex(i, j+1), vertex(i+1, j+1)
			cells = append(cells, []int{v00, v10, v11}, []int{v00, v01, v11})
		}
	}
	return New(fmt.Sprintf("unit-square-%dx%d", nx, ny), 2, coords, cells)
}

// kuhnPaths lists the axis orders of the six tetrahedra in a Kuhn
// subdivision. Each tetrahedron walks from corner (0,0,0) to (1,1,1) one
// axis at a time, which keeps neighbouring cubes conforming.
var kuhnPaths = [6][3]int{
	{0, 1, 2}, {0, 2, 1},
	{1, 0, 2}, {1, 2, 0},
	{2, 0, 1}, {2, 1, 0},
}

// UnitCube divides [0, 1]^3 into nx by ny by nz cubes of six tetrahedra.
func UnitCube(nx, ny, nz int) (*Mesh, error) {
	if err := checkDivisions(nx, ny, nz); err != nil {
		return nil, err
	}

	vertex := func(i, j, k int) int { return (k*(ny+1)+j)*(nx+1) + i }

	coords := make([][]float64, 0, (nx+1)*(ny+1)*(nz+1))
	for k := 0; k <= nz; k++ {
		for j := 0; j <= ny; j++ {
			for i := 0; i <= nx; i++ {
				coords = append(coords, []float64{
					float64(i) / float64(nx),
					float64(j) / float64(ny),
					float64(k) / float64(nz),
				})
			}
		}
	}

	cells := make([][]int, 0, 6*nx*ny*nz)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				for _, path := range kuhnPaths {
					corner := [3]int{i, j, k}
					tet := []int{vertex(corner[0], corner[1], corner[2])}
					for _, axis := range path {
						corner[axis]++
						tet = append(tet, vertex(corner[0], corner[1], corner[2]))
					}
					cells = append(cells, tet)
				}
			}
		}
	}
	return New(fmt.Sprintf("unit-cube-%dx%dx%d", nx, ny, nz), 3, coords, cells)
}

func checkDivisions(n ...int) error {
	for _, d := range n {
		if d <= 0 {
			return errors.NewValidationError("divisions", fmt.Sprintf("must be positive, got %d", d))
		}
	}
	return nil
}
