/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mesh

import (
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/meshstore/errors"
)

// MaxTopologyDim is the highest supported cell dimension (tetrahedra).
const MaxTopologyDim = 3

// entityKey holds up to four sorted vertex indices, padded with -1.
type entityKey [MaxTopologyDim + 1]int

// Mesh is a simplicial mesh of topological dimension 0 to 3.
type Mesh struct {
	id     string
	tdim   int
	coords [][]float64
	cells  [][]int

	mu       sync.Mutex
	entities map[int][][]int
}

// New validates the connectivity and builds a mesh. Every cell must list
// tdim+1 distinct vertex indices into coords.
func New(id string, tdim int, coords [][]float64, cells [][]int) (*Mesh, error) {
	if id == "" {
		return nil, errors.NewValidationError("id", "mesh id is required")
	}
	if tdim < 0 || tdim > MaxTopologyDim {
		return nil, errors.NewValidationError("tdim", fmt.Sprintf("must be in [0, %d], got %d", MaxTopologyDim, tdim))
	}

	m := &Mesh{
		id:       id,
		tdim:     tdim,
		coords:   make([][]float64, len(coords)),
		cells:    make([][]int, len(cells)),
		entities: make(map[int][][]int),
	}
	for i, c := range coords {
		m.coords[i] = append([]float64(nil), c...)
	}

	for ci, cell := range cells {
		if len(cell) != tdim+1 {
			return nil, errors.NewValidationError("cells", fmt.Sprintf("cell %d has %d vertices, want %d", ci, len(cell), tdim+1))
		}
		sorted := append([]int(nil), cell...)
		sort.Ints(sorted)
		for k, v := range sorted {
			if v < 0 || v >= len(coords) {
				return nil, errors.NewValidationError("cells", fmt.Sprintf("cell %d references unknown vertex %d", ci, v))
			}
			if k > 0 && sorted[k-1] == v {
				return nil, errors.NewValidationError("cells", fmt.Sprintf("cell %d repeats vertex %d", ci, v))
			}
		}
		m.cells[ci] = sorted
	}

	return m, nil
}

// ID returns the mesh identifier.
func (m *Mesh) ID() string { return m.id }

// TopologyDim returns the dimension of the cells.
func (m *Mesh) TopologyDim() int { return m.tdim }

// NumVertices returns the number of vertices.
func (m *Mesh) NumVertices() int { return len(m.coords) }

// NumCells returns the number of cells.
func (m *Mesh) NumCells() int { return len(m.cells) }

// Coordinates returns a copy of the coordinates of vertex v.
func (m *Mesh) Coordinates(v int) ([]float64, error) {
	if v < 0 || v >= len(m.coords) {
		return nil, errors.NewOutOfRangeError(v, len(m.coords))
	}
	return append([]float64(nil), m.coords[v]...), nil
}

// NumEntities returns the number of entities of dimension dim, computing
// them on first use.
func (m *Mesh) NumEntities(dim int) (int, error) {
	ents, err := m.entitiesOf(dim)
	if err != nil {
		return 0, err
	}
	return len(ents), nil
}

// Entities returns the sorted vertex tuple of each entity of dimension dim.
// Vertices are numbered as given, cells keep their input order and the
// entities in between are ordered lexicographically.
func (m *Mesh) Entities(dim int) ([][]int, error) {
	ents, err := m.entitiesOf(dim)
	if err != nil {
		return nil, err
	}
	out := make([][]int, len(ents))
	for i, e := range ents {
		out[i] = append([]int(nil), e...)
	}
	return out, nil
}

func (m *Mesh) entitiesOf(dim int) ([][]int, error) {
	if dim < 0 || dim > m.tdim {
		return nil, errors.NewValidationError("dim", fmt.Sprintf("must be in [0, %d], got %d", m.tdim, dim))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if ents, ok := m.entities[dim]; ok {
		return ents, nil
	}

	var ents [][]int
	switch dim {
	case 0:
		ents = make([][]int, len(m.coords))
		for v := range m.coords {
			ents[v] = []int{v}
		}
	case m.tdim:
		ents = m.cells
	default:
		ents = m.computeEntities(dim)
	}
	m.entities[dim] = ents
	return ents, nil
}

// computeEntities collects the distinct (dim+1)-vertex subsets of all cells.
func (m *Mesh) computeEntities(dim int) [][]int {
	seen := make(map[entityKey]struct{})
	var ents [][]int

	for _, cell := range m.cells {
		forEachSubset(cell, dim+1, func(subset []int) {
			key := keyOf(subset)
			if _, ok := seen[key]; ok {
				return
			}
			seen[key] = struct{}{}
			ents = append(ents, append([]int(nil), subset...))
		})
	}

	sort.Slice(ents, func(i, j int) bool {
		a, b := ents[i], ents[j]
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
	return ents
}

// forEachSubset calls fn with every size-k subset of the sorted slice s,
// preserving order. fn must not retain the slice.
func forEachSubset(s []int, k int, fn func([]int)) {
	buf := make([]int, k)
	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == k {
			fn(buf)
			return
		}
		for i := start; i <= len(s)-(k-depth); i++ {
			buf[depth] = s[i]
			walk(i+1, depth+1)
		}
	}
	walk(0, 0)
}

func keyOf(vertices []int) entityKey {
	key := entityKey{-1, -1, -1, -1}
	copy(key[:], vertices)
	return key
}
