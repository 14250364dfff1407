/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package meshfunction

import (
	"fmt"
	"sync"

	"github.com/suparena/meshstore/errors"
)

// Mesh is what a mesh function needs from the mesh it annotates.
// *mesh.Mesh satisfies it.
type Mesh interface {
	ID() string
	TopologyDim() int
	NumEntities(dim int) (int, error)
}

// Annotation is the capability shared by every MeshFunction instantiation.
// Callers that only know the value type at runtime work through it.
type Annotation interface {
	ValueType() ValueType
	Mesh() Mesh
	Dim() int
	Size() int
	// Value returns entry i as bool, uint64, int or float64.
	Value(i int) (any, error)
	// SetValue coerces v to the value type and stores it at entry i.
	SetValue(i int, v any) error
	// FillValue coerces v and assigns it to every entry.
	FillValue(v any) error
	// Text returns entry i in its snapshot text form.
	Text(i int) (string, error)
	// SetText parses s and stores it at entry i.
	SetText(i int, s string) error
}

// MeshFunction stores one T per entity of dimension Dim of a mesh.
type MeshFunction[T Scalar] struct {
	mesh Mesh
	dim  int

	mu     sync.RWMutex
	values []T
}

var _ Annotation = (*MeshFunction[float64])(nil)

// New creates a mesh function over the entities of dimension dim with every
// value set to the zero value of T.
func New[T Scalar](m Mesh, dim int) (*MeshFunction[T], error) {
	if m == nil {
		return nil, errors.NewValidationError("mesh", "mesh is nil")
	}
	if tdim := m.TopologyDim(); dim < 0 || dim > tdim {
		return nil, errors.NewValidationError("dim", fmt.Sprintf("must be in [0, %d], got %d", tdim, dim))
	}

	n, err := m.NumEntities(dim)
	if err != nil {
		return nil, err
	}

	return &MeshFunction[T]{
		mesh:   m,
		dim:    dim,
		values: make([]T, n),
	}, nil
}

// NewWithValue creates a mesh function with every value set to v.
func NewWithValue[T Scalar](m Mesh, dim int, v T) (*MeshFunction[T], error) {
	f, err := New[T](m, dim)
	if err != nil {
		return nil, err
	}
	f.Fill(v)
	return f, nil
}

// ValueType reports the scalar type stored.
func (f *MeshFunction[T]) ValueType() ValueType { return ValueTypeOf[T]() }

// Mesh returns the annotated mesh.
func (f *MeshFunction[T]) Mesh() Mesh { return f.mesh }

// Dim returns the topological dimension of the annotated entities.
func (f *MeshFunction[T]) Dim() int { return f.dim }

// Size returns the number of entries.
func (f *MeshFunction[T]) Size() int { return len(f.values) }

// Get returns the value of entity i.
func (f *MeshFunction[T]) Get(i int) (T, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if i < 0 || i >= len(f.values) {
		var zero T
		return zero, errors.NewOutOfRangeError(i, len(f.values))
	}
	return f.values[i], nil
}

// Set assigns v to entity i.
func (f *MeshFunction[T]) Set(i int, v T) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if i < 0 || i >= len(f.values) {
		return errors.NewOutOfRangeError(i, len(f.values))
	}
	f.values[i] = v
	return nil
}

// Fill assigns v to every entity.
func (f *MeshFunction[T]) Fill(v T) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.values {
		f.values[i] = v
	}
}

// Values returns a copy of all entries, indexed by entity.
func (f *MeshFunction[T]) Values() []T {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]T(nil), f.values...)
}

// Where returns the indices of the entities whose value satisfies pred.
func (f *MeshFunction[T]) Where(pred func(T) bool) []int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var idx []int
	for i, v := range f.values {
		if pred(v) {
			idx = append(idx, i)
		}
	}
	return idx
}

func (f *MeshFunction[T]) Value(i int) (any, error) {
	v, err := f.Get(i)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (f *MeshFunction[T]) SetValue(i int, v any) error {
	t, err := Coerce[T](v)
	if err != nil {
		return err
	}
	return f.Set(i, t)
}

func (f *MeshFunction[T]) FillValue(v any) error {
	t, err := Coerce[T](v)
	if err != nil {
		return err
	}
	f.Fill(t)
	return nil
}

func (f *MeshFunction[T]) Text(i int) (string, error) {
	v, err := f.Get(i)
	if err != nil {
		return "", err
	}
	return formatScalar(v), nil
}

func (f *MeshFunction[T]) SetText(i int, s string) error {
	v, err := parseScalar[T](s)
	if err != nil {
		return err
	}
	return f.Set(i, v)
}

// String summarises the function, e.g. "MeshFunction<double>(unit-square-2x2, dim=2, size=8)".
func (f *MeshFunction[T]) String() string {
	return fmt.Sprintf("MeshFunction<%s>(%s, dim=%d, size=%d)", f.ValueType(), f.mesh.ID(), f.dim, len(f.values))
}
