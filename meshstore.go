/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package meshstore

import (
	"github.com/suparena/meshstore/meshfunction"
	"github.com/suparena/meshstore/registry"
)

// Mesh is the mesh handle accepted by the factory.
type Mesh = meshfunction.Mesh

// Annotation is the handle returned by the factory.
type Annotation = meshfunction.Annotation

// Create builds a default-filled mesh function of the given value type over
// the entities of dimension dim. An unknown valueType fails with an
// UnrecognizedTypeTagError before m is touched; every other error comes
// from the constructor unchanged.
func Create(valueType string, m Mesh, dim int) (Annotation, error) {
	c, err := registry.Lookup(valueType)
	if err != nil {
		return nil, err
	}
	return c.New(m, dim)
}

// CreateWithValue is Create with every entity initialised to value, which
// must be assignable to valueType. A nil value means no initial value and
// gives the same default fill as Create.
func CreateWithValue(valueType string, m Mesh, dim int, value any) (Annotation, error) {
	c, err := registry.Lookup(valueType)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return c.New(m, dim)
	}
	return c.NewWithValue(m, dim, value)
}

// MustCreate is like Create but panics on error.
func MustCreate(valueType string, m Mesh, dim int) Annotation {
	a, err := Create(valueType, m, dim)
	if err != nil {
		panic(err)
	}
	return a
}
