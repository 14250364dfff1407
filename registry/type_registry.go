/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"sort"

	"github.com/suparena/meshstore/errors"
	"github.com/suparena/meshstore/meshfunction"
)

// NewFunc builds a default-filled mesh function over the entities of dim.
type NewFunc func(m meshfunction.Mesh, dim int) (meshfunction.Annotation, error)

// NewWithValueFunc builds a mesh function filled with value.
type NewWithValueFunc func(m meshfunction.Mesh, dim int, value any) (meshfunction.Annotation, error)

// Constructor pairs the two construction forms registered for a type tag.
type Constructor struct {
	ValueType    meshfunction.ValueType
	New          NewFunc
	NewWithValue NewWithValueFunc
}

// typeRegistry holds the mapping from a type tag ("bool", "size_t", ...) to
// its constructors. It is populated once below and never modified.
var typeRegistry = map[string]Constructor{
	meshfunction.Bool.String():   constructorFor[bool](),
	meshfunction.SizeT.String():  constructorFor[uint64](),
	meshfunction.Int.String():    constructorFor[int](),
	meshfunction.Double.String(): constructorFor[float64](),
}

func constructorFor[T meshfunction.Scalar]() Constructor {
	return Constructor{
		ValueType: meshfunction.ValueTypeOf[T](),
		New: func(m meshfunction.Mesh, dim int) (meshfunction.Annotation, error) {
			f, err := meshfunction.New[T](m, dim)
			if err != nil {
				return nil, err
			}
			return f, nil
		},
		NewWithValue: func(m meshfunction.Mesh, dim int, value any) (meshfunction.Annotation, error) {
			v, err := meshfunction.Coerce[T](value)
			if err != nil {
				return nil, err
			}
			f, err := meshfunction.NewWithValue[T](m, dim, v)
			if err != nil {
				return nil, err
			}
			return f, nil
		},
	}
}

// Lookup returns the constructors registered for the given type tag.
// If no constructor is registered, it returns an UnrecognizedTypeTagError.
func Lookup(tag string) (Constructor, error) {
	c, ok := typeRegistry[tag]
	if !ok {
		return Constructor{}, errors.NewUnrecognizedTypeTagError(tag)
	}
	return c, nil
}

// Tags returns the registered type tags in sorted order.
func Tags() []string {
	tags := make([]string, 0, len(typeRegistry))
	for tag := range typeRegistry {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
