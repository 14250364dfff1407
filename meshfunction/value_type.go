/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package meshfunction

import (
	"fmt"

	"github.com/suparena/meshstore/errors"
)

// ValueType enumerates the scalar types a mesh function can hold.
type ValueType int

const (
	Bool ValueType = iota + 1
	SizeT
	Int
	Double
)

var valueTypeNames = map[ValueType]string{
	Bool:   "bool",
	SizeT:  "size_t",
	Int:    "int",
	Double: "double",
}

// String returns the type tag, e.g. "size_t".
func (v ValueType) String() string {
	if name, ok := valueTypeNames[v]; ok {
		return name
	}
	return fmt.Sprintf("ValueType(%d)", int(v))
}

// ParseValueType maps a type tag back to its ValueType.
func ParseValueType(tag string) (ValueType, error) {
	for v, name := range valueTypeNames {
		if name == tag {
			return v, nil
		}
	}
	return 0, errors.NewUnrecognizedTypeTagError(tag)
}

// Scalar is the set of Go types backing the four value types.
type Scalar interface {
	bool | uint64 | int | float64
}

// ValueTypeOf reports the ValueType for T.
func ValueTypeOf[T Scalar]() ValueType {
	var zero T
	switch any(zero).(type) {
	case bool:
		return Bool
	case uint64:
		return SizeT
	case int:
		return Int
	default:
		return Double
	}
}
