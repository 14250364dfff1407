/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package meshfunction_test

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/meshstore/errors"
	"github.com/suparena/meshstore/mesh"
	"github.com/suparena/meshstore/meshfunction"
)

func unitSquare(t *testing.T) *mesh.Mesh {
	t.Helper()
	m, err := mesh.UnitSquare(2, 2)
	require.NoError(t, err)
	return m
}

func TestNewZeroFills(t *testing.T) {
	m := unitSquare(t)

	f, err := meshfunction.New[int](m, 1)
	require.NoError(t, err)

	assert.Equal(t, 16, f.Size())
	assert.Equal(t, 1, f.Dim())
	assert.Equal(t, meshfunction.Int, f.ValueType())
	assert.Same(t, m, f.Mesh())
	assert.Equal(t, make([]int, 16), f.Values())
}

func TestNewWithValueFillsEveryEntity(t *testing.T) {
	m := unitSquare(t)

	f, err := meshfunction.NewWithValue(m, 2, 3.14)
	require.NoError(t, err)

	assert.Equal(t, 8, f.Size())
	for i := 0; i < f.Size(); i++ {
		v, err := f.Get(i)
		require.NoError(t, err)
		assert.Equal(t, 3.14, v)
	}
	assert.Equal(t, "MeshFunction<double>(unit-square-2x2, dim=2, size=8)", f.String())
}

func TestConstructorValidation(t *testing.T) {
	m := unitSquare(t)

	_, err := meshfunction.New[bool](nil, 0)
	assert.True(t, errors.IsValidationError(err))

	_, err = meshfunction.New[bool](m, 3)
	assert.True(t, errors.IsValidationError(err))

	_, err = meshfunction.NewWithValue[uint64](m, -1, 7)
	assert.True(t, errors.IsValidationError(err))
}

type failingMesh struct{ err error }

func (failingMesh) ID() string       { return "broken" }
func (failingMesh) TopologyDim() int { return 2 }
func (m failingMesh) NumEntities(int) (int, error) {
	return 0, m.err
}

func TestConstructorPropagatesMeshErrors(t *testing.T) {
	boom := fmt.Errorf("connectivity unavailable")

	_, err := meshfunction.New[int](failingMesh{err: boom}, 1)
	assert.Same(t, boom, err)
}

func TestGetSetBounds(t *testing.T) {
	f, err := meshfunction.New[uint64](unitSquare(t), 0)
	require.NoError(t, err)

	require.NoError(t, f.Set(8, 42))
	v, err := f.Get(8)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), v)

	assert.True(t, errors.IsOutOfRange(f.Set(9, 1)))
	_, err = f.Get(-1)
	assert.True(t, errors.IsOutOfRange(err))
}

func TestWhere(t *testing.T) {
	f, err := meshfunction.New[bool](unitSquare(t), 2)
	require.NoError(t, err)

	require.NoError(t, f.Set(1, true))
	require.NoError(t, f.Set(6, true))

	assert.Equal(t, []int{1, 6}, f.Where(func(b bool) bool { return b }))
}

func TestValuesReturnsCopy(t *testing.T) {
	f, err := meshfunction.NewWithValue(unitSquare(t), 2, 5)
	require.NoError(t, err)

	vals := f.Values()
	vals[0] = 0

	v, err := f.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestAnnotationInterface(t *testing.T) {
	f, err := meshfunction.New[float64](unitSquare(t), 2)
	require.NoError(t, err)

	var a meshfunction.Annotation = f

	require.NoError(t, a.SetValue(0, 2))
	v, err := a.Value(0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	require.NoError(t, a.SetText(1, "0.25"))
	s, err := a.Text(1)
	require.NoError(t, err)
	assert.Equal(t, "0.25", s)

	assert.True(t, errors.IsValidationError(a.SetText(2, "abc")))
	assert.True(t, errors.IsValidationError(a.SetValue(2, "1.0")))

	require.NoError(t, a.FillValue(float32(1.5)))
	assert.Equal(t, []float64{1.5, 1.5, 1.5, 1.5, 1.5, 1.5, 1.5, 1.5}, f.Values())
}

func TestCoerce(t *testing.T) {
	t.Run("bool", func(t *testing.T) {
		b, err := meshfunction.Coerce[bool](true)
		require.NoError(t, err)
		assert.True(t, b)

		_, err = meshfunction.Coerce[bool](1)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("size_t", func(t *testing.T) {
		u, err := meshfunction.Coerce[uint64](int32(12))
		require.NoError(t, err)
		assert.Equal(t, uint64(12), u)

		u, err = meshfunction.Coerce[uint64](3.0)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), u)

		for _, bad := range []any{-1, 2.5, math.Inf(1), nil, "3"} {
			_, err = meshfunction.Coerce[uint64](bad)
			assert.True(t, errors.IsValidationError(err), "value %v", bad)
		}
	})

	t.Run("int", func(t *testing.T) {
		i, err := meshfunction.Coerce[int](uint8(200))
		require.NoError(t, err)
		assert.Equal(t, 200, i)

		i, err = meshfunction.Coerce[int](-4.0)
		require.NoError(t, err)
		assert.Equal(t, -4, i)

		for _, bad := range []any{uint64(math.MaxUint64), 0.5, math.NaN(), false} {
			_, err = meshfunction.Coerce[int](bad)
			assert.True(t, errors.IsValidationError(err), "value %v", bad)
		}
	})

	t.Run("double", func(t *testing.T) {
		f, err := meshfunction.Coerce[float64](7)
		require.NoError(t, err)
		assert.Equal(t, 7.0, f)

		f, err = meshfunction.Coerce[float64](uint64(1) << 60)
		require.NoError(t, err)
		assert.Equal(t, math.Ldexp(1, 60), f)

		_, err = meshfunction.Coerce[float64](int64(math.MaxInt64))
		assert.True(t, errors.IsValidationError(err))

		_, err = meshfunction.Coerce[float64](true)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestParseValueType(t *testing.T) {
	for _, tag := range []string{"bool", "size_t", "int", "double"} {
		vt, err := meshfunction.ParseValueType(tag)
		require.NoError(t, err)
		assert.Equal(t, tag, vt.String())
	}

	_, err := meshfunction.ParseValueType("complex")
	assert.True(t, errors.IsUnrecognizedTypeTag(err))
	assert.Equal(t, "ValueType(0)", meshfunction.ValueType(0).String())
}

func TestConcurrentAccess(t *testing.T) {
	f, err := meshfunction.New[int](unitSquare(t), 1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < f.Size(); i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = f.Set(i, i*i)
			_, _ = f.Get(i)
		}(i)
	}
	wg.Wait()

	for i, v := range f.Values() {
		assert.Equal(t, i*i, v)
	}
}
