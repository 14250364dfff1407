/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package meshstore_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/meshstore"
	"github.com/suparena/meshstore/datastore/mock"
	"github.com/suparena/meshstore/errors"
	"github.com/suparena/meshstore/mesh"
	"github.com/suparena/meshstore/storagemodels"
)

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	store := mock.New[storagemodels.FunctionRecord]()
	m, err := mesh.UnitSquare(2, 2)
	require.NoError(t, err)

	a, err := meshstore.CreateWithValue("double", m, 2, 3.14)
	require.NoError(t, err)
	require.NoError(t, a.SetValue(3, 1.5))

	rec, err := meshstore.Save(ctx, store, "density", a)
	require.NoError(t, err)
	assert.Equal(t, "unit-square-2x2/density", rec.Key())
	assert.Equal(t, 1, store.Count())

	back, err := meshstore.Load(ctx, store, m, "density")
	require.NoError(t, err)
	assert.Equal(t, "double", back.ValueType().String())
	require.Equal(t, a.Size(), back.Size())
	for i := 0; i < a.Size(); i++ {
		want, _ := a.Value(i)
		got, err := back.Value(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestLoadMissing(t *testing.T) {
	store := mock.New[storagemodels.FunctionRecord]()
	m, err := mesh.UnitInterval(2)
	require.NoError(t, err)

	_, err = meshstore.Load(context.Background(), store, m, "absent")
	assert.True(t, errors.IsNotFound(err), "got %v", err)
}

func TestSaveReportsStoreErrors(t *testing.T) {
	putErr := stderrors.New("throttled")
	store := mock.New[storagemodels.FunctionRecord]().WithPutError(putErr)
	m, err := mesh.UnitInterval(2)
	require.NoError(t, err)

	_, err = meshstore.Save(context.Background(), store, "flags", meshstore.MustCreate("bool", m, 0))
	assert.ErrorIs(t, err, putErr)
	assert.Zero(t, store.Count())
}

func TestSaveLoadNilArguments(t *testing.T) {
	ctx := context.Background()
	m, err := mesh.UnitInterval(1)
	require.NoError(t, err)

	_, err = meshstore.Save(ctx, nil, "x", meshstore.MustCreate("int", m, 0))
	assert.True(t, errors.IsValidationError(err))

	_, err = meshstore.Load(ctx, mock.New[storagemodels.FunctionRecord](), nil, "x")
	assert.True(t, errors.IsValidationError(err))
}
