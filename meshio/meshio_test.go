/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package meshio_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/meshstore"
	"github.com/suparena/meshstore/errors"
	"github.com/suparena/meshstore/mesh"
	"github.com/suparena/meshstore/meshio"
	"github.com/suparena/meshstore/storagemodels"
)

func records(t *testing.T) (*mesh.Mesh, []storagemodels.FunctionRecord) {
	t.Helper()
	m, err := mesh.UnitSquare(1, 1)
	require.NoError(t, err)

	flags, err := meshstore.CreateWithValue("bool", m, 2, true)
	require.NoError(t, err)
	density, err := meshstore.CreateWithValue("double", m, 0, 0.125)
	require.NoError(t, err)

	r1, err := meshstore.Snapshot("flags", flags)
	require.NoError(t, err)
	r2, err := meshstore.Snapshot("density", density)
	require.NoError(t, err)
	return m, []storagemodels.FunctionRecord{r1, r2}
}

func TestWriteRead(t *testing.T) {
	m, recs := records(t)

	var buf bytes.Buffer
	require.NoError(t, meshio.Write(&buf, recs...))
	assert.Contains(t, buf.String(), "version: 1")
	assert.Contains(t, buf.String(), "valueType: double")

	got, err := meshio.Read(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	for i := range recs {
		assert.Equal(t, recs[i].Name, got[i].Name)
		assert.Equal(t, recs[i].Values, got[i].Values)
		assert.Equal(t, recs[i].ValueType, got[i].ValueType)
	}

	a, err := meshstore.Restore(got[1], m)
	require.NoError(t, err)
	v, err := a.Value(3)
	require.NoError(t, err)
	assert.Equal(t, 0.125, v)
}

func TestReadFile(t *testing.T) {
	_, recs := records(t)
	path := filepath.Join(t.TempDir(), "functions.yaml")

	require.NoError(t, meshio.WriteFile(path, recs...))
	got, err := meshio.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = meshio.ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestReadValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"wrong version", "version: 2\nfunctions: []\n"},
		{"missing name", "version: 1\nfunctions:\n  - meshId: m\n    size: 0\n"},
		{"missing mesh", "version: 1\nfunctions:\n  - name: f\n    size: 0\n"},
		{"size mismatch", "version: 1\nfunctions:\n  - name: f\n    meshId: m\n    size: 2\n    values: [\"1\"]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := meshio.Read(strings.NewReader(tt.doc))
			assert.True(t, errors.IsValidationError(err), "got %v", err)
		})
	}
}

func TestReadDefaultsEntityType(t *testing.T) {
	doc := "version: 1\nfunctions:\n  - name: f\n    meshId: m\n    dim: 0\n    valueType: int\n    size: 1\n    values: [\"4\"]\n"

	got, err := meshio.Read(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, storagemodels.FunctionEntityType, got[0].EntityType)
}
