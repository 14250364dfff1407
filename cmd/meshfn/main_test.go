/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"

	"github.com/suparena/meshstore/config"
	"github.com/suparena/meshstore/datastore"
	"github.com/suparena/meshstore/datastore/mock"
	"github.com/suparena/meshstore/errors"
	"github.com/suparena/meshstore/meshio"
	"github.com/suparena/meshstore/storagemodels"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runWith(t, nil, args...)
}

// runWith runs the CLI with push writing to store, or to DynamoDB when
// store is nil.
func runWith(t *testing.T, store datastore.FunctionStore, args ...string) (string, error) {
	t.Helper()
	t.Setenv("MESHSTORE_LOG_LEVEL", "error")

	var opts []func(*app)
	if store != nil {
		opts = append(opts, func(a *app) {
			a.openStore = func(context.Context, config.Config, *zap.Logger) (datastore.FunctionStore, error) {
				return store, nil
			}
		})
	}
	cmd := newRootCmd(opts...)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestTagsCommand(t *testing.T) {
	out, err := run(t, "tags")
	require.NoError(t, err)
	assert.Equal(t, "bool\ndouble\nint\nsize_t\n", out)
}

func TestCreateCommand(t *testing.T) {
	out, err := run(t, "create", "--type", "double", "--mesh", "square", "-n", "2", "--dim", "2", "--value", "3.14")
	require.NoError(t, err)
	assert.Equal(t, "MeshFunction<double>(unit-square-2x2, dim=2, size=8)\n", out)
}

func TestCreateCommandWritesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facets.yaml")

	_, err := run(t, "create", "-t", "size_t", "--mesh", "cube", "-n", "1", "-d", "2", "--value", "4", "--name", "facets", "-o", path)
	require.NoError(t, err)

	recs, err := meshio.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "facets", recs[0].Name)
	assert.Equal(t, "unit-cube-1x1x1", recs[0].MeshID)
	assert.Equal(t, 18, recs[0].Size)
	assert.Equal(t, "4", recs[0].Values[0])
}

func TestCreateCommandErrors(t *testing.T) {
	_, err := run(t, "create", "--type", "complex")
	assert.True(t, errors.IsUnrecognizedTypeTag(err))

	_, err = run(t, "create", "--type", "int", "--value", "1.5")
	assert.True(t, errors.IsValidationError(err))

	_, err = run(t, "create", "--mesh", "torus")
	assert.True(t, errors.IsValidationError(err))

	_, err = run(t, "create", "--mesh", "interval", "--dim", "2")
	assert.True(t, errors.IsValidationError(err))
}

func TestPushRequiresConfig(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DDB_TABLE", "")

	_, err := run(t, "push", "--file", "missing.yaml")
	assert.True(t, errors.IsValidationError(err))
}

func TestPushCommand(t *testing.T) {
	t.Setenv("AWS_DDB_TABLE", "meshstore-test")
	dir := t.TempDir()
	store := mock.New[storagemodels.FunctionRecord]()

	for _, name := range []string{"markers", "density"} {
		path := filepath.Join(dir, name+".yaml")
		_, err := run(t, "create", "-t", "int", "--mesh", "square", "-n", "1", "-d", "1", "--value", "2", "--name", name, "-o", path)
		require.NoError(t, err)

		out, err := runWith(t, store, "push", "--file", path)
		require.NoError(t, err)
		assert.Equal(t, "pushed 1 mesh functions to meshstore-test\n", out)
	}
	assert.Equal(t, 2, store.Count())

	got, err := store.GetOne(context.Background(), "unit-square-1x1/markers")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Size)

	path := filepath.Join(dir, "markers.yaml")
	_, err = runWith(t, store, "push", "--file", path)
	assert.True(t, errors.IsConditionFailed(err), "got %v", err)

	_, err = runWith(t, store, "push", "--file", path, "--overwrite")
	require.NoError(t, err)
	assert.Equal(t, 2, store.Count())
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "meshstore "))
}

func TestParseValue(t *testing.T) {
	v, err := parseValue("bool", "true")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = parseValue("size_t", "12")
	require.NoError(t, err)
	assert.Equal(t, uint64(12), v)

	_, err = parseValue("size_t", "-1")
	assert.True(t, errors.IsValidationError(err))

	_, err = parseValue("float", "1")
	assert.True(t, errors.IsUnrecognizedTypeTag(err))
}
