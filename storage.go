/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package meshstore

import (
	"context"
	"fmt"

	"github.com/suparena/meshstore/datastore"
	"github.com/suparena/meshstore/errors"
	"github.com/suparena/meshstore/storagemodels"
)

// Save snapshots a under name and writes it to store.
func Save(ctx context.Context, store datastore.FunctionStore, name string, a Annotation) (storagemodels.FunctionRecord, error) {
	if store == nil {
		return storagemodels.FunctionRecord{}, errors.NewValidationError("store", "store is nil")
	}
	rec, err := Snapshot(name, a)
	if err != nil {
		return storagemodels.FunctionRecord{}, err
	}
	if err := store.Put(ctx, rec); err != nil {
		return storagemodels.FunctionRecord{}, fmt.Errorf("save %s: %w", rec.Key(), err)
	}
	return rec, nil
}

// Load reads the snapshot called name for m from store and restores it.
func Load(ctx context.Context, store datastore.FunctionStore, m Mesh, name string) (Annotation, error) {
	if store == nil {
		return nil, errors.NewValidationError("store", "store is nil")
	}
	if m == nil {
		return nil, errors.NewValidationError("mesh", "mesh is nil")
	}
	key := storagemodels.FunctionRecord{MeshID: m.ID(), Name: name}.Key()
	rec, err := store.GetOne(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	return Restore(*rec, m)
}
