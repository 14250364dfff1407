/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/meshstore/storagemodels"
)

// DataStore persists entities of type T under string keys.
type DataStore[T any] interface {
	GetOne(ctx context.Context, key string) (*T, error)

	Put(ctx context.Context, entity T) error

	// PutIfAbsent stores entity unless its key is taken, in which case it
	// returns a ConditionFailedError.
	PutIfAbsent(ctx context.Context, entity T) error

	Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error)

	Delete(ctx context.Context, key string) error
}

// FunctionStore is a DataStore of mesh function snapshots keyed by
// "<mesh id>/<name>".
type FunctionStore = DataStore[storagemodels.FunctionRecord]
