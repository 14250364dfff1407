/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"

	"github.com/suparena/meshstore/datastore"
	"github.com/suparena/meshstore/registry"
	"github.com/suparena/meshstore/storagemodels"
)

// FunctionIndexMap lays mesh function records out one partition per mesh.
var FunctionIndexMap = registry.IndexMap{
	"PK": "MESH#{MeshID}",
	"SK": "FN#{Name}",
}

func init() {
	registry.RegisterIndexMap[storagemodels.FunctionRecord](FunctionIndexMap)
}

// FunctionStore stores mesh function snapshots.
type FunctionStore = DynamodbDataStore[storagemodels.FunctionRecord]

var _ datastore.FunctionStore = (*FunctionStore)(nil)

// NewFunctionStore connects a FunctionStore to tableName.
func NewFunctionStore(ctx context.Context, awsAccessKey, awsSecretKey, awsRegion, tableName string, opts ...Option) (*FunctionStore, error) {
	return NewDynamodbDataStore[storagemodels.FunctionRecord](ctx, awsAccessKey, awsSecretKey, awsRegion, tableName, opts...)
}

// QueryByMesh returns every snapshot stored for meshID, ordered by name.
func QueryByMesh(ctx context.Context, store *FunctionStore, meshID string) ([]storagemodels.FunctionRecord, error) {
	return store.QueryPartition(ctx, map[string]string{"MeshID": meshID})
}
