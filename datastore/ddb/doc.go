/*
Package ddb provides a DynamoDB implementation of the DataStore interface.

Mesh function snapshots share one table, partitioned by mesh:

	PK = "MESH#{MeshID}"   e.g. MESH#unit-square-2x2
	SK = "FN#{Name}"       e.g. FN#markers

Usage:

	store, err := ddb.NewFunctionStore(ctx, key, secret, "us-east-1", "meshstore",
	    ddb.WithLogger(logger))

	rec, _ := meshstore.Snapshot("markers", markers)
	err = store.PutIfAbsent(ctx, rec)

	got, err := store.GetOne(ctx, "unit-square-2x2/markers")
	all, err := ddb.QueryByMesh(ctx, store, "unit-square-2x2")

String keys join the macro values of the PK and SK templates with "/".
Other entity types can be stored by registering their own index map with
registry.RegisterIndexMap.
*/
package ddb
