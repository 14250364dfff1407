/*
Package meshstore creates typed per-entity annotations ("mesh functions")
over simplicial meshes and keeps them in catalogs and persistent stores.

The core is a factory that dispatches on a value type tag:

	m, _ := mesh.UnitSquare(4, 4)

	// default-filled size_t markers on facets
	markers, err := meshstore.Create("size_t", m, 1)

	// every cell initialised to 3.14
	density, err := meshstore.CreateWithValue("double", m, 2, 3.14)

	// unknown tags fail before the mesh is touched
	_, err = meshstore.Create("complex", m, 0) // errors.IsUnrecognizedTypeTag(err)

The four tags bool, size_t, int and double map to meshfunction.MeshFunction
instantiations over bool, uint64, int and float64. Callers that know the type
statically can use meshfunction.New[T] directly.

Annotations can be named in a Catalog, captured with Snapshot, written to
YAML through meshio, or persisted to DynamoDB through datastore/ddb:

	rec, _ := meshstore.Snapshot("markers", markers)
	err = store.Put(ctx, rec)

	back, err := meshstore.Restore(rec, m)

For more information, see the documentation at https://github.com/suparena/meshstore
*/
package meshstore
