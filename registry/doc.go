/*
Package registry holds the fixed value-type registry behind the meshstore
factory, plus the DynamoDB key templates of stored types.

Type Registry:
Maps the four type tags to their mesh function constructors:

	bool    -> meshfunction.MeshFunction[bool]
	size_t  -> meshfunction.MeshFunction[uint64]
	int     -> meshfunction.MeshFunction[int]
	double  -> meshfunction.MeshFunction[float64]

The table is built at package initialisation and has no exported mutators,
so no other tag can ever resolve:

	c, err := registry.Lookup("double")
	f, err := c.NewWithValue(m, 2, 3.14)

Index Map Registry:
Associates Go types with DynamoDB key patterns:

	registry.RegisterIndexMap[storagemodels.FunctionRecord](registry.IndexMap{
	    "PK": "MESH#{MeshID}",
	    "SK": "FN#{Name}",
	})

Both registries are safe for concurrent reads.
*/
package registry
