/*
Package meshfunction implements per-entity annotation containers.

A MeshFunction[T] holds one scalar of type T for every entity of a chosen
topological dimension of a mesh (0 = vertex, 1 = edge, ...). Four scalar
types are supported, matching the tags accepted by the meshstore factory:

	bool    -> MeshFunction[bool]
	size_t  -> MeshFunction[uint64]
	int     -> MeshFunction[int]
	double  -> MeshFunction[float64]

Construction comes in two forms:

	f, err := meshfunction.New[int](m, 1)                  // zero filled
	g, err := meshfunction.NewWithValue[float64](m, 2, 3.14) // filled with 3.14

Every instantiation also satisfies Annotation, which exposes the same
capabilities through dynamically typed values for callers that only know the
tag at runtime.
*/
package meshfunction
