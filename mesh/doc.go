/*
Package mesh provides the simplicial meshes that mesh functions annotate.

A Mesh is defined by vertex coordinates and cell-to-vertex connectivity.
Entities of every intermediate dimension (edges, faces) are derived from the
cells on first use and cached:

	m, _ := mesh.UnitSquare(2, 2)
	edges, _ := m.NumEntities(1) // 16

The builders UnitInterval, UnitSquare and UnitCube cover the usual test
domains. Meshes are immutable once built and safe for concurrent use.
*/
package mesh
