/*
Package datastore defines the persistence interface for mesh function snapshots.

	type DataStore[T any] interface {
	    GetOne(ctx context.Context, key string) (*T, error)
	    Put(ctx context.Context, entity T) error
	    PutIfAbsent(ctx context.Context, entity T) error
	    Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error)
	    Delete(ctx context.Context, key string) error
	}

Implementations:
  - ddb: DynamoDB implementation using a single-table key layout
  - mock: In-memory implementation for testing
*/
package datastore
