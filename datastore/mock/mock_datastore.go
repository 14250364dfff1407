/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of datastore.DataStore for testing
package mock

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/meshstore/datastore"
	"github.com/suparena/meshstore/errors"
	"github.com/suparena/meshstore/storagemodels"
)

// DataStore is a mock implementation of datastore.DataStore[T] for testing
type DataStore[T any] struct {
	mu          sync.RWMutex
	data        map[string]T
	queryFunc   func(ctx context.Context, params *storagemodels.QueryParams) ([]T, error)
	getKeyFunc  func(entity T) string
	putError    error
	deleteError error
}

var _ datastore.FunctionStore = (*DataStore[storagemodels.FunctionRecord])(nil)

// New creates a new mock DataStore
func New[T any]() *DataStore[T] {
	return &DataStore[T]{
		data: make(map[string]T),
	}
}

// WithGetKeyFunc sets a custom function to extract keys from entities
func (m *DataStore[T]) WithGetKeyFunc(f func(T) string) *DataStore[T] {
	m.getKeyFunc = f
	return m
}

// WithQueryFunc sets a custom query function for testing
func (m *DataStore[T]) WithQueryFunc(f func(ctx context.Context, params *storagemodels.QueryParams) ([]T, error)) *DataStore[T] {
	m.queryFunc = f
	return m
}

// WithPutError makes Put operations return an error
func (m *DataStore[T]) WithPutError(err error) *DataStore[T] {
	m.putError = err
	return m
}

// WithDeleteError makes Delete operations return an error
func (m *DataStore[T]) WithDeleteError(err error) *DataStore[T] {
	m.deleteError = err
	return m
}

// GetOne retrieves an entity by key
func (m *DataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if entity, exists := m.data[key]; exists {
		return &entity, nil
	}

	var zero T
	return nil, errors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
}

// Put stores an entity
func (m *DataStore[T]) Put(ctx context.Context, entity T) error {
	if m.putError != nil {
		return m.putError
	}

	key := m.extractKey(entity)
	if key == "" {
		return errors.NewValidationError("key", "unable to extract key from entity")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = entity
	return nil
}

// PutIfAbsent stores an entity unless its key is already present
func (m *DataStore[T]) PutIfAbsent(ctx context.Context, entity T) error {
	if m.putError != nil {
		return m.putError
	}

	key := m.extractKey(entity)
	if key == "" {
		return errors.NewValidationError("key", "unable to extract key from entity")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.data[key]; exists {
		return errors.NewConditionFailedError("put", "attribute_not_exists(PK)")
	}
	m.data[key] = entity
	return nil
}

// Query returns every stored entity ordered by key, unless a query
// function was installed.
func (m *DataStore[T]) Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error) {
	if m.queryFunc != nil {
		return m.queryFunc(ctx, params)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	results := make([]T, 0, len(keys))
	for _, k := range keys {
		results = append(results, m.data[k])
	}
	return results, nil
}

// Delete removes an entity by key
func (m *DataStore[T]) Delete(ctx context.Context, key string) error {
	if m.deleteError != nil {
		return m.deleteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists {
		var zero T
		return errors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
	}

	delete(m.data, key)
	return nil
}

// Helper methods for testing

// Count returns the number of stored entities
func (m *DataStore[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Clear removes all data
func (m *DataStore[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]T)
}

// extractKey uses the configured key function, then a Key() method on the
// entity, then the formatted entity itself.
func (m *DataStore[T]) extractKey(entity T) string {
	if m.getKeyFunc != nil {
		return m.getKeyFunc(entity)
	}
	if k, ok := any(entity).(interface{ Key() string }); ok {
		return k.Key()
	}
	return fmt.Sprintf("key_%v", entity)
}
