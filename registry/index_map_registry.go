/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"reflect"
	"sync"
)

// IndexMap maps DynamoDB key attributes to templates such as "MESH#{MeshID}".
// Macros name fields of the stored type.
type IndexMap map[string]string

var (
	indexMapRegistry = make(map[reflect.Type]IndexMap)
	mu               sync.RWMutex
)

// RegisterIndexMap associates a Go type T with its DynamoDB key templates.
// Registering a second map for the same type panics.
func RegisterIndexMap[T any](idxMap IndexMap) {
	t := reflect.TypeOf((*T)(nil)).Elem()

	mu.Lock()
	defer mu.Unlock()
	if _, exists := indexMapRegistry[t]; exists {
		panic(fmt.Sprintf("index map registry: type %s already registered", t))
	}
	cp := make(IndexMap, len(idxMap))
	for k, v := range idxMap {
		cp[k] = v
	}
	indexMapRegistry[t] = cp
}

// GetIndexMap retrieves the index map for type T, if any.
func GetIndexMap[T any]() (IndexMap, bool) {
	t := reflect.TypeOf((*T)(nil)).Elem()

	mu.RLock()
	defer mu.RUnlock()
	m, ok := indexMapRegistry[t]
	return m, ok
}
