/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package meshstore

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/suparena/meshstore/errors"
	"github.com/suparena/meshstore/meshfunction"
)

const catalogKind = "annotation"

// Catalog keeps named annotations, e.g. "boundary" or "materials".
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]Annotation
	logger  *zap.Logger
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithLogger sets the logger used for registration events.
func WithLogger(logger *zap.Logger) CatalogOption {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCatalog creates an empty catalog.
func NewCatalog(opts ...CatalogOption) *Catalog {
	c := &Catalog{
		entries: make(map[string]Annotation),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register stores a under name.
func (c *Catalog) Register(name string, a Annotation) error {
	if name == "" {
		return errors.NewValidationError("name", "name is required")
	}
	if a == nil {
		return errors.NewValidationError("annotation", "annotation is nil")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[name]; exists {
		return errors.NewAlreadyExistsError(catalogKind, name)
	}
	c.entries[name] = a

	c.logger.Debug("registered annotation",
		zap.String("name", name),
		zap.String("value_type", a.ValueType().String()),
		zap.Int("dim", a.Dim()),
		zap.Int("size", a.Size()),
	)
	return nil
}

// Get retrieves the annotation registered under name.
func (c *Catalog) Get(name string) (Annotation, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	a, exists := c.entries[name]
	if !exists {
		return nil, errors.NewNotFoundError(catalogKind, name)
	}
	return a, nil
}

// Remove deletes the annotation registered under name.
func (c *Catalog) Remove(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[name]; !exists {
		return errors.NewNotFoundError(catalogKind, name)
	}
	delete(c.entries, name)

	c.logger.Debug("removed annotation", zap.String("name", name))
	return nil
}

// List returns all registered names, sorted.
func (c *Catalog) List() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup is a convenience function to get a typed mesh function from c.
func Lookup[T meshfunction.Scalar](c *Catalog, name string) (*meshfunction.MeshFunction[T], error) {
	a, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	f, ok := a.(*meshfunction.MeshFunction[T])
	if !ok {
		return nil, errors.NewValidationError("name",
			fmt.Sprintf("%q holds %s values, not %s", name, a.ValueType(), meshfunction.ValueTypeOf[T]()))
	}
	return f, nil
}
