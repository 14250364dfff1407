/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package meshstore

import (
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/meshstore/errors"
	"github.com/suparena/meshstore/storagemodels"
)

// Snapshot captures a in its persisted form under name.
func Snapshot(name string, a Annotation) (storagemodels.FunctionRecord, error) {
	values := make([]string, a.Size())
	for i := range values {
		s, err := a.Text(i)
		if err != nil {
			return storagemodels.FunctionRecord{}, err
		}
		values[i] = s
	}

	created := strfmt.DateTime(time.Now().UTC())
	return storagemodels.FunctionRecord{
		EntityType: storagemodels.FunctionEntityType,
		MeshID:     a.Mesh().ID(),
		Name:       name,
		Dim:        a.Dim(),
		ValueType:  a.ValueType().String(),
		Size:       len(values),
		Values:     values,
		CreatedAt:  &created,
	}, nil
}

// Restore rebuilds the annotation stored in rec over m. The record must
// have been taken from a mesh with the same ID and entity count.
func Restore(rec storagemodels.FunctionRecord, m Mesh) (Annotation, error) {
	if m == nil {
		return nil, errors.NewValidationError("mesh", "mesh is nil")
	}
	if rec.MeshID != m.ID() {
		return nil, errors.NewValidationError("meshId",
			fmt.Sprintf("record belongs to mesh %q, not %q", rec.MeshID, m.ID()))
	}

	a, err := Create(rec.ValueType, m, rec.Dim)
	if err != nil {
		return nil, err
	}
	if a.Size() != len(rec.Values) {
		return nil, errors.NewValidationError("values",
			fmt.Sprintf("record has %d values, mesh has %d entities of dimension %d", len(rec.Values), a.Size(), rec.Dim))
	}
	for i, s := range rec.Values {
		if err := a.SetText(i, s); err != nil {
			return nil, fmt.Errorf("restore %s entry %d: %w", rec.Name, i, err)
		}
	}
	return a, nil
}
