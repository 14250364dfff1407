/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package meshio reads and writes mesh function snapshots as YAML documents.
package meshio

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/suparena/meshstore/errors"
	"github.com/suparena/meshstore/storagemodels"
)

// FormatVersion is written into every file.
const FormatVersion = 1

type document struct {
	Version   int                            `yaml:"version"`
	Functions []storagemodels.FunctionRecord `yaml:"functions"`
}

// Write encodes records to w as a single YAML document.
func Write(w io.Writer, records ...storagemodels.FunctionRecord) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Version: FormatVersion, Functions: records}); err != nil {
		return fmt.Errorf("encode mesh functions: %w", err)
	}
	return enc.Close()
}

// Read decodes records written by Write. Records are checked for a name, a
// mesh ID and a value count matching their size.
func Read(r io.Reader) ([]storagemodels.FunctionRecord, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.NewValidationError("file", "empty document")
		}
		return nil, fmt.Errorf("decode mesh functions: %w", err)
	}
	if doc.Version != FormatVersion {
		return nil, errors.NewValidationError("version", fmt.Sprintf("unsupported format version %d", doc.Version))
	}

	for i, rec := range doc.Functions {
		switch {
		case rec.Name == "":
			return nil, errors.NewValidationError("name", fmt.Sprintf("function %d has no name", i))
		case rec.MeshID == "":
			return nil, errors.NewValidationError("meshId", fmt.Sprintf("function %q has no mesh id", rec.Name))
		case rec.Size != len(rec.Values):
			return nil, errors.NewValidationError("values",
				fmt.Sprintf("function %q declares %d values, has %d", rec.Name, rec.Size, len(rec.Values)))
		}
		if rec.EntityType == "" {
			doc.Functions[i].EntityType = storagemodels.FunctionEntityType
		}
	}
	return doc.Functions, nil
}

// WriteFile writes records to path, replacing any existing file.
func WriteFile(path string, records ...storagemodels.FunctionRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, records...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile reads the records stored at path.
func ReadFile(path string) ([]storagemodels.FunctionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
