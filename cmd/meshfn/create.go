/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/suparena/meshstore"
	"github.com/suparena/meshstore/errors"
	"github.com/suparena/meshstore/mesh"
	"github.com/suparena/meshstore/meshfunction"
	"github.com/suparena/meshstore/meshio"
)

type createOptions struct {
	valueType string
	meshKind  string
	divisions int
	dim       int
	value     string
	name      string
	out       string
}

func newCreateCmd(a *app) *cobra.Command {
	var o createOptions

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a mesh function on a unit mesh",
		Example: `  meshfn create --type double --mesh square -n 4 --dim 2 --value 3.14
  meshfn create --type size_t --mesh cube -n 2 --dim 2 --name facets --out facets.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := buildMesh(o.meshKind, o.divisions)
			if err != nil {
				return err
			}

			var fn meshstore.Annotation
			if cmd.Flags().Changed("value") {
				v, err := parseValue(o.valueType, o.value)
				if err != nil {
					return err
				}
				fn, err = meshstore.CreateWithValue(o.valueType, m, o.dim, v)
				if err != nil {
					return err
				}
			} else {
				fn, err = meshstore.Create(o.valueType, m, o.dim)
				if err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), fn)

			if o.out == "" {
				return nil
			}
			name := o.name
			if name == "" {
				name = fmt.Sprintf("%s-dim%d", o.valueType, o.dim)
			}
			rec, err := meshstore.Snapshot(name, fn)
			if err != nil {
				return err
			}
			if err := meshio.WriteFile(o.out, rec); err != nil {
				return err
			}
			a.logger.Info("wrote mesh function", zap.String("name", name), zap.String("file", o.out))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.valueType, "type", "t", "double", "value type tag (bool, size_t, int, double)")
	f.StringVar(&o.meshKind, "mesh", "square", "unit mesh: interval, square or cube")
	f.IntVarP(&o.divisions, "divisions", "n", 1, "divisions along each axis")
	f.IntVarP(&o.dim, "dim", "d", 0, "topological dimension of the annotated entities")
	f.StringVar(&o.value, "value", "", "initial value for every entity")
	f.StringVar(&o.name, "name", "", "name stored with the snapshot")
	f.StringVarP(&o.out, "out", "o", "", "write the snapshot to this YAML file")
	return cmd
}

func buildMesh(kind string, n int) (*mesh.Mesh, error) {
	switch kind {
	case "interval":
		return mesh.UnitInterval(n)
	case "square":
		return mesh.UnitSquare(n, n)
	case "cube":
		return mesh.UnitCube(n, n, n)
	default:
		return nil, errors.NewValidationError("mesh", fmt.Sprintf("unknown mesh %q", kind))
	}
}

// parseValue converts a flag value to the Go type backing tag.
func parseValue(tag, s string) (any, error) {
	vt, err := meshfunction.ParseValueType(tag)
	if err != nil {
		return nil, err
	}

	var v any
	switch vt {
	case meshfunction.Bool:
		v, err = strconv.ParseBool(s)
	case meshfunction.SizeT:
		v, err = strconv.ParseUint(s, 10, 64)
	case meshfunction.Int:
		v, err = strconv.Atoi(s)
	default:
		v, err = strconv.ParseFloat(s, 64)
	}
	if err != nil {
		return nil, errors.NewValidationError("value", fmt.Sprintf("cannot parse %q as %s", s, tag))
	}
	return v, nil
}
