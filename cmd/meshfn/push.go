/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/suparena/meshstore/meshio"
)

func newPushCmd(a *app) *cobra.Command {
	var (
		file      string
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Store mesh function snapshots from a YAML file in DynamoDB",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := a.openStore(ctx, a.cfg, a.logger)
			if err != nil {
				return err
			}
			records, err := meshio.ReadFile(file)
			if err != nil {
				return err
			}

			for _, rec := range records {
				if overwrite {
					err = store.Put(ctx, rec)
				} else {
					err = store.PutIfAbsent(ctx, rec)
				}
				if err != nil {
					return fmt.Errorf("push %s: %w", rec.Key(), err)
				}
				a.logger.Info("pushed mesh function", zap.String("key", rec.Key()), zap.String("value_type", rec.ValueType))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pushed %d mesh functions to %s\n", len(records), a.cfg.Table)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file written by create --out")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace existing snapshots")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
