/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/suparena/meshstore/config"
	"github.com/suparena/meshstore/datastore"
	"github.com/suparena/meshstore/datastore/ddb"
)

type app struct {
	envFile string
	verbose bool

	cfg    config.Config
	logger *zap.Logger

	// openStore connects push to its backing store.
	openStore func(ctx context.Context, cfg config.Config, logger *zap.Logger) (datastore.FunctionStore, error)
}

func openDynamoStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (datastore.FunctionStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return ddb.NewFunctionStore(ctx, cfg.AccessKey, cfg.SecretKey, cfg.Region, cfg.Table, ddb.WithLogger(logger))
}

func newRootCmd(opts ...func(*app)) *cobra.Command {
	a := &app{logger: zap.NewNop(), openStore: openDynamoStore}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:          "meshfn",
		Short:        "Create and store typed mesh functions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.envFile)
			if err != nil {
				return err
			}
			if a.verbose {
				cfg.LogLevel = "debug"
			}
			logger, err := cfg.Logger()
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file with AWS settings")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newTagsCmd(),
		newCreateCmd(a),
		newPushCmd(a),
		newVersionCmd(),
	)
	return root
}
