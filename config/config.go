/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config loads meshstore settings from the environment and an
// optional .env file.
package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/suparena/meshstore/errors"
)

// Environment variables read by Load.
const (
	EnvAccessKey = "AWS_ACCESS_KEY"
	EnvSecretKey = "AWS_SECRET_KEY"
	EnvRegion    = "AWS_REGION"
	EnvTable     = "AWS_DDB_TABLE"
	EnvLogLevel  = "MESHSTORE_LOG_LEVEL"
)

// Config holds the DynamoDB connection and logging settings.
type Config struct {
	AccessKey string
	SecretKey string
	Region    string
	Table     string
	LogLevel  string
}

// Load reads the given .env files (".env" when none are named) and then the
// process environment. Missing files are skipped; variables already set in
// the environment win over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Config{
		AccessKey: os.Getenv(EnvAccessKey),
		SecretKey: os.Getenv(EnvSecretKey),
		Region:    os.Getenv(EnvRegion),
		Table:     os.Getenv(EnvTable),
		LogLevel:  os.Getenv(EnvLogLevel),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}

// Validate checks the settings needed to reach DynamoDB.
func (c Config) Validate() error {
	if c.Region == "" {
		return errors.NewValidationError(EnvRegion, "region is required")
	}
	if c.Table == "" {
		return errors.NewValidationError(EnvTable, "table name is required")
	}
	if c.AccessKey != "" && c.SecretKey == "" {
		return errors.NewValidationError(EnvSecretKey, "secret key is required with an access key")
	}
	return nil
}

// Logger builds a production zap logger at the configured level.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.NewValidationError(EnvLogLevel, err.Error())
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zc.Build()
}
