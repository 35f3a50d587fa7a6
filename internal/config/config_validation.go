// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"time"
)

const (
	// DriverPostgres selects the pgx stdlib driver.
	DriverPostgres = "postgres"
	// DriverSQLite selects the go-sqlite3 driver.
	DriverSQLite = "sqlite"
)

const (
	defaultRequestTimeout  = 10 * time.Second
	defaultShutdownTimeout = 5 * time.Second
	defaultTokenIssuer     = "go-tracker-config"
	defaultTokenDuration   = time.Hour
	defaultRemoteTimeout   = 5 * time.Second
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}
	if cfg.Remote.URL != "" && cfg.Remote.RequestTimeout == 0 {
		cfg.Remote.RequestTimeout = defaultRemoteTimeout
	}
}

func (cfg *StructuredConfig) validate() error {
	db := cfg.Storage.DB
	switch db.Driver {
	case "":
		if db.DSN != "" {
			return fmt.Errorf("%w: dsn set without driver", ErrInvalidStorageConfigs)
		}
	case DriverPostgres, DriverSQLite:
		if db.DSN == "" {
			return fmt.Errorf("%w: driver %q requires a dsn", ErrInvalidStorageConfigs, db.Driver)
		}
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, db.Driver)
	}

	if cfg.Remote.URL != "" {
		if db.Driver != "" {
			return fmt.Errorf("%w: database and remote store are mutually exclusive", ErrInvalidStorageConfigs)
		}
		u, err := url.Parse(cfg.Remote.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: %q", ErrInvalidRemoteConfigs, cfg.Remote.URL)
		}
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Auth.TokenDuration < 0 {
		return ErrInvalidAuthConfigs
	}

	if db.CheckInterval < 0 {
		return fmt.Errorf("%w: negative connection check interval", ErrInvalidStorageConfigs)
	}

	for _, f := range cfg.Keys.Files {
		if f == "" {
			return fmt.Errorf("%w: empty file name", ErrInvalidKeysConfigs)
		}
	}

	return nil
}
