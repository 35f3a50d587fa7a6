// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level bootstrap configuration.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Keys    Keys    `envPrefix:"KEYS_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Auth    Auth    `envPrefix:"AUTH_"`
	Remote  Remote  `envPrefix:"REMOTE_"`

	// JSONFilePath is the optional JSON file merged last.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	Version  string `env:"VERSION"`
	LogLevel string `env:"LOG_LEVEL"`
}

// Keys describes the read-only sources of global key values.
type Keys struct {
	// Files are loaded in order; a later file overrides an earlier one.
	// Supported extensions: .xml, .properties, .json, .yaml, .yml, .toml.
	Files []string `env:"FILES" envSeparator:","`

	// UseEnvironment enables the environment overlay (web.port -> WEB_PORT).
	UseEnvironment bool `env:"USE_ENVIRONMENT"`

	// EnvPrefix is prepended to overlay variable names, e.g. "TRACKER_".
	EnvPrefix string `env:"ENV_PREFIX"`
}

// Storage groups the writable backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB is the SQL attribute store. Driver is "postgres" or "sqlite".
type DB struct {
	Driver string `env:"DRIVER"`
	DSN    string `env:"DSN"`

	// CheckInterval is how often the connection is probed with the
	// database.checkConnection query. Zero disables probing.
	CheckInterval time.Duration `env:"CHECK_INTERVAL"`
}

// Server holds HTTP listener settings. An empty HTTPAddress is taken from
// the web.address and web.port keys.
type Server struct {
	HTTPAddress     string        `env:"ADDRESS"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Auth configures JWT verification for write requests. Writes are refused
// when TokenSignKey is empty.
type Auth struct {
	TokenSignKey  string        `env:"TOKEN_SIGN_KEY"`
	TokenIssuer   string        `env:"TOKEN_ISSUER"`
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Remote points at another instance whose raw API backs this one.
type Remote struct {
	URL            string        `env:"URL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig builds the configuration from args (usually
// os.Args[1:]), the environment and the optional JSON file.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		build()
}
