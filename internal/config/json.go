// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors StructuredConfig in the JSON file layout.
// Durations accept either a string ("30s") or nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app"`

	Keys struct {
		Files          []string `json:"files"`
		UseEnvironment bool     `json:"use_environment"`
		EnvPrefix      string   `json:"env_prefix"`
	} `json:"keys"`

	Storage struct {
		DB struct {
			Driver        string   `json:"driver"`
			DSN           string   `json:"dsn"`
			CheckInterval Duration `json:"check_interval"`
		} `json:"db"`
	} `json:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server"`

	Auth struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"auth"`

	Remote struct {
		URL            string   `json:"url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Keys: Keys{
			Files:          jsonCfg.Keys.Files,
			UseEnvironment: jsonCfg.Keys.UseEnvironment,
			EnvPrefix:      jsonCfg.Keys.EnvPrefix,
		},
		Storage: Storage{
			DB: DB{
				Driver:        jsonCfg.Storage.DB.Driver,
				DSN:           jsonCfg.Storage.DB.DSN,
				CheckInterval: time.Duration(jsonCfg.Storage.DB.CheckInterval),
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Auth: Auth{
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
		},
		Remote: Remote{
			URL:            jsonCfg.Remote.URL,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
		},
	}, nil
}

// Duration decodes JSON strings like "1m30s" as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", b)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
