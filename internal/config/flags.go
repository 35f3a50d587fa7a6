// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress is a host:port flag value. An empty host binds all interfaces.
type NetAddress struct {
	Host string
	Port int
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses "host:port" or ":port".
func (a *NetAddress) Set(s string) error {
	host, portText, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portText)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

// fileList collects -k values; each value may itself be comma-separated.
type fileList []string

func (f *fileList) String() string {
	return strings.Join(*f, ",")
}

func (f *fileList) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*f = append(*f, part)
		}
	}
	return nil
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		cfg     StructuredConfig
		address NetAddress
		files   fileList
	)

	fs.Var(&address, "a", "HTTP listen address host:port")
	fs.Var(&files, "k", "Key value file (repeatable, or comma-separated)")
	fs.BoolVar(&cfg.Keys.UseEnvironment, "env", false, "Overlay key values from environment variables")
	fs.StringVar(&cfg.Keys.EnvPrefix, "env-prefix", "", "Prefix of key overlay environment variables")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Database driver: postgres or sqlite")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.DurationVar(&cfg.Storage.DB.CheckInterval, "db-check-interval", 0, "Database connection check interval (0 disables)")
	fs.StringVar(&cfg.Remote.URL, "remote", "", "Base URL of a remote configuration server")
	fs.DurationVar(&cfg.Remote.RequestTimeout, "remote-timeout", 0, "Remote request timeout (e.g., 5s)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Auth.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.Auth.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.Auth.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = address.String()
	cfg.Keys.Files = files
	return &cfg, nil
}
