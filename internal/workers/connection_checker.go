// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-tracker-config/internal/keys"
	"github.com/MKhiriev/go-tracker-config/internal/keys/catalog"
	"github.com/MKhiriev/go-tracker-config/internal/logger"
)

const defaultCheckQuery = "SELECT 1"

// Pinger is the part of store.DB the checker needs.
type Pinger interface {
	CheckConnection(ctx context.Context, query string) error
}

// ConnectionChecker probes the attribute database with the query configured
// under database.checkConnection. The query is resolved on every probe so a
// stored override takes effect without a restart. Failures are logged and
// never stop the server.
type ConnectionChecker struct {
	db       Pinger
	resolver *keys.Resolver
	interval time.Duration
	logger   *logger.Logger

	// written by Run, read by Healthy from any goroutine
	healthy atomic.Bool
}

func NewConnectionChecker(db Pinger, resolver *keys.Resolver, interval time.Duration, logger *logger.Logger) *ConnectionChecker {
	c := &ConnectionChecker{
		db:       db,
		resolver: resolver,
		interval: interval,
		logger:   logger,
	}
	c.healthy.Store(true)
	return c
}

func (c *ConnectionChecker) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.logger.Info().Dur("interval", c.interval).Msg("checking database connection")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.check(ctx)
		}
	}
}

// check runs one probe and logs state changes only.
func (c *ConnectionChecker) check(ctx context.Context) {
	query, err := keys.Resolve(ctx, c.resolver, catalog.DatabaseCheckConnection, keys.GlobalTarget())
	if err != nil {
		c.logger.Err(err).Str("func", "*ConnectionChecker.check").Msg("error resolving check query, using default")
	}

	err = c.db.CheckConnection(ctx, query.Or(defaultCheckQuery))
	wasHealthy := c.healthy.Swap(err == nil)
	switch {
	case err != nil && wasHealthy:
		c.logger.Err(err).Str("func", "*ConnectionChecker.check").Msg("database connection lost")
	case err == nil && !wasHealthy:
		c.logger.Info().Msg("database connection restored")
	}
}

// Healthy reports the outcome of the last probe. Safe for concurrent use.
func (c *ConnectionChecker) Healthy() bool {
	return c.healthy.Load()
}
