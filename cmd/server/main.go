package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/MKhiriev/go-tracker-config/internal/adapter"
	"github.com/MKhiriev/go-tracker-config/internal/config"
	"github.com/MKhiriev/go-tracker-config/internal/handler"
	"github.com/MKhiriev/go-tracker-config/internal/keys"
	"github.com/MKhiriev/go-tracker-config/internal/keys/catalog"
	"github.com/MKhiriev/go-tracker-config/internal/logger"
	"github.com/MKhiriev/go-tracker-config/internal/server"
	"github.com/MKhiriev/go-tracker-config/internal/service"
	"github.com/MKhiriev/go-tracker-config/internal/store"
	"github.com/MKhiriev/go-tracker-config/internal/utils"
	"github.com/MKhiriev/go-tracker-config/internal/workers"
	"github.com/MKhiriev/go-tracker-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// replicaOperator is the subject of tokens this instance signs for a remote.
const replicaOperator = "replica"

func main() {
	printBuildInfo()

	log := logger.NewLogger("tracker-config-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	remote, err := newRemoteStore(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating remote store")
	}

	storages, err := store.NewStorages(ctx, cfg, remote, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	registry := catalog.Registry()
	services := service.NewServices(registry, storages.Store, cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	resolver := keys.NewResolver(registry, storages.Store)
	address, err := listenAddress(ctx, resolver, cfg.Server)
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving listen address")
	}

	bg := workers.NewWorkers()
	if db := storages.Database(); db != nil && cfg.Storage.DB.CheckInterval > 0 {
		bg = workers.NewWorkers(workers.NewConnectionChecker(db, resolver, cfg.Storage.DB.CheckInterval, log))
	}

	handlers, err := handler.NewHandlers(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, bg, address, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

// newRemoteStore returns nil when no remote instance is configured.
func newRemoteStore(cfg *config.StructuredConfig, log *logger.Logger) (keys.Store, error) {
	if cfg.Remote.URL == "" {
		return nil, nil
	}

	var token string
	if cfg.Auth.TokenSignKey != "" {
		t, err := utils.GenerateJWTToken(cfg.Auth.TokenIssuer, replicaOperator, cfg.Auth.TokenDuration, cfg.Auth.TokenSignKey)
		if err != nil {
			return nil, fmt.Errorf("signing remote token: %w", err)
		}
		token = t.String()
	}

	return adapter.NewHTTPStore(adapter.HTTPStoreConfig{
		BaseURL: cfg.Remote.URL,
		Timeout: cfg.Remote.RequestTimeout,
		Token:   token,
	}, log)
}

// listenAddress prefers the configured address and falls back to the
// web.address and web.port keys.
func listenAddress(ctx context.Context, resolver *keys.Resolver, cfg config.Server) (string, error) {
	if cfg.HTTPAddress != "" {
		return cfg.HTTPAddress, nil
	}

	host, err := keys.Resolve(ctx, resolver, catalog.WebAddress, keys.GlobalTarget())
	if err != nil {
		return "", err
	}
	port, err := keys.Resolve(ctx, resolver, catalog.WebPort, keys.GlobalTarget())
	if err != nil {
		return "", err
	}

	return net.JoinHostPort(host.Or(""), strconv.Itoa(port.Or(8082))), nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
