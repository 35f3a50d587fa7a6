package service

import (
	"github.com/MKhiriev/go-tracker-config/internal/config"
	"github.com/MKhiriev/go-tracker-config/internal/keys"
	"github.com/MKhiriev/go-tracker-config/internal/logger"
	"github.com/MKhiriev/go-tracker-config/models"
)

type Services struct {
	KeyService     KeyService
	ValueService   ValueService
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires the services over store. store is usually the layered
// store of the server.
func NewServices(registry *keys.Registry, store keys.Store, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) *Services {
	resolver := keys.NewResolver(registry, store)

	return &Services{
		KeyService:     NewKeyService(registry, logger),
		ValueService:   NewValueValidationService().Wrap(NewValueService(resolver, store, logger)),
		AuthService:    NewAuthService(cfg.Auth, logger),
		AppInfoService: NewAppInfoService(cfg.App, build, registry, logger),
	}
}
