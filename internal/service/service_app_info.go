package service

import (
	"context"

	"github.com/MKhiriev/go-tracker-config/internal/config"
	"github.com/MKhiriev/go-tracker-config/internal/keys"
	"github.com/MKhiriev/go-tracker-config/internal/logger"
	"github.com/MKhiriev/go-tracker-config/models"
)

type appInfoService struct {
	info models.VersionResponse

	logger *logger.Logger
}

// NewAppInfoService reports build metadata. cfg.Version, when set, takes
// precedence over the linker-injected version.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, registry *keys.Registry, logger *logger.Logger) AppInfoService {
	version := build.BuildVersion()
	if cfg.Version != "" {
		version = cfg.Version
	}

	return &appInfoService{
		info: models.VersionResponse{
			Version: version,
			Date:    build.BuildDate(),
			Commit:  build.BuildCommit(),
			Keys:    registry.Len(),
		},
		logger: logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.VersionResponse {
	return s.info
}
