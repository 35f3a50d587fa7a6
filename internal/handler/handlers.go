package handler

import (
	"github.com/MKhiriev/go-tracker-config/internal/handler/http"
	"github.com/MKhiriev/go-tracker-config/internal/logger"
	"github.com/MKhiriev/go-tracker-config/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil ||
		services.KeyService == nil ||
		services.ValueService == nil ||
		services.AuthService == nil ||
		services.AppInfoService == nil {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
}
