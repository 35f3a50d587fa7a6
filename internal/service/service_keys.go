package service

import (
	"context"

	"github.com/MKhiriev/go-tracker-config/internal/keys"
	"github.com/MKhiriev/go-tracker-config/internal/keys/catalog"
	"github.com/MKhiriev/go-tracker-config/internal/logger"
)

type keyService struct {
	registry *keys.Registry
	logger   *logger.Logger
}

func NewKeyService(registry *keys.Registry, logger *logger.Logger) KeyService {
	return &keyService{registry: registry, logger: logger}
}

func (s *keyService) ListKeys(ctx context.Context) []catalog.Entry {
	return catalog.Reference(s.registry)
}

func (s *keyService) GetKey(ctx context.Context, name string) (catalog.Entry, error) {
	d, _, err := s.registry.Match(name)
	if err != nil {
		logger.FromContext(ctx).Debug().Str("func", "*keyService.GetKey").Str("key", name).Msg("unknown key requested")
		return catalog.Entry{}, err
	}
	return catalog.NewEntry(d), nil
}
