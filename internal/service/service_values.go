package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tracker-config/internal/keys"
	"github.com/MKhiriev/go-tracker-config/internal/logger"
	"github.com/MKhiriev/go-tracker-config/internal/store"
	"github.com/MKhiriev/go-tracker-config/internal/utils"
	"github.com/MKhiriev/go-tracker-config/models"
)

type valueService struct {
	resolver *keys.Resolver
	store    keys.Store
	logger   *logger.Logger
}

// NewValueService serves values of resolver. store must be the store the
// resolver was built on; it is used directly by the raw operations.
func NewValueService(resolver *keys.Resolver, store keys.Store, logger *logger.Logger) ValueService {
	return &valueService{resolver: resolver, store: store, logger: logger}
}

func (s *valueService) Resolve(ctx context.Context, name string, target keys.Target) (models.ValueResponse, error) {
	log := logger.FromContext(ctx)

	res, err := s.resolver.ResolveName(ctx, name, target)
	if err != nil {
		log.Err(err).Str("func", "*valueService.Resolve").Str("key", name).Msg("resolution failed")
		return models.ValueResponse{}, err
	}

	protocol, _ := target.Identity(keys.Protocol)
	device, _ := target.Identity(keys.Device)

	return models.ValueResponse{
		Resolution: res,
		Type:       res.Descriptor.ValueType().String(),
		Protocol:   protocol,
		Device:     device,
	}, nil
}

func (s *valueService) Set(ctx context.Context, a models.Assignment) error {
	log := logger.FromContext(ctx)

	if err := s.resolver.SetRaw(ctx, a.Name, a.Scope, a.Identity, a.Value); err != nil {
		log.Err(err).Str("func", "*valueService.Set").Str("key", a.Name).Msg("write rejected")
		return err
	}

	operator, _ := utils.GetOperatorFromContext(ctx)
	log.Info().
		Str("key", a.Name).
		Str("scope", a.Scope.String()).
		Str("identity", a.Identity).
		Str("operator", operator).
		Msg("value set")
	return nil
}

func (s *valueService) Unset(ctx context.Context, slot models.Slot) error {
	log := logger.FromContext(ctx)

	if err := s.resolver.Unset(ctx, slot.Name, slot.Scope, slot.Identity); err != nil {
		log.Err(err).Str("func", "*valueService.Unset").Str("key", slot.Name).Msg("removal rejected")
		return err
	}

	operator, _ := utils.GetOperatorFromContext(ctx)
	log.Info().
		Str("key", slot.Name).
		Str("scope", slot.Scope.String()).
		Str("identity", slot.Identity).
		Str("operator", operator).
		Msg("value removed")
	return nil
}

func (s *valueService) GetRaw(ctx context.Context, slot models.Slot) (models.RawValue, error) {
	if _, _, err := s.resolver.Registry().Match(slot.Name); err != nil {
		return models.RawValue{}, err
	}

	raw, found, err := s.store.GetRaw(ctx, slot.Scope, slot.Identity, slot.Name)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*valueService.GetRaw").Str("key", slot.Name).Msg("raw read failed")
		return models.RawValue{}, err
	}

	out := models.RawValue{Name: slot.Name, Scope: slot.Scope, Identity: slot.Identity, Found: found}
	if found {
		out.Value = rawText(raw)
	}
	return out, nil
}

func (s *valueService) ListRaw(ctx context.Context, scope keys.KeyType, identity string) (models.RawValues, error) {
	lister, ok := s.store.(store.Lister)
	if !ok {
		return models.RawValues{}, ErrListingUnsupported
	}

	values, err := lister.ListRaw(ctx, scope, identity)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*valueService.ListRaw").Msg("raw listing failed")
		return models.RawValues{}, err
	}

	out := models.RawValues{Scope: scope, Identity: identity, Values: make(map[string]string, len(values))}
	for name, raw := range values {
		out.Values[name] = rawText(raw)
	}
	return out, nil
}

// rawText renders a stored value for the wire. Strings pass unchanged so
// that a remote store sees exactly what was stored.
func rawText(raw any) string {
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprint(raw)
}
