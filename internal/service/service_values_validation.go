package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tracker-config/internal/keys"
	"github.com/MKhiriev/go-tracker-config/internal/validators"
	"github.com/MKhiriev/go-tracker-config/models"
)

// ValueValidationService rejects malformed slots before they reach the
// resolver or the store.
type ValueValidationService struct {
	inner     ValueService
	validator validators.Validator
}

func NewValueValidationService() ValueServiceWrapper {
	return &ValueValidationService{
		validator: validators.NewSlotValidator(),
	}
}

func (v *ValueValidationService) Resolve(ctx context.Context, name string, target keys.Target) (models.ValueResponse, error) {
	if err := v.validator.Validate(ctx, models.Slot{Name: name}, validators.FieldName); err != nil {
		return models.ValueResponse{}, fmt.Errorf("%w: %w", keys.ErrUnknownKey, err)
	}
	return v.inner.Resolve(ctx, name, target)
}

func (v *ValueValidationService) Set(ctx context.Context, assignment models.Assignment) error {
	if err := v.validator.Validate(ctx, assignment); err != nil {
		return fmt.Errorf("error during value validation before saving: %w", err)
	}
	return v.inner.Set(ctx, assignment)
}

func (v *ValueValidationService) Unset(ctx context.Context, slot models.Slot) error {
	if err := v.validator.Validate(ctx, slot); err != nil {
		return fmt.Errorf("error during slot validation before removal: %w", err)
	}
	return v.inner.Unset(ctx, slot)
}

func (v *ValueValidationService) GetRaw(ctx context.Context, slot models.Slot) (models.RawValue, error) {
	if err := v.validator.Validate(ctx, slot); err != nil {
		return models.RawValue{}, fmt.Errorf("error during slot validation: %w", err)
	}
	return v.inner.GetRaw(ctx, slot)
}

func (v *ValueValidationService) ListRaw(ctx context.Context, scope keys.KeyType, identity string) (models.RawValues, error) {
	if err := v.validator.Validate(ctx, models.Slot{Scope: scope, Identity: identity}, validators.FieldScope, validators.FieldIdentity); err != nil {
		return models.RawValues{}, fmt.Errorf("error during slot validation: %w", err)
	}
	return v.inner.ListRaw(ctx, scope, identity)
}

func (v *ValueValidationService) Wrap(inner ValueService) ValueService {
	v.inner = inner
	return v
}
