package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-tracker-config/models"
)

// Field names accepted by SlotValidator.
const (
	FieldName     = "name"
	FieldScope    = "scope"
	FieldIdentity = "identity"
	FieldValue    = "value"
)

// Column limits of config_attributes.
const (
	MaxNameLength     = 255
	MaxIdentityLength = 128
	MaxValueLength    = 64 << 10
)

type SlotValidator struct {
}

func NewSlotValidator() Validator {
	return &SlotValidator{}
}

func (v *SlotValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Slot:
		return v.validateSlot(value, fields...)
	case *models.Slot:
		return v.validateSlot(*value, fields...)

	case models.Assignment:
		return v.validateAssignment(value, fields...)
	case *models.Assignment:
		return v.validateAssignment(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SlotValidator) validateSlot(slot models.Slot, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldScope, FieldIdentity}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if slot.Name == "" || len(slot.Name) > MaxNameLength || strings.IndexFunc(slot.Name, notPrintable) >= 0 {
				return fmt.Errorf("%w: %q", ErrInvalidName, slot.Name)
			}
		case FieldScope:
			if !slot.Scope.Valid() {
				return fmt.Errorf("%w: %d", ErrInvalidScope, slot.Scope)
			}
		case FieldIdentity:
			if len(slot.Identity) > MaxIdentityLength || strings.IndexFunc(slot.Identity, notPrintable) >= 0 {
				return fmt.Errorf("%w: %q", ErrInvalidIdentity, slot.Identity)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *SlotValidator) validateAssignment(a models.Assignment, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldScope, FieldIdentity, FieldValue}
	}

	slotFields := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != FieldValue {
			slotFields = append(slotFields, f)
			continue
		}
		if len(a.Value) > MaxValueLength {
			return fmt.Errorf("%w: %d bytes", ErrValueTooLong, len(a.Value))
		}
		if !utf8.ValidString(a.Value) {
			return ErrInvalidValue
		}
	}

	if len(slotFields) == 0 {
		return nil
	}
	return v.validateSlot(a.Slot, slotFields...)
}

// notPrintable rejects whitespace and control characters in names and
// identities.
func notPrintable(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r) || r == utf8.RuneError
}
