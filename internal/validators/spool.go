package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-spool-sync/models"
)

// Field name constants used to specify which fields should be validated.
// They are passed to Validate to restrict validation to a subset of fields.
const (
	// FieldSerial targets the globally unique serial identifier of a spool.
	FieldSerial = "serial"

	// FieldMaterial targets the filament material description of a spool.
	FieldMaterial = "material"

	// FieldRemainingQuantity targets the remaining filament amount of a spool.
	FieldRemainingQuantity = "remaining_quantity"

	// FieldVisibility targets the visibility marker of a spool.
	FieldVisibility = "visibility"

	// FieldLastUpdated targets the modification timestamp of a spool.
	FieldLastUpdated = "last_updated"
)

// SpoolValidator implements the Validator interface for spool records
// and deletion identifiers carried by synchronization requests.
//
// It supports both value and pointer receivers and allows optional
// field-level scoping via variadic field name arguments.
type SpoolValidator struct {
}

// NewSpoolValidator constructs a new SpoolValidator
// and returns it as the Validator interface.
func NewSpoolValidator() Validator {
	return &SpoolValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
//
// Supported types:
//   - models.Spool / *models.Spool
//   - models.Identifier
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// the full default set of fields is validated.
func (v *SpoolValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Spool:
		return v.validateSpool(ctx, value, fields...)
	case *models.Spool:
		return v.validateSpool(ctx, *value, fields...)

	case models.Identifier:
		return v.validateIdentifier(ctx, value)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *SpoolValidator) validateSpool(_ context.Context, spool models.Spool, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSerial, FieldMaterial, FieldRemainingQuantity, FieldVisibility, FieldLastUpdated}
	}

	for _, field := range fields {
		switch field {
		case FieldSerial:
			if spool.Serial == "" {
				return ErrEmptySerial
			}
		case FieldMaterial:
			if spool.Material == "" {
				return ErrEmptyMaterial
			}
		case FieldRemainingQuantity:
			if spool.RemainingQuantity < 0 {
				return fmt.Errorf("%w: %f", ErrNegativeQuantity, spool.RemainingQuantity)
			}
		case FieldVisibility:
			switch spool.Visibility {
			case "", models.VisibilityPrivate, models.VisibilityPublic:
			default:
				return fmt.Errorf("%w: %q", ErrInvalidVisibility, spool.Visibility)
			}
		case FieldLastUpdated:
			if spool.LastUpdated < 0 {
				return fmt.Errorf("%w: %d", ErrInvalidTimestamp, spool.LastUpdated)
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *SpoolValidator) validateIdentifier(_ context.Context, id models.Identifier) error {
	if id == "" {
		return ErrEmptyIdentifier
	}

	return nil
}
