package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptySerial       = errors.New("serial is required")
	ErrEmptyMaterial     = errors.New("material is required")
	ErrNegativeQuantity  = errors.New("remaining quantity cannot be negative")
	ErrInvalidVisibility = errors.New("invalid visibility")
	ErrInvalidTimestamp  = errors.New("invalid last updated timestamp")
	ErrEmptyIdentifier   = errors.New("deletion identifier cannot be empty")
)
