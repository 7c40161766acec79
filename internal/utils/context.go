// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// serial generation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-spool-sync/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CallerCtxKey is the key used to store the authenticated caller identity
// in the context. Used together with GetCallerFromContext for type-safe
// retrieval of the caller from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.CallerCtxKey, models.Caller{ID: 42})
var CallerCtxKey = contextKey("caller")

// GetCallerFromContext retrieves the authenticated caller from the context.
//
// Returns the caller and an ok flag:
//   - ok == true  — value is found and has the correct models.Caller type
//   - ok == false — value is missing or has an unexpected type
func GetCallerFromContext(ctx context.Context) (models.Caller, bool) {
	caller, ok := ctx.Value(CallerCtxKey).(models.Caller)
	return caller, ok
}
