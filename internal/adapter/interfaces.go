// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the spool synchronization server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-spool-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// synchronization server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the currently stored bearer token, or "" when the
	// adapter is unauthenticated.
	Token() string

	// Register creates a new account and stores the returned token.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates an existing account and stores the returned token.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// Sync runs one synchronization session against the server.
	Sync(ctx context.Context, request models.SyncRequest) (models.SyncResponse, error)

	// Tombstones lists every deletion marker the server still retains.
	Tombstones(ctx context.Context) ([]models.Tombstone, error)

	// Restore resurrects a deleted record from its server-side recycle copy.
	Restore(ctx context.Context, serial string) (models.Spool, error)
}
