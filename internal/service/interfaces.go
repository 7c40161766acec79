package service

import (
	"context"

	"github.com/MKhiriev/go-spool-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService reconciles a batch of client changes and deletions against
// the server's authoritative state within a single session.
type SyncService interface {
	// Sync applies the request under the caller's identity and returns the
	// full session outcome: accepted server state, outgoing changes and
	// deletions, and per-item skip reasons. A returned error means the
	// whole session failed (authentication or storage); per-item problems
	// never surface here.
	Sync(ctx context.Context, caller models.Caller, request models.SyncRequest) (models.SyncResponse, error)
}

// TombstoneService manages deletion markers: creation ahead of record
// removal, retention-window purging, listing, and restore.
type TombstoneService interface {
	// Bury records a deletion marker for the spool and then removes the
	// active record. The marker is durable before the record disappears.
	Bury(ctx context.Context, spool models.Spool, deletedBy string) (models.Tombstone, error)

	// GetAll returns every retained deletion marker after purging expired
	// ones, so callers never see markers past the retention window.
	GetAll(ctx context.Context) ([]models.Tombstone, error)

	// Since returns retained markers newer than the given high-water mark,
	// purging expired ones first.
	Since(ctx context.Context, mark int64) ([]models.Tombstone, error)

	// Purge removes markers older than the retention window and reports
	// how many were dropped.
	Purge(ctx context.Context) (int64, error)

	// Restore resurrects a deleted record from its retained recycle copy,
	// stamping it with a fresh modification time so it wins against stale
	// replicas. Returns ErrTombstoneNotFound if no marker is retained.
	Restore(ctx context.Context, serial string) (models.Spool, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User, device string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
