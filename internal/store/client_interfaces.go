package store

import (
	"context"

	"github.com/MKhiriev/go-spool-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSpoolRepository is the device-local spool store consumed by the sync
// agent. Local mutations are tracked with a dirty flag so the agent can
// gather them without trusting the device clock; local deletions are queued
// until the server acknowledges them.
type LocalSpoolRepository interface {
	// ApplyServerSpools upserts records from an authoritative sync
	// response and marks them clean.
	ApplyServerSpools(ctx context.Context, spools ...models.Spool) error

	// SaveLocal upserts a locally mutated record and marks it dirty so
	// the next sync pushes it.
	SaveLocal(ctx context.Context, spool models.Spool) error

	// Get returns the local record for serial, or ErrSpoolNotFound.
	Get(ctx context.Context, serial string) (models.Spool, error)

	// GetAll returns every local record.
	GetAll(ctx context.Context) ([]models.Spool, error)

	// DirtySpools returns records mutated locally since the last
	// successful push.
	DirtySpools(ctx context.Context) ([]models.Spool, error)

	// MarkClean clears the dirty flag after the server accepted (or
	// authoritatively rejected) the listed serials.
	MarkClean(ctx context.Context, serials ...string) error

	// Delete removes a record the server reports as deleted. Unknown
	// serials are ignored: the deletion may have propagated before the
	// record ever reached this device.
	Delete(ctx context.Context, serial string) error

	// QueueDeletion removes the record locally and queues the identifier
	// for the next sync's deletion set.
	QueueDeletion(ctx context.Context, id models.Identifier) error

	// PendingDeletions returns queued deletion identifiers.
	PendingDeletions(ctx context.Context) ([]models.Identifier, error)

	// ClearDeletions drops queued identifiers the server has processed.
	ClearDeletions(ctx context.Context, ids ...models.Identifier) error

	// LastSyncTime returns the device's server high-water mark, zero if
	// the device has never synced.
	LastSyncTime(ctx context.Context) (int64, error)

	// SetLastSyncTime records the server high-water mark from a
	// successful sync response.
	SetLastSyncTime(ctx context.Context, t int64) error
}
