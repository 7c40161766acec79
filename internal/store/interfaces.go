// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the persistence layer: the server-side record
// and tombstone repositories backed by PostgreSQL, and the client-side
// local repository backed by SQLite.
//
// The sync engine only ever sees the repository contracts defined here;
// any backend that can get, list, save, and delete records by serial
// satisfies the reconciliation semantics unchanged.
package store

import (
	"context"

	"github.com/MKhiriev/go-spool-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SpoolRepository is the key-value contract over active spool records,
// keyed by serial. The reconciliation engine treats it as an external
// collaborator; correctness never depends on backend-specific behavior
// beyond the compare-and-swap guarantee of [SpoolRepository.CompareAndSave].
type SpoolRepository interface {
	// Get returns the active record for serial, or ErrSpoolNotFound.
	Get(ctx context.Context, serial string) (models.Spool, error)

	// GetByLegacyID resolves an old numeric spool id to its record,
	// or ErrSpoolNotFound.
	GetByLegacyID(ctx context.Context, legacyID int64) (models.Spool, error)

	// List returns every active record.
	List(ctx context.Context) ([]models.Spool, error)

	// ListChangedSince returns active records with last_updated strictly
	// greater than since (epoch milliseconds).
	ListChangedSince(ctx context.Context, since int64) ([]models.Spool, error)

	// Save upserts the whole record unconditionally.
	Save(ctx context.Context, spool models.Spool) error

	// CompareAndSave upserts the record only if the stored last_updated
	// still equals expectedLastUpdated (zero means "record must not
	// exist yet"). Returns ErrSyncConflict when the precondition no
	// longer holds, so the caller can re-read and re-resolve.
	CompareAndSave(ctx context.Context, spool models.Spool, expectedLastUpdated int64) error

	// Delete removes the active record. Deleting an absent serial is
	// reported as ErrSpoolNotFound.
	Delete(ctx context.Context, serial string) error
}

// TombstoneRepository persists deletion markers together with a recycle
// copy of the record they replaced, so a tombstone can be restored.
type TombstoneRepository interface {
	// Create durably persists the tombstone and the recycle copy.
	// It must complete before the active record is removed.
	Create(ctx context.Context, tombstone models.Tombstone, recycle models.Spool) error

	// Get returns the tombstone for serial along with its recycle copy,
	// or ErrTombstoneNotFound.
	Get(ctx context.Context, serial string) (models.Tombstone, models.Spool, error)

	// List returns every stored tombstone, expired or not.
	List(ctx context.Context) ([]models.Tombstone, error)

	// ListSince returns tombstones with deleted_at strictly greater
	// than since (epoch milliseconds).
	ListSince(ctx context.Context, since int64) ([]models.Tombstone, error)

	// Delete removes the tombstone and its recycle copy.
	// Deleting an absent serial is reported as ErrTombstoneNotFound.
	Delete(ctx context.Context, serial string) error

	// DeleteOlderThan removes tombstones with deleted_at below cutoff
	// and returns how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff int64) (int64, error)
}

// UserRepository persists user accounts for the identity layer.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}
