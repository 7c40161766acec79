// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	createLocalSpoolsTable = `
		CREATE TABLE IF NOT EXISTS spools (
			serial             TEXT PRIMARY KEY,
			owner_id           INTEGER,
			visibility         TEXT NOT NULL DEFAULT 'private',
			material           TEXT NOT NULL,
			color              TEXT NOT NULL DEFAULT '',
			remaining_quantity REAL NOT NULL DEFAULT 0,
			legacy_id          INTEGER,
			last_updated       INTEGER NOT NULL,
			created_at         INTEGER NOT NULL,
			dirty              INTEGER NOT NULL DEFAULT 0
		);`

	createLocalDeletionsTable = `
		CREATE TABLE IF NOT EXISTS pending_deletions (
			identifier TEXT PRIMARY KEY,
			queued_at  INTEGER NOT NULL
		);`

	createLocalSyncStateTable = `
		CREATE TABLE IF NOT EXISTS sync_state (
			id             INTEGER PRIMARY KEY CHECK (id = 1),
			last_sync_time INTEGER NOT NULL DEFAULT 0
		);`

	upsertLocalSpool = `
		INSERT INTO spools (
			serial,
			owner_id,
			visibility,
			material,
			color,
			remaining_quantity,
			legacy_id,
			last_updated,
			created_at,
			dirty
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (serial) DO UPDATE SET
			owner_id           = excluded.owner_id,
			visibility         = excluded.visibility,
			material           = excluded.material,
			color              = excluded.color,
			remaining_quantity = excluded.remaining_quantity,
			legacy_id          = excluded.legacy_id,
			last_updated       = excluded.last_updated,
			dirty              = excluded.dirty;`

	getLocalSpool = `
		SELECT serial, owner_id, visibility, material, color,
			remaining_quantity, legacy_id, last_updated, created_at
		FROM spools
		WHERE serial = $1;`

	getAllLocalSpools = `
		SELECT serial, owner_id, visibility, material, color,
			remaining_quantity, legacy_id, last_updated, created_at
		FROM spools
		ORDER BY last_updated DESC;`

	getDirtyLocalSpools = `
		SELECT serial, owner_id, visibility, material, color,
			remaining_quantity, legacy_id, last_updated, created_at
		FROM spools
		WHERE dirty = 1
		ORDER BY last_updated ASC;`

	markLocalSpoolClean = `UPDATE spools SET dirty = 0 WHERE serial = $1;`

	deleteLocalSpool = `DELETE FROM spools WHERE serial = $1;`

	queuePendingDeletion = `
		INSERT INTO pending_deletions (identifier, queued_at)
		VALUES ($1, $2)
		ON CONFLICT (identifier) DO NOTHING;`

	getPendingDeletions = `
		SELECT identifier FROM pending_deletions ORDER BY queued_at ASC;`

	clearPendingDeletion = `DELETE FROM pending_deletions WHERE identifier = $1;`

	getLastSyncTime = `SELECT last_sync_time FROM sync_state WHERE id = 1;`

	setLastSyncTime = `
		INSERT INTO sync_state (id, last_sync_time) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET last_sync_time = excluded.last_sync_time;`
)
