// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (login, password_hash, name, role)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, login, password_hash, name, role, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, name, role, created_at
    FROM users
    WHERE login = $1;`

	saveSpool = `INSERT INTO spools (
			serial,
			owner_id,
			visibility,
			material,
			color,
			remaining_quantity,
			legacy_id,
			last_updated,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (serial) DO UPDATE SET
			owner_id           = EXCLUDED.owner_id,
			visibility         = EXCLUDED.visibility,
			material           = EXCLUDED.material,
			color              = EXCLUDED.color,
			remaining_quantity = EXCLUDED.remaining_quantity,
			legacy_id          = EXCLUDED.legacy_id,
			last_updated       = EXCLUDED.last_updated;`

	// insertSpoolIfAbsent backs the create path of CompareAndSave: zero
	// affected rows means another session created the serial first.
	insertSpoolIfAbsent = `INSERT INTO spools (
			serial,
			owner_id,
			visibility,
			material,
			color,
			remaining_quantity,
			legacy_id,
			last_updated,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (serial) DO NOTHING;`

	// updateSpoolIfUnchanged backs the update path of CompareAndSave:
	// the WHERE clause on last_updated is the optimistic precondition.
	updateSpoolIfUnchanged = `UPDATE spools SET
			owner_id           = $2,
			visibility         = $3,
			material           = $4,
			color              = $5,
			remaining_quantity = $6,
			legacy_id          = $7,
			last_updated       = $8
		WHERE serial = $1 AND last_updated = $9;`

	deleteSpool = `DELETE FROM spools WHERE serial = $1;`

	createTombstone = `INSERT INTO tombstones (serial, deleted_at, deleted_by, original_owner_id, recycle)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (serial) DO UPDATE SET
			deleted_at        = EXCLUDED.deleted_at,
			deleted_by        = EXCLUDED.deleted_by,
			original_owner_id = EXCLUDED.original_owner_id,
			recycle           = EXCLUDED.recycle;`

	getTombstone = `SELECT serial, deleted_at, deleted_by, original_owner_id, recycle
		FROM tombstones
		WHERE serial = $1;`

	deleteTombstone = `DELETE FROM tombstones WHERE serial = $1;`

	deleteExpiredTombstones = `DELETE FROM tombstones WHERE deleted_at < $1;`
)

// psql is the shared squirrel builder configured for PostgreSQL
// dollar-numbered placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// spoolColumns is the canonical column order shared by every spool SELECT
// and the row-scanning helpers in repository_spool.go.
var spoolColumns = []string{
	"serial",
	"owner_id",
	"visibility",
	"material",
	"color",
	"remaining_quantity",
	"legacy_id",
	"last_updated",
	"created_at",
}

// selectSpools starts a spool SELECT with the canonical column order.
// Callers chain Where clauses for their filter.
func selectSpools() sq.SelectBuilder {
	return psql.Select(spoolColumns...).From("spools")
}

// buildGetSpoolQuery builds the single-record lookup by serial.
func buildGetSpoolQuery(serial string) (string, []any, error) {
	return selectSpools().Where(sq.Eq{"serial": serial}).ToSql()
}

// buildGetSpoolByLegacyIDQuery builds the lookup by the old numeric id.
func buildGetSpoolByLegacyIDQuery(legacyID int64) (string, []any, error) {
	return selectSpools().Where(sq.Eq{"legacy_id": legacyID}).ToSql()
}

// buildListSpoolsQuery builds the full active-record listing, newest first.
func buildListSpoolsQuery() (string, []any, error) {
	return selectSpools().OrderBy("last_updated DESC").ToSql()
}

// buildListChangedSinceQuery builds the changed-since listing used to
// compute a caller's outgoing change set.
func buildListChangedSinceQuery(since int64) (string, []any, error) {
	return selectSpools().
		Where(sq.Gt{"last_updated": since}).
		OrderBy("last_updated ASC").
		ToSql()
}

// buildListTombstonesSinceQuery builds the deleted-since listing used to
// compute a caller's outgoing deletion set.
func buildListTombstonesSinceQuery(since int64) (string, []any, error) {
	return psql.Select("serial", "deleted_at", "deleted_by", "original_owner_id").
		From("tombstones").
		Where(sq.Gt{"deleted_at": since}).
		OrderBy("deleted_at ASC").
		ToSql()
}

// buildListTombstonesQuery builds the full tombstone listing.
func buildListTombstonesQuery() (string, []any, error) {
	return psql.Select("serial", "deleted_at", "deleted_by", "original_owner_id").
		From("tombstones").
		OrderBy("deleted_at ASC").
		ToSql()
}
