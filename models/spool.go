// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Visibility is the per-record access scope gating what other callers may
// read or write. Records without an owner ignore visibility entirely.
type Visibility string

const (
	// VisibilityPrivate restricts the record to its owner (and admins).
	VisibilityPrivate Visibility = "private"

	// VisibilityPublic makes the record readable and writable by any
	// authenticated caller.
	VisibilityPublic Visibility = "public"
)

// Spool is one inventory record synchronized across devices.
//
// Serial is the sync identity: unique, immutable, assigned at creation.
// Display-derived attributes (material, color) may change freely without
// ever creating a duplicate or orphaned entry, because reconciliation keys
// exclusively on Serial.
//
// LastUpdated is the mutation clock in epoch milliseconds and is the only
// field consulted by conflict resolution. Spools are always replaced
// whole-record; there is no partial-field patch path.
type Spool struct {
	// Serial is the immutable unique identifier (UUIDv7 for new records).
	Serial string `json:"serial"`

	// OwnerID identifies the owning user. Nil means a legacy/unowned
	// record, visible and writable by every caller.
	OwnerID *int64 `json:"owner_id,omitempty"`

	// Visibility is "private" or "public". Ignored when OwnerID is nil.
	Visibility Visibility `json:"visibility"`

	// Material is the filament material type (e.g. "PLA", "PETG").
	// Opaque to the sync engine.
	Material string `json:"material"`

	// Color is a display attribute, opaque to the sync engine.
	Color string `json:"color,omitempty"`

	// RemainingQuantity is the remaining stock in grams. It is the single
	// attribute with a field-level merge rule: at equal mutation clocks
	// the conservative minimum of the two values wins.
	RemainingQuantity float64 `json:"remaining_quantity"`

	// LegacyID is the numeric identifier spools carried before serials
	// were introduced. Zero for records created after the migration.
	// Deletion requests may still address a record by this value.
	LegacyID int64 `json:"legacy_id,omitempty"`

	// LastUpdated is the mutation clock, epoch milliseconds.
	LastUpdated int64 `json:"last_updated"`

	// CreatedAt is the creation time, epoch milliseconds.
	CreatedAt int64 `json:"created_at"`

	// Deleted is transient: set only while a record is being moved to the
	// tombstone path and never persisted on an active record.
	Deleted bool `json:"deleted,omitempty"`
}

// AccessibleBy reports whether caller may read or write this spool.
//
// The predicate is shared by the reconciliation write-permission check and
// the outgoing-changes read filter so the two can never diverge:
// owner match, admin role, public visibility, or an unowned legacy record.
func (s Spool) AccessibleBy(caller Caller) bool {
	if s.OwnerID == nil {
		return true
	}
	return *s.OwnerID == caller.ID || caller.IsAdmin() || s.Visibility == VisibilityPublic
}

// TableName returns the name of the database table
// associated with the Spool model.
func (s Spool) TableName() string {
	return "spools"
}
