// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Tombstone is a durable deletion marker. It is created before the active
// record is removed, so a crash between the two steps can never lose a
// deletion silently — the record stays intact and re-deletable.
//
// Under steady state exactly one of {active Spool, Tombstone} exists per
// serial; both may transiently coexist across nodes during propagation lag.
type Tombstone struct {
	// Serial identifies the deleted record.
	Serial string `json:"serial"`

	// DeletedAt is the deletion time, epoch milliseconds. Outgoing
	// deletion sets are computed against this value: a tombstone is
	// returned to a caller until the caller's high-water mark passes it.
	DeletedAt int64 `json:"deleted_at"`

	// DeletedBy names the originating device or user. Optional.
	DeletedBy string `json:"deleted_by,omitempty"`

	// OriginalOwnerID preserves the owner at deletion time for audit and
	// restore. Optional.
	OriginalOwnerID *int64 `json:"original_owner_id,omitempty"`
}

// TableName returns the name of the database table
// associated with the Tombstone model.
func (t Tombstone) TableName() string {
	return "tombstones"
}
