// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// Identifier addresses a record in a deletion request. It is normally a
// serial, but clients that predate serials may still send the old numeric
// spool id as a decimal string.
type Identifier string

// LegacyID interprets the identifier as an old numeric spool id.
// The second return value is false when the identifier is a serial.
func (id Identifier) LegacyID() (int64, bool) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// String returns the raw identifier value.
func (id Identifier) String() string {
	return string(id)
}

// SyncRequest is one device's half of a reconciliation session: everything
// the device changed or deleted locally since LastSyncTime.
type SyncRequest struct {
	// LastSyncTime is the server high-water mark (epoch milliseconds)
	// the device observed at the end of its previous successful sync.
	// Zero means the device has never synced.
	LastSyncTime int64 `json:"last_sync_time"`

	// Changes is the list of locally created or modified spools,
	// proposed as whole records.
	Changes []Spool `json:"changes"`

	// Deletions is the list of locally deleted record identifiers.
	Deletions []Identifier `json:"deletions"`
}

// SyncResponse is the server's authoritative answer to a SyncRequest.
// The device applies Changes and Deletions locally, records ServerTime as
// its new high-water mark, and treats Skipped as informational — per-item
// rejections never abort a session.
type SyncResponse struct {
	// Success is false only when the whole session failed; with per-item
	// errors only, Success stays true.
	Success bool `json:"success"`

	// ServerTime is the authoritative session timestamp, epoch
	// milliseconds. The device stores it as its next LastSyncTime.
	ServerTime int64 `json:"server_time"`

	// Changes contains every active record newer than the caller's
	// LastSyncTime that the caller is allowed to see.
	Changes []Spool `json:"changes"`

	// Deletions contains serials whose tombstones the caller has not
	// acknowledged yet.
	Deletions []Identifier `json:"deletions"`

	// Skipped lists per-item rejections (authorization, validation,
	// unknown serial) collected without aborting the batch.
	Skipped []SyncItemError `json:"skipped,omitempty"`
}

// SyncItemError describes one proposed change or deletion the server
// refused while still processing the rest of the batch.
type SyncItemError struct {
	// Serial identifies the rejected item (the raw identifier for
	// deletion requests that could not be resolved).
	Serial string `json:"serial"`

	// Reason is a short human-readable rejection cause.
	Reason string `json:"reason"`
}
