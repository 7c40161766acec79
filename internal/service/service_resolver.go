// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-spool-sync/models"
)

// Resolution names the outcome of comparing an incoming change against the
// server's current state for the same serial.
type Resolution string

const (
	// ResolutionAcceptCreate accepts a change for a serial the server has
	// never seen (or whose previous record was deleted and purged).
	ResolutionAcceptCreate Resolution = "accept-create"

	// ResolutionAcceptUpdate accepts a change that is strictly newer than
	// the server record and does not race another device.
	ResolutionAcceptUpdate Resolution = "accept-update"

	// ResolutionServerWins rejects a change because the server record was
	// modified after the caller's last synchronization. The server copy
	// stands and travels back to the caller in the outgoing change set.
	ResolutionServerWins Resolution = "reject-server-wins"

	// ResolutionMerged combines two versions carrying the exact same
	// modification timestamp: the smaller remaining quantity wins, since
	// consumption only ever decreases it.
	ResolutionMerged Resolution = "merged"
)

// Resolve decides the fate of a proposed change against the current server
// record. It is a pure function of its arguments: no clock, no storage, no
// randomness, so the same inputs always produce the same outcome.
//
// current is nil when the server holds no active record for the serial.
// lastSyncTime is the caller's high-water mark from its previous session.
//
// The returned spool is the record to persist; for ResolutionServerWins it
// is the untouched server copy and nothing should be written.
//
// Rule order matters: the equal-timestamp merge is checked before the
// server-wins guard, so two devices writing at the same millisecond converge
// on the merged record instead of one side being silently rejected.
func Resolve(proposed models.Spool, current *models.Spool, lastSyncTime int64) (Resolution, models.Spool) {
	if current == nil {
		proposed.Deleted = false
		return ResolutionAcceptCreate, proposed
	}

	if proposed.LastUpdated == current.LastUpdated {
		merged := *current
		merged.RemainingQuantity = minQuantity(proposed.RemainingQuantity, current.RemainingQuantity)
		return ResolutionMerged, merged
	}

	if current.LastUpdated > lastSyncTime {
		return ResolutionServerWins, *current
	}

	if proposed.CreatedAt == 0 {
		proposed.CreatedAt = current.CreatedAt
	}
	proposed.Deleted = false

	return ResolutionAcceptUpdate, proposed
}

func minQuantity(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
