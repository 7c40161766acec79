// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EventType classifies a change-notification frame pushed to live observers.
type EventType string

const (
	EventCreate    EventType = "create"
	EventUpdate    EventType = "update"
	EventDelete    EventType = "delete"
	EventConnected EventType = "connected"

	// EventHeartbeat is never serialized as a data frame; the stream
	// handler renders it as a comment-only frame to defeat idle-connection
	// timeouts.
	EventHeartbeat EventType = "heartbeat"
)

// ChangeEvent is the small notification pushed to every live observer when
// a record changes. It is a hint to trigger an earlier pull, never a
// substitute for the authoritative sync response.
type ChangeEvent struct {
	// Type is the kind of change.
	Type EventType `json:"type"`

	// Serial identifies the affected record. Empty for connected and
	// heartbeat frames.
	Serial string `json:"serial,omitempty"`

	// Timestamp is the event time, epoch milliseconds.
	Timestamp int64 `json:"timestamp"`
}
