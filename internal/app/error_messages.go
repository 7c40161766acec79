// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// spool synchronization server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgTokenCreationFailed is returned when the registration or login
	// handler could not issue a session token.
	MsgTokenCreationFailed = "creation of token failed"

	// MsgSyncFailed is returned when a synchronization session aborts as a
	// whole (authentication or storage failure); per-item problems are
	// reported inside the session response instead.
	MsgSyncFailed = "sync session failed"

	// MsgTombstoneListingFailed is returned when retained deletion markers
	// cannot be read from storage.
	MsgTombstoneListingFailed = "tombstone listing failed"

	// MsgSerialRequired is returned when a restore request omits the record
	// serial path parameter.
	MsgSerialRequired = "serial is required"

	// MsgNoTombstoneRetained is returned when a restore targets a serial
	// with no retained deletion marker: the record was never deleted, or
	// the marker already aged out of the retention window.
	MsgNoTombstoneRetained = "no tombstone retained for serial"

	// MsgRestoreFailed is returned when a restore fails for any reason
	// other than a missing deletion marker.
	MsgRestoreFailed = "restore failed"

	// MsgStreamingUnsupported is returned when the transport cannot flush
	// partial responses, which the live event stream requires.
	MsgStreamingUnsupported = "streaming unsupported"
)
