package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrPermissionDenied marks a per-record authorization failure: the
	// caller may neither read nor write the record it targeted. Reported
	// per item, never fails the whole session.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrSpoolNotFound marks a deletion or restore request that named a
	// record unknown to the server. Reported per item.
	ErrSpoolNotFound = errors.New("spool not found")

	// ErrTombstoneNotFound marks a restore request for a serial with no
	// retained deletion marker (never deleted, or already purged).
	ErrTombstoneNotFound = errors.New("tombstone not found")

	// ErrStorageUnavailable marks a backend failure. Unlike the per-item
	// errors above it aborts the whole synchronization session.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
