package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-spool-sync/internal/service"
	"github.com/MKhiriev/go-spool-sync/internal/store"
	"github.com/MKhiriev/go-spool-sync/internal/validators"
)

// errorStatuses maps sentinel errors to HTTP statuses. Entries are checked
// in order: the sync service double-wraps fatal failures over store
// internals (ErrStorageUnavailable over ErrExecutingStatement and the
// like), so the fatal sentinels must win before the store ones are tried.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrStorageUnavailable, http.StatusServiceUnavailable},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrPermissionDenied, http.StatusForbidden},
	{service.ErrSpoolNotFound, http.StatusNotFound},
	{service.ErrTombstoneNotFound, http.StatusNotFound},

	{validators.ErrEmptySerial, http.StatusBadRequest},
	{validators.ErrEmptyMaterial, http.StatusBadRequest},
	{validators.ErrNegativeQuantity, http.StatusBadRequest},
	{validators.ErrInvalidVisibility, http.StatusBadRequest},
	{validators.ErrInvalidTimestamp, http.StatusBadRequest},
	{validators.ErrEmptyIdentifier, http.StatusBadRequest},

	{store.ErrLoginAlreadyExists, http.StatusConflict},
	{store.ErrNoUserWasFound, http.StatusNotFound},
	{store.ErrSpoolNotFound, http.StatusNotFound},
	{store.ErrTombstoneNotFound, http.StatusNotFound},
	{store.ErrSyncConflict, http.StatusConflict},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatuses {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}
