package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSpoolNotFound is returned when a query or delete targets a serial
	// with no active record in the database.
	ErrSpoolNotFound = errors.New("spool was not found")

	// ErrTombstoneNotFound is returned when a tombstone lookup, restore, or
	// delete targets a serial with no stored deletion marker — typically
	// because a concurrent purge already removed it.
	ErrTombstoneNotFound = errors.New("tombstone was not found")

	// ErrSyncConflict is returned when a compare-and-swap write fails: the
	// record's last_updated no longer matches the value the caller read
	// before deciding, meaning another session modified the record in
	// between. The caller must re-read and re-resolve.
	ErrSyncConflict = errors.New("spool was modified by a concurrent session")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
