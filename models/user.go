package models

import "time"

// Role distinguishes ordinary users from administrators, who bypass
// per-record ownership and visibility checks.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	// Typically used during authentication.
	Login string `json:"login"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Password carries the plaintext password on register/login requests
	// only. It is hashed with argon2id before storage and never persisted.
	Password string `json:"password,omitempty"`

	// PasswordHash is the encoded argon2id hash stored for the account.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// Role controls whether ownership and visibility checks apply to
	// this account during reconciliation.
	Role Role `json:"role,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Caller is the authenticated identity a sync session runs under,
// extracted from a verified token.
type Caller struct {
	// ID is the user identifier from the token subject.
	ID int64

	// Role is the account role carried in the token claims.
	Role Role

	// Device optionally names the device the session originates from;
	// recorded on tombstones as DeletedBy.
	Device string
}

// IsAdmin reports whether the caller bypasses ownership checks.
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}
