package model

import "time"

// User represents an application account as stored in the `users` table.
// The role distinguishes players, who search courts and book slots, from
// owners, who manage establishments and their courts.
//
// Fields:
//
//	ID           – primary key identifier of the user.
//	Email        – unique email address.
//	PasswordHash – bcrypt hashed password.
//	Name         – display name shown on bookings and match history.
//	Role         – account role (PLAYER or OWNER).
//	IsActive     – whether the account is active.
//	CreatedAt    – timestamp of creation.
//	UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	Name         string    // users.name
	Role         string    // users.role
	IsActive     bool      // users.is_active
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// Account roles accepted by the API. The values match the `role` claim
// embedded in access tokens.
const (
	RolePlayer = "PLAYER"
	RoleOwner  = "OWNER"
)

// RefreshToken models an entry in the `refresh_tokens` table. The plain
// token is never stored; only its SHA-256 hash.
//
// Fields:
//
//	ID        – primary key identifier.
//	UserID    – owner of the token.
//	TokenHash – SHA-256 hex digest of the token value.
//	ExpiresAt – expiration timestamp of the token.
//	RevokedAt – when the token was revoked (null if still active).
//	CreatedAt – timestamp of creation.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
