package credentials

import "time"

// Credential is one row of the credentials table: the password
// material for a user, kept apart from the user record itself.
type Credential struct {
	ID           string
	UserID       string
	PasswordHash string
	HashVersion  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
