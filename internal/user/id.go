package user

import "github.com/google/uuid"

// NewID mints a user identifier. IDs are generated app-side so a
// created User is fully populated before the insert round-trips.
func NewID() string {
	return uuid.NewString()
}
