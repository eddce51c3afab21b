package resolver

import (
	"context"

	"riess-auth/internal/auth"
	"riess-auth/internal/user"
)

// Resolver determines which internal user an external profile belongs
// to. It is the ONLY place where profile-to-user mapping logic lives.
type Resolver interface {
	// Resolve returns the existing user for the profile's external
	// identity, or creates one through social signup.
	Resolve(
		ctx context.Context,
		profile *auth.Profile,
	) (*user.User, error)

	// Link attaches the profile's provider to an already-authenticated
	// user as an additional provider.
	Link(
		ctx context.Context,
		u *user.User,
		profile *auth.Profile,
	) error
}
