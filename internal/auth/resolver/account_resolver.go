package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"riess-auth/internal/auth"
	"riess-auth/internal/user"
)

var (
	// ErrLookup wraps repository failures during the identity lookup.
	ErrLookup = errors.New("provider identity lookup failed")
	// ErrSignup wraps repository failures during social signup.
	ErrSignup = errors.New("social signup failed")
	// ErrFlow guards the unreachable neither-found-nor-created state.
	ErrFlow = errors.New("unable to resolve oauth profile")

	ErrAlreadyLinked = errors.New("user is already connected to this provider")
)

// UserStore is the slice of the user repository the resolver needs.
type UserStore interface {
	GetByProvider(ctx context.Context, provider, providerUserID string) (*user.User, error)
	Create(ctx context.Context, u *user.User) (*user.User, error)
	UpdateAdditionalProviders(ctx context.Context, u *user.User) error
	FindUniqueUsername(ctx context.Context, base string) (string, error)
}

// AccountResolver implements lookup-or-create over the user store.
type AccountResolver struct {
	users UserStore
}

func NewAccountResolver(users UserStore) *AccountResolver {
	return &AccountResolver{users: users}
}

// Resolve finds the user owning (provider, provider user id) or
// creates one from the profile. A duplicate-key failure during create
// means a concurrent signup won the race, so the identity is fetched
// again instead of failing.
func (r *AccountResolver) Resolve(
	ctx context.Context,
	profile *auth.Profile,
) (*user.User, error) {

	if profile == nil {
		return nil, fmt.Errorf("%w: profile is nil", ErrFlow)
	}

	existing, err := r.users.GetByProvider(
		ctx,
		profile.Provider,
		profile.ProviderUserID,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLookup, err)
	}
	if existing != nil {
		return existing, nil
	}

	created, err := r.signUp(ctx, profile)
	if errors.Is(err, user.ErrDuplicate) {
		existing, err = r.users.GetByProvider(
			ctx,
			profile.Provider,
			profile.ProviderUserID,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLookup, err)
		}
		if existing != nil {
			return existing, nil
		}
		return nil, ErrFlow
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSignup, err)
	}
	if created == nil {
		return nil, ErrFlow
	}

	return created, nil
}

func (r *AccountResolver) signUp(
	ctx context.Context,
	profile *auth.Profile,
) (*user.User, error) {

	base := profile.Username
	if base == "" {
		base = localPart(profile.Email)
	}
	username, err := r.users.FindUniqueUsername(ctx, base)
	if err != nil {
		return nil, err
	}

	return r.users.Create(ctx, &user.User{
		Email:           profile.Email,
		Username:        username,
		DisplayName:     profile.DisplayName,
		FirstName:       profile.FirstName,
		LastName:        profile.LastName,
		ProfileImageURL: profile.ProfileImageURL,
		Provider:        profile.Provider,
		ProviderUserID:  profile.ProviderUserID,
		ProviderData:    profile.ProviderData,
	})
}

// Link joins the profile's provider data to an existing account's
// additional providers. Re-linking the primary provider or one that is
// already attached is rejected.
func (r *AccountResolver) Link(
	ctx context.Context,
	u *user.User,
	profile *auth.Profile,
) error {

	if u == nil || profile == nil {
		return fmt.Errorf("%w: user or profile is nil", ErrFlow)
	}
	if u.HasProvider(profile.Provider) {
		return ErrAlreadyLinked
	}

	if u.AdditionalProvidersData == nil {
		u.AdditionalProvidersData = map[string]map[string]any{}
	}
	u.AdditionalProvidersData[profile.Provider] = profile.ProviderData

	if err := r.users.UpdateAdditionalProviders(ctx, u); err != nil {
		return fmt.Errorf("%w: %v", ErrSignup, err)
	}
	return nil
}

func localPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
