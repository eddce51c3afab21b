package user

import "time"

// ProviderLocal tags accounts created through credential signup.
// Social-first accounts carry the originating provider's name instead.
const ProviderLocal = "local"

// User is one application account. Password material lives in the
// credentials table and is never part of this struct.
type User struct {
	ID              string `json:"id"`
	Email           string `json:"email,omitempty"`
	Username        string `json:"username,omitempty"`
	DisplayName     string `json:"displayName"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	ProfileImageURL string `json:"profileImageURL"`

	// Provider is the primary auth method tag. ProviderUserID and
	// ProviderData are set only for social-first accounts.
	Provider       string         `json:"provider"`
	ProviderUserID string         `json:"-"`
	ProviderData   map[string]any `json:"-"`

	// AdditionalProvidersData maps provider name to the raw profile
	// received when that provider was linked after initial signup.
	AdditionalProvidersData map[string]map[string]any `json:"additionalProvidersData"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasProvider reports whether the named provider is the primary one or
// already linked as an additional provider.
func (u *User) HasProvider(name string) bool {
	if u.Provider == name {
		return true
	}
	_, ok := u.AdditionalProvidersData[name]
	return ok
}
