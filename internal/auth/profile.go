package auth

// Profile is the normalized user profile returned by an OAuth
// provider. It contains facts only, no decisions, and is never
// persisted directly.
type Profile struct {
	Provider       string // e.g. "google", "keycloak"
	ProviderUserID string // provider-scoped unique user identifier (sub)
	Email          string // verified email returned by provider
	EmailVerified  bool   // whether provider asserts email ownership

	FirstName       string
	LastName        string
	DisplayName     string
	Username        string // empty when the provider has no username claim
	ProfileImageURL string

	// ProviderData is the raw claim set plus the access/refresh tokens
	// from the code exchange, stored verbatim on the user record.
	ProviderData map[string]any
}
