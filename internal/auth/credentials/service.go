package credentials

import (
	"context"
	"errors"
	"strings"

	"riess-auth/internal/db"
	"riess-auth/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyRegistered  = errors.New("credentials already exist")
	ErrMissingEmail       = errors.New("email is required")
	ErrMissingPassword    = errors.New("password is required")
)

// SignupInput is the local signup payload. DisplayName is derived
// from the name fields when absent.
type SignupInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Service implements local credential signup and authentication on
// top of the user repository and the credentials table.
type Service struct {
	db    *db.DB
	users *user.Repository
}

func NewService(db *db.DB, users *user.Repository) *Service {
	return &Service{db: db, users: users}
}

// SignUp creates a local account and its credentials. A user created
// earlier through social signup may add credentials to the same
// account; an account that already has credentials is rejected.
func (s *Service) SignUp(ctx context.Context, input SignupInput) (*user.User, error) {
	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" {
		return nil, ErrMissingEmail
	}
	if input.Password == "" {
		return nil, ErrMissingPassword
	}

	// Hash first so a short password never creates a user row.
	hash, version, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	u, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	if u == nil {
		username := strings.TrimSpace(input.Username)
		if username == "" {
			username, err = s.users.FindUniqueUsername(
				ctx,
				localPart(input.Email),
			)
			if err != nil {
				return nil, err
			}
		}

		displayName := strings.TrimSpace(input.FirstName + " " + input.LastName)
		if displayName == "" {
			displayName = username
		}

		u, err = s.users.Create(ctx, &user.User{
			Email:       input.Email,
			Username:    username,
			DisplayName: displayName,
			FirstName:   input.FirstName,
			LastName:    input.LastName,
			Provider:    user.ProviderLocal,
		})
		if errors.Is(err, user.ErrDuplicate) {
			return nil, ErrAlreadyRegistered
		}
		if err != nil {
			return nil, err
		}
	}

	var exists bool
	err = s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM credentials WHERE user_id = $1
		)
	`, u.ID).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyRegistered
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO credentials (user_id, password_hash, hash_version)
		VALUES ($1, $2, $3)
	`, u.ID, hash, version)
	if err != nil {
		return nil, err
	}

	return u, nil
}

// Authenticate verifies email+password and returns the account. Any
// mismatch reports ErrInvalidCredentials so callers cannot tell
// whether the account exists.
func (s *Service) Authenticate(
	ctx context.Context,
	email string,
	password string,
) (*user.User, error) {

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}

	var cred Credential
	err = s.db.QueryRowContext(ctx, `
		SELECT id, user_id, password_hash, hash_version
		FROM credentials
		WHERE user_id = $1
	`, u.ID).Scan(&cred.ID, &cred.UserID, &cred.PasswordHash, &cred.HashVersion)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := VerifyPassword(cred.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

func localPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
