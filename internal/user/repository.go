package user

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"riess-auth/internal/db"

	"github.com/lib/pq"
)

// ErrDuplicate signals a unique-constraint violation on create. For
// social signups the caller treats it as "already exists, re-fetch".
var ErrDuplicate = errors.New("user already exists")

const pqUniqueViolation = "23505"

// Repository is a thin lookup/persistence facade over the users table.
// Lookups return (nil, nil) on absence; only real failures are errors.
type Repository struct {
	db *db.DB
}

func NewRepository(db *db.DB) *Repository {
	return &Repository{db: db}
}

const userColumns = `
	id, email, username, display_name, first_name, last_name,
	profile_image_url, provider, provider_user_id,
	provider_data, additional_providers_data,
	created_at, updated_at
`

func (r *Repository) Create(ctx context.Context, u *User) (*User, error) {
	id := u.ID
	if id == "" {
		id = NewID()
	}

	providerData, err := json.Marshal(u.ProviderData)
	if err != nil {
		return nil, fmt.Errorf("marshal provider data: %w", err)
	}

	additional := u.AdditionalProvidersData
	if additional == nil {
		additional = map[string]map[string]any{}
	}
	additionalData, err := json.Marshal(additional)
	if err != nil {
		return nil, fmt.Errorf("marshal additional providers data: %w", err)
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO users (
			id, email, username, display_name, first_name, last_name,
			profile_image_url, provider, provider_user_id,
			provider_data, additional_providers_data
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+userColumns,
		id,
		nullable(u.Email),
		nullable(u.Username),
		u.DisplayName,
		u.FirstName,
		u.LastName,
		u.ProfileImageURL,
		u.Provider,
		nullable(u.ProviderUserID),
		providerData,
		additionalData,
	)

	created, err := scanUser(row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)
	return absentOK(scanUser(row))
}

// GetByProvider matches on the dedicated provider columns. Provider
// names never reach query construction; callers validate them against
// the configured registry.
func (r *Repository) GetByProvider(
	ctx context.Context,
	provider string,
	providerUserID string,
) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE provider = $1
		  AND provider_user_id = $2
	`, provider, providerUserID)
	return absentOK(scanUser(row))
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`, email)
	return absentOK(scanUser(row))
}

// UpdateAdditionalProviders persists the user's linked-provider map.
// The whole jsonb value is replaced, so there is no dirty-marking of
// nested fields.
func (r *Repository) UpdateAdditionalProviders(ctx context.Context, u *User) error {
	additional := u.AdditionalProvidersData
	if additional == nil {
		additional = map[string]map[string]any{}
	}
	data, err := json.Marshal(additional)
	if err != nil {
		return fmt.Errorf("marshal additional providers data: %w", err)
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET additional_providers_data = $2,
		    updated_at = NOW()
		WHERE id = $1
	`, u.ID, data)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("user %s not found", u.ID)
	}
	return nil
}

// FindUniqueUsername probes base, base1, base2, ... until a free
// username is found. Social signups use it to derive a username from
// the profile or the email local part.
func (r *Repository) FindUniqueUsername(ctx context.Context, base string) (string, error) {
	if base == "" {
		return "", errors.New("username base is empty")
	}

	candidate := base
	for suffix := 1; ; suffix++ {
		var exists bool
		err := r.db.QueryRowContext(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM users WHERE LOWER(username) = LOWER($1)
			)
		`, candidate).Scan(&exists)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = base + strconv.Itoa(suffix)
	}
}

func scanUser(row *sql.Row) (*User, error) {
	var (
		u              User
		email          sql.NullString
		username       sql.NullString
		providerUserID sql.NullString
		providerData   []byte
		additionalData []byte
	)

	err := row.Scan(
		&u.ID,
		&email,
		&username,
		&u.DisplayName,
		&u.FirstName,
		&u.LastName,
		&u.ProfileImageURL,
		&u.Provider,
		&providerUserID,
		&providerData,
		&additionalData,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.Email = email.String
	u.Username = username.String
	u.ProviderUserID = providerUserID.String

	if len(providerData) > 0 {
		if err := json.Unmarshal(providerData, &u.ProviderData); err != nil {
			return nil, fmt.Errorf("unmarshal provider data: %w", err)
		}
	}
	u.AdditionalProvidersData = map[string]map[string]any{}
	if len(additionalData) > 0 {
		if err := json.Unmarshal(additionalData, &u.AdditionalProvidersData); err != nil {
			return nil, fmt.Errorf("unmarshal additional providers data: %w", err)
		}
	}

	return &u, nil
}

func absentOK(u *User, err error) (*User, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
