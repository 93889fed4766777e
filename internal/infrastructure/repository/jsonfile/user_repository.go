package jsonfile

import (
	"context"
	"strings"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"

	"shotdash/internal/domain/account"
)

// userRecord is the on-disk shape: a flat object keyed by username.
// Timestamps are ISO-8601 strings for compatibility with stores written by
// earlier versions of the dashboard.
type userRecord struct {
	Email        string  `json:"email"`
	PasswordHash string  `json:"password_hash"`
	CreatedAt    string  `json:"created_at"`
	LastLogin    *string `json:"last_login"`
	IsAdmin      bool    `json:"is_admin"`
}

type UserRepository struct {
	mu   sync.Mutex
	path string
}

func NewUserRepository(path string) *UserRepository {
	return &UserRepository{path: path}
}

func (r *UserRepository) Get(_ context.Context, username string) (account.User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return account.User{}, false, err
	}

	record, ok := users[username]
	if !ok {
		return account.User{}, false, nil
	}

	user, err := recordToUser(username, record)
	if err != nil {
		return account.User{}, false, err
	}

	return user, true, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (account.User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return account.User{}, false, err
	}

	for username, record := range users {
		if strings.EqualFold(record.Email, email) {
			user, err := recordToUser(username, record)
			if err != nil {
				return account.User{}, false, err
			}
			return user, true, nil
		}
	}

	return account.User{}, false, nil
}

func (r *UserRepository) List(_ context.Context) ([]account.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}

	out := make([]account.User, 0, len(users))
	for username, record := range users {
		user, err := recordToUser(username, record)
		if err != nil {
			return nil, err
		}
		out = append(out, user)
	}

	return out, nil
}

func (r *UserRepository) Put(_ context.Context, user account.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}

	users[user.Username] = userToRecord(user)

	return writeJSONFile(r.path, users)
}

// load reads the whole store. A missing file is an empty store; a corrupt
// file is a hard error because silently discarding credentials would let
// anyone re-register existing usernames.
func (r *UserRepository) load() (map[string]userRecord, error) {
	users := make(map[string]userRecord)
	if _, err := readJSONFile(r.path, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = make(map[string]userRecord)
	}

	return users, nil
}

func recordToUser(username string, record userRecord) (account.User, error) {
	createdAt, err := time.Parse(time.RFC3339, record.CreatedAt)
	if err != nil {
		return account.User{}, crerr.Wrapf(err, "parse created_at for %q", username)
	}

	var lastLogin *time.Time
	if record.LastLogin != nil && *record.LastLogin != "" {
		parsed, err := time.Parse(time.RFC3339, *record.LastLogin)
		if err != nil {
			return account.User{}, crerr.Wrapf(err, "parse last_login for %q", username)
		}
		lastLogin = &parsed
	}

	return account.User{
		Username:     username,
		Email:        record.Email,
		PasswordHash: record.PasswordHash,
		CreatedAt:    createdAt,
		LastLogin:    lastLogin,
		IsAdmin:      record.IsAdmin,
	}, nil
}

func userToRecord(user account.User) userRecord {
	var lastLogin *string
	if user.LastLogin != nil {
		formatted := user.LastLogin.UTC().Format(time.RFC3339)
		lastLogin = &formatted
	}

	return userRecord{
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt.UTC().Format(time.RFC3339),
		LastLogin:    lastLogin,
		IsAdmin:      user.IsAdmin,
	}
}
