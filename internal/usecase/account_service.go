package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"shotdash/internal/domain/account"
	"shotdash/internal/platform/logging"
)

type AccountService struct {
	userRepo account.Repository
	logger   *logging.Logger
	now      func() time.Time
}

func NewAccountService(userRepo account.Repository, logger *logging.Logger) *AccountService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &AccountService{
		userRepo: userRepo,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Register creates a new account. Username, email and password rules are all
// checked here; duplicate usernames and emails are rejected.
func (s *AccountService) Register(ctx context.Context, username, email, password string) (account.Info, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.Register")
	defer span.End()

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if len(username) < 3 {
		return account.Info{}, fmt.Errorf("%w: username must be at least 3 characters", ErrInvalidInput)
	}
	if err := account.ValidatePassword(password); err != nil {
		return account.Info{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if !account.ValidateEmail(email) {
		return account.Info{}, fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}

	if _, exists, err := s.userRepo.Get(ctx, username); err != nil {
		return account.Info{}, fmt.Errorf("get user: %w", err)
	} else if exists {
		return account.Info{}, fmt.Errorf("%w: user %q already exists", ErrAlreadyExists, username)
	}

	if _, exists, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		return account.Info{}, fmt.Errorf("get user by email: %w", err)
	} else if exists {
		return account.Info{}, fmt.Errorf("%w: email %q is already registered", ErrAlreadyExists, email)
	}

	user := account.User{
		Username:     username,
		Email:        email,
		PasswordHash: account.HashPassword(password),
		CreatedAt:    s.now(),
	}
	if err := s.userRepo.Put(ctx, user); err != nil {
		return account.Info{}, fmt.Errorf("store user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", "username", username)

	return user.Info(), nil
}

// Authenticate verifies credentials and records the login time. Unknown
// users and wrong passwords produce the same error.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (account.Info, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.Authenticate")
	defer span.End()

	username = strings.TrimSpace(username)

	user, exists, err := s.userRepo.Get(ctx, username)
	if err != nil {
		return account.Info{}, fmt.Errorf("get user: %w", err)
	}
	if !exists || user.PasswordHash != account.HashPassword(password) {
		return account.Info{}, ErrIncorrectCredentials
	}

	loginAt := s.now()
	user.LastLogin = &loginAt
	if err := s.userRepo.Put(ctx, user); err != nil {
		return account.Info{}, fmt.Errorf("store last login: %w", err)
	}

	s.logger.InfoContext(ctx, "user authenticated", "username", username)

	return user.Info(), nil
}

// UpdatePassword replaces the stored hash after re-validating strength and
// checking the previous password.
func (s *AccountService) UpdatePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.UpdatePassword")
	defer span.End()

	if err := account.ValidatePassword(newPassword); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	user, exists, err := s.userRepo.Get(ctx, strings.TrimSpace(username))
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: user=%s", ErrNotFound, username)
	}
	if user.PasswordHash != account.HashPassword(oldPassword) {
		return fmt.Errorf("%w: previous password is incorrect", ErrUnauthorized)
	}

	user.PasswordHash = account.HashPassword(newPassword)
	if err := s.userRepo.Put(ctx, user); err != nil {
		return fmt.Errorf("store password: %w", err)
	}

	s.logger.InfoContext(ctx, "password updated", "username", username)

	return nil
}

func (s *AccountService) SetAdmin(ctx context.Context, username string, isAdmin bool) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.SetAdmin")
	defer span.End()

	user, exists, err := s.userRepo.Get(ctx, strings.TrimSpace(username))
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: user=%s", ErrNotFound, username)
	}

	user.IsAdmin = isAdmin
	if err := s.userRepo.Put(ctx, user); err != nil {
		return fmt.Errorf("store admin flag: %w", err)
	}

	s.logger.InfoContext(ctx, "admin flag updated", "username", username, "is_admin", isAdmin)

	return nil
}

func (s *AccountService) GetInfo(ctx context.Context, username string) (account.Info, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.GetInfo")
	defer span.End()

	user, exists, err := s.userRepo.Get(ctx, strings.TrimSpace(username))
	if err != nil {
		return account.Info{}, false, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return account.Info{}, false, nil
	}

	return user.Info(), true, nil
}

// ListAll returns every account without password hashes, sorted by username.
func (s *AccountService) ListAll(ctx context.Context) ([]account.Info, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.ListAll")
	defer span.End()

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]account.Info, 0, len(users))
	for _, user := range users {
		out = append(out, user.Info())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })

	return out, nil
}

func (s *AccountService) Exists(ctx context.Context, username string) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.Exists")
	defer span.End()

	_, exists, err := s.userRepo.Get(ctx, strings.TrimSpace(username))
	if err != nil {
		return false, fmt.Errorf("get user: %w", err)
	}

	return exists, nil
}

func (s *AccountService) IsAdmin(ctx context.Context, username string) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.IsAdmin")
	defer span.End()

	user, exists, err := s.userRepo.Get(ctx, strings.TrimSpace(username))
	if err != nil {
		return false, fmt.Errorf("get user: %w", err)
	}

	return exists && user.IsAdmin, nil
}
