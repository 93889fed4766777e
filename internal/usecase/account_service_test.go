package usecase

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"shotdash/internal/infrastructure/repository/jsonfile"
)

func newAccountService(t *testing.T) *AccountService {
	t.Helper()
	repo := jsonfile.NewUserRepository(filepath.Join(t.TempDir(), "users.json"))
	return NewAccountService(repo, nil)
}

func TestAccountService_RegisterThenAuthenticate(t *testing.T) {
	svc := newAccountService(t)

	info, err := svc.Register(t.Context(), "alice", "a@b.com", "Passw0rd!")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if info.Username != "alice" || info.IsAdmin {
		t.Fatalf("unexpected info: %+v", info)
	}
	if info.LastLogin != nil {
		t.Fatalf("last_login must start empty")
	}

	authed, err := svc.Authenticate(t.Context(), "alice", "Passw0rd!")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if authed.LastLogin == nil {
		t.Fatalf("expected last_login to be set after authentication")
	}
}

func TestAccountService_AuthenticateFailsUniformly(t *testing.T) {
	svc := newAccountService(t)

	if _, err := svc.Register(t.Context(), "alice", "a@b.com", "Passw0rd!"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, wrongPassword := svc.Authenticate(t.Context(), "alice", "wrong")
	_, unknownUser := svc.Authenticate(t.Context(), "nobody", "Passw0rd!")

	if !errors.Is(wrongPassword, ErrIncorrectCredentials) {
		t.Fatalf("expected ErrIncorrectCredentials for wrong password, got %v", wrongPassword)
	}
	if !errors.Is(unknownUser, ErrIncorrectCredentials) {
		t.Fatalf("expected ErrIncorrectCredentials for unknown user, got %v", unknownUser)
	}
	if wrongPassword.Error() != unknownUser.Error() {
		t.Fatalf("messages must not distinguish the cases: %q vs %q", wrongPassword, unknownUser)
	}
}

func TestAccountService_RegisterRejectsDuplicates(t *testing.T) {
	svc := newAccountService(t)

	if _, err := svc.Register(t.Context(), "alice", "a@b.com", "Passw0rd!"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.Register(t.Context(), "alice", "other@b.com", "Passw0rd!"); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists for duplicate username, got %v", err)
	}
	if _, err := svc.Register(t.Context(), "bob", "a@b.com", "Passw0rd!"); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists for duplicate email, got %v", err)
	}
}

func TestAccountService_RegisterValidation(t *testing.T) {
	svc := newAccountService(t)

	if _, err := svc.Register(t.Context(), "al", "a@b.com", "Passw0rd!"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for short username, got %v", err)
	}
	if _, err := svc.Register(t.Context(), "alice", "not-an-email", "Passw0rd!"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad email, got %v", err)
	}

	_, err := svc.Register(t.Context(), "alice", "a@b.com", "weak")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for weak password, got %v", err)
	}
	if !strings.Contains(err.Error(), "uppercase") {
		t.Fatalf("weak password error should name the missing rules: %v", err)
	}
}

func TestAccountService_UpdatePassword(t *testing.T) {
	svc := newAccountService(t)

	if _, err := svc.Register(t.Context(), "alice", "a@b.com", "Passw0rd!"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.UpdatePassword(t.Context(), "alice", "wrong", "NewPassw0rd!"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for wrong old password, got %v", err)
	}
	if err := svc.UpdatePassword(t.Context(), "alice", "Passw0rd!", "weak"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for weak new password, got %v", err)
	}
	if err := svc.UpdatePassword(t.Context(), "nobody", "Passw0rd!", "NewPassw0rd!"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown user, got %v", err)
	}

	if err := svc.UpdatePassword(t.Context(), "alice", "Passw0rd!", "NewPassw0rd!"); err != nil {
		t.Fatalf("update password failed: %v", err)
	}
	if _, err := svc.Authenticate(t.Context(), "alice", "Passw0rd!"); err == nil {
		t.Fatalf("old password must stop working")
	}
	if _, err := svc.Authenticate(t.Context(), "alice", "NewPassw0rd!"); err != nil {
		t.Fatalf("new password must authenticate: %v", err)
	}
}

func TestAccountService_SetAdminAndIsAdmin(t *testing.T) {
	svc := newAccountService(t)

	if _, err := svc.Register(t.Context(), "alice", "a@b.com", "Passw0rd!"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.SetAdmin(t.Context(), "nobody", true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := svc.SetAdmin(t.Context(), "alice", true); err != nil {
		t.Fatalf("set admin failed: %v", err)
	}
	isAdmin, err := svc.IsAdmin(t.Context(), "alice")
	if err != nil || !isAdmin {
		t.Fatalf("expected alice to be admin, got %v %v", isAdmin, err)
	}

	if err := svc.SetAdmin(t.Context(), "alice", false); err != nil {
		t.Fatalf("unset admin failed: %v", err)
	}
	isAdmin, err = svc.IsAdmin(t.Context(), "alice")
	if err != nil || isAdmin {
		t.Fatalf("expected admin flag cleared, got %v %v", isAdmin, err)
	}
}

func TestAccountService_ListAllAndExists(t *testing.T) {
	svc := newAccountService(t)

	for _, u := range []struct{ name, email string }{
		{"carol", "c@b.com"},
		{"alice", "a@b.com"},
		{"bob", "b@b.com"},
	} {
		if _, err := svc.Register(t.Context(), u.name, u.email, "Passw0rd!"); err != nil {
			t.Fatalf("register %s failed: %v", u.name, err)
		}
	}

	infos, err := svc.ListAll(t.Context())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(infos) != 3 {
		t.Fatalf("expected 3 users, got %d", len(infos))
	}
	if infos[0].Username != "alice" || infos[2].Username != "carol" {
		t.Fatalf("expected username-sorted output: %+v", infos)
	}

	exists, err := svc.Exists(t.Context(), "bob")
	if err != nil || !exists {
		t.Fatalf("expected bob to exist, got %v %v", exists, err)
	}
	exists, err = svc.Exists(t.Context(), "nobody")
	if err != nil || exists {
		t.Fatalf("expected nobody to be absent, got %v %v", exists, err)
	}
}

func TestAccountService_GetInfo(t *testing.T) {
	svc := newAccountService(t)

	if _, exists, err := svc.GetInfo(t.Context(), "alice"); err != nil || exists {
		t.Fatalf("expected no user yet, got exists=%v err=%v", exists, err)
	}

	if _, err := svc.Register(t.Context(), "alice", "a@b.com", "Passw0rd!"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	info, exists, err := svc.GetInfo(t.Context(), "alice")
	if err != nil || !exists {
		t.Fatalf("expected user, got exists=%v err=%v", exists, err)
	}
	if info.Email != "a@b.com" {
		t.Fatalf("unexpected info: %+v", info)
	}
}
