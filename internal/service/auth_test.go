package service

import (
	"context"
	"testing"

	"github.com/jobsethiopia/jobsethiopia-go/internal/model"
	"github.com/jobsethiopia/jobsethiopia-go/internal/repository"
)

// The nil-repository constructor proves validation happens before any
// storage access: a test reaching the repository would panic.
func newTestAuthService() *AuthService {
	return NewAuthService(repository.NewUserRepository(nil))
}

func TestLogin_EmptyEmail(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "",
		Password: "password123",
	})

	if err != ErrEmailRequired {
		t.Errorf("expected ErrEmailRequired, got %v", err)
	}
}

func TestLogin_EmptyPassword(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "admin@example.com",
		Password: "",
	})

	if err != ErrPasswordRequired {
		t.Errorf("expected ErrPasswordRequired, got %v", err)
	}
}

func TestChangePassword_EmptyCurrent(t *testing.T) {
	svc := newTestAuthService()

	err := svc.ChangePassword(context.Background(), 1, model.ChangePasswordRequest{
		CurrentPassword: "",
		NewPassword:     "Str0ng!pass",
	})

	if err != ErrCurrentPasswordRequired {
		t.Errorf("expected ErrCurrentPasswordRequired, got %v", err)
	}
}

func TestChangePassword_EmptyNew(t *testing.T) {
	svc := newTestAuthService()

	err := svc.ChangePassword(context.Background(), 1, model.ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "",
	})

	if err != ErrNewPasswordRequired {
		t.Errorf("expected ErrNewPasswordRequired, got %v", err)
	}
}

func TestChangePassword_TooShort(t *testing.T) {
	svc := newTestAuthService()

	err := svc.ChangePassword(context.Background(), 1, model.ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "Ab1!",
	})

	if err != ErrPasswordTooShort {
		t.Errorf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestChangePassword_SameAsCurrent(t *testing.T) {
	svc := newTestAuthService()

	// Rejected before any storage call: the nil repository would panic
	// if the service tried to look the user up.
	err := svc.ChangePassword(context.Background(), 1, model.ChangePasswordRequest{
		CurrentPassword: "Same-Pass1!",
		NewPassword:     "Same-Pass1!",
	})

	if err != ErrPasswordUnchanged {
		t.Errorf("expected ErrPasswordUnchanged, got %v", err)
	}
}

func TestChangePassword_TooWeak(t *testing.T) {
	svc := newTestAuthService()

	err := svc.ChangePassword(context.Background(), 1, model.ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "abcdefgh",
	})

	if err != ErrPasswordTooWeak {
		t.Errorf("expected ErrPasswordTooWeak, got %v", err)
	}
}
