package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jobsethiopia/jobsethiopia-go/internal/crypto"
	"github.com/jobsethiopia/jobsethiopia-go/internal/model"
	"github.com/jobsethiopia/jobsethiopia-go/internal/repository"
	"github.com/jobsethiopia/jobsethiopia-go/internal/session"
)

// AuthService handles login and change-password business logic.
type AuthService struct {
	users *repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(users *repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Login checks credentials and returns the session identity to establish.
// Invalid credentials of any kind (unknown email, wrong password) yield
// ErrInvalidCredentials without distinguishing the cause.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*session.Payload, error) {
	if req.Email == "" {
		return nil, ErrEmailRequired
	}
	if req.Password == "" {
		return nil, ErrPasswordRequired
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		slog.Error("login: user lookup failed", "error", err)
		return nil, ErrStorage
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		slog.Error("login: password verification failed", "error", err)
		return nil, ErrStorage
	}
	if !match {
		return nil, ErrInvalidCredentials
	}

	return &session.Payload{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}, nil
}

// ChangePassword validates and applies a password change for the given
// user. All validation runs before any storage access; in particular a new
// password equal to the current one is rejected without touching the store.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, req model.ChangePasswordRequest) error {
	if req.CurrentPassword == "" {
		return ErrCurrentPasswordRequired
	}
	if req.NewPassword == "" {
		return ErrNewPasswordRequired
	}
	if len(req.NewPassword) < crypto.MinPasswordLength {
		return ErrPasswordTooShort
	}
	if req.NewPassword == req.CurrentPassword {
		return ErrPasswordUnchanged
	}
	if crypto.CheckStrength(req.NewPassword).Score < crypto.MinStrengthScore {
		return ErrPasswordTooWeak
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrInvalidCredentials
		}
		slog.Error("change-password: user lookup failed", "error", err)
		return ErrStorage
	}

	match, err := crypto.VerifyPassword(req.CurrentPassword, user.PasswordHash)
	if err != nil {
		slog.Error("change-password: verification failed", "error", err)
		return ErrStorage
	}
	if !match {
		return ErrInvalidCredentials
	}

	hash, err := crypto.HashPassword(req.NewPassword)
	if err != nil {
		slog.Error("change-password: hashing failed", "error", err)
		return ErrStorage
	}

	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		slog.Error("change-password: update failed", "error", err)
		return ErrStorage
	}

	return nil
}

// EnsureAdmin provisions the operator account on startup if it does not
// exist yet. An already-provisioned email is not an error.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		Role:         "admin",
	}

	err = s.users.Create(ctx, user)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return nil
	}
	return err
}
