package model

import "time"

// User represents an operator account. Accounts are provisioned at
// startup and only ever mutated through change-password.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LoginRequest represents a login attempt.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse is the identity returned for an authenticated session.
type SessionResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ChangePasswordRequest represents a change-password attempt by the
// currently authenticated operator.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ContactRequest is a message submitted through the public contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
