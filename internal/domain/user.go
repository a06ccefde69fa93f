// Package domain contains entities without logic, just meta-data
package domain

import (
	"errors"
	"time"
)

const (
	MaxUsernameLen = 50
	MaxEmailLen    = 255
)

var (
	ErrUsernameEmpty   = errors.New("username empty")
	ErrUsernameTooLong = errors.New("username too long")
	ErrEmailEmpty      = errors.New("email empty")
)

type UserID int64

type User struct {
	ID           UserID    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Provider     string    `json:"provider,omitempty"`
	ProviderID   string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewUser is a tiny helper to avoid ad-hoc struct literals in adapters.
func NewUser(username, email string) (*User, error) {
	if username == "" {
		return nil, ErrUsernameEmpty
	}
	if len(username) > MaxUsernameLen {
		return nil, ErrUsernameTooLong
	}
	if email == "" {
		return nil, ErrEmailEmpty
	}
	return &User{Username: username, Email: email, Provider: "local"}, nil
}
