package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a stored user with authentication material.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string `json:"-"`
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the outward view of a user. It has no password field.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public strips authentication material from the user.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Identity returns the token payload for the user.
func (u User) Identity() Identity {
	return Identity{ID: u.ID, Email: u.Email, Name: u.Name}
}

// Identity is the authenticated caller decoded from a bearer token.
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// RegisterParams contains parameters to register a user.
type RegisterParams struct {
	Email    string
	Password string
	Name     string
}

// LoginParams contains user credentials.
type LoginParams struct {
	Email    string
	Password string
}

// AuthResult is returned by successful registration and login.
type AuthResult struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}
