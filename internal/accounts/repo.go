package accounts

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("account not found")
	ErrEmailTaken = errors.New("email already registered")
)

// Repo persists user accounts.
type Repo interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, userID string) (User, error)
	// Upsert creates or refreshes an account keyed by email, used by the
	// OAuth flow where the identity provider owns the profile.
	Upsert(ctx context.Context, user User) (User, error)
}
