package ports

import (
	"context"
	"time"

	"github.com/conectar/clients-api/internal/core/domain"
)

// ListUsersFilter carries the optional predicates for listing users. A zero
// field means the predicate is omitted.
type ListUsersFilter struct {
	Name   string // contains match
	Email  string // contains match
	Role   string // exact match
	SortBy string // empty = created_at descending
	Order  string // "asc" or "desc"; default asc when SortBy is set
}

// UserPatch carries the mutable profile fields. Nil pointers are left
// untouched by the update.
type UserPatch struct {
	Name  *string
	Email *string
	Role  *string
}

// GoogleLink carries the external identity attributes attached to a user on
// Google sign-in. Applying it also flips the provider to "google".
type GoogleLink struct {
	GoogleID string
	Photo    string
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, error)
	// ListInactive returns users whose last login is older than threshold,
	// including users that never logged in and were created before it,
	// sorted by creation time ascending.
	ListInactive(ctx context.Context, threshold time.Time) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id string, patch UserPatch) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	LinkGoogle(ctx context.Context, id string, link GoogleLink) error
	// Delete removes the user and returns the number of affected documents.
	Delete(ctx context.Context, id string) (int64, error)
}
