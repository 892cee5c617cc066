package ports

import (
	"context"
	"time"

	"github.com/conectar/clients-api/internal/core/domain"
)

// RegisterInput carries the fields for local account creation. Role is
// optional and defaults to "user".
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdatePasswordInput carries a password change request.
type UpdatePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// NotificationsResult is the admin dashboard summary.
type NotificationsResult struct {
	InactiveCount int64          `json:"inactive_count"`
	InactiveUsers []*domain.User `json:"inactive_users"`
	TotalUsers    int64          `json:"total_users"`
	LastUpdate    time.Time      `json:"last_update"`
}

// DeleteUserResult reports the outcome of an account deletion, including
// how many owned client records went with it.
type DeleteUserResult struct {
	Message        string `json:"message"`
	ClientsDeleted int64  `json:"clients_deleted"`
}

// UserService defines account management use cases.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, error)
	ListInactive(ctx context.Context) ([]*domain.User, error)
	Notifications(ctx context.Context) (*NotificationsResult, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	// Update applies a partial profile patch. Non-admin callers may only
	// update themselves, and their role changes are silently dropped.
	Update(ctx context.Context, claims domain.Claims, id string, patch UserPatch) (*domain.User, error)
	// UpdatePassword changes a local account's password. Only the account
	// holder may do it, admins included.
	UpdatePassword(ctx context.Context, claims domain.Claims, id string, input UpdatePasswordInput) error
	// Delete removes the account and cascades over its client records.
	Delete(ctx context.Context, claims domain.Claims, id string) (*DeleteUserResult, error)
}
