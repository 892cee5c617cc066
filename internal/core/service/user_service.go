package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/conectar/clients-api/internal/core/domain"
	"github.com/conectar/clients-api/internal/core/ports"
)

const (
	minPasswordLen      = 6
	inactivityThreshold = 30 * 24 * time.Hour
)

// UserService implements account management, including the deletion cascade
// over owned client records.
type UserService struct {
	users   ports.UserRepository
	clients ports.ClientRepository
	logger  zerolog.Logger
}

func NewUserService(users ports.UserRepository, clients ports.ClientRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, clients: clients, logger: logger}
}

// Register creates a local account. Duplicate emails are not pre-checked;
// the unique index violation comes back from the repository as ErrEmailTaken.
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleAdmin && role != domain.RoleUser {
		return nil, fmt.Errorf("unknown role %q", input.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		Provider:     domain.ProviderLocal,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return created.Sanitized(), nil
}

func (s *UserService) List(ctx context.Context, filter ports.ListUsersFilter) ([]*domain.User, error) {
	users, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for i, u := range users {
		users[i] = u.Sanitized()
	}
	return users, nil
}

// ListInactive returns users without a login in the last 30 days. Users who
// never logged in count as inactive once their account is older than that.
func (s *UserService) ListInactive(ctx context.Context) ([]*domain.User, error) {
	threshold := time.Now().UTC().Add(-inactivityThreshold)
	users, err := s.users.ListInactive(ctx, threshold)
	if err != nil {
		return nil, err
	}
	for i, u := range users {
		users[i] = u.Sanitized()
	}
	return users, nil
}

func (s *UserService) Notifications(ctx context.Context) (*ports.NotificationsResult, error) {
	inactive, err := s.ListInactive(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.NotificationsResult{
		InactiveCount: int64(len(inactive)),
		InactiveUsers: inactive,
		TotalUsers:    total,
		LastUpdate:    time.Now().UTC(),
	}, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

// Update applies a partial profile patch. A non-admin caller may only edit
// their own profile and cannot change roles; a role field in their patch is
// dropped silently rather than rejected.
func (s *UserService) Update(ctx context.Context, claims domain.Claims, id string, patch ports.UserPatch) (*domain.User, error) {
	if !claims.CanAccess(id) {
		return nil, domain.ErrForbidden
	}
	if claims.Role != domain.RoleAdmin {
		patch.Role = nil
	}

	if err := s.users.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// UpdatePassword changes a local account's password. Only the account
// holder may change it, admins included: the route names another account
// explicitly, so this is a deliberate deny rather than a "not found".
func (s *UserService) UpdatePassword(ctx context.Context, claims domain.Claims, id string, input ports.UpdatePasswordInput) error {
	if claims.UserID != id {
		return domain.ErrForbidden
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if user.Provider == domain.ProviderGoogle || user.PasswordHash == "" {
		return domain.ErrGoogleAccount
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)) != nil {
		return domain.ErrWrongPassword
	}
	if len(input.NewPassword) < minPasswordLen {
		return domain.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, id, string(hash)); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("password updated")
	return nil
}

// Delete removes an account along with every client record it owns, in that
// order. Admins cannot delete themselves.
func (s *UserService) Delete(ctx context.Context, claims domain.Claims, id string) (*ports.DeleteUserResult, error) {
	if claims.UserID == id {
		return nil, domain.ErrSelfDelete
	}

	if _, err := s.users.FindByID(ctx, id); err != nil {
		return nil, err
	}

	clientCount, err := s.clients.CountByOwner(ctx, id)
	if err != nil {
		return nil, err
	}
	if clientCount > 0 {
		if _, err := s.clients.DeleteByOwner(ctx, id); err != nil {
			return nil, fmt.Errorf("delete owned clients: %w", err)
		}
	}

	affected, err := s.users.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return &ports.DeleteUserResult{Message: "Failed to delete account", ClientsDeleted: clientCount}, nil
	}

	message := "Account deleted"
	if clientCount > 0 {
		message = fmt.Sprintf("Account and %d client(s) deleted", clientCount)
	}

	s.logger.Info().Str("user_id", id).Int64("clients_deleted", clientCount).Msg("account deleted")
	return &ports.DeleteUserResult{Message: message, ClientsDeleted: clientCount}, nil
}
