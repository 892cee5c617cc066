package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/conectar/clients-api/internal/core/domain"
	"github.com/conectar/clients-api/internal/core/ports"
)

// AuthService implements credential validation and token issuance for both
// local and Google sign-in.
type AuthService struct {
	users     ports.UserRepository
	verifier  ports.IdentityVerifier
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, verifier ports.IdentityVerifier, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, verifier: verifier, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// ValidateCredentials checks an email/password pair. Unknown email, a
// passwordless (Google) account and a wrong password all collapse into
// ErrInvalidCredentials; bcrypt is never invoked unless a hash is present.
// Storage failures other than "not found" propagate untouched.
func (s *AuthService) ValidateCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Provider == domain.ProviderGoogle || user.PasswordHash == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user.Sanitized(), nil
}

// Login validates credentials, records the login time and issues a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.ValidateCredentials(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return "", nil, fmt.Errorf("update last login: %w", err)
	}
	user.LastLoginAt = &now

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("provider", domain.ProviderLocal).Msg("user logged in")
	return token, user, nil
}

// LoginWithGoogle verifies the opaque Google credential, then resolves the
// account: by google_id first, by email next (linking the local account and
// clearing its password hash, which disables password login), and failing
// both, a fresh Google-provider account is created.
func (s *AuthService) LoginWithGoogle(ctx context.Context, credential string) (string, *domain.User, error) {
	profile, err := s.verifier.Verify(ctx, credential)
	if err != nil {
		s.logger.Warn().Err(err).Msg("google credential rejected")
		return "", nil, domain.ErrGoogleVerification
	}

	user, err := s.users.FindByGoogleID(ctx, profile.Subject)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}
	if err != nil {
		user, err = s.users.FindByEmail(ctx, profile.Email)
	}
	switch {
	case err == nil:
		if user.GoogleID != profile.Subject {
			link := ports.GoogleLink{GoogleID: profile.Subject, Photo: profile.Picture}
			if err := s.users.LinkGoogle(ctx, user.ID, link); err != nil {
				return "", nil, fmt.Errorf("link google identity: %w", err)
			}
			if user, err = s.users.FindByID(ctx, user.ID); err != nil {
				return "", nil, err
			}
		}
	case errors.Is(err, domain.ErrUserNotFound):
		now := time.Now().UTC()
		user = &domain.User{
			ID:        uuid.NewString(),
			Name:      profile.Name,
			Email:     profile.Email,
			Role:      domain.RoleUser,
			Provider:  domain.ProviderGoogle,
			GoogleID:  profile.Subject,
			Photo:     profile.Picture,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if user, err = s.users.Create(ctx, user); err != nil {
			return "", nil, fmt.Errorf("create google user: %w", err)
		}
	default:
		return "", nil, err
	}

	now := time.Now().UTC()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return "", nil, fmt.Errorf("update last login: %w", err)
	}
	user.LastLoginAt = &now
	user = user.Sanitized()

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("provider", domain.ProviderGoogle).Msg("user logged in")
	return token, user, nil
}

// generateToken signs the identity claims with a fixed expiry. The issuer
// itself has no side effects; login-time bookkeeping happens in the flows.
func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
