package ports

import (
	"context"

	"github.com/conectar/clients-api/internal/core/domain"
)

// GoogleProfile is the verified identity returned by the external provider.
type GoogleProfile struct {
	Email   string
	Name    string
	Subject string
	Picture string
}

// IdentityVerifier checks an opaque Google credential and returns the
// verified profile, or an error when the credential is invalid.
type IdentityVerifier interface {
	Verify(ctx context.Context, credential string) (*GoogleProfile, error)
}

// AuthService implements credential validation and token issuance.
type AuthService interface {
	// ValidateCredentials checks an email/password pair and returns the
	// matching user without its password hash. Any credential problem is
	// reported as domain.ErrInvalidCredentials.
	ValidateCredentials(ctx context.Context, email, password string) (*domain.User, error)
	// Login validates credentials, records the login time and returns a
	// signed bearer token together with the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// LoginWithGoogle verifies the Google credential, links or creates the
	// matching account, records the login time and returns a token.
	LoginWithGoogle(ctx context.Context, credential string) (string, *domain.User, error)
}
