// Package google verifies Google Sign-In ID-token credentials against
// Google's tokeninfo endpoint.
package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/conectar/clients-api/internal/core/ports"
)

const defaultTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// Verifier checks an opaque credential (a Google ID token) and returns the
// verified profile. The HTTP client and endpoint are injectable for tests.
type Verifier struct {
	clientID     string
	tokenInfoURL string
	httpClient   *http.Client
}

// Option customises a Verifier.
type Option func(*Verifier)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(v *Verifier) { v.httpClient = c }
}

// WithTokenInfoURL replaces the default tokeninfo endpoint.
func WithTokenInfoURL(u string) Option {
	return func(v *Verifier) { v.tokenInfoURL = u }
}

// NewVerifier creates a Verifier for tokens issued to clientID.
func NewVerifier(clientID string, opts ...Option) *Verifier {
	v := &Verifier{
		clientID:     clientID,
		tokenInfoURL: defaultTokenInfoURL,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify resolves the credential to a profile. The audience must match the
// configured client id; anything else is a verification failure.
func (v *Verifier) Verify(ctx context.Context, credential string) (*ports.GoogleProfile, error) {
	endpoint := v.tokenInfoURL + "?id_token=" + url.QueryEscape(credential)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tokeninfo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tokeninfo rejected credential: status %d", resp.StatusCode)
	}

	var payload struct {
		Aud     string `json:"aud"`
		Sub     string `json:"sub"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("tokeninfo decode: %w", err)
	}

	if v.clientID != "" && payload.Aud != v.clientID {
		return nil, errors.New("token audience mismatch")
	}
	if payload.Sub == "" || payload.Email == "" {
		return nil, errors.New("token missing subject or email")
	}

	return &ports.GoogleProfile{
		Email:   payload.Email,
		Name:    payload.Name,
		Subject: payload.Sub,
		Picture: payload.Picture,
	}, nil
}
