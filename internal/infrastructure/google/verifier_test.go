package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTokenInfoServer(t *testing.T, status int, payload map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("id_token"); got == "" {
			t.Errorf("id_token query parameter missing")
		}
		w.WriteHeader(status)
		if payload != nil {
			if err := json.NewEncoder(w).Encode(payload); err != nil {
				t.Errorf("encode payload: %v", err)
			}
		}
	}))
}

func TestVerifier_Verify(t *testing.T) {
	srv := newTokenInfoServer(t, http.StatusOK, map[string]string{
		"aud":     "my-client-id",
		"sub":     "google-sub-123",
		"email":   "alice@example.com",
		"name":    "Alice",
		"picture": "https://example.com/alice.png",
	})
	defer srv.Close()

	v := NewVerifier("my-client-id", WithTokenInfoURL(srv.URL), WithHTTPClient(srv.Client()))
	profile, err := v.Verify(context.Background(), "valid-token")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if profile.Subject != "google-sub-123" {
		t.Fatalf("subject = %q", profile.Subject)
	}
	if profile.Email != "alice@example.com" {
		t.Fatalf("email = %q", profile.Email)
	}
	if profile.Name != "Alice" {
		t.Fatalf("name = %q", profile.Name)
	}
	if profile.Picture != "https://example.com/alice.png" {
		t.Fatalf("picture = %q", profile.Picture)
	}
}

func TestVerifier_AudienceMismatch(t *testing.T) {
	srv := newTokenInfoServer(t, http.StatusOK, map[string]string{
		"aud":   "another-app",
		"sub":   "google-sub-123",
		"email": "alice@example.com",
	})
	defer srv.Close()

	v := NewVerifier("my-client-id", WithTokenInfoURL(srv.URL), WithHTTPClient(srv.Client()))
	if _, err := v.Verify(context.Background(), "valid-token"); err == nil {
		t.Fatalf("expected audience mismatch error")
	}
}

func TestVerifier_RejectedCredential(t *testing.T) {
	srv := newTokenInfoServer(t, http.StatusBadRequest, map[string]string{
		"error": "invalid_token",
	})
	defer srv.Close()

	v := NewVerifier("my-client-id", WithTokenInfoURL(srv.URL), WithHTTPClient(srv.Client()))
	if _, err := v.Verify(context.Background(), "garbage"); err == nil {
		t.Fatalf("expected rejection error")
	}
}

func TestVerifier_MissingSubject(t *testing.T) {
	srv := newTokenInfoServer(t, http.StatusOK, map[string]string{
		"aud":   "my-client-id",
		"email": "alice@example.com",
	})
	defer srv.Close()

	v := NewVerifier("my-client-id", WithTokenInfoURL(srv.URL), WithHTTPClient(srv.Client()))
	if _, err := v.Verify(context.Background(), "partial-token"); err == nil {
		t.Fatalf("expected error for missing subject")
	}
}

// An empty configured client id skips the audience check. Useful in
// development, never in production.
func TestVerifier_NoClientIDSkipsAudience(t *testing.T) {
	srv := newTokenInfoServer(t, http.StatusOK, map[string]string{
		"aud":   "whatever",
		"sub":   "google-sub-123",
		"email": "alice@example.com",
	})
	defer srv.Close()

	v := NewVerifier("", WithTokenInfoURL(srv.URL), WithHTTPClient(srv.Client()))
	if _, err := v.Verify(context.Background(), "valid-token"); err != nil {
		t.Fatalf("verify: %v", err)
	}
}
