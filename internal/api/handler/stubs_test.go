package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/conectar/clients-api/internal/core/domain"
	"github.com/conectar/clients-api/internal/core/ports"
)

// stubAuthService returns canned values so handler tests can focus on
// status codes and response shapes.
type stubAuthService struct {
	token string
	user  *domain.User
	err   error
}

func (s *stubAuthService) ValidateCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	return s.user, s.err
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.token, s.user, s.err
}

func (s *stubAuthService) LoginWithGoogle(ctx context.Context, credential string) (string, *domain.User, error) {
	return s.token, s.user, s.err
}

type stubUserService struct {
	user      *domain.User
	users     []*domain.User
	notif     *ports.NotificationsResult
	deleted   *ports.DeleteUserResult
	err       error
	lastPatch ports.UserPatch
	lastID    string
}

func (s *stubUserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.user, s.err
}

func (s *stubUserService) List(ctx context.Context, filter ports.ListUsersFilter) ([]*domain.User, error) {
	return s.users, s.err
}

func (s *stubUserService) ListInactive(ctx context.Context) ([]*domain.User, error) {
	return s.users, s.err
}

func (s *stubUserService) Notifications(ctx context.Context) (*ports.NotificationsResult, error) {
	return s.notif, s.err
}

func (s *stubUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	s.lastID = id
	return s.user, s.err
}

func (s *stubUserService) Update(ctx context.Context, claims domain.Claims, id string, patch ports.UserPatch) (*domain.User, error) {
	s.lastID = id
	s.lastPatch = patch
	return s.user, s.err
}

func (s *stubUserService) UpdatePassword(ctx context.Context, claims domain.Claims, id string, input ports.UpdatePasswordInput) error {
	s.lastID = id
	return s.err
}

func (s *stubUserService) Delete(ctx context.Context, claims domain.Claims, id string) (*ports.DeleteUserResult, error) {
	s.lastID = id
	return s.deleted, s.err
}

type stubClientService struct {
	client    *domain.Client
	clients   []*domain.Client
	stats     *ports.ClientStats
	removed   *ports.RemoveClientResult
	err       error
	lastInput ports.CreateClientInput
	lastID    string
}

func (s *stubClientService) Create(ctx context.Context, claims domain.Claims, input ports.CreateClientInput) (*domain.Client, error) {
	s.lastInput = input
	return s.client, s.err
}

func (s *stubClientService) List(ctx context.Context, claims domain.Claims, filter ports.ListClientsFilter) ([]*domain.Client, error) {
	return s.clients, s.err
}

func (s *stubClientService) Get(ctx context.Context, claims domain.Claims, id string) (*domain.Client, error) {
	s.lastID = id
	return s.client, s.err
}

func (s *stubClientService) Update(ctx context.Context, claims domain.Claims, id string, patch ports.ClientPatch) (*domain.Client, error) {
	s.lastID = id
	return s.client, s.err
}

func (s *stubClientService) Remove(ctx context.Context, claims domain.Claims, id string) (*ports.RemoveClientResult, error) {
	s.lastID = id
	return s.removed, s.err
}

func (s *stubClientService) Stats(ctx context.Context, claims domain.Claims) (*ports.ClientStats, error) {
	return s.stats, s.err
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newJSONContext builds an echo context for a JSON request body.
func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// asCaller injects the claims the Auth middleware would have set.
func asCaller(c echo.Context, userID, role string) {
	c.Set("user_id", userID)
	c.Set("email", userID+"@example.com")
	c.Set("role", role)
}
