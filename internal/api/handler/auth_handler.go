package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/conectar/clients-api/internal/api/metrics"
	"github.com/conectar/clients-api/internal/core/domain"
	"github.com/conectar/clients-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	userService ports.UserService
}

func NewAuthHandler(authService ports.AuthService, userService ports.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

// Register creates a new local account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  registerResponse
// @Failure      409   {object}  registerResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, registerResponse{Message: "Error creating user", Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, registerResponse{Message: "Error creating user", Error: err.Error()})
	}

	user, err := h.userService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, registerResponse{Message: "Error creating user", Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{Message: "User created successfully", User: user})
}

// Login authenticates an email/password pair and returns a bearer token.
//
// @Summary      Login with local credentials
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  messageResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginFailuresTotal.WithLabelValues(domain.ProviderLocal).Inc()
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Invalid credentials"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues(domain.ProviderLocal).Inc()
	return c.JSON(http.StatusOK, loginResponse{AccessToken: token, User: user})
}

// GoogleToken authenticates a Google ID-token credential, linking or
// creating the matching account.
//
// @Summary      Login with a Google credential
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      googleTokenRequest  true  "Google ID token"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  messageResponse
// @Router       /auth/google/token [post]
func (h *AuthHandler) GoogleToken(c echo.Context) error {
	var req googleTokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	token, user, err := h.authService.LoginWithGoogle(c.Request().Context(), req.Credential)
	if err != nil {
		if errors.Is(err, domain.ErrGoogleVerification) {
			metrics.LoginFailuresTotal.WithLabelValues(domain.ProviderGoogle).Inc()
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: err.Error()})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues(domain.ProviderGoogle).Inc()
	return c.JSON(http.StatusOK, loginResponse{AccessToken: token, User: user})
}
