package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/conectar/clients-api/internal/core/domain"
)

// ctxClaims extracts the identity claims injected by the Auth middleware.
// An empty user id or role means the middleware did not run, or the token
// carried no usable identity; either way the request is rejected before any
// service call.
func ctxClaims(c echo.Context) (domain.Claims, error) {
	userID, _ := c.Get("user_id").(string)
	email, _ := c.Get("email").(string)
	role, _ := c.Get("role").(string)

	if userID == "" || role == "" {
		return domain.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	return domain.Claims{UserID: userID, Email: email, Role: role}, nil
}
