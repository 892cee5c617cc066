package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/conectar/clients-api/internal/api/metrics"
	"github.com/conectar/clients-api/internal/core/domain"
	"github.com/conectar/clients-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type updateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
	Role  *string `json:"role" validate:"omitempty,oneof=admin user"`
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// List returns all users matching the optional query filters. Open to any
// authenticated caller.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        name    query  string  false  "substring match on name"
// @Param        email   query  string  false  "substring match on email"
// @Param        role    query  string  false  "exact role"
// @Param        sortBy  query  string  false  "sort field"
// @Param        order   query  string  false  "asc or desc"
// @Success      200  {array}  domain.User
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	filter := ports.ListUsersFilter{
		Name:   c.QueryParam("name"),
		Email:  c.QueryParam("email"),
		Role:   c.QueryParam("role"),
		SortBy: c.QueryParam("sortBy"),
		Order:  c.QueryParam("order"),
	}

	users, err := h.userService.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// ListInactive returns users with no login in the last 30 days. Admin only.
//
// @Summary      List inactive users
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.User
// @Failure      403  {object}  messageResponse
// @Router       /users/inactive [get]
func (h *UserHandler) ListInactive(c echo.Context) error {
	users, err := h.userService.ListInactive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Notifications returns the admin dashboard summary.
//
// @Summary      Inactivity notifications
// @Tags         users
// @Produce      json
// @Success      200  {object}  ports.NotificationsResult
// @Failure      403  {object}  messageResponse
// @Router       /users/notifications [get]
func (h *UserHandler) Notifications(c echo.Context) error {
	result, err := h.userService.Notifications(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Get returns a single user by id.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "user id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  messageResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update applies a partial profile patch. Non-admins may only edit
// themselves and cannot change roles.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "user id"
// @Param        body  body  updateUserRequest  true  "fields to update"
// @Success      200  {object}  domain.User
// @Failure      403  {object}  messageResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	user, err := h.userService.Update(c.Request().Context(), claims, c.Param("id"), ports.UserPatch{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.JSON(http.StatusForbidden, messageResponse{Message: "You can only edit your own profile"})
		}
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdatePassword changes the caller's own password.
//
// @Summary      Change password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "user id"
// @Param        body  body  updatePasswordRequest  true  "current and new password"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /users/{id}/password [put]
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	err = h.userService.UpdatePassword(c.Request().Context(), claims, c.Param("id"), ports.UpdatePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return c.JSON(http.StatusForbidden, messageResponse{Message: "You can only change your own password"})
		case errors.Is(err, domain.ErrGoogleAccount),
			errors.Is(err, domain.ErrWrongPassword),
			errors.Is(err, domain.ErrPasswordTooShort):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Password updated successfully"})
}

// Delete removes an account and cascades over its client records. Admin
// only; admins cannot delete themselves.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "user id"
// @Success      200  {object}  ports.DeleteUserResult
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	result, err := h.userService.Delete(c.Request().Context(), claims, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrSelfDelete) {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
		}
		return err
	}

	metrics.AccountsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, result)
}
