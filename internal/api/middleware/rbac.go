package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole guards a route for callers whose token role is in the allowed
// set. Runs after Auth; a mismatch is an authorization failure, distinct
// from the 401s Auth produces.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"message": "forbidden"})
			}
			return next(c)
		}
	}
}
