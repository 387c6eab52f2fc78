package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Middleware returns an Echo middleware that validates bearer tokens. It
// extracts "Bearer <token>" from the Authorization header, validates it, and
// sets "user_id" in the Echo context.
func (ts *TokenService) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return unauthorized(c, "authentication required")
			}

			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return unauthorized(c, "invalid authorization format")
			}

			claims, err := ts.Validate(token)
			if err != nil {
				return unauthorized(c, "invalid or expired token")
			}

			c.Set("user_id", claims.UserID)
			return next(c)
		}
	}
}

// unauthorized writes the standard error envelope. Kept here rather than in
// the api package to avoid an import cycle.
func unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, map[string]any{
		"success": false,
		"error": map[string]string{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}

// GetUserID extracts the authenticated user ID from the Echo context.
func GetUserID(c echo.Context) int64 {
	return c.Get("user_id").(int64)
}
