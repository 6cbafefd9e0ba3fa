package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/adamaho/matchpoint/internal/tokens"
)

const userContextKey = "user"

// BearerAuth verifies the Authorization bearer token ahead of every
// protected handler: HS512 signature, audience, issuer, exp/nbf with clock
// skew tolerance. The verified identity lands in the request context.
type BearerAuth struct {
	Tokens *tokens.Issuer
}

func NewBearerAuth(issuer *tokens.Issuer) *BearerAuth {
	return &BearerAuth{Tokens: issuer}
}

func (m *BearerAuth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"error_code": "UNAUTHORIZED",
				"error":      "missing bearer token",
			})
		}

		claims, err := m.Tokens.VerifyAccess(tokenStr)
		if err != nil || claims == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"error_code": "UNAUTHORIZED",
				"error":      "invalid or expired token",
			})
		}

		c.Set(userContextKey, claims.User)
		return next(c)
	}
}

// CurrentUser returns the identity stored by RequireAuth.
func CurrentUser(c echo.Context) (tokens.UserClaims, bool) {
	user, ok := c.Get(userContextKey).(tokens.UserClaims)
	return user, ok
}
