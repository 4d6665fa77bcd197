package middleware

import (
	"net/http"
	"strings"

	"rentease-backend/internal/domain/actor"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "auth.actor"

type actorClaims struct {
	UserID   string `json:"id"`
	UserType string `json:"userType"`
	jwt.RegisteredClaims
}

// Auth decodes the bearer token (HS256) and places the resulting
// actor in the request context. Tokens carry the party's public id and
// a userType claim; the role string is parsed once here and never
// travels further.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			if !strings.HasPrefix(strings.ToLower(raw), "bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authorization must be a bearer token"})
			}
			tokenStr := strings.TrimSpace(raw[len("bearer "):])

			claims := &actorClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}
			if !reHex32.MatchString(claims.UserID) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid subject id"})
			}
			role, err := actor.ParseRole(claims.UserType)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unknown user type"})
			}

			c.Set(actorContextKey, actor.New(claims.UserID, role))
			return next(c)
		}
	}
}

// ActorFrom returns the authenticated actor placed by Auth. The second
// result is false on routes that skipped the middleware.
func ActorFrom(c echo.Context) (actor.Actor, bool) {
	a, ok := c.Get(actorContextKey).(actor.Actor)
	return a, ok
}

// SetActor is a test hook for handler tests that bypass Auth.
func SetActor(c echo.Context, a actor.Actor) {
	c.Set(actorContextKey, a)
}
