package auth

import (
	"log"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "lingorelay/internal/errors"
)

// identityContextKey is where the middleware stores the verified identity.
// Handlers must read it through IdentityFromContext, never re-parse the token.
const identityContextKey = "identity"

// Middleware returns the bearer-token gate for protected routes.
//
// Missing Authorization header maps to 401, any verification failure to a
// uniform 403. The concrete failure (expired vs tampered vs malformed) is
// logged server-side only.
func Middleware(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(tokenString)
			if err != nil {
				return nil, err
			}
			return claims, nil
		},
		SuccessHandler: func(c echo.Context) {
			if claims, ok := c.Get("user").(*Claims); ok {
				c.Set(identityContextKey, claims.Email)
			}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "missing authorization token",
					Code:  "MISSING_TOKEN",
				})
			}
			log.Printf("auth: rejected token from %s: %v", c.RealIP(), err)
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Error: "invalid or expired token",
				Code:  "INVALID_TOKEN",
			})
		},
	})
}

// IdentityFromContext extracts the authenticated identity set by Middleware.
func IdentityFromContext(c echo.Context) (string, bool) {
	email, ok := c.Get(identityContextKey).(string)
	return email, ok && email != ""
}

// Ensure Claims satisfies the jwt claims contract used by the parser.
var _ jwt.Claims = (*Claims)(nil)
