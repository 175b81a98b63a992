package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"arta-api/internal/dto"
)

// JWTAuth guards the mutating routes with a bearer token signed with the
// shared secret (HS256).
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenString == "" {
				return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
					Message: "missing bearer token",
				})
			}

			token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
					Message: "invalid bearer token",
				})
			}

			if sub, err := token.Claims.GetSubject(); err == nil {
				c.Set("user_id", sub)
			}

			return next(c)
		}
	}
}
