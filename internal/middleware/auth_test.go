package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func run(t *testing.T, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v2/refund/force", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	next := func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	}

	if err := JWTAuth(testSecret)(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec, reached
}

func signToken(t *testing.T, secret, subject string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": subject})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestJWTAuth(t *testing.T) {
	t.Parallel()

	t.Run("missing header", func(t *testing.T) {
		rec, reached := run(t, "")
		if rec.Code != http.StatusUnauthorized || reached {
			t.Fatalf("expected 401 without reaching the handler, got %d reached=%v", rec.Code, reached)
		}
	})

	t.Run("not a bearer token", func(t *testing.T) {
		rec, reached := run(t, "Basic abc")
		if rec.Code != http.StatusUnauthorized || reached {
			t.Fatalf("expected 401, got %d reached=%v", rec.Code, reached)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		rec, reached := run(t, "Bearer "+signToken(t, "other-secret", "ops"))
		if rec.Code != http.StatusUnauthorized || reached {
			t.Fatalf("expected 401 for a foreign signature, got %d reached=%v", rec.Code, reached)
		}
	})

	t.Run("valid token passes through", func(t *testing.T) {
		rec, reached := run(t, "Bearer "+signToken(t, testSecret, "ops"))
		if rec.Code != http.StatusOK || !reached {
			t.Fatalf("expected the handler to run, got %d reached=%v", rec.Code, reached)
		}
	})
}
