package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   "user-1",
		"email": "alice@x.com",
		"role":  "investor",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func runAuth(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, c, handler(c)
}

func TestAuth_BearerHeader(t *testing.T) {
	token := signToken(t, testSecret, time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec, c, err := runAuth(t, req)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got, _ := c.Get("user_id").(string); got != "user-1" {
		t.Fatalf("user_id not injected, got %q", got)
	}
	if got, _ := c.Get("role").(string); got != "investor" {
		t.Fatalf("role not injected, got %q", got)
	}
}

func TestAuth_RawHeader(t *testing.T) {
	token := signToken(t, testSecret, time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", token)

	if _, _, err := runAuth(t, req); err != nil {
		t.Fatalf("raw header token rejected: %v", err)
	}
}

func TestAuth_Cookie(t *testing.T) {
	token := signToken(t, testSecret, time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})

	if _, _, err := runAuth(t, req); err != nil {
		t.Fatalf("cookie token rejected: %v", err)
	}
}

func TestAuth_QueryParam(t *testing.T) {
	token := signToken(t, testSecret, time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/?token="+token, nil)

	if _, _, err := runAuth(t, req); err != nil {
		t.Fatalf("query token rejected: %v", err)
	}
}

// The Authorization header wins over cookie and query even when it carries a
// bad token.
func TestAuth_HeaderPrecedence(t *testing.T) {
	good := signToken(t, testSecret, time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/?token="+good, nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	req.AddCookie(&http.Cookie{Name: "token", Value: good})

	_, _, err := runAuth(t, req)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 from header token, got %v", err)
	}
}

func TestAuth_Failures(t *testing.T) {
	cases := map[string]string{
		"missing":   "",
		"malformed": "not-a-token",
		"expired":   signToken(t, testSecret, -time.Hour),
		"badSig":    signToken(t, "other-secret", time.Hour),
	}

	for name, token := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		_, _, err := runAuth(t, req)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %v", name, err)
		}
	}
}
