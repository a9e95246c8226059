package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/venturehub/investment-api/internal/core/domain"
)

// ctxClaims rebuilds the verified claims injected by the Auth middleware and
// fast-fails before any service call: a missing subject or role means the
// middleware did not run (or the token was structurally unusable).
func ctxClaims(c echo.Context) (domain.Claims, error) {
	sub, _ := c.Get("user_id").(string)
	email, _ := c.Get("email").(string)
	role, _ := c.Get("role").(string)

	if sub == "" || role == "" {
		return domain.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	return domain.Claims{Subject: sub, Email: email, Role: domain.Role(role)}, nil
}
