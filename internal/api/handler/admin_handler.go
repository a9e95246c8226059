package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/venturehub/investment-api/internal/core/ports"
)

// AdminHandler exposes the admin view: user management and the full
// investment ledger. Routes are mounted behind the admin RBAC gate.
type AdminHandler struct {
	users       ports.UserService
	investments ports.InvestmentService
}

func NewAdminHandler(users ports.UserService, investments ports.InvestmentService) *AdminHandler {
	return &AdminHandler{users: users, investments: investments}
}

// ListUsers handles GET /v1/admin/users.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.User
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.users.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// DeleteUser handles DELETE /v1/admin/users/:id.
//
// @Summary      Delete a user account
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.users.Remove(c.Request().Context(), claims, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListInvestments handles GET /v1/admin/investments.
//
// @Summary      List the full investment ledger
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Investment
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/investments [get]
func (h *AdminHandler) ListInvestments(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	investments, err := h.investments.FindAll(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, investments)
}
