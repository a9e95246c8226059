package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/venturehub/investment-api/internal/core/ports"
)

// InterestHandler handles the interest catalog and the caller's interest
// links.
type InterestHandler struct {
	interests ports.InterestService
	users     ports.UserService
}

func NewInterestHandler(interests ports.InterestService, users ports.UserService) *InterestHandler {
	return &InterestHandler{interests: interests, users: users}
}

// List handles GET /v1/interests.
//
// @Summary      List the interest catalog
// @Tags         interests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Interest
// @Router       /v1/interests [get]
func (h *InterestHandler) List(c echo.Context) error {
	interests, err := h.interests.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, interests)
}

// Get handles GET /v1/interests/:id.
//
// @Summary      Get an interest by id
// @Tags         interests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Interest id"
// @Success      200  {object}  domain.Interest
// @Failure      404  {object}  errorResponse
// @Router       /v1/interests/{id} [get]
func (h *InterestHandler) Get(c echo.Context) error {
	interest, err := h.interests.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, interest)
}

// Create handles POST /v1/interests. Admin only.
//
// @Summary      Add an interest to the catalog
// @Tags         interests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      interestRequest  true  "Interest"
// @Success      201   {object}  domain.Interest
// @Failure      403   {object}  errorResponse
// @Router       /v1/interests [post]
func (h *InterestHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req interestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	interest, err := h.interests.Create(c.Request().Context(), claims, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, interest)
}

// Update handles PUT /v1/interests/:id. Admin only.
//
// @Summary      Rename an interest
// @Tags         interests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Interest id"
// @Param        body  body      interestRequest  true  "New name"
// @Success      200   {object}  domain.Interest
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/interests/{id} [put]
func (h *InterestHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req interestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	interest, err := h.interests.Update(c.Request().Context(), claims, c.Param("id"), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, interest)
}

// Delete handles DELETE /v1/interests/:id. Admin only.
//
// @Summary      Remove an interest from the catalog
// @Tags         interests
// @Security     BearerAuth
// @Param        id  path  string  true  "Interest id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/interests/{id} [delete]
func (h *InterestHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.interests.Delete(c.Request().Context(), claims, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AddUserInterest handles POST /v1/users/me/interests/:id — links an
// interest to the caller's profile.
//
// @Summary      Declare an interest on the caller's profile
// @Tags         interests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Interest id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/me/interests/{id} [post]
func (h *InterestHandler) AddUserInterest(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.users.AddInterest(c.Request().Context(), claims, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// RemoveUserInterest handles DELETE /v1/users/me/interests/:id.
//
// @Summary      Remove a declared interest from the caller's profile
// @Tags         interests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Interest id"
// @Success      200  {object}  domain.User
// @Router       /v1/users/me/interests/{id} [delete]
func (h *InterestHandler) RemoveUserInterest(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.users.RemoveInterest(c.Request().Context(), claims, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
