package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/venturehub/investment-api/internal/api/metrics"
	"github.com/venturehub/investment-api/internal/core/ports"
)

// InvestmentHandler handles HTTP requests for the investment ledger.
type InvestmentHandler struct {
	service ports.InvestmentService
}

func NewInvestmentHandler(service ports.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{service: service}
}

// Create handles POST /v1/investments. A repeated Idempotency-Key header
// replays the originally created investment with a 200 instead of a 201.
//
// @Summary      Invest in a project
// @Tags         investments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                   false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createInvestmentRequest  true   "Investment details"
// @Success      201              {object}  domain.Investment
// @Success      200              {object}  domain.Investment
// @Failure      400              {object}  errorResponse
// @Failure      403              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Router       /v1/investments [post]
func (h *InvestmentHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createInvestmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Create(c.Request().Context(), claims, ports.CreateInvestmentInput{
		ProjectID:      req.ProjectID,
		Amount:         req.Amount,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	if result.AlreadyExisted {
		metrics.InvestmentsDedupTotal.WithLabelValues("hit").Inc()
		return c.JSON(http.StatusOK, result.Investment)
	}

	metrics.InvestmentsDedupTotal.WithLabelValues("miss").Inc()
	metrics.InvestmentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, result.Investment)
}

// Mine handles GET /v1/investments/mine.
//
// @Summary      List the caller's own investments
// @Tags         investments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Investment
// @Router       /v1/investments/mine [get]
func (h *InvestmentHandler) Mine(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	investments, err := h.service.FindByInvestor(c.Request().Context(), claims.Subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, investments)
}

// ByProject handles GET /v1/investments/project/:projectId.
//
// @Summary      List investments in a project
// @Tags         investments
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path   string  true  "Project id"
// @Success      200        {array}  domain.Investment
// @Router       /v1/investments/project/{projectId} [get]
func (h *InvestmentHandler) ByProject(c echo.Context) error {
	investments, err := h.service.FindByProject(c.Request().Context(), c.Param("projectId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, investments)
}

// Get handles GET /v1/investments/:id.
//
// @Summary      Get an investment by id
// @Tags         investments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Investment id"
// @Success      200  {object}  domain.Investment
// @Failure      404  {object}  errorResponse
// @Router       /v1/investments/{id} [get]
func (h *InvestmentHandler) Get(c echo.Context) error {
	investment, err := h.service.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, investment)
}

// Delete handles DELETE /v1/investments/:id. Ownership is checked against
// the investment's investor, not the project owner.
//
// @Summary      Delete an investment (its investor or admin)
// @Tags         investments
// @Security     BearerAuth
// @Param        id  path  string  true  "Investment id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/investments/{id} [delete]
func (h *InvestmentHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), claims, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
