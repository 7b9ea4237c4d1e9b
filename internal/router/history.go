package router

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/sci-calc/internal/apperr"
	"github.com/DjordjeVuckovic/sci-calc/internal/domain"
	"github.com/DjordjeVuckovic/sci-calc/internal/dto"
	"github.com/DjordjeVuckovic/sci-calc/internal/service"
	"github.com/DjordjeVuckovic/sci-calc/pkg/pagination"
)

const defaultSearchLimit = 20

type HistoryRouter struct {
	g   *echo.Group
	svc *service.Calculator
}

func NewHistoryRouter(g *echo.Group, svc *service.Calculator) *HistoryRouter {
	return &HistoryRouter{g: g, svc: svc}
}

func (r *HistoryRouter) Bind() {
	r.g.GET("/history", r.listHandler)
	r.g.GET("/history/search", r.searchHandler)
	r.g.POST("/history/import", r.importHandler)
	r.g.DELETE("/history/:id", r.deleteHandler)
	r.g.DELETE("/history", r.clearHandler)
}

// listHandler godoc
// @Summary Calculation history, newest first
// @Tags history
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} pagination.OffsetResult[dto.HistoryEntry]
// @Failure 400 {object} apperr.ErrorResponse
// @Router /api/v1/history [get]
func (r *HistoryRouter) listHandler(c echo.Context) error {
	page, err := intParam(c, "page", 1)
	if err != nil {
		return err
	}
	size, err := intParam(c, "size", pagination.PageDefaultSize)
	if err != nil {
		return err
	}

	req := pagination.OffsetRequest{Page: page, Size: size}
	_ = req.Validate()

	result, err := r.svc.History(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pagination.NewOffsetResult(
		dto.NewHistoryEntries(result.Items), result.Total, result.Page, result.Size))
}

// searchHandler godoc
// @Summary Search history by expression or error message
// @Tags history
// @Produce json
// @Param q query string true "Text to look for, case-insensitive"
// @Param limit query int false "Maximum results" default(20)
// @Success 200 {array} dto.HistoryEntry
// @Failure 400 {object} apperr.ErrorResponse
// @Router /api/v1/history/search [get]
func (r *HistoryRouter) searchHandler(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return apperr.NewValidation("q parameter is required")
	}
	limit, err := intParam(c, "limit", defaultSearchLimit)
	if err != nil {
		return err
	}

	entries, err := r.svc.SearchHistory(c.Request().Context(), q, min(limit, pagination.PageMaxSize))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewHistoryEntries(entries))
}

// importHandler godoc
// @Summary Import history entries
// @Tags history
// @Accept json
// @Produce json
// @Param request body dto.ImportHistoryRequest true "Entries to store"
// @Success 201 {object} dto.ImportHistoryResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Router /api/v1/history/import [post]
func (r *HistoryRouter) importHandler(c echo.Context) error {
	var req dto.ImportHistoryRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	entries := make([]domain.HistoryEntry, len(req.Entries))
	for i, e := range req.Entries {
		entries[i] = e.ToDomain()
	}

	n, err := r.svc.ImportHistory(c.Request().Context(), entries)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.ImportHistoryResponse{Imported: n})
}

// deleteHandler godoc
// @Summary Delete one history entry
// @Tags history
// @Param id path string true "Entry ID"
// @Success 204
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Router /api/v1/history/{id} [delete]
func (r *HistoryRouter) deleteHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("invalid history id", err)
	}
	if err := r.svc.DeleteHistory(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// clearHandler godoc
// @Summary Delete the whole history
// @Tags history
// @Success 204
// @Router /api/v1/history [delete]
func (r *HistoryRouter) clearHandler(c echo.Context) error {
	if err := r.svc.ClearHistory(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func intParam(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, apperr.NewValidation(name + " must be a positive integer")
	}
	return v, nil
}
