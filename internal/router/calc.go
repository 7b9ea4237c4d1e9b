package router

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/sci-calc/internal/apperr"
	"github.com/DjordjeVuckovic/sci-calc/internal/dto"
	"github.com/DjordjeVuckovic/sci-calc/internal/service"
)

// CalcRouter serves the calculator, settings and help endpoints.
type CalcRouter struct {
	g   *echo.Group
	svc *service.Calculator
}

func NewCalcRouter(g *echo.Group, svc *service.Calculator) *CalcRouter {
	return &CalcRouter{g: g, svc: svc}
}

func (r *CalcRouter) Bind() {
	r.g.POST("/calculate", r.calculateHandler)
	r.g.POST("/validate", r.validateHandler)
	r.g.GET("/format", r.formatHandler)

	r.g.GET("/settings", r.getSettingsHandler)
	r.g.PUT("/settings", r.putSettingsHandler)
	r.g.POST("/settings/angle-unit/toggle", r.toggleAngleUnitHandler)

	r.g.GET("/functions", r.functionsHandler)
	r.g.GET("/tips", r.tipsHandler)
}

// calculateHandler godoc
// @Summary Evaluate an expression
// @Description Evaluates an arithmetic expression and records it in the history when auto-save is on.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body dto.CalculateRequest true "Expression and optional angle unit"
// @Success 200 {object} dto.CalculateResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 422 {object} apperr.ErrorResponse "Expression could not be evaluated"
// @Router /api/v1/calculate [post]
func (r *CalcRouter) calculateHandler(c echo.Context) error {
	var req dto.CalculateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	out, err := r.svc.Calculate(c.Request().Context(), req.Expression, req.AngleUnit)
	if err != nil {
		return err
	}
	if out.Failed() {
		return apperr.NewCalculation(out.Expression, out.Message, out.Err)
	}

	resp := dto.CalculateResponse{
		Expression: out.Expression,
		Result:     out.Result,
		Formatted:  out.Formatted,
		AngleUnit:  out.AngleUnit,
	}
	if out.Entry != nil {
		resp.HistoryID = &out.Entry.ID
	}
	return c.JSON(http.StatusOK, resp)
}

// validateHandler godoc
// @Summary Check an expression without evaluating it
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body dto.ValidateRequest true "Expression"
// @Success 200 {object} dto.ValidateResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Router /api/v1/validate [post]
func (r *CalcRouter) validateHandler(c echo.Context) error {
	var req dto.ValidateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	v := r.svc.Validate(req.Expression)
	return c.JSON(http.StatusOK, dto.ValidateResponse{
		Valid:               v.Valid,
		BalancedParentheses: v.BalancedParentheses,
	})
}

// formatHandler godoc
// @Summary Format a number with the saved display settings
// @Tags calculator
// @Produce json
// @Param value query number true "Value to format"
// @Success 200 {object} dto.FormatResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Router /api/v1/format [get]
func (r *CalcRouter) formatHandler(c echo.Context) error {
	raw := c.QueryParam("value")
	if raw == "" {
		return apperr.NewValidation("value parameter is required")
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return apperr.NewValidationWrap("value must be a number", err)
	}

	formatted, err := r.svc.Format(c.Request().Context(), value)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.FormatResponse{Value: value, Formatted: formatted})
}

// getSettingsHandler godoc
// @Summary Current settings
// @Tags settings
// @Produce json
// @Success 200 {object} domain.Settings
// @Router /api/v1/settings [get]
func (r *CalcRouter) getSettingsHandler(c echo.Context) error {
	s, err := r.svc.Settings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

// putSettingsHandler godoc
// @Summary Replace settings
// @Tags settings
// @Accept json
// @Produce json
// @Param request body domain.Settings true "Settings"
// @Success 200 {object} domain.Settings
// @Failure 400 {object} apperr.ErrorResponse
// @Router /api/v1/settings [put]
func (r *CalcRouter) putSettingsHandler(c echo.Context) error {
	current, err := r.svc.Settings(c.Request().Context())
	if err != nil {
		return err
	}
	// fields missing from the body keep their current value
	s := current
	if err := c.Bind(&s); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	updated, err := r.svc.UpdateSettings(c.Request().Context(), s)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// toggleAngleUnitHandler godoc
// @Summary Switch between degrees and radians
// @Tags settings
// @Produce json
// @Success 200 {object} domain.Settings
// @Router /api/v1/settings/angle-unit/toggle [post]
func (r *CalcRouter) toggleAngleUnitHandler(c echo.Context) error {
	s, err := r.svc.ToggleAngleUnit(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

// functionsHandler godoc
// @Summary Supported operators, functions and constants
// @Tags help
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {array} catalog.FunctionDescription
// @Router /api/v1/functions [get]
func (r *CalcRouter) functionsHandler(c echo.Context) error {
	functions := r.svc.Functions()
	if category := c.QueryParam("category"); category != "" {
		filtered := functions[:0]
		for _, f := range functions {
			if string(f.Category) == category {
				filtered = append(filtered, f)
			}
		}
		functions = filtered
	}
	return c.JSON(http.StatusOK, functions)
}

// tipsHandler godoc
// @Summary Usage tips
// @Tags help
// @Produce json
// @Success 200 {array} catalog.Tip
// @Router /api/v1/tips [get]
func (r *CalcRouter) tipsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, r.svc.Tips())
}
