package router

import (
	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/sci-calc/internal/service"
)

const APIPrefix = "/api/v1"

// Register binds every API route under APIPrefix.
func Register(e *echo.Echo, svc *service.Calculator) {
	g := e.Group(APIPrefix)
	NewCalcRouter(g, svc).Bind()
	NewHistoryRouter(g, svc).Bind()
}
