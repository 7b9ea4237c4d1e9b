package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/sci-calc/internal/calcerr"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Title string `json:"title,omitempty"`
	// Code is the calcerr code of a failed calculation.
	Code       string `json:"code,omitempty"`
	Expression string `json:"expression,omitempty"`
}

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: ve.Message, Title: "validation error"})
			return
		}

		var nf *NotFoundError
		if errors.As(err, &nf) {
			_ = c.JSON(http.StatusNotFound, ErrorResponse{Error: nf.Message, Title: "not found"})
			return
		}

		var ce *CalculationError
		if errors.As(err, &ce) {
			resp := ErrorResponse{Error: ce.Message, Title: "calculation error", Expression: ce.Expression}
			if kind, ok := calcerr.Kind(ce.Err); ok {
				resp.Code = kind.Code()
			}
			_ = c.JSON(http.StatusUnprocessableEntity, resp)
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, ErrorResponse{Error: msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
