package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/sci-calc/internal/apperr"
	"github.com/DjordjeVuckovic/sci-calc/internal/calcerr"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("field is required")

	assert.Equal(t, "field is required", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("parse failed")
	err := apperr.NewValidationWrap("invalid angle unit", inner)

	assert.Equal(t, "invalid angle unit: parse failed", err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", fmt.Errorf("settings: %w", apperr.NewValidation("bad decimal places")))

	var ve *apperr.ValidationError
	require.ErrorAs(t, wrapped, &ve)
	assert.Equal(t, "bad decimal places", ve.Message)

	var nf *apperr.NotFoundError
	assert.False(t, errors.As(fmt.Errorf("db down"), &nf))
}

func TestCalculationError_Unwraps(t *testing.T) {
	err := apperr.NewCalculation("5/0", "Cannot divide by zero", calcerr.ErrDivisionByZero)

	assert.ErrorIs(t, err, calcerr.ErrDivisionByZero)
	assert.Equal(t, "Cannot divide by zero: division by zero", err.Error())
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "validation",
			err:      apperr.NewValidation("size must be positive"),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"size must be positive","title":"validation error"}`,
		},
		{
			name:     "not found",
			err:      fmt.Errorf("delete: %w", apperr.NewNotFound("history entry x not found")),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"history entry x not found","title":"not found"}`,
		},
		{
			name:     "calculation",
			err:      apperr.NewCalculation("ln(-1)", "Value is outside the function's domain", calcerr.ErrDomain),
			wantCode: http.StatusUnprocessableEntity,
			wantBody: `{"error":"Value is outside the function's domain","title":"calculation error","code":"domain_error","expression":"ln(-1)"}`,
		},
		{
			name:     "echo http error",
			err:      echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"),
			wantCode: http.StatusMethodNotAllowed,
			wantBody: `{"error":"nope"}`,
		},
		{
			name:     "unhandled",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			apperr.GlobalErrorHandler()(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
