package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/sci-calc/internal/apperr"
	"github.com/DjordjeVuckovic/sci-calc/internal/calc"
	"github.com/DjordjeVuckovic/sci-calc/internal/catalog"
	"github.com/DjordjeVuckovic/sci-calc/internal/domain"
	"github.com/DjordjeVuckovic/sci-calc/internal/dto"
	"github.com/DjordjeVuckovic/sci-calc/internal/messages"
	"github.com/DjordjeVuckovic/sci-calc/internal/service"
	"github.com/DjordjeVuckovic/sci-calc/internal/settings"
	"github.com/DjordjeVuckovic/sci-calc/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
	"github.com/DjordjeVuckovic/sci-calc/pkg/pagination"
)

func newTestAPI(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	svc := service.NewCalculator(calc.New(), in_mem.NewHistoryStore(), settings.NewMemoryStore(), messages.English)
	Register(e, svc)
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestCalculate(t *testing.T) {
	e := newTestAPI(t)

	tests := []struct {
		name       string
		body       string
		wantCode   int
		wantResult float64
		wantCalc   string
	}{
		{name: "precedence", body: `{"expression":"2 + 3 * 4"}`, wantCode: http.StatusOK, wantResult: 14},
		{name: "right associative power", body: `{"expression":"2^3^2"}`, wantCode: http.StatusOK, wantResult: 512},
		{name: "degrees by default", body: `{"expression":"sin(90)"}`, wantCode: http.StatusOK, wantResult: 1},
		{name: "radian override", body: `{"expression":"cos(π)","angle_unit":"rad"}`, wantCode: http.StatusOK, wantResult: -1},
		{name: "division by zero", body: `{"expression":"5 / 0"}`, wantCode: http.StatusUnprocessableEntity, wantCalc: "division_by_zero"},
		{name: "domain", body: `{"expression":"sqrt(-4)"}`, wantCode: http.StatusUnprocessableEntity, wantCalc: "domain_error"},
		{name: "parentheses", body: `{"expression":"(1+2"}`, wantCode: http.StatusUnprocessableEntity, wantCalc: "invalid_parentheses"},
		{name: "bad unit", body: `{"expression":"1","angle_unit":"grad"}`, wantCode: http.StatusBadRequest},
		{name: "bad json", body: `{"expression":`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, http.MethodPost, "/api/v1/calculate", tt.body)
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())

			switch tt.wantCode {
			case http.StatusOK:
				resp := decode[dto.CalculateResponse](t, rec)
				assert.InDelta(t, tt.wantResult, resp.Result, 1e-10)
				assert.NotNil(t, resp.HistoryID)
			case http.StatusUnprocessableEntity:
				resp := decode[apperr.ErrorResponse](t, rec)
				assert.Equal(t, tt.wantCalc, resp.Code)
				assert.NotEmpty(t, resp.Error)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	e := newTestAPI(t)

	rec := do(t, e, http.MethodPost, "/api/v1/validate", `{"expression":"((1+2)"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dto.ValidateResponse{Valid: false, BalancedParentheses: false}, decode[dto.ValidateResponse](t, rec))

	rec = do(t, e, http.MethodPost, "/api/v1/validate", `{"expression":"1/0"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dto.ValidateResponse{Valid: true, BalancedParentheses: true}, decode[dto.ValidateResponse](t, rec))
}

func TestFormat(t *testing.T) {
	e := newTestAPI(t)

	tests := []struct {
		query    string
		wantCode int
		want     string
	}{
		{query: "value=5", wantCode: http.StatusOK, want: "5"},
		{query: "value=1e15", wantCode: http.StatusOK, want: "1e15"},
		{query: "value=3.14159265", wantCode: http.StatusOK, want: "3.1416"},
		{query: "value=abc", wantCode: http.StatusBadRequest},
		{query: "", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := do(t, e, http.MethodGet, "/api/v1/format?"+tt.query, "")
			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, tt.want, decode[dto.FormatResponse](t, rec).Formatted)
			}
		})
	}
}

func TestHistoryEndpoints(t *testing.T) {
	e := newTestAPI(t)

	for _, expr := range []string{"1+1", "sqrt(16)", "ln(-1)"} {
		do(t, e, http.MethodPost, "/api/v1/calculate", fmt.Sprintf(`{"expression":%q}`, expr))
	}

	rec := do(t, e, http.MethodGet, "/api/v1/history?page=1&size=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[pagination.OffsetResult[dto.HistoryEntry]](t, rec)
	assert.Equal(t, int64(3), page.Total)
	assert.True(t, page.HasMore)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "ln(-1)", page.Items[0].Expression)
	assert.NotNil(t, page.Items[0].ErrorMessage)
	assert.Equal(t, "4", page.Items[1].Formatted)

	rec = do(t, e, http.MethodGet, "/api/v1/history?size=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/v1/history/search?q=SQRT", "")
	require.Equal(t, http.StatusOK, rec.Code)
	found := decode[[]dto.HistoryEntry](t, rec)
	require.Len(t, found, 1)

	rec = do(t, e, http.MethodGet, "/api/v1/history/search", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, http.MethodDelete, "/api/v1/history/"+found[0].ID.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, e, http.MethodDelete, "/api/v1/history/"+found[0].ID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, e, http.MethodDelete, "/api/v1/history/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, http.MethodDelete, "/api/v1/history", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, e, http.MethodGet, "/api/v1/history", "")
	assert.Empty(t, decode[pagination.OffsetResult[dto.HistoryEntry]](t, rec).Items)
}

func TestImportHistory(t *testing.T) {
	e := newTestAPI(t)

	body := `{"entries":[
		{"expression":"2^10","result":1024,"angle_unit":"rad","timestamp":"2025-03-01T10:00:00Z"},
		{"expression":"5/0","error_message":"Cannot divide by zero","timestamp":"2025-03-01T11:00:00Z"}
	]}`
	rec := do(t, e, http.MethodPost, "/api/v1/history/import", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, 2, decode[dto.ImportHistoryResponse](t, rec).Imported)

	rec = do(t, e, http.MethodGet, "/api/v1/history", "")
	page := decode[pagination.OffsetResult[dto.HistoryEntry]](t, rec)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "5/0", page.Items[0].Expression)
	assert.Equal(t, angle.Degree, page.Items[0].AngleUnit)
	assert.Equal(t, angle.Radian, page.Items[1].AngleUnit)

	rec = do(t, e, http.MethodPost, "/api/v1/history/import", `{"entries":[{"expression":"1"}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSettingsEndpoints(t *testing.T) {
	e := newTestAPI(t)

	rec := do(t, e, http.MethodGet, "/api/v1/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.DefaultSettings(), decode[domain.Settings](t, rec))

	rec = do(t, e, http.MethodPut, "/api/v1/settings", `{"decimal_places":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	s := decode[domain.Settings](t, rec)
	assert.Equal(t, 2, s.DecimalPlaces)
	assert.Equal(t, domain.DefaultSettings().MaxHistoryCount, s.MaxHistoryCount)

	rec = do(t, e, http.MethodPut, "/api/v1/settings", `{"decimal_places":20}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, http.MethodPost, "/api/v1/settings/angle-unit/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, angle.Radian, decode[domain.Settings](t, rec).AngleUnit)

	rec = do(t, e, http.MethodPost, "/api/v1/calculate", `{"expression":"1/3"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[dto.CalculateResponse](t, rec)
	assert.Equal(t, "0.33", resp.Formatted)
	assert.Equal(t, angle.Radian, resp.AngleUnit)
}

func TestFunctions(t *testing.T) {
	e := newTestAPI(t)

	rec := do(t, e, http.MethodGet, "/api/v1/functions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]catalog.FunctionDescription](t, rec), len(catalog.Functions()))

	rec = do(t, e, http.MethodGet, "/api/v1/functions?category=logarithmic", "")
	require.Equal(t, http.StatusOK, rec.Code)
	for _, f := range decode[[]catalog.FunctionDescription](t, rec) {
		assert.Equal(t, catalog.Logarithmic, f.Category)
	}

	rec = do(t, e, http.MethodGet, "/api/v1/tips", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode[[]catalog.Tip](t, rec))
}
