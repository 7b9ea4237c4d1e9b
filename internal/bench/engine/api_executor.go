package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/sci-calc/internal/apperr"
	"github.com/DjordjeVuckovic/sci-calc/internal/dto"
	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
)

const calculatePath = "/api/v1/calculate"

// APIExecutor posts expressions to a running calc_api instance.
type APIExecutor struct {
	name    string
	baseURL string
	client  *http.Client
}

func NewAPIExecutor(name, baseURL string) *APIExecutor {
	return &APIExecutor{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (e *APIExecutor) Execute(ctx context.Context, expression string, unit angle.Unit) (*Execution, error) {
	payload, err := json.Marshal(dto.CalculateRequest{Expression: expression, AngleUnit: &unit})
	if err != nil {
		return nil, fmt.Errorf("api marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+calculatePath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("api create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("api request: %w", err)
	}
	defer resp.Body.Close()
	latency := time.Since(start)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("api read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var out dto.CalculateResponse
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, fmt.Errorf("api parse response: %w", err)
		}
		return &Execution{Value: out.Result, Formatted: out.Formatted, Latency: latency}, nil

	case http.StatusUnprocessableEntity:
		var out apperr.ErrorResponse
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, fmt.Errorf("api parse error response: %w", err)
		}
		if out.Code == "" {
			return nil, fmt.Errorf("api error response without code: %s", out.Error)
		}
		return &Execution{ErrorCode: out.Code, Latency: latency}, nil

	default:
		return nil, fmt.Errorf("api status %d: %s", resp.StatusCode, string(body))
	}
}

func (e *APIExecutor) Name() string { return e.name }
func (e *APIExecutor) Close() error { return nil }
