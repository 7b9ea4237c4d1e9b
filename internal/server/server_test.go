package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgserver "github.com/DjordjeVuckovic/sci-calc/pkg/server"
)

type downChecker struct{}

func (downChecker) Healthy(context.Context) bool { return false }

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    *Config
		wantErr bool
	}{
		{
			name: "defaults",
			env:  map[string]string{"PORT": "", "USE_HTTP2": "", "CORS_ORIGINS": ""},
			want: &Config{Port: "8080", CorsOrigins: []string{"*"}},
		},
		{
			name: "explicit",
			env:  map[string]string{"PORT": "9000", "USE_HTTP2": "true", "CORS_ORIGINS": " http://a.io, ,http://b.io"},
			want: &Config{Port: "9000", UseHttp2: true, CorsOrigins: []string{"http://a.io", "http://b.io"}},
		},
		{name: "not a number", env: map[string]string{"PORT": "http"}, wantErr: true},
		{name: "out of range", env: map[string]string{"PORT": "70000"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			got, err := LoadConfig()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name     string
		checker  pkgserver.HealthChecker
		wantCode int
	}{
		{name: "healthy", checker: pkgserver.NewOkHealthChecker(), wantCode: http.StatusOK},
		{name: "unhealthy", checker: downChecker{}, wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(&Config{Port: "0", CorsOrigins: []string{"*"}}).
				WithHealthChecker(tt.checker).
				SetupMiddlewares().
				SetupErrorHandler().
				SetupHealthChecks("/health")

			rec := httptest.NewRecorder()
			s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
