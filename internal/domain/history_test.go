package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
)

func TestNewHistoryResult(t *testing.T) {
	h := NewHistoryResult("  2 + 3  ", 5, angle.Radian)

	assert.Equal(t, "2 + 3", h.Expression)
	require.NotNil(t, h.Result)
	assert.Equal(t, 5.0, *h.Result)
	assert.Nil(t, h.ErrorMessage)
	assert.Equal(t, angle.Radian, h.AngleUnit)
	assert.False(t, h.HasError())
	assert.True(t, h.Valid())
	assert.NotEqual(t, [16]byte{}, [16]byte(h.ID))
	assert.Equal(t, "UTC", h.Timestamp.Location().String())
}

func TestNewHistoryError(t *testing.T) {
	h := NewHistoryError("5/0", "Cannot divide by zero", angle.Degree)

	assert.True(t, h.HasError())
	assert.Nil(t, h.Result)
	assert.True(t, h.Valid())
	assert.Equal(t, "Cannot divide by zero", h.FormattedResult())
	assert.Equal(t, "5/0", h.ReusableExpression())
}

func TestHistoryEntry_Valid(t *testing.T) {
	assert.False(t, NewHistoryResult("   ", 1, angle.Degree).Valid())
	assert.False(t, HistoryEntry{Expression: "1+1"}.Valid())
}

func TestHistoryEntry_FormattedResult(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "integer", value: 42, want: "42"},
		{name: "negative integer", value: -7, want: "-7"},
		{name: "large integer", value: 1e12, want: "1000000000000"},
		{name: "fraction", value: 3.14159, want: "3.142"},
		{name: "large fraction", value: 1.5e15, want: "1.5000e+15"},
		{name: "small", value: 0.00001234, want: "1.2340e-05"},
		{name: "infinity", value: math.Inf(1), want: "∞"},
		{name: "negative infinity", value: math.Inf(-1), want: "-∞"},
		{name: "nan", value: math.NaN(), want: "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistoryResult("x", tt.value, angle.Degree)
			assert.Equal(t, tt.want, h.FormattedResult())
		})
	}
}

func TestHistoryEntry_ReusableExpression(t *testing.T) {
	h := NewHistoryResult("2^10", 1024, angle.Degree)
	assert.Equal(t, "2^10 = 1024", h.ReusableExpression())
}

func TestHistoryEntry_JSON(t *testing.T) {
	h := NewHistoryResult("1+1", 2, angle.Radian)

	data, err := json.Marshal(h)
	require.NoError(t, err)

	var decoded HistoryEntry
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, h.ID, decoded.ID)
	assert.Equal(t, angle.Radian, decoded.AngleUnit)
	require.NotNil(t, decoded.Result)
	assert.Equal(t, 2.0, *decoded.Result)
	assert.NotContains(t, string(data), "error_message")
}
