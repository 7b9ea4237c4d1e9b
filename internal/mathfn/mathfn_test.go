package mathfn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/sci-calc/internal/calcerr"
	"github.com/DjordjeVuckovic/sci-calc/internal/token"
	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr error
	}{
		{name: "finite", input: 42},
		{name: "zero", input: 0},
		{name: "nan", input: math.NaN(), wantErr: calcerr.ErrDomain},
		{name: "positive infinity", input: math.Inf(1), wantErr: calcerr.ErrOverflow},
		{name: "negative infinity", input: math.Inf(-1), wantErr: calcerr.ErrUnderflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestArithmetic(t *testing.T) {
	assert.Equal(t, 5.0, Add(2, 3))
	assert.Equal(t, -1.0, Subtract(2, 3))
	assert.Equal(t, 6.0, Multiply(2, 3))

	got, err := Divide(10, 4)
	require.NoError(t, err)
	assert.Equal(t, 2.5, got)

	_, err = Divide(1, 0)
	assert.ErrorIs(t, err, calcerr.ErrDivisionByZero)

	_, err = Divide(0, 0)
	assert.ErrorIs(t, err, calcerr.ErrDivisionByZero)

	_, err = Divide(1e308, 1e-10)
	assert.ErrorIs(t, err, calcerr.ErrOverflow)
}

func TestPower(t *testing.T) {
	tests := []struct {
		name     string
		base     float64
		exponent float64
		want     float64
		wantErr  error
	}{
		{name: "integer", base: 2, exponent: 10, want: 1024},
		{name: "negative base odd exponent", base: -2, exponent: 3, want: -8},
		{name: "fractional exponent", base: 4, exponent: 0.5, want: 2},
		{name: "zero to zero", base: 0, exponent: 0, want: 1},
		{name: "zero to negative", base: 0, exponent: -1, wantErr: calcerr.ErrDivisionByZero},
		{name: "negative base fractional exponent", base: -8, exponent: 1.0 / 3, wantErr: calcerr.ErrDomain},
		{name: "overflow", base: 10, exponent: 400, wantErr: calcerr.ErrOverflow},
		{name: "negative overflow", base: -10, exponent: 401, wantErr: calcerr.ErrUnderflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Power(tt.base, tt.exponent)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestSineCosine_Snapping(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		unit  angle.Unit
		sin   float64
		cos   float64
	}{
		{name: "0 deg", input: 0, unit: angle.Degree, sin: 0, cos: 1},
		{name: "90 deg", input: 90, unit: angle.Degree, sin: 1, cos: 0},
		{name: "180 deg", input: 180, unit: angle.Degree, sin: 0, cos: -1},
		{name: "270 deg", input: 270, unit: angle.Degree, sin: -1, cos: 0},
		{name: "-90 deg", input: -90, unit: angle.Degree, sin: -1, cos: 0},
		{name: "many turns", input: 3600090, unit: angle.Degree, sin: 1, cos: 0},
		{name: "many turns unset unit", input: 3600090, unit: angle.Unit(""), sin: 1, cos: 0},
		{name: "pi rad", input: math.Pi, unit: angle.Radian, sin: 0, cos: -1},
		{name: "half pi rad", input: math.Pi / 2, unit: angle.Radian, sin: 1, cos: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sin, Sine(tt.input, tt.unit))
			assert.Equal(t, tt.cos, Cosine(tt.input, tt.unit))
		})
	}
}

func TestSineCosine_General(t *testing.T) {
	assert.InDelta(t, 0.5, Sine(30, angle.Degree), 1e-12)
	assert.InDelta(t, 0.5, Cosine(60, angle.Degree), 1e-12)
	assert.InDelta(t, math.Sin(1), Sine(1, angle.Radian), 1e-15)
	assert.True(t, math.IsNaN(Sine(math.Inf(1), angle.Radian)))
	assert.True(t, math.IsNaN(Cosine(math.NaN(), angle.Degree)))
}

func TestTangent(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		unit    angle.Unit
		want    float64
		wantErr bool
	}{
		{name: "45 deg", input: 45, unit: angle.Degree, want: 1},
		{name: "180 deg", input: 180, unit: angle.Degree, want: 0},
		{name: "-45 deg", input: -45, unit: angle.Degree, want: -1},
		{name: "90 deg pole", input: 90, unit: angle.Degree, wantErr: true},
		{name: "many turns pole unset unit", input: 3600090, unit: angle.Unit(""), wantErr: true},
		{name: "270 deg pole", input: 270, unit: angle.Degree, wantErr: true},
		{name: "-90 deg pole", input: -90, unit: angle.Degree, wantErr: true},
		{name: "half pi rad pole", input: math.Pi / 2, unit: angle.Radian, wantErr: true},
		{name: "infinite input", input: math.Inf(1), unit: angle.Radian, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tangent(tt.input, tt.unit)
			if tt.wantErr {
				assert.ErrorIs(t, err, calcerr.ErrDomain)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestInverseTrig(t *testing.T) {
	got, err := Arcsine(1, angle.Degree)
	require.NoError(t, err)
	assert.InDelta(t, 90.0, got, 1e-12)

	got, err = Arccosine(0, angle.Radian)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, got, 1e-12)

	got, err = Arctangent(1, angle.Degree)
	require.NoError(t, err)
	assert.InDelta(t, 45.0, got, 1e-12)

	_, err = Arcsine(1.5, angle.Degree)
	assert.ErrorIs(t, err, calcerr.ErrDomain)

	_, err = Arccosine(-1.0001, angle.Radian)
	assert.ErrorIs(t, err, calcerr.ErrDomain)

	_, err = Arcsine(math.NaN(), angle.Radian)
	assert.ErrorIs(t, err, calcerr.ErrDomain)
}

func TestLogarithms(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(float64) (float64, error)
		input   float64
		want    float64
		wantErr bool
	}{
		{name: "ln e", fn: NaturalLog, input: math.E, want: 1},
		{name: "log 1000", fn: CommonLog, input: 1000, want: 3},
		{name: "log2 8", fn: BinaryLog, input: 8, want: 3},
		{name: "ln zero", fn: NaturalLog, input: 0, wantErr: true},
		{name: "log negative", fn: CommonLog, input: -10, wantErr: true},
		{name: "log2 infinity", fn: BinaryLog, input: math.Inf(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, calcerr.ErrDomain)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestExponentials(t *testing.T) {
	got, err := NaturalExp(1)
	require.NoError(t, err)
	assert.InDelta(t, math.E, got, 1e-12)

	got, err = NaturalExp(-701)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	_, err = NaturalExp(701)
	assert.ErrorIs(t, err, calcerr.ErrOverflow)

	got, err = PowerOfTen(2)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)

	got, err = PowerOfTen(-301)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	_, err = PowerOfTen(301)
	assert.ErrorIs(t, err, calcerr.ErrOverflow)
}

func TestRoots(t *testing.T) {
	got, err := SquareRoot(16)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)

	_, err = SquareRoot(-1)
	assert.ErrorIs(t, err, calcerr.ErrDomain)

	got, err = CubeRoot(-27)
	require.NoError(t, err)
	assert.InDelta(t, -3.0, got, 1e-12)

	_, err = CubeRoot(math.NaN())
	assert.ErrorIs(t, err, calcerr.ErrDomain)

	assert.Equal(t, 5.0, AbsoluteValue(-5))
	assert.True(t, math.IsNaN(AbsoluteValue(math.Inf(-1))))
}

func TestDispatch_CoversEveryToken(t *testing.T) {
	for _, fn := range token.Functions() {
		f, ok := Unary(fn)
		require.True(t, ok, fn.String())
		require.NotNil(t, f, fn.String())
	}
	for _, op := range []token.Operator{token.Add, token.Sub, token.Mul, token.Div, token.Pow} {
		f, ok := Binary(op)
		require.True(t, ok, op.String())
		require.NotNil(t, f, op.String())
	}
}

func TestDispatch_UnitIsForwarded(t *testing.T) {
	sin, ok := Unary(token.Sin)
	require.True(t, ok)

	got, err := sin(90, angle.Degree)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = sin(90, angle.Radian)
	require.NoError(t, err)
	assert.InDelta(t, math.Sin(90), got, 1e-15)
}
