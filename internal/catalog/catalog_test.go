package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/sci-calc/internal/token"
)

func TestEveryTokenHasAnEntry(t *testing.T) {
	for _, fn := range token.Functions() {
		_, ok := Lookup(fn.String())
		assert.True(t, ok, "missing catalogue entry for function %s", fn)
	}
	for _, c := range []token.Constant{token.Pi, token.E} {
		_, ok := Lookup(c.String())
		assert.True(t, ok, "missing catalogue entry for constant %s", c)
	}
	for _, op := range []token.Operator{token.Add, token.Sub, token.Mul, token.Div, token.Pow} {
		_, ok := Lookup(op.String())
		assert.True(t, ok, "missing catalogue entry for operator %s", op)
	}
}

func TestEntriesAreComplete(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range Functions() {
		assert.NotEmpty(t, f.Symbol, f.Name)
		assert.NotEmpty(t, f.Description, f.Name)
		assert.NotEmpty(t, f.Usage, f.Name)
		assert.NotEmpty(t, f.Example, f.Name)
		assert.Contains(t, Categories(), f.Category, f.Name)
		assert.False(t, seen[f.Name], "duplicate entry %s", f.Name)
		seen[f.Name] = true
	}
}

func TestByCategory(t *testing.T) {
	total := 0
	for _, c := range Categories() {
		entries := ByCategory(c)
		assert.NotEmpty(t, entries, c)
		total += len(entries)
	}
	assert.Equal(t, len(Functions()), total)
}

func TestFunctionsReturnsCopy(t *testing.T) {
	got := Functions()
	got[0].Name = "changed"

	_, ok := Lookup("+")
	assert.True(t, ok)
}

func TestTips(t *testing.T) {
	require.NotEmpty(t, Tips())
	assert.True(t, DailyTip(0).Daily)
	assert.Equal(t, DailyTip(3), DailyTip(-3))
}
