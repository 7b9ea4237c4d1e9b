package messages

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/sci-calc/internal/calcerr"
)

func TestEveryCalculatorErrorHasText(t *testing.T) {
	for _, locale := range []Locale{English, Korean} {
		for _, kind := range calcerr.All() {
			text, ok := catalogs[locale][ID(kind.Code())]
			assert.True(t, ok, "%s: no text for %s", locale, kind.Code())
			assert.NotEmpty(t, text)
		}
	}
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	require.Len(t, ko, len(en))
	for id := range en {
		_, ok := ko[id]
		assert.True(t, ok, "korean catalog misses %s", id)
	}
}

func TestForError(t *testing.T) {
	assert.Equal(t, "Cannot divide by zero", ForError(English, calcerr.ErrDivisionByZero))
	assert.Equal(t, "0으로 나눌 수 없습니다", ForError(Korean, calcerr.ErrDivisionByZero))

	wrapped := fmt.Errorf("evaluate: %w", calcerr.ErrDomain)
	assert.Equal(t, "Value is outside the function's domain", ForError(English, wrapped))

	assert.Equal(t, "Calculation error", ForError(English, errors.New("boom")))
	assert.Equal(t, "계산 오류", ForError(Korean, errors.New("boom")))
}

func TestT(t *testing.T) {
	assert.Equal(t, "Angle unit set to RAD", T(English, AngleUnitSet, "RAD"))
	assert.Equal(t, "History cleared", T(Locale("fr"), HistoryCleared))
	assert.Equal(t, "Calculation error", T(English, ID("nope")))
}

func TestParseLocale(t *testing.T) {
	l, err := ParseLocale("")
	require.NoError(t, err)
	assert.Equal(t, English, l)

	l, err = ParseLocale(" KO ")
	require.NoError(t, err)
	assert.Equal(t, Korean, l)

	_, err = ParseLocale("de")
	assert.Error(t, err)
}
