package pricing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundCurrency_HalfUp(t *testing.T) {
	assert.Equal(t, "2.68", RoundCurrency(dec("2.675")).StringFixed(2))
	assert.Equal(t, "2.67", RoundCurrency(dec("2.6749")).StringFixed(2))
	assert.Equal(t, "-2.68", RoundCurrency(dec("-2.675")).StringFixed(2))
	assert.Equal(t, "721.20", RoundCurrency(dec("721.2")).StringFixed(2))
}

func TestToDecimal_AcceptsNumbersAndNumericStrings(t *testing.T) {
	for _, v := range []any{json.Number("12.5"), "12.5", " 12.5 ", 12.5, dec("12.5")} {
		d, err := toDecimal(v)
		require.NoError(t, err, "value %#v", v)
		assert.True(t, d.Equal(dec("12.5")), "value %#v", v)
	}

	d, err := toDecimal(7)
	require.NoError(t, err)
	assert.True(t, d.Equal(dec("7")))
}

func TestToDecimal_RejectsNonNumeric(t *testing.T) {
	for _, v := range []any{"abc", true, nil, []any{1}, map[string]any{}} {
		_, err := toDecimal(v)
		assert.Error(t, err, "value %#v", v)
	}
}

func TestValuesEqual_IsStrict(t *testing.T) {
	assert.True(t, valuesEqual("red", "red"))
	assert.False(t, valuesEqual("red", "Red"))
	assert.True(t, valuesEqual(json.Number("1"), json.Number("1.0")))
	assert.True(t, valuesEqual(json.Number("2"), 2.0))
	assert.False(t, valuesEqual("1", json.Number("1")), "numeric strings are not numbers")
	assert.False(t, valuesEqual(true, json.Number("1")))
	assert.True(t, valuesEqual(true, true))
	assert.False(t, valuesEqual(nil, "x"))
	assert.True(t, valuesEqual(nil, nil))
}

func TestDecodeObject(t *testing.T) {
	m, err := decodeObject(nil)
	require.NoError(t, err)
	assert.Nil(t, m)

	m, err = decodeObject([]byte(" null "))
	require.NoError(t, err)
	assert.Nil(t, m)

	m, err = decodeObject([]byte(`{"amount": 10.10}`))
	require.NoError(t, err)
	assert.Equal(t, json.Number("10.10"), m["amount"])

	_, err = decodeObject([]byte(`[1,2]`))
	assert.Error(t, err)
}
