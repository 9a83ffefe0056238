// internal/validation/coerce_test.go
package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		in      any
		want    *float64
		wantErr bool
	}{
		{in: nil},
		{in: ""},
		{in: "   "},
		{in: "12.5", want: ptr(12.5)},
		{in: " 3 ", want: ptr(3)},
		{in: 7, want: ptr(7)},
		{in: json.Number("0.1"), want: ptr(0.1)},
		{in: "1e3", want: ptr(1000)},
		{in: "douze", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: []string{"1"}, wantErr: true},
	}

	for _, tt := range tests {
		got, err := CoerceNumber(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "%v", tt.in)
			continue
		}
		require.NoError(t, err, "%v", tt.in)
		assert.Equal(t, tt.want, got, "%v", tt.in)
	}
}

func TestCoerceInteger(t *testing.T) {
	n, err := CoerceInteger("4")
	require.NoError(t, err)
	assert.Equal(t, 4, *n)

	_, err = CoerceInteger("4.2")
	assert.ErrorIs(t, err, errNotInteger)

	n, err = CoerceInteger("")
	require.NoError(t, err)
	assert.Nil(t, n)
}

func TestCoerceBool(t *testing.T) {
	assert.Nil(t, CoerceBool(nil))
	assert.True(t, *CoerceBool("true"))
	assert.True(t, *CoerceBool(true))
	assert.False(t, *CoerceBool("TRUE"))
	assert.False(t, *CoerceBool(""))
	assert.False(t, *CoerceBool("1"))
}

func TestCoerceRows(t *testing.T) {
	rows, ok, err := CoerceRows(`[]`)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, rows)

	rows, ok, err = CoerceRows(`not json`)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, rows)

	_, ok, err = CoerceRows(`[1, 2]`)
	assert.True(t, ok)
	assert.ErrorIs(t, err, errNotRows)

	rows, ok, err = CoerceRows([]map[string]string{{"taille": "XL"}})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "XL", rows[0]["taille"])
}

func ptr(f float64) *float64 {
	return &f
}
