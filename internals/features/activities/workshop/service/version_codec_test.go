package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestNormalizeVersion(t *testing.T) {
	cases := []struct {
		name string
		raw  interface{}
		want int
		ok   bool
	}{
		{"int", 2, 2, true},
		{"int64", int64(7), 7, true},
		{"float entero", 2.0, 2, true},
		{"float con decimales trunca", 2.9, 2, true},
		{"float negativo trunca hacia cero", -1.7, -1, true},
		{"string entero", "2", 2, true},
		{"string decimal", "2.0", 2, true},
		{"string con espacios", "  3 ", 3, true},
		{"json.Number", json.Number("4"), 4, true},
		{"string vacío", "", 0, false},
		{"string no numérico", "dos", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NormalizeVersion(tc.raw)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

// Las cuatro representaciones históricas de la versión 2 deben normalizar
// al mismo entero.
func TestNormalizeStoredVersion_RepresentacionesEquivalentes(t *testing.T) {
	for _, raw := range []string{`2`, `"2"`, `2.0`, `"2.0"`} {
		v, ok := NormalizeStoredVersion(datatypes.JSON(raw))
		assert.True(t, ok, "raw=%s", raw)
		assert.Equal(t, 2, v, "raw=%s", raw)
	}
}

func TestNormalizeStoredVersion_Invalidos(t *testing.T) {
	for _, raw := range []string{``, `null`, `"abc"`, `{}`, `[2]`} {
		_, ok := NormalizeStoredVersion(datatypes.JSON(raw))
		assert.False(t, ok, "raw=%s", raw)
	}
}

func TestVersionJSON_RoundTrip(t *testing.T) {
	v, ok := NormalizeStoredVersion(VersionJSON(5))
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	assert.Equal(t, "5", string(VersionJSON(5)))
}

func TestDateLabel(t *testing.T) {
	d := time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "01/01/24", DateLabel(d))

	d2 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "01/02/24", DateLabel(d2))
}
