package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenreName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"plain", "Work", "Work", nil},
		{"trimmed", "  Home  ", "Home", nil},
		{"empty", "", "", ErrGenreNameRequired},
		{"whitespace only", "   ", "", ErrGenreNameRequired},
		{"max length", strings.Repeat("a", 255), strings.Repeat("a", 255), nil},
		{"multibyte within limit", strings.Repeat("仕", 255), strings.Repeat("仕", 255), nil},
		{"too long", strings.Repeat("a", 256), "", ErrGenreNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewGenreName(tt.input)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseID(t *testing.T) {
	valid := []any{"1", " 42 ", int64(7), 3, float64(12)}
	for _, raw := range valid {
		id, err := ParseID(raw)
		require.NoError(t, err, raw)
		assert.Positive(t, id)
	}

	invalid := []any{"abc", "", "0", "-3", "1.5", 0, float64(2.5), nil, true}
	for _, raw := range invalid {
		_, err := ParseID(raw)
		assert.ErrorIs(t, err, ErrMalformedIdentifier, raw)
	}
}
