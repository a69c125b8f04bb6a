package slug

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Blue Widget", "blue-widget"},
		{"accents folded", "Café Déjà Vu", "cafe-deja-vu"},
		{"symbol runs collapse", "A+B  / C!!", "a-b-c"},
		{"leading and trailing trimmed", "  --Widget--  ", "widget"},
		{"digits kept", "Widget 2000", "widget-2000"},
		{"already clean", "widget", "widget"},
		{"only symbols", "+++", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Make(tt.input))
		})
	}
}

func TestMakeUnique(t *testing.T) {
	t.Run("no collision returns base", func(t *testing.T) {
		got, err := MakeUnique("Blue Widget", func(s string) (bool, error) {
			return false, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "blue-widget", got)
	})

	t.Run("probes numeric suffixes in order", func(t *testing.T) {
		existing := map[string]bool{
			"blue-widget":   true,
			"blue-widget-1": true,
			"blue-widget-2": true,
		}
		var probed []string
		got, err := MakeUnique("Blue Widget", func(s string) (bool, error) {
			probed = append(probed, s)
			return existing[s], nil
		})
		require.NoError(t, err)
		assert.Equal(t, "blue-widget-3", got)
		assert.Equal(t, []string{"blue-widget", "blue-widget-1", "blue-widget-2", "blue-widget-3"}, probed)
	})

	t.Run("lookup error propagates", func(t *testing.T) {
		lookupErr := errors.New("connection lost")
		_, err := MakeUnique("Blue Widget", func(s string) (bool, error) {
			return false, lookupErr
		})
		assert.ErrorIs(t, err, lookupErr)
	})
}
