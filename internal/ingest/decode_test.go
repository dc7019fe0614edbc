package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMovie(t *testing.T) {
	t.Run("json numbers", func(t *testing.T) {
		m, err := DecodeMovie(map[string]any{
			"title": "jaws", "director": "steven spielberg", "year": float64(1975),
			"cast": []any{"roy scheider"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1975, m.Year)
		assert.Equal(t, []string{"roy scheider"}, m.Cast)
	})

	t.Run("yaml ints and string years", func(t *testing.T) {
		for _, year := range []any{1975, int64(1975), "1975", " 1975 "} {
			m, err := DecodeMovie(map[string]any{"title": "jaws", "director": "s", "year": year})
			require.NoError(t, err, "year %#v", year)
			assert.Equal(t, 1975, m.Year)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		cases := map[string]map[string]any{
			"missing title":    {"director": "d", "year": 1975},
			"blank director":   {"title": "t", "director": "  ", "year": 1975},
			"missing year":     {"title": "t", "director": "d"},
			"fractional year":  {"title": "t", "director": "d", "year": 1975.5},
			"word year":        {"title": "t", "director": "d", "year": "soon"},
			"bool year":        {"title": "t", "director": "d", "year": true},
			"cast not list":    {"title": "t", "director": "d", "year": 1975, "cast": "roy scheider"},
			"cast not strings": {"title": "t", "director": "d", "year": 1975, "cast": []any{1}},
		}
		for name, values := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := DecodeMovie(values)
				assert.ErrorIs(t, err, ErrInvalidRecord)
			})
		}
	})
}
