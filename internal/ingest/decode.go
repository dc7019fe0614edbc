package ingest

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/agentic-research/marquee/api"
)

var ErrInvalidRecord = errors.New("invalid movie record")

// DecodeMovie converts a selected object into a Movie. title, director and
// year are required; year may be a number or a numeric string (YAML and
// hand-written JSON disagree on this). cast is optional.
func DecodeMovie(values map[string]any) (api.Movie, error) {
	var m api.Movie

	title, err := requiredString(values, "title")
	if err != nil {
		return m, err
	}
	m.Title = title

	if m.Director, err = requiredString(values, "director"); err != nil {
		return m, fmt.Errorf("%q: %w", title, err)
	}

	if m.Year, err = decodeYear(values["year"]); err != nil {
		return m, fmt.Errorf("%q: %w", title, err)
	}

	switch cast := values["cast"].(type) {
	case nil:
	case []any:
		for i, c := range cast {
			name, ok := c.(string)
			if !ok {
				return m, fmt.Errorf("%q: cast[%d] is %T: %w", title, i, c, ErrInvalidRecord)
			}
			m.Cast = append(m.Cast, name)
		}
	default:
		return m, fmt.Errorf("%q: cast is %T: %w", title, cast, ErrInvalidRecord)
	}

	return m, nil
}

func requiredString(values map[string]any, field string) (string, error) {
	s, ok := values[field].(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("missing %s: %w", field, ErrInvalidRecord)
	}
	return s, nil
}

func decodeYear(v any) (int, error) {
	switch y := v.(type) {
	case int:
		return y, nil
	case int64:
		return int(y), nil
	case float64:
		if y != math.Trunc(y) {
			return 0, fmt.Errorf("year %v is not whole: %w", y, ErrInvalidRecord)
		}
		return int(y), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(y))
		if err != nil {
			return 0, fmt.Errorf("year %q: %w", y, ErrInvalidRecord)
		}
		return n, nil
	case nil:
		return 0, fmt.Errorf("missing year: %w", ErrInvalidRecord)
	default:
		return 0, fmt.Errorf("year is %T: %w", v, ErrInvalidRecord)
	}
}
