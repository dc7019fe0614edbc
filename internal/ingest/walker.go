package ingest

import (
	"fmt"

	"github.com/agentic-research/marquee/api"
	"github.com/ohler55/ojg/jp"
)

// RecordSelector picks movie records out of a decoded document tree
// (maps, slices and scalars as produced by encoding/json or yaml.v3).
// The JSONPath is compiled once and reused for every document.
type RecordSelector struct {
	path string
	expr jp.Expr
}

// NewRecordSelector compiles path. An empty path means DefaultSelector.
func NewRecordSelector(path string) (*RecordSelector, error) {
	if path == "" {
		path = DefaultSelector
	}
	x, err := jp.ParseString(path)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath %q: %w", path, err)
	}
	return &RecordSelector{path: path, expr: x}, nil
}

// Path returns the selector source.
func (s *RecordSelector) Path() string { return s.path }

// Walk decodes every match under root in document order and hands it to
// fn. A match that is not an object, or fails DecodeMovie, stops the walk
// with an error naming its index.
func (s *RecordSelector) Walk(root any, fn func(m api.Movie) error) error {
	for i, r := range s.expr.Get(root) {
		obj, ok := r.(map[string]any)
		if !ok {
			return fmt.Errorf("record %d is %T: %w", i, r, ErrInvalidRecord)
		}
		m, err := DecodeMovie(obj)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if err := fn(m); err != nil {
			return err
		}
	}
	return nil
}

// Records collects Walk into a slice.
func (s *RecordSelector) Records(root any) ([]api.Movie, error) {
	var out []api.Movie
	err := s.Walk(root, func(m api.Movie) error {
		out = append(out, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
