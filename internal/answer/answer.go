// Package answer implements the movie questions on top of a store.Store.
//
// Every handler follows the same contract: given the spans bound by its
// template it returns a list of answer lines, or nil when there is no data.
// Store failures and unparsable years are logged and reported as no data.
package answer

import (
	"errors"
	"strconv"

	"github.com/agentic-research/marquee/api"
	"github.com/agentic-research/marquee/internal/logger"
	"github.com/agentic-research/marquee/internal/pattern"
	"github.com/agentic-research/marquee/internal/store"
)

// Handlers binds the movie questions to a store.
type Handlers struct {
	store store.Store
	log   *logger.Logger
}

func New(s store.Store, log *logger.Logger) *Handlers {
	return &Handlers{store: s, log: logger.OrNop(log)}
}

// TitleByYear answers "what movies were made in _".
func (h *Handlers) TitleByYear(b pattern.Bindings) []string {
	year, ok := h.year(b, 0)
	if !ok {
		return nil
	}
	return titles(h.yearRange(year, year))
}

// TitleByYearRange answers "what movies were made between _ and _",
// inclusive at both ends.
func (h *Handlers) TitleByYearRange(b pattern.Bindings) []string {
	from, ok := h.year(b, 0)
	if !ok {
		return nil
	}
	to, ok := h.year(b, 1)
	if !ok {
		return nil
	}
	return titles(h.yearRange(from, to))
}

// TitleBeforeYear answers "what movies were made before _", exclusive.
func (h *Handlers) TitleBeforeYear(b pattern.Bindings) []string {
	year, ok := h.year(b, 0)
	if !ok {
		return nil
	}
	bounds, ok := h.bounds()
	if !ok || year <= bounds.Min {
		return nil
	}
	return titles(h.yearRange(bounds.Min, year-1))
}

// TitleAfterYear answers "what movies were made after _", exclusive.
func (h *Handlers) TitleAfterYear(b pattern.Bindings) []string {
	year, ok := h.year(b, 0)
	if !ok {
		return nil
	}
	bounds, ok := h.bounds()
	if !ok || year >= bounds.Max {
		return nil
	}
	return titles(h.yearRange(year+1, bounds.Max))
}

// DirectorByTitle answers "who directed %".
func (h *Handlers) DirectorByTitle(b pattern.Bindings) []string {
	movies := h.lookup("title", h.store.ByTitle, arg(b, 0))
	out := make([]string, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.Director)
	}
	return out
}

// TitleByDirector answers "what movies were directed by %".
func (h *Handlers) TitleByDirector(b pattern.Bindings) []string {
	return titles(h.lookup("director", h.store.ByDirector, arg(b, 0)))
}

// ActorsByTitle answers "who acted in %" with the cast of the first movie
// carrying that title.
func (h *Handlers) ActorsByTitle(b pattern.Bindings) []string {
	movies := h.lookup("title", h.store.ByTitle, arg(b, 0))
	if len(movies) == 0 {
		return nil
	}
	return append([]string(nil), movies[0].Cast...)
}

// YearByTitle answers "when was % made".
func (h *Handlers) YearByTitle(b pattern.Bindings) []string {
	movies := h.lookup("title", h.store.ByTitle, arg(b, 0))
	out := make([]string, 0, len(movies))
	for _, m := range movies {
		out = append(out, strconv.Itoa(m.Year))
	}
	return out
}

// TitleByActor answers "in what movies did % appear".
func (h *Handlers) TitleByActor(b pattern.Bindings) []string {
	return titles(h.lookup("actor", h.store.ByActor, arg(b, 0)))
}

// DirectorsByYear answers "which directors directed movies in _".
// A director with several movies that year is listed once per movie.
func (h *Handlers) DirectorsByYear(b pattern.Bindings) []string {
	year, ok := h.year(b, 0)
	if !ok {
		return nil
	}
	movies := h.yearRange(year, year)
	out := make([]string, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.Director)
	}
	return out
}

func arg(b pattern.Bindings, i int) string {
	if i >= len(b) {
		return ""
	}
	return b.Strings()[i]
}

func (h *Handlers) year(b pattern.Bindings, i int) (int, bool) {
	raw := arg(b, i)
	year, err := strconv.Atoi(raw)
	if err != nil {
		h.log.Debug("year binding is not numeric", "value", raw)
		return 0, false
	}
	return year, true
}

func (h *Handlers) bounds() (store.Bounds, bool) {
	bounds, err := h.store.YearBounds()
	if errors.Is(err, store.ErrEmpty) {
		return bounds, false
	}
	if err != nil {
		h.log.Error("year bounds failed", "error", err)
		return bounds, false
	}
	return bounds, true
}

func (h *Handlers) yearRange(from, to int) []api.Movie {
	if from > to {
		return nil
	}
	movies, err := h.store.ByYearRange(from, to)
	if err != nil {
		h.log.Error("year range lookup failed", "from", from, "to", to, "error", err)
		return nil
	}
	return movies
}

func (h *Handlers) lookup(field string, fn func(string) ([]api.Movie, error), value string) []api.Movie {
	if value == "" {
		return nil
	}
	movies, err := fn(value)
	if err != nil {
		h.log.Error("lookup failed", "field", field, "value", value, "error", err)
		return nil
	}
	return movies
}

func titles(movies []api.Movie) []string {
	out := make([]string, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.Title)
	}
	return out
}
