package answer

import (
	"fmt"

	"github.com/agentic-research/marquee/api"
	"github.com/agentic-research/marquee/internal/logger"
	"github.com/agentic-research/marquee/internal/query"
	"github.com/agentic-research/marquee/internal/store"
)

// Action names usable in pattern sets.
const (
	ActionTitleByYear      = "title_by_year"
	ActionTitleByYearRange = "title_by_year_range"
	ActionTitleBeforeYear  = "title_before_year"
	ActionTitleAfterYear   = "title_after_year"
	ActionDirectorByTitle  = "director_by_title"
	ActionTitleByDirector  = "title_by_director"
	ActionActorsByTitle    = "actors_by_title"
	ActionYearByTitle      = "year_by_title"
	ActionTitleByActor     = "title_by_actor"
	ActionDirectorsByYear  = "directors_by_year"
	ActionBye              = "bye"
)

// Actions registers every handler under its action name.
func (h *Handlers) Actions() query.Actions {
	return query.Actions{
		ActionTitleByYear:      {Arity: 1, Handler: h.TitleByYear},
		ActionTitleByYearRange: {Arity: 2, Handler: h.TitleByYearRange},
		ActionTitleBeforeYear:  {Arity: 1, Handler: h.TitleBeforeYear},
		ActionTitleAfterYear:   {Arity: 1, Handler: h.TitleAfterYear},
		ActionDirectorByTitle:  {Arity: 1, Handler: h.DirectorByTitle},
		ActionTitleByDirector:  {Arity: 1, Handler: h.TitleByDirector},
		ActionActorsByTitle:    {Arity: 1, Handler: h.ActorsByTitle},
		ActionYearByTitle:      {Arity: 1, Handler: h.YearByTitle},
		ActionTitleByActor:     {Arity: 1, Handler: h.TitleByActor},
		ActionDirectorsByYear:  {Arity: 1, Handler: h.DirectorsByYear},
		ActionBye:              {Control: true},
	}
}

// DefaultPatterns is the built-in question table. Two phrasings share
// director_by_title.
func DefaultPatterns() api.PatternSet {
	return api.PatternSet{
		Version: "v1",
		Patterns: []api.Pattern{
			{Template: "what movies were made in _", Action: ActionTitleByYear},
			{Template: "what movies were made between _ and _", Action: ActionTitleByYearRange},
			{Template: "what movies were made before _", Action: ActionTitleBeforeYear},
			{Template: "what movies were made after _", Action: ActionTitleAfterYear},
			{Template: "who directed %", Action: ActionDirectorByTitle},
			{Template: "who was the director of %", Action: ActionDirectorByTitle},
			{Template: "what movies were directed by %", Action: ActionTitleByDirector},
			{Template: "who acted in %", Action: ActionActorsByTitle},
			{Template: "when was % made", Action: ActionYearByTitle},
			{Template: "in what movies did % appear", Action: ActionTitleByActor},
			{Template: "which directors directed movies in _", Action: ActionDirectorsByYear},
			{Template: "bye", Action: ActionBye},
		},
	}
}

// NewResolver compiles set against the handlers for s.
func NewResolver(s store.Store, set api.PatternSet, log *logger.Logger) (*query.Resolver, error) {
	log = logger.OrNop(log)
	table, err := query.Compile(set, New(s, log.With("component", "answer")).Actions())
	if err != nil {
		return nil, fmt.Errorf("compile patterns: %w", err)
	}
	return query.NewResolver(table, log.With("component", "resolver")), nil
}
