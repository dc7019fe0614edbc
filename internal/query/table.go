package query

import (
	"errors"
	"fmt"

	"github.com/agentic-research/marquee/api"
	"github.com/agentic-research/marquee/internal/pattern"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrArity         = errors.New("wildcard count does not match action arity")
)

// Handler computes answers from the spans a template bound. It returns nil
// when it has no data and must not fail for bindings of its own arity.
type Handler func(b pattern.Bindings) []string

// Action is a named handler registered for pattern sets.
type Action struct {
	// Arity is the number of wildcards a template must have to use this action.
	Arity   int
	Handler Handler
	// Control actions end the conversation instead of answering.
	Control bool
}

// Actions maps action names to their implementation.
type Actions map[string]Action

// Entry pairs a template with its handler.
type Entry struct {
	Template pattern.Template
	Action   string
	Handler  Handler
	Control  bool
}

// Table is an ordered, read-only list of entries. Declaration order decides
// which entry answers when several templates match.
type Table struct {
	entries []Entry
}

// NewTable copies entries into a table.
func NewTable(entries ...Entry) *Table {
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return &Table{entries: cp}
}

// Compile parses every pattern in set and binds it to its action.
func Compile(set api.PatternSet, actions Actions) (*Table, error) {
	entries := make([]Entry, 0, len(set.Patterns))
	for i, p := range set.Patterns {
		tmpl, err := pattern.Parse(p.Template)
		if err != nil {
			return nil, fmt.Errorf("pattern %d: %w", i, err)
		}
		act, ok := actions[p.Action]
		if !ok {
			return nil, fmt.Errorf("pattern %d %q: %w %q", i, p.Template, ErrUnknownAction, p.Action)
		}
		if tmpl.Arity() != act.Arity {
			return nil, fmt.Errorf("pattern %d %q: %w (%s wants %d, template has %d)",
				i, p.Template, ErrArity, p.Action, act.Arity, tmpl.Arity())
		}
		entries = append(entries, Entry{
			Template: tmpl,
			Action:   p.Action,
			Handler:  act.Handler,
			Control:  act.Control,
		})
	}
	return &Table{entries: entries}, nil
}

// Entries returns a copy of the table's entries in order.
func (t *Table) Entries() []Entry {
	cp := make([]Entry, len(t.entries))
	copy(cp, t.entries)
	return cp
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Lookup returns the first entry whose template matches words.
func (t *Table) Lookup(words []string) (Entry, pattern.Bindings, bool) {
	for _, e := range t.entries {
		if b, ok := pattern.Match(e.Template, words); ok {
			return e, b, true
		}
	}
	return Entry{}, nil, false
}
