package query

import (
	"fmt"

	"github.com/agentic-research/marquee/internal/logger"
	"github.com/agentic-research/marquee/internal/pattern"
)

const (
	UnrecognizedAnswer = "I don't understand"
	NoAnswersAnswer    = "No answers"
)

// Outcome classifies a resolved question.
type Outcome int

const (
	Answered     Outcome = iota
	Unrecognized         // no template matched
	NoAnswers            // a template matched, its handler found nothing
	Terminate            // a control template matched
)

func (o Outcome) String() string {
	switch o {
	case Answered:
		return "answered"
	case Unrecognized:
		return "unrecognized"
	case NoAnswers:
		return "no-answers"
	case Terminate:
		return "terminate"
	default:
		return "unknown"
	}
}

// Result is what the resolver hands to the presentation layer.
// For Unrecognized and NoAnswers, Answers holds the single sentinel line.
// For Terminate it is empty.
type Result struct {
	Outcome  Outcome
	Answers  []string
	Action   string
	Bindings pattern.Bindings
}

// Resolver answers tokenized questions from a Table.
// It holds no per-query state and may be shared.
type Resolver struct {
	table *Table
	log   *logger.Logger
}

// NewResolver answers from table; a nil table answers nothing.
func NewResolver(table *Table, log *logger.Logger) *Resolver {
	if table == nil {
		table = NewTable()
	}
	return &Resolver{table: table, log: logger.OrNop(log)}
}

// Table returns the dispatch table.
func (r *Resolver) Table() *Table { return r.table }

// Ask tokenizes raw and resolves it.
func (r *Resolver) Ask(raw string) Result {
	return r.Resolve(Tokenize(raw))
}

// Resolve runs the first entry whose template matches words.
//
// The scan stops at the first structural match even when that entry's
// handler then finds nothing; later entries are never tried.
func (r *Resolver) Resolve(words []string) Result {
	entry, b, ok := r.table.Lookup(words)
	if !ok {
		r.log.Debug("no template matched", "words", words)
		return Result{Outcome: Unrecognized, Answers: []string{UnrecognizedAnswer}}
	}

	r.log.Debug("template matched", "template", entry.Template.String(), "action", entry.Action, "bindings", b.Strings())

	if entry.Control {
		return Result{Outcome: Terminate, Action: entry.Action, Bindings: b}
	}

	answers := r.invoke(entry, b)
	if len(answers) == 0 {
		return Result{Outcome: NoAnswers, Answers: []string{NoAnswersAnswer}, Action: entry.Action, Bindings: b}
	}
	return Result{Outcome: Answered, Answers: answers, Action: entry.Action, Bindings: b}
}

// invoke calls the handler, turning a panic into an empty answer set.
func (r *Resolver) invoke(entry Entry, b pattern.Bindings) (answers []string) {
	if entry.Handler == nil {
		return nil
	}
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("handler panicked", "action", entry.Action, "panic", fmt.Sprint(rec))
			answers = nil
		}
	}()
	return entry.Handler(b)
}
