// Package repl runs the interactive question loop.
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/agentic-research/marquee/internal/query"
	"github.com/fatih/color"
)

const (
	Welcome  = "Welcome to the movie database!"
	Prompt   = "Your query? "
	Farewell = "So long!"
)

var sentinelStyle = color.New(color.FgYellow)

// Print writes each answer on its own line. Sentinel answers are colored
// when the output supports it.
func Print(w io.Writer, res query.Result) error {
	for _, ans := range res.Answers {
		var err error
		switch res.Outcome {
		case query.Unrecognized, query.NoAnswers:
			_, err = sentinelStyle.Fprintln(w, ans)
		default:
			_, err = fmt.Fprintln(w, ans)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Run reads one question per line from in until a control template matches
// or in is exhausted.
func Run(in io.Reader, out io.Writer, r *query.Resolver) error {
	if _, err := fmt.Fprintf(out, "%s\n\n", Welcome); err != nil {
		return err
	}

	sc := bufio.NewScanner(in)
	for {
		if _, err := fmt.Fprintf(out, "\n%s", Prompt); err != nil {
			return err
		}
		if !sc.Scan() {
			break
		}
		res := r.Ask(sc.Text())
		if res.Outcome == query.Terminate {
			break
		}
		if err := Print(out, res); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read query: %w", err)
	}

	_, err := fmt.Fprintf(out, "\n%s\n", Farewell)
	return err
}
