package pattern

import (
	"slices"
	"strings"
	"testing"
)

func FuzzMatch(f *testing.F) {
	// Seed corpus
	f.Add("who directed %", "who directed the godfather")
	f.Add("what movies were made between _ and _", "what movies were made between 1970 and 1972")
	f.Add("% and %", "a and b and c")
	f.Add("when was % made", "when was made")
	f.Add("% b %", "a b b c")
	f.Add("bye", "")

	f.Fuzz(func(t *testing.T, tmpl, sentence string) {
		tpl, err := Parse(tmpl)
		if err != nil {
			return
		}
		words := strings.Fields(strings.ToLower(sentence))

		// Keep the backtracking search small enough for the fuzzer.
		if tpl.Len() > 8 || len(words) > 32 {
			return
		}

		b, ok := Match(tpl, words)
		if !ok {
			if b != nil {
				t.Fatalf("failed match returned bindings %v", b)
			}
			return
		}
		if len(b) != tpl.Arity() {
			t.Fatalf("got %d bindings for arity %d", len(b), tpl.Arity())
		}

		// Substituting the bindings back into the template must rebuild
		// the input exactly.
		var rebuilt []string
		bi := 0
		toks := tpl.Tokens()
		for ti, tok := range toks {
			switch tok.Kind {
			case Literal:
				rebuilt = append(rebuilt, tok.Word)
			case Single:
				if len(b[bi]) != 1 {
					t.Fatalf("single wildcard bound %d words", len(b[bi]))
				}
				rebuilt = append(rebuilt, b[bi]...)
				bi++
			case Multi:
				// Shortest first: no shorter span may let the rest of the
				// template match the words left over.
				start := len(rebuilt)
				rest := New(toks[ti+1:]...)
				for n := 0; n < len(b[bi]); n++ {
					if _, ok := Match(rest, words[start+n:]); ok {
						t.Fatalf("multi span %d bound %d words but %d also matches", bi, len(b[bi]), n)
					}
				}
				rebuilt = append(rebuilt, b[bi]...)
				bi++
			}
		}
		if !slices.Equal(rebuilt, words) {
			t.Fatalf("rebuilt %q from %q, want %q", rebuilt, tpl, words)
		}
	})
}
