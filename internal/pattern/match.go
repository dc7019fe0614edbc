package pattern

import "strings"

// Span is the run of input words consumed by one wildcard.
type Span []string

// Bindings holds one Span per wildcard, in template order.
type Bindings []Span

// Strings joins the words of each span with a single space.
func (b Bindings) Strings() []string {
	out := make([]string, len(b))
	for i, s := range b {
		out[i] = strings.Join(s, " ")
	}
	return out
}

// Match reports whether words conform to t and returns the wildcard
// bindings when they do.
//
// Literals must equal the current word. A Single wildcard consumes exactly
// one word. A Multi wildcard tries 0, 1, 2, ... words and keeps the first
// (shortest) length for which the rest of the template matches the rest of
// the input. Spans are copies; words is never retained.
//
// Recursion descends one template token per level, so stack depth is
// bounded by t.Len() regardless of input length.
func Match(t Template, words []string) (Bindings, bool) {
	return match(t.tokens, 0, words, 0, make(Bindings, 0, t.Arity()))
}

func match(tokens []Token, ti int, words []string, wi int, acc Bindings) (Bindings, bool) {
	if ti == len(tokens) {
		if wi != len(words) {
			return nil, false
		}
		return acc, true
	}
	// Words still required by the remaining literals and singles.
	if len(words)-wi < minWords(tokens[ti:]) {
		return nil, false
	}

	tok := tokens[ti]
	switch tok.Kind {
	case Literal:
		if wi == len(words) || words[wi] != tok.Word {
			return nil, false
		}
		return match(tokens, ti+1, words, wi+1, acc)

	case Single:
		if wi == len(words) {
			return nil, false
		}
		return match(tokens, ti+1, words, wi+1, bind(acc, words[wi:wi+1]))

	case Multi:
		for n := 0; wi+n <= len(words); n++ {
			if b, ok := match(tokens, ti+1, words, wi+n, bind(acc, words[wi:wi+n])); ok {
				return b, true
			}
		}
		return nil, false

	default:
		return nil, false
	}
}

// bind returns acc extended by a copy of span. The three-index slice forces
// append to allocate, so sibling attempts in the Multi loop never share a
// backing array.
func bind(acc Bindings, span []string) Bindings {
	s := make(Span, len(span))
	copy(s, span)
	return append(acc[:len(acc):len(acc)], s)
}

func minWords(tokens []Token) int {
	n := 0
	for _, tok := range tokens {
		if tok.Kind != Multi {
			n++
		}
	}
	return n
}
