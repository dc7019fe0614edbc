package pattern

import (
	"errors"
	"fmt"
	"strings"
)

const (
	SingleMarker = "_"
	MultiMarker  = "%"
)

var (
	ErrEmpty             = errors.New("empty template")
	ErrAdjacentWildcards = errors.New("adjacent wildcards")
)

// Kind distinguishes literal words from the two wildcard markers.
type Kind int

const (
	Literal Kind = iota
	Single       // exactly one word
	Multi        // zero or more contiguous words
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Single:
		return "single"
	case Multi:
		return "multi"
	default:
		return "unknown"
	}
}

// Token is one element of a Template.
type Token struct {
	Kind Kind
	Word string // set for Literal only
}

// Word returns a literal token. The word is lower-cased.
func Word(w string) Token {
	return Token{Kind: Literal, Word: strings.ToLower(w)}
}

var (
	SingleWildcard = Token{Kind: Single}
	MultiWildcard  = Token{Kind: Multi}
)

func (t Token) String() string {
	switch t.Kind {
	case Single:
		return SingleMarker
	case Multi:
		return MultiMarker
	default:
		return t.Word
	}
}

// IsWildcard reports whether the token binds input words.
func (t Token) IsWildcard() bool {
	return t.Kind == Single || t.Kind == Multi
}

// Template is an immutable sequence of tokens.
type Template struct {
	tokens []Token
}

// New builds a Template from raw tokens without checking for adjacent
// wildcards. Literal words are lower-cased like Word does.
func New(tokens ...Token) Template {
	cp := make([]Token, len(tokens))
	for i, tok := range tokens {
		if tok.Kind == Literal {
			tok.Word = strings.ToLower(tok.Word)
		}
		cp[i] = tok
	}
	return Template{tokens: cp}
}

// Parse splits s on whitespace. "_" and "%" become wildcards, every other
// word a lower-cased literal. Two wildcards in a row are rejected.
func Parse(s string) (Template, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Template{}, ErrEmpty
	}
	tokens := make([]Token, 0, len(fields))
	for i, f := range fields {
		var tok Token
		switch f {
		case SingleMarker:
			tok = SingleWildcard
		case MultiMarker:
			tok = MultiWildcard
		default:
			tok = Word(f)
		}
		if tok.IsWildcard() && i > 0 && tokens[i-1].IsWildcard() {
			return Template{}, fmt.Errorf("parse %q at word %d: %w", s, i, ErrAdjacentWildcards)
		}
		tokens = append(tokens, tok)
	}
	return Template{tokens: tokens}, nil
}

// MustParse is Parse for templates known at compile time.
func MustParse(s string) Template {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of tokens.
func (t Template) Len() int { return len(t.tokens) }

// Tokens returns a copy of the token sequence.
func (t Template) Tokens() []Token {
	cp := make([]Token, len(t.tokens))
	copy(cp, t.tokens)
	return cp
}

// Arity is the number of wildcards, i.e. the number of spans a match binds.
func (t Template) Arity() int {
	n := 0
	for _, tok := range t.tokens {
		if tok.IsWildcard() {
			n++
		}
	}
	return n
}

func (t Template) String() string {
	words := make([]string, len(t.tokens))
	for i, tok := range t.tokens {
		words[i] = tok.String()
	}
	return strings.Join(words, " ")
}
