package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tmpl, err := Parse("What movies were made between _ and _")
	require.NoError(t, err)

	assert.Equal(t, 8, tmpl.Len())
	assert.Equal(t, 2, tmpl.Arity())
	assert.Equal(t, "what movies were made between _ and _", tmpl.String())

	toks := tmpl.Tokens()
	assert.Equal(t, Word("what"), toks[0])
	assert.Equal(t, SingleWildcard, toks[5])
	assert.Equal(t, Literal, toks[6].Kind)
	assert.Equal(t, "and", toks[6].Word)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("   ")
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Parse("who % _ made")
	assert.ErrorIs(t, err, ErrAdjacentWildcards)

	_, err = Parse("% %")
	assert.ErrorIs(t, err, ErrAdjacentWildcards)
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("") })
}

func TestTemplate_TokensIsCopy(t *testing.T) {
	tmpl := MustParse("who directed %")
	toks := tmpl.Tokens()
	toks[0] = Word("hacked")

	assert.Equal(t, "who directed %", tmpl.String())
}

func TestNew_DoesNotValidate(t *testing.T) {
	tmpl := New(MultiWildcard, SingleWildcard)
	assert.Equal(t, "% _", tmpl.String())

	got, ok := Match(tmpl, []string{"a", "b"})
	require.True(t, ok)
	assert.Equal(t, Bindings{{"a"}, {"b"}}, got)
}

func TestNew_LowercasesRawLiterals(t *testing.T) {
	tmpl := New(Token{Kind: Literal, Word: "Who"}, Token{Kind: Literal, Word: "DIRECTED"}, MultiWildcard)
	assert.Equal(t, "who directed %", tmpl.String())

	got, ok := Match(tmpl, []string{"who", "directed", "jaws"})
	require.True(t, ok)
	assert.Equal(t, []string{"jaws"}, got.Strings())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "literal", Literal.String())
	assert.Equal(t, "single", Single.String())
	assert.Equal(t, "multi", Multi.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
