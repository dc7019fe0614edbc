package pattern

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(s string) []string { return strings.Fields(s) }

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		template string
		input    string
		want     Bindings
		ok       bool
	}{
		{"literal exact", "who directed jaws", "who directed jaws", Bindings{}, true},
		{"literal mismatch", "who directed jaws", "who directed alien", nil, false},
		{"literal input longer", "bye", "bye now", nil, false},
		{"literal input shorter", "who directed jaws", "who directed", nil, false},
		{"multi one word", "who directed %", "who directed jaws", Bindings{{"jaws"}}, true},
		{"multi many words", "who directed %", "who directed the crying game", Bindings{{"the", "crying", "game"}}, true},
		{"multi empty at end", "who directed %", "who directed", Bindings{{}}, true},
		{"multi in middle", "when was % made", "when was citizen kane made", Bindings{{"citizen", "kane"}}, true},
		{"multi in middle empty", "when was % made", "when was made", Bindings{{}}, true},
		{"multi needs trailing literal", "when was % made", "when was citizen kane", nil, false},
		{"single", "what movies were made in _", "what movies were made in 1974", Bindings{{"1974"}}, true},
		{"single needs a word", "what movies were made in _", "what movies were made in", nil, false},
		{"single takes one word only", "what movies were made in _", "what movies were made in 1974 1975", nil, false},
		{"two singles", "what movies were made between _ and _", "what movies were made between 1970 and 1972", Bindings{{"1970"}, {"1972"}}, true},
		{"leading multi", "% appear", "did orson welles appear", Bindings{{"did", "orson", "welles"}}, true},
		{"only multi empty input", "%", "", Bindings{{}}, true},
		{"only single empty input", "_", "", nil, false},
		{"empty template empty input", "", "", Bindings{}, true},
		{"empty template with input", "", "hi", nil, false},
		{"multi shortest first", "% and %", "a and b and c", Bindings{{"a"}, {"b", "and", "c"}}, true},
		{"multi backtracks past literal", "% x _", "x a x b", Bindings{{"x", "a"}, {"b"}}, true},
		{"multi then single", "in % _", "in the godfather 1972", Bindings{{"the", "godfather"}, {"1972"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := New()
			if tt.template != "" {
				tmpl = MustParse(tt.template)
			}
			got, ok := Match(tmpl, words(tt.input))
			require.Equal(t, tt.ok, ok)
			if !tt.ok {
				assert.Nil(t, got)
				return
			}
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, []string(tt.want[i]), []string(got[i]), "span %d", i)
			}
		})
	}
}

func TestMatch_SpansDoNotAliasInput(t *testing.T) {
	input := words("who directed the godfather")
	got, ok := Match(MustParse("who directed %"), input)
	require.True(t, ok)

	input[2] = "mutated"
	assert.Equal(t, []string{"the", "godfather"}, []string(got[0]))
}

func TestMatch_Idempotent(t *testing.T) {
	tmpl := MustParse("% directed % in _")
	input := words("who directed movies in 1974")

	first, ok := Match(tmpl, input)
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		again, ok := Match(tmpl, input)
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestMatch_SingleBindsInputWord(t *testing.T) {
	tmpl := MustParse("_ _ _")
	input := words("one two three")
	got, ok := Match(tmpl, input)
	require.True(t, ok)
	for i, w := range input {
		assert.Equal(t, Span{w}, got[i])
	}
}

func TestMatch_LongInput(t *testing.T) {
	long := make([]string, 5000)
	for i := range long {
		long[i] = "w"
	}
	got, ok := Match(MustParse("w % w"), long)
	require.True(t, ok)
	assert.Len(t, got[0], 4998)
}

func TestBindings_Strings(t *testing.T) {
	b := Bindings{{"steven", "spielberg"}, {}, {"1974"}}
	assert.Equal(t, []string{"steven spielberg", "", "1974"}, b.Strings())
}
