package ingest

import (
	"testing"

	"github.com/agentic-research/marquee/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPatterns(t *testing.T) {
	want := api.PatternSet{
		Version: "v1",
		Patterns: []api.Pattern{
			{Template: "who directed %", Action: "director_by_title"},
			{Template: "bye", Action: "bye"},
		},
	}

	files := map[string]string{
		"patterns.json": `{
  "version": "v1",
  "patterns": [
    {"template": "who directed %", "action": "director_by_title"},
    {"template": "bye", "action": "bye"}
  ]
}`,
		"patterns.yaml": `
version: v1
patterns:
  - template: who directed %
    action: director_by_title
  - template: bye
    action: bye
`,
		"patterns.hcl": `
version = "v1"

pattern {
  template = "who directed %"
  action   = "director_by_title"
}

pattern {
  template = "bye"
  action   = "bye"
}
`,
	}

	dir := t.TempDir()
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			got, err := LoadPatterns(writeFile(t, dir, name, content))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadPatterns_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("empty set", func(t *testing.T) {
		_, err := LoadPatterns(writeFile(t, dir, "empty.json", `{"patterns": []}`))
		assert.ErrorIs(t, err, ErrNoPatterns)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := LoadPatterns(writeFile(t, dir, "patterns.toml", `x = 1`))
		require.Error(t, err)
	})

	t.Run("hcl missing attribute", func(t *testing.T) {
		_, err := LoadPatterns(writeFile(t, dir, "broken.hcl", "pattern {\n  template = \"bye\"\n}\n"))
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPatterns(dir + "/absent.yaml")
		require.Error(t, err)
	})
}
