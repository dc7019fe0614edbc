package api

// Catalog is the on-disk shape of a movie dataset.
// The default selector "$.movies[*]" picks records out of it.
type Catalog struct {
	// Version of the catalog format.
	Version string  `json:"version" yaml:"version"`
	Movies  []Movie `json:"movies" yaml:"movies"`
}

// Movie is one flat record in the dataset.
type Movie struct {
	Title    string   `json:"title" yaml:"title"`
	Director string   `json:"director" yaml:"director"`
	Year     int      `json:"year" yaml:"year"`
	Cast     []string `json:"cast" yaml:"cast"`
}

// PatternSet is an ordered list of question templates.
// Order matters: the first template that matches a question wins.
type PatternSet struct {
	// Version of the pattern set format.
	Version  string    `json:"version" yaml:"version" hcl:"version,optional"`
	Patterns []Pattern `json:"patterns" yaml:"patterns" hcl:"pattern,block"`
}

// Pattern binds a template to a named action.
type Pattern struct {
	// Template is a space separated sentence. "_" matches exactly one word,
	// "%" matches zero or more words.
	Template string `json:"template" yaml:"template" hcl:"template"`
	// Action names a registered handler (e.g. "director_by_title").
	Action string `json:"action" yaml:"action" hcl:"action"`
}
