package query

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var stripPunct = strings.NewReplacer("?", "", "!", "", ",", "", ";", "", `"`, "")

// Abbreviations whose period survives at the end of a sentence.
var abbreviations = map[string]bool{
	"jr.": true, "sr.": true, "dr.": true, "mr.": true, "mrs.": true, "ms.": true, "st.": true, "vs.": true,
}

// Tokenize case-folds raw text, strips question punctuation and splits it
// into words. Periods inside the sentence and apostrophes are kept
// ("cuba gooding jr. appear"). A sentence-final period is dropped unless
// the last word is an abbreviation or a single-letter initial
// ("directed by spike lee jr.", "john g.").
func Tokenize(raw string) []string {
	words := strings.Fields(strings.ToLower(stripPunct.Replace(raw)))
	n := len(words)
	if n == 0 || !strings.HasSuffix(words[n-1], ".") || isAbbreviation(words[n-1]) {
		return words
	}
	if last := strings.TrimRight(words[n-1], "."); last != "" {
		words[n-1] = last
	} else {
		words = words[:n-1]
	}
	return words
}

func isAbbreviation(w string) bool {
	if abbreviations[w] {
		return true
	}
	r, size := utf8.DecodeRuneInString(w)
	return w[size:] == "." && unicode.IsLetter(r)
}
