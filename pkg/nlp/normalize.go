package nlp

import (
	"regexp"
	"strings"
)

var (
	reURL     = regexp.MustCompile(`http\S+|www\S+`)
	reEmail   = regexp.MustCompile(`\S+@\S+`)
	reNonWord = regexp.MustCompile(`[^a-z0-9\s+]`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// compoundTerms are applied in order; "node.js" must go before the
// punctuation pass or the dot turns it into two tokens.
var compoundTerms = []struct{ from, to string }{
	{"node.js", "nodejs"},
	{"node js", "nodejs"},
	{"rest api", "restapi"},
	{"restful api", "restapi"},
	{"ci/cd", "cicd"},
	{"c++", "cpp"},
	{"c#", "csharp"},
}

// NormalizeText приводит текст к виду, пригодному для векторизации:
// - нижний регистр, без ссылок и email
// - составные термины склеены (node.js -> nodejs, c++ -> cpp)
// - всё кроме a-z, 0-9, пробелов и '+' заменено пробелом
// - пробелы схлопнуты
func NormalizeText(s string) string {
	s = strings.ToLower(s)
	s = reURL.ReplaceAllString(s, "")
	s = reEmail.ReplaceAllString(s, "")
	for _, t := range compoundTerms {
		s = strings.ReplaceAll(s, t.from, t.to)
	}
	s = reNonWord.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
