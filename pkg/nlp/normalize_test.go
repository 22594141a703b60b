package nlp

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText_CompoundTermsAndNoise(t *testing.T) {
	in := "Senior C++ dev, see https://x.io or me@x.com! Node.js & REST API, C# and CI/CD"
	assert.Equal(t, "senior cpp dev see or nodejs restapi csharp and cicd", NormalizeText(in))
}

func TestNormalizeText_KeepsPlusSign(t *testing.T) {
	assert.Equal(t, "5+ years of go", NormalizeText("5+ years of Go."))
}

func TestNormalizeText_Empty(t *testing.T) {
	assert.Equal(t, "", NormalizeText(""))
	assert.Equal(t, "", NormalizeText("  \t\n "))
	assert.Equal(t, "", NormalizeText("www.example.com"))
}

func TestNormalizeText_RestfulAPI(t *testing.T) {
	assert.Equal(t, "designed restapi services", NormalizeText("Designed RESTful API services"))
}

func TestNormalizeText_OutputAlphabet(t *testing.T) {
	allowed := regexp.MustCompile(`^[a-z0-9+ ]*$`)
	inputs := []string{
		"Résumé — Jürgen Müller\t\t(10+ yrs)\r\nSkills: Go/Rust; K8s!!",
		"ÇA VA? Oui…\v\f",
		"node js,node.js;NODE.JS",
		"   leading and trailing   ",
		"emoji 🚀 launch\n\n\nnew lines",
	}
	for _, in := range inputs {
		out := NormalizeText(in)
		assert.Regexp(t, allowed, out, "input %q", in)
		assert.NotContains(t, out, "  ", "input %q", in)
		assert.Equal(t, strings.TrimSpace(out), out, "input %q", in)
	}
}
