package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkills_PythonResume(t *testing.T) {
	got := ExtractSkills("Python developer with 5 years experience in Django, Flask, and REST APIs")
	assert.Equal(t, []string{"python", "django", "flask", "rest"}, got)
}

func TestExtractSkills_TolerantSeparators(t *testing.T) {
	got := ExtractSkills("Built models with Scikit Learn and scikit-learn, shipped via CI/CD")
	assert.Contains(t, got, "scikit-learn")
	assert.Contains(t, got, "ci/cd")
}

func TestExtractSkills_WordBoundaries(t *testing.T) {
	got := ExtractSkills("Gopher who loves javascripting and restaurants")
	assert.NotContains(t, got, "go")
	assert.NotContains(t, got, "javascript")
	assert.NotContains(t, got, "rest")
}

func TestExtractSkills_NoDuplicatesAndStableOrder(t *testing.T) {
	text := "AWS aws Docker docker Python python"
	first := ExtractSkills(text)
	assert.Equal(t, []string{"python", "aws", "docker"}, first)
	assert.Equal(t, first, ExtractSkills(text))
}

func TestExtractSkills_Empty(t *testing.T) {
	got := ExtractSkills("")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSkillsMatch(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"Node.js", "nodejs", true},
		{"nodejs", "node js", true},
		{"react", "angular", false},
		{"Python", "python", true},
		{"k8s", "kubernetes", true},
		{"postgresql", "psql", true},
		{"rest", "restful", true},
		{"restapi", "rest", true},
		{"js", "javascript", true},
		{"ts", "typescript", true},
		{"restful", "restapi", false},
		{"java", "javascript", true},
		{"go", "golang", false},
		{"sql", "mysql", false},
		{"mysql", "mysql8", true},
	}
	for _, tc := range cases {
		t.Run(tc.a+"_"+tc.b, func(t *testing.T) {
			assert.Equal(t, tc.want, SkillsMatch(tc.a, tc.b))
			assert.Equal(t, tc.want, SkillsMatch(tc.b, tc.a), "match must be symmetric")
		})
	}
}

func TestTaxonomy_CriticalFlags(t *testing.T) {
	assert.True(t, IsCritical("python"))
	assert.True(t, IsCritical("javascript"))
	assert.True(t, IsCritical("mysql"), "contains sql")
	assert.False(t, IsCritical("ruby"))
	assert.False(t, IsCritical("terraform"))
	assert.True(t, IsCritical("spring boot"), "unknown names fall back to substring rule")

	assert.True(t, IsHeadline("javascript"))
	assert.False(t, IsHeadline("docker"))
}

func TestTaxonomy_LookupAndDisplay(t *testing.T) {
	s, ok := LookupSkill("PostgreSQL")
	require.True(t, ok)
	assert.Equal(t, "postgresql", s.ID)
	assert.Equal(t, []string{"postgres", "psql"}, s.Aliases)

	assert.Equal(t, "Node.js", DisplaySkill("nodejs"))
	assert.Equal(t, "photoshop", DisplaySkill("photoshop"))

	all := Taxonomy()
	assert.Equal(t, "python", all[0].ID)
	all[0].ID = "mutated"
	assert.Equal(t, "python", Taxonomy()[0].ID)
}
