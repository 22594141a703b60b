package nlp

import (
	"regexp"
	"strings"
)

// Skill is one entry of the canonical skill taxonomy shared by the
// extractor, the matcher and the critical-skill checks.
type Skill struct {
	ID      string
	Display string
	// Aliases are alternative spellings that SkillsMatch treats as equal to ID.
	Aliases []string
	// Critical skills get extra weight in skill scoring.
	Critical bool
	// Headline skills are called out explicitly when missing.
	Headline bool

	pattern *regexp.Regexp
}

var (
	criticalKeywords = []string{
		"python", "java", "javascript", "react", "angular", "vue",
		"django", "flask", "spring", "nodejs", "aws", "azure", "gcp",
		"docker", "kubernetes", "sql", "mongodb", "postgresql",
	}
	headlineKeywords = []string{"python", "java", "react", "aws"}
)

var taxonomy = buildTaxonomy([]Skill{
	// languages
	{ID: "python", Display: "Python"},
	{ID: "java", Display: "Java"},
	{ID: "javascript", Display: "JavaScript", Aliases: []string{"js"}},
	{ID: "typescript", Display: "TypeScript", Aliases: []string{"ts"}},
	{ID: "c++", Display: "C++"},
	{ID: "c#", Display: "C#"},
	{ID: "ruby", Display: "Ruby"},
	{ID: "php", Display: "Php"},
	{ID: "go", Display: "Go"},
	{ID: "rust", Display: "Rust"},
	{ID: "kotlin", Display: "Kotlin"},
	{ID: "swift", Display: "Swift"},
	{ID: "scala", Display: "Scala"},
	{ID: "sql", Display: "SQL"},
	{ID: "html", Display: "HTML"},
	{ID: "css", Display: "CSS"},
	// frameworks
	{ID: "react", Display: "React"},
	{ID: "angular", Display: "Angular"},
	{ID: "vue", Display: "Vue"},
	{ID: "django", Display: "Django"},
	{ID: "flask", Display: "Flask"},
	{ID: "spring", Display: "Spring"},
	{ID: "nodejs", Display: "Node.js", Aliases: []string{"node.js", "node js"}},
	{ID: "express", Display: "Express"},
	{ID: "fastapi", Display: "Fastapi"},
	{ID: "nextjs", Display: "Nextjs"},
	{ID: "laravel", Display: "Laravel"},
	{ID: "rails", Display: "Rails"},
	// databases
	{ID: "postgresql", Display: "PostgreSQL", Aliases: []string{"postgres", "psql"}},
	{ID: "mysql", Display: "MySQL"},
	{ID: "mongodb", Display: "MongoDB"},
	{ID: "redis", Display: "Redis"},
	{ID: "cassandra", Display: "Cassandra"},
	{ID: "elasticsearch", Display: "Elasticsearch"},
	// cloud & devops
	{ID: "aws", Display: "AWS"},
	{ID: "azure", Display: "Azure"},
	{ID: "gcp", Display: "GCP"},
	{ID: "docker", Display: "Docker"},
	{ID: "kubernetes", Display: "Kubernetes", Aliases: []string{"k8s"}},
	{ID: "jenkins", Display: "Jenkins"},
	{ID: "gitlab", Display: "Gitlab"},
	{ID: "terraform", Display: "Terraform"},
	{ID: "ansible", Display: "Ansible"},
	{ID: "ci/cd", Display: "CI/CD"},
	{ID: "git", Display: "Git"},
	// ml & data
	{ID: "tensorflow", Display: "Tensorflow"},
	{ID: "pytorch", Display: "Pytorch"},
	{ID: "scikit-learn", Display: "Scikit-Learn"},
	{ID: "pandas", Display: "Pandas"},
	{ID: "numpy", Display: "Numpy"},
	// api & architecture
	{ID: "rest", Display: "REST", Aliases: []string{"restful", "rest api", "restapi"}},
	{ID: "restful", Display: "RESTFUL"},
	{ID: "api", Display: "API"},
	{ID: "graphql", Display: "Graphql"},
	{ID: "microservices", Display: "Microservices"},
	{ID: "websocket", Display: "Websocket"},
	// methodologies & tooling
	{ID: "agile", Display: "Agile"},
	{ID: "scrum", Display: "Scrum"},
	{ID: "devops", Display: "Devops"},
	{ID: "tdd", Display: "TDD"},
	{ID: "linux", Display: "Linux"},
	{ID: "bash", Display: "Bash"},
})

var taxonomyIndex = func() map[string]int {
	m := make(map[string]int, len(taxonomy))
	for i, s := range taxonomy {
		m[s.ID] = i
	}
	return m
}()

func buildTaxonomy(skills []Skill) []Skill {
	for i := range skills {
		s := &skills[i]
		s.Critical = containsAny(s.ID, criticalKeywords)
		s.Headline = containsAny(s.ID, headlineKeywords)
		s.pattern = regexp.MustCompile(`\b` + tolerantPattern(s.ID) + `\b`)
	}
	return skills
}

// tolerantPattern accepts common spelling variants of a term:
// "scikit-learn" also matches "scikit learn" and "scikitlearn",
// "node.js" matches "nodejs", "c++" matches "c".
func tolerantPattern(term string) string {
	var b strings.Builder
	for _, r := range term {
		switch r {
		case '-':
			b.WriteString(`[\s\-]?`)
		case '.':
			b.WriteString(`\.?`)
		case '+':
			b.WriteString(`\+?`)
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	return b.String()
}

// Taxonomy returns a copy of the canonical skill list in extraction order.
func Taxonomy() []Skill {
	out := make([]Skill, len(taxonomy))
	copy(out, taxonomy)
	return out
}

// LookupSkill finds a taxonomy entry by its canonical id.
func LookupSkill(id string) (Skill, bool) {
	i, ok := taxonomyIndex[strings.ToLower(id)]
	if !ok {
		return Skill{}, false
	}
	return taxonomy[i], true
}

// ExtractSkills returns the canonical ids of all taxonomy skills found in text.
// Ids are unique and ordered as in the taxonomy.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	out := []string{}
	for _, s := range taxonomy {
		if s.pattern.MatchString(lower) {
			out = append(out, s.ID)
		}
	}
	return out
}

// SkillsMatch reports whether two skill names refer to the same skill:
// equal ignoring case, aliases of each other, or (for names longer than
// three characters) one containing the other.
func SkillsMatch(a, b string) bool {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return true
	}
	if isAliasOf(a, b) || isAliasOf(b, a) {
		return true
	}
	if len(a) > 3 && len(b) > 3 {
		return strings.Contains(a, b) || strings.Contains(b, a)
	}
	return false
}

func isAliasOf(alias, id string) bool {
	s, ok := LookupSkill(id)
	if !ok {
		return false
	}
	for _, v := range s.Aliases {
		if v == alias {
			return true
		}
	}
	return false
}

// IsCritical reports whether a skill is on the critical shortlist.
func IsCritical(skill string) bool {
	if s, ok := LookupSkill(skill); ok {
		return s.Critical
	}
	return containsAny(strings.ToLower(skill), criticalKeywords)
}

// IsHeadline reports whether a missing skill should be called out by name.
func IsHeadline(skill string) bool {
	if s, ok := LookupSkill(skill); ok {
		return s.Headline
	}
	return containsAny(strings.ToLower(skill), headlineKeywords)
}

// DisplaySkill returns the human-readable form of a skill id.
func DisplaySkill(skill string) string {
	if s, ok := LookupSkill(skill); ok {
		return s.Display
	}
	return skill
}
