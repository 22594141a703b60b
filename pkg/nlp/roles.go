package nlp

import "strings"

// Role is a job family the role-compatibility check knows about.
type Role struct {
	Name     string
	Keywords []string
}

// roles are checked in this order; the first role with any keyword hit wins.
var roles = []Role{
	{Name: "frontend", Keywords: []string{"frontend", "front-end", "react", "angular", "vue", "ui", "ux", "css", "html"}},
	{Name: "backend", Keywords: []string{"backend", "back-end", "api", "server", "database", "sql", "microservices"}},
	{Name: "fullstack", Keywords: []string{"full-stack", "fullstack", "full stack"}},
	{Name: "data", Keywords: []string{"data scientist", "data analyst", "machine learning", "ml", "ai", "analytics"}},
	{Name: "devops", Keywords: []string{"devops", "kubernetes", "docker", "ci/cd", "jenkins", "terraform"}},
	{Name: "mobile", Keywords: []string{"mobile", "ios", "android", "react native", "flutter", "swift", "kotlin"}},
}

// DetectRole returns the first role whose keywords appear in text.
func DetectRole(text string) (Role, bool) {
	lower := strings.ToLower(text)
	for _, r := range roles {
		if containsAny(lower, r.Keywords) {
			return r, true
		}
	}
	return Role{}, false
}

// RoleKeywordHits counts how many of the role's keywords occur in text.
func RoleKeywordHits(r Role, text string) int {
	return countContained(strings.ToLower(text), r.Keywords)
}
