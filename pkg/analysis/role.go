package analysis

import (
	"fmt"

	"github.com/artem13815/hr/screening/pkg/nlp"
)

// analyzeRole classifies the job and measures how many of that role's
// keywords the resume mentions. Unclassified jobs get a neutral 70.
func analyzeRole(resumeText, jobDescription string) RoleCompatibility {
	role, ok := nlp.DetectRole(jobDescription)
	if !ok {
		return RoleCompatibility{Score: 70, Match: "General match"}
	}

	hits := nlp.RoleKeywordHits(role, resumeText)
	score := 0.0
	if n := len(role.Keywords); n > 0 {
		score = float64(hits) / float64(n) * 100
	}

	var desc string
	switch {
	case score >= 60:
		desc = fmt.Sprintf("Strong %s role alignment", role.Name)
	case score >= 30:
		desc = fmt.Sprintf("Moderate %s role alignment", role.Name)
	default:
		desc = fmt.Sprintf("Limited %s role alignment", role.Name)
	}
	return RoleCompatibility{Score: score, Match: desc, Role: role.Name}
}
