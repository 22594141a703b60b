package analysis

import (
	"math"

	"github.com/artem13815/hr/screening/pkg/nlp"
)

// analyzeSkills matches every job skill against the resume skills. Critical
// skills make up 40% of the score when the job asks for any.
func analyzeSkills(resumeSkills, jobSkills []string) SkillAnalysis {
	out := SkillAnalysis{Matched: []string{}, Missing: []string{}}
	for _, js := range jobSkills {
		critical := nlp.IsCritical(js)
		if critical {
			out.CriticalTotal++
		}
		found := false
		for _, rs := range resumeSkills {
			if nlp.SkillsMatch(js, rs) {
				found = true
				break
			}
		}
		if !found {
			out.Missing = append(out.Missing, js)
			continue
		}
		out.Matched = append(out.Matched, js)
		if critical {
			out.CriticalMet++
		}
	}

	if len(jobSkills) == 0 {
		return out
	}
	base := float64(len(out.Matched)) / float64(len(jobSkills))
	score := base * 100
	if out.CriticalTotal > 0 {
		critical := float64(out.CriticalMet) / float64(out.CriticalTotal)
		score = (base*0.6 + critical*0.4) * 100
	}
	out.Score = math.Min(100, score)
	return out
}
