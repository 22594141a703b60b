package analysis

import (
	"fmt"
	"strings"

	"github.com/artem13815/hr/screening/pkg/nlp"
)

const (
	maxSuggestedSkills = 5
	maxCriticalMissing = 3
)

func recommend(score float64, skills SkillAnalysis, exp ExperienceAnalysis, role RoleCompatibility) Verdict {
	var strengths, improvements []string

	if skills.Score >= 70 {
		strengths = append(strengths, fmt.Sprintf("Strong technical skill match (%d key skills aligned)", len(skills.Matched)))
	}
	if exp.Score >= 80 {
		strengths = append(strengths, "Experience level meets or exceeds requirements")
	}
	if role.Score >= 60 {
		strengths = append(strengths, "Good role compatibility")
	}

	if skills.Score < 60 {
		improvements = append(improvements, "Consider developing these skills: "+strings.Join(head(skills.Missing, maxSuggestedSkills), ", "))
	}
	if exp.Score < 60 {
		improvements = append(improvements, "Gain more experience in the required domain")
	}
	var criticalMissing []string
	for _, s := range skills.Missing {
		if nlp.IsHeadline(s) {
			criticalMissing = append(criticalMissing, s)
		}
	}
	if len(criticalMissing) > 0 {
		improvements = append(improvements, "Critical skills missing: "+strings.Join(head(criticalMissing, maxCriticalMissing), ", "))
	}

	if len(strengths) == 0 {
		strengths = []string{"Review the missing skills to identify growth areas"}
	}
	if len(improvements) == 0 {
		improvements = []string{"Continue building your current skillset"}
	}

	v := Verdict{Strengths: strengths, Improvements: improvements}
	switch {
	case score >= 75:
		v.Prediction = PredictionStrong
		v.ShouldApply = true
		v.Confidence = ConfidenceHigh
		v.Recommendation = "Excellent match! Your skills and experience align very well with this position. You should definitely apply."
	case score >= 60:
		v.Prediction = PredictionGood
		v.ShouldApply = true
		v.Confidence = ConfidenceMediumHigh
		v.Recommendation = "Good match! You meet most requirements. Apply and highlight your relevant experience."
	case score >= 45:
		v.Prediction = PredictionConsider
		v.ShouldApply = true
		v.Confidence = ConfidenceMedium
		v.Recommendation = "Moderate match. You have some relevant skills. Consider applying if you're willing to learn and grow."
	default:
		v.Prediction = PredictionNotForYou
		v.ShouldApply = false
		v.Confidence = ConfidenceLow
		v.Recommendation = "Limited match. This role may require skills or experience you don't currently have. Focus on building relevant expertise first."
	}
	return v
}

// head returns at most the first n items of s.
func head(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
