package analysis

import (
	"fmt"

	"github.com/artem13815/hr/screening/pkg/nlp"
)

func analyzeExperience(resumeText, jobDescription string) ExperienceAnalysis {
	resumeYears := nlp.ExtractExperience(resumeText).Years
	required := nlp.ExtractExperience(jobDescription).Years
	out := ExperienceAnalysis{ResumeYears: resumeYears, RequiredYears: required}

	if required == 0 {
		out.Score = 80
		out.MatchDescription = "No specific experience requirement"
		return out
	}

	years := fmt.Sprintf("(%d+ years vs %d+ required)", resumeYears, required)
	ratio := float64(resumeYears) / float64(required)
	switch {
	case ratio >= 1:
		out.Score = 100
		out.MatchDescription = "Meets requirement " + years
	case ratio >= 0.75:
		out.Score = 85
		out.MatchDescription = "Close to requirement " + years
	case ratio >= 0.5:
		out.Score = 60
		out.MatchDescription = "Some gap in experience " + years
	default:
		out.Score = 30
		out.MatchDescription = "Significant experience gap " + years
	}
	return out
}
