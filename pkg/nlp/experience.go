package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

// Seniority tiers.
const (
	SeniorityEntry  = "entry"
	SeniorityMid    = "mid"
	SenioritySenior = "senior"
)

// ExperienceProfile — опыт, упомянутый в тексте.
type ExperienceProfile struct {
	Years     int    `json:"years"`
	Seniority string `json:"seniority"`
}

var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(\d+)[-–]\d+\s*(?:years?|yrs?)`),
}

// ExtractExperience finds the largest "N years" mention and the seniority tier.
func ExtractExperience(text string) ExperienceProfile {
	lower := strings.ToLower(text)

	years := 0
	for _, re := range experiencePatterns {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if n > years {
				years = n
			}
		}
	}

	seniority := SeniorityEntry
	switch {
	case containsAny(lower, []string{"senior", "lead"}) || years >= 5:
		seniority = SenioritySenior
	case containsAny(lower, []string{"mid-level", "intermediate"}) || years >= 3:
		seniority = SeniorityMid
	}
	return ExperienceProfile{Years: years, Seniority: seniority}
}
