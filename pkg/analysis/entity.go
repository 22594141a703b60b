package analysis

import (
	"context"
	"errors"

	"github.com/artem13815/hr/screening/pkg/vectorizer"
)

// ErrEmptyInput is returned when the resume or job description is blank.
var ErrEmptyInput = errors.New("resume text and job description are required")

// Prediction labels.
const (
	PredictionStrong    = "Strongly Recommended"
	PredictionGood      = "Recommended"
	PredictionConsider  = "Consider Applying"
	PredictionNotForYou = "Not Recommended"
)

// Confidence labels.
const (
	ConfidenceHigh       = "High"
	ConfidenceMediumHigh = "Medium-High"
	ConfidenceMedium     = "Medium"
	ConfidenceLow        = "Low"
)

// SkillAnalysis — сопоставление навыков вакансии с навыками из резюме.
// Matched and Missing partition the job skills.
type SkillAnalysis struct {
	Score         float64
	Matched       []string
	Missing       []string
	CriticalMet   int
	CriticalTotal int
}

// ExperienceAnalysis — сравнение лет опыта.
type ExperienceAnalysis struct {
	Score            float64
	ResumeYears      int
	RequiredYears    int
	MatchDescription string
}

// RoleCompatibility — насколько резюме соответствует типу роли вакансии.
type RoleCompatibility struct {
	Score float64
	Match string
	// Role is empty when the job could not be classified.
	Role string
}

// Verdict is the qualitative part of a MatchResult.
type Verdict struct {
	Prediction     string
	Recommendation string
	ShouldApply    bool
	Confidence     string
	Strengths      []string
	Improvements   []string
}

// Details exposes the sub-scores behind a match score.
type Details struct {
	SkillsScore         float64 `json:"skills_score"`
	ExperienceScore     float64 `json:"experience_score"`
	SemanticScore       float64 `json:"semantic_score"`
	RoleScore           float64 `json:"role_score"`
	ResumeYears         int     `json:"resume_years"`
	RequiredYears       int     `json:"required_years"`
	CriticalSkillsMet   int     `json:"critical_skills_met"`
	TotalSkillsMatched  int     `json:"total_skills_matched"`
	TotalSkillsRequired int     `json:"total_skills_required"`
}

// MatchResult — итог оценки резюме относительно вакансии.
type MatchResult struct {
	MatchScore      float64  `json:"match_score"`
	Prediction      string   `json:"prediction"`
	Recommendation  string   `json:"recommendation"`
	ShouldApply     bool     `json:"should_apply"`
	Confidence      string   `json:"confidence"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	ExperienceMatch string   `json:"experience_match"`
	Details         Details  `json:"details"`
}

// UseCase — сценарии оценки резюме, которые нужны HTTP-слою и CLI.
type UseCase interface {
	Analyze(ctx context.Context, resumeText, jobDescription string) (MatchResult, error)
	Train(ctx context.Context) error
}

// ModelNotifier is told about every model that was fitted and persisted.
type ModelNotifier interface {
	ModelUpdated(ctx context.Context, m vectorizer.Model) error
}
