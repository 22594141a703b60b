package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeSkills(t *testing.T) {
	tests := []struct {
		name        string
		resume, job []string
		score       float64
		matched     []string
		missing     []string
		criticalMet int
	}{
		{
			name:  "no job skills",
			job:   []string{},
			score: 0, matched: []string{}, missing: []string{},
		},
		{
			name:   "non-critical only",
			resume: []string{"git"},
			job:    []string{"git", "linux"},
			score:  50, matched: []string{"git"}, missing: []string{"linux"},
		},
		{
			name:   "critical weighting",
			resume: []string{"python"},
			job:    []string{"python", "git", "linux", "bash"},
			// 0.6*0.25 + 0.4*1.0
			score: 55, matched: []string{"python"}, missing: []string{"git", "linux", "bash"}, criticalMet: 1,
		},
		{
			name:   "alias counts as a match",
			resume: []string{"k8s"},
			job:    []string{"kubernetes"},
			score:  100, matched: []string{"kubernetes"}, missing: []string{}, criticalMet: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzeSkills(tt.resume, tt.job)
			assert.InDelta(t, tt.score, got.Score, 1e-9)
			assert.Equal(t, tt.matched, got.Matched)
			assert.Equal(t, tt.missing, got.Missing)
			assert.Equal(t, tt.criticalMet, got.CriticalMet)
		})
	}
}

func TestAnalyzeExperience(t *testing.T) {
	tests := []struct {
		resume, job string
		score       float64
		desc        string
	}{
		{"10 years", "no requirement here", 80, "No specific experience requirement"},
		{"6 years", "5+ years", 100, "Meets requirement (6+ years vs 5+ required)"},
		{"3 years", "4 years", 85, "Close to requirement (3+ years vs 4+ required)"},
		{"2 years", "4 years", 60, "Some gap in experience (2+ years vs 4+ required)"},
		{"1 year", "4 years", 30, "Significant experience gap (1+ years vs 4+ required)"},
	}
	for _, tt := range tests {
		got := analyzeExperience(tt.resume, tt.job)
		assert.Equal(t, tt.score, got.Score, tt.desc)
		assert.Equal(t, tt.desc, got.MatchDescription)
	}
}

func TestAnalyzeRole(t *testing.T) {
	got := analyzeRole("anything", "Looking for a Python developer")
	assert.Equal(t, RoleCompatibility{Score: 70, Match: "General match"}, got)

	got = analyzeRole("Kubernetes, Docker, Terraform, Jenkins", "DevOps engineer")
	assert.Equal(t, "devops", got.Role)
	assert.InDelta(t, 4.0/6.0*100, got.Score, 1e-9)
	assert.Equal(t, "Strong devops role alignment", got.Match)

	got = analyzeRole("Docker and Terraform", "DevOps engineer")
	assert.Equal(t, "Moderate devops role alignment", got.Match)

	got = analyzeRole("Photoshop", "DevOps engineer")
	assert.Zero(t, got.Score)
	assert.Equal(t, "Limited devops role alignment", got.Match)
}

func TestRecommendTiers(t *testing.T) {
	tests := []struct {
		score       float64
		prediction  string
		confidence  string
		shouldApply bool
	}{
		{100, PredictionStrong, ConfidenceHigh, true},
		{75, PredictionStrong, ConfidenceHigh, true},
		{74.9, PredictionGood, ConfidenceMediumHigh, true},
		{60, PredictionGood, ConfidenceMediumHigh, true},
		{45, PredictionConsider, ConfidenceMedium, true},
		{44.9, PredictionNotForYou, ConfidenceLow, false},
		{0, PredictionNotForYou, ConfidenceLow, false},
	}
	for _, tt := range tests {
		v := recommend(tt.score, SkillAnalysis{}, ExperienceAnalysis{}, RoleCompatibility{})
		assert.Equal(t, tt.prediction, v.Prediction, "score %.1f", tt.score)
		assert.Equal(t, tt.confidence, v.Confidence)
		assert.Equal(t, tt.shouldApply, v.ShouldApply)
		assert.NotEmpty(t, v.Recommendation)
	}
}

func TestRecommendLimitsListedSkills(t *testing.T) {
	skills := SkillAnalysis{
		Score:   10,
		Missing: []string{"java", "python", "react", "aws", "docker", "git", "linux"},
	}
	v := recommend(20, skills, ExperienceAnalysis{Score: 100}, RoleCompatibility{Score: 70})

	assert.Equal(t, []string{
		"Consider developing these skills: java, python, react, aws, docker",
		"Critical skills missing: java, python, react",
	}, v.Improvements)
	assert.Equal(t, []string{"Experience level meets or exceeds requirements", "Good role compatibility"}, v.Strengths)
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{21.25, 21.2},
		{21.35, 21.4},
		{0.25, 0.2},
		{0.15, 0.1},
		{75.5, 75.5},
		{7.46, 7.5},
		{99.95, 100},
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, round1(tt.in), "%v", tt.in)
	}
}
