package analysis

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/hr/screening/pkg/modelstore"
	"github.com/artem13815/hr/screening/pkg/vectorizer"
)

const (
	pythonResume = "Python developer with 5 years experience in Django, Flask, and REST APIs"
	pythonJob    = "Looking for Python developer with 3+ years Django experience"

	designerResume = "Graphic designer with Photoshop skills"
	javaJob        = "Senior Java backend engineer, 8+ years, Spring Boot, AWS"

	devopsText = "DevOps engineer with 5 years: Kubernetes, Docker, CI/CD, Jenkins, Terraform"
)

type memStore struct {
	mu      sync.Mutex
	model   *vectorizer.Model
	saves   int
	saveErr error
	loadErr error
}

func (s *memStore) Name() string { return "memory" }
func (s *memStore) Key() string  { return "test" }

func (s *memStore) Load(ctx context.Context) (vectorizer.Model, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return vectorizer.Model{}, s.loadErr
	}
	if s.model == nil {
		return vectorizer.Model{}, modelstore.ErrNotFound
	}
	return *s.model, nil
}

func (s *memStore) Save(ctx context.Context, m vectorizer.Model) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.model = &m
	return nil
}

func (s *memStore) Ping(ctx context.Context) error { return nil }

type recordingNotifier struct {
	mu  sync.Mutex
	ids []string
}

func (n *recordingNotifier) ModelUpdated(ctx context.Context, m vectorizer.Model) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.ids = append(n.ids, m.ID.String())
	return nil
}

func TestAnalyze_PythonDeveloperMatches(t *testing.T) {
	e := NewEngine(nil)
	res, err := e.Analyze(context.Background(), pythonResume, pythonJob)
	require.NoError(t, err)

	assert.Equal(t, []string{"python", "django"}, res.MatchedSkills)
	assert.Empty(t, res.MissingSkills)
	assert.Equal(t, 100.0, res.Details.SkillsScore)
	assert.Equal(t, 100.0, res.Details.ExperienceScore)
	assert.Equal(t, 70.0, res.Details.RoleScore)
	assert.Equal(t, 5, res.Details.ResumeYears)
	assert.Equal(t, 3, res.Details.RequiredYears)
	assert.Equal(t, 2, res.Details.CriticalSkillsMet)
	assert.Equal(t, "Meets requirement (5+ years vs 3+ required)", res.ExperienceMatch)

	assert.GreaterOrEqual(t, res.MatchScore, 75.0)
	assert.Equal(t, PredictionStrong, res.Prediction)
	assert.True(t, res.ShouldApply)
	assert.Equal(t, ConfidenceHigh, res.Confidence)
	assert.Contains(t, res.Strengths, "Strong technical skill match (2 key skills aligned)")
	assert.Equal(t, []string{"Continue building your current skillset"}, res.Improvements)
}

func TestAnalyze_DesignerVsJavaBackend(t *testing.T) {
	e := NewEngine(nil)
	res, err := e.Analyze(context.Background(), designerResume, javaJob)
	require.NoError(t, err)

	assert.Empty(t, res.MatchedSkills)
	assert.Equal(t, []string{"java", "spring", "aws"}, res.MissingSkills)
	assert.Equal(t, 0.0, res.Details.SkillsScore)
	assert.Equal(t, 30.0, res.Details.ExperienceScore)
	assert.Equal(t, 0.0, res.Details.RoleScore)
	assert.Equal(t, "Significant experience gap (0+ years vs 8+ required)", res.ExperienceMatch)
	assert.Equal(t, 7.5, res.MatchScore)

	assert.Equal(t, PredictionNotForYou, res.Prediction)
	assert.False(t, res.ShouldApply)
	assert.Equal(t, ConfidenceLow, res.Confidence)
	assert.Equal(t, []string{"Review the missing skills to identify growth areas"}, res.Strengths)
	assert.Equal(t, []string{
		"Consider developing these skills: java, spring, aws",
		"Gain more experience in the required domain",
		"Critical skills missing: java, aws",
	}, res.Improvements)
}

func TestAnalyze_PerfectMatchIsCappedAt100(t *testing.T) {
	e := NewEngine(nil)
	require.NoError(t, e.Train(context.Background()))

	res, err := e.Analyze(context.Background(), devopsText, devopsText)
	require.NoError(t, err)

	assert.Equal(t, 100.0, res.Details.SkillsScore)
	assert.Equal(t, 100.0, res.Details.ExperienceScore)
	assert.Equal(t, 100.0, res.Details.SemanticScore)
	assert.Equal(t, 100.0, res.Details.RoleScore)
	assert.InDelta(t, 100.0, res.MatchScore, 1e-9)
	assert.LessOrEqual(t, res.MatchScore, 100.0)
	assert.Equal(t, []string{
		"Strong technical skill match (6 key skills aligned)",
		"Experience level meets or exceeds requirements",
		"Good role compatibility",
	}, res.Strengths)
}

func TestAnalyze_SkillPartition(t *testing.T) {
	e := NewEngine(nil)
	cases := [][2]string{
		{pythonResume, pythonJob},
		{designerResume, javaJob},
		{"React and TypeScript, some Docker", "Frontend role: React, Angular, Vue, CSS, HTML, Docker, Kubernetes"},
	}
	for _, c := range cases {
		res, err := e.Analyze(context.Background(), c[0], c[1])
		require.NoError(t, err)
		d := res.Details
		assert.Equal(t, d.TotalSkillsRequired, d.TotalSkillsMatched+len(res.MissingSkills))
		for _, m := range res.MatchedSkills {
			assert.NotContains(t, res.MissingSkills, m)
		}
		assert.GreaterOrEqual(t, res.MatchScore, 0.0)
		assert.LessOrEqual(t, res.MatchScore, 100.0)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	e := NewEngine(nil)
	require.NoError(t, e.Train(context.Background()))

	first, err := e.Analyze(context.Background(), pythonResume, pythonJob)
	require.NoError(t, err)
	second, err := e.Analyze(context.Background(), pythonResume, pythonJob)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnalyze_EmptyInput(t *testing.T) {
	e := NewEngine(nil)
	_, err := e.Analyze(context.Background(), "   ", pythonJob)
	assert.ErrorIs(t, err, ErrEmptyInput)
	_, err = e.Analyze(context.Background(), pythonResume, "\n\t")
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Equal(t, vectorizer.Unfitted, e.ModelState())
}

func TestAnalyze_FitsAndPersistsOnFirstUse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models", "resume_classifier.json")
	store := modelstore.NewFileStore(path)
	notifier := &recordingNotifier{}
	e := NewEngine(store, WithNotifier(notifier))

	_, err := e.Analyze(context.Background(), designerResume, javaJob)
	require.NoError(t, err)
	require.Equal(t, vectorizer.Fitted, e.ModelState())
	_, err = os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, []string{e.ModelID().String()}, notifier.ids)

	restarted := NewEngine(store)
	require.NoError(t, restarted.Load(context.Background()))
	assert.Equal(t, vectorizer.Fitted, restarted.ModelState())
	assert.Equal(t, e.ModelID(), restarted.ModelID())
}

func TestAnalyze_FitFailureLeavesEngineUnfitted(t *testing.T) {
	store := &memStore{}
	e := NewEngine(store)

	// Every term of two identical documents exceeds the document-frequency cap.
	res, err := e.Analyze(context.Background(), devopsText, devopsText)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Details.SemanticScore)
	assert.Equal(t, vectorizer.Unfitted, e.ModelState())
	assert.Zero(t, store.saves)
}

func TestAnalyze_SaveFailureDoesNotFailRequest(t *testing.T) {
	store := &memStore{saveErr: errors.New("disk full")}
	e := NewEngine(store)

	_, err := e.Analyze(context.Background(), designerResume, javaJob)
	require.NoError(t, err)
	assert.Equal(t, vectorizer.Fitted, e.ModelState())
}

func TestAnalyze_ConcurrentFirstUseFitsOnce(t *testing.T) {
	store := &memStore{}
	e := NewEngine(store)

	const n = 16
	results := make([]MatchResult, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := e.Analyze(context.Background(), designerResume, javaJob)
			assert.NoError(t, err)
			results[i] = res
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, store.saves)
	for i := 1; i < n; i++ {
		assert.Equal(t, results[0], results[i])
	}
}

func TestTrain_PersistsAndNotifies(t *testing.T) {
	store := &memStore{}
	notifier := &recordingNotifier{}
	e := NewEngine(store, WithNotifier(notifier))

	require.NoError(t, e.Train(context.Background()))
	assert.Equal(t, vectorizer.Fitted, e.ModelState())
	require.NotNil(t, store.model)
	assert.Equal(t, len(TrainingCorpus), store.model.CorpusSize)
	assert.Equal(t, e.ModelID(), store.model.ID)
	assert.Len(t, notifier.ids, 1)
}

func TestTrain_SaveFailure(t *testing.T) {
	e := NewEngine(&memStore{saveErr: errors.New("bucket gone")})
	err := e.Train(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket gone")
	assert.Equal(t, vectorizer.Fitted, e.ModelState())
}

func TestLoad_MissingModelIsNotAnError(t *testing.T) {
	e := NewEngine(&memStore{})
	require.NoError(t, e.Load(context.Background()))
	assert.Equal(t, vectorizer.Unfitted, e.ModelState())
}

func TestLoad_CorruptModelStaysUnfitted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	e := NewEngine(modelstore.NewFileStore(path))
	require.Error(t, e.Load(context.Background()))
	assert.Equal(t, vectorizer.Unfitted, e.ModelState())

	_, err := e.Analyze(context.Background(), pythonResume, pythonJob)
	require.NoError(t, err)
}

func TestReload_PicksUpRetrainedModel(t *testing.T) {
	store := &memStore{}
	trainer := NewEngine(store)
	require.NoError(t, trainer.Train(context.Background()))

	follower := NewEngine(store)
	require.NoError(t, follower.Reload(context.Background()))
	assert.Equal(t, trainer.ModelID(), follower.ModelID())
}
