package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/artem13815/hr/screening/pkg/logger"
	"github.com/artem13815/hr/screening/pkg/modelstore"
	"github.com/artem13815/hr/screening/pkg/nlp"
	"github.com/artem13815/hr/screening/pkg/vectorizer"
)

// Sub-score weights of the final match score.
const (
	WeightSkills     = 0.40
	WeightExperience = 0.25
	WeightSemantic   = 0.20
	WeightRole       = 0.15
)

const maxListedSkills = 15

// TrainingCorpus is the fixed sample corpus used by Train.
var TrainingCorpus = []string{
	"Python developer with 5 years experience in Django, Flask, and REST APIs. Machine learning enthusiast.",
	"Java backend engineer skilled in Spring Boot, microservices, and AWS cloud infrastructure.",
	"Frontend developer specializing in React, Vue.js, TypeScript, and modern web technologies.",
	"Data scientist with expertise in Python, TensorFlow, scikit-learn, and statistical analysis.",
	"Full stack developer proficient in JavaScript, Node.js, React, MongoDB, and Docker.",
}

// Engine scores resumes against job descriptions. The vectorizer is shared
// between requests: projections take a read lock, fitting takes the write lock.
type Engine struct {
	mu       sync.RWMutex
	vec      *vectorizer.Vectorizer
	store    modelstore.Store
	notifier ModelNotifier
	log      *slog.Logger
}

type Option func(*Engine)

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

func WithNotifier(n ModelNotifier) Option {
	return func(e *Engine) { e.notifier = n }
}

func WithParams(p vectorizer.Params) Option {
	return func(e *Engine) { e.vec = vectorizer.New(p) }
}

// NewEngine creates an unfitted engine. A nil store disables persistence.
func NewEngine(store modelstore.Store, opts ...Option) *Engine {
	e := &Engine{
		vec:   vectorizer.New(vectorizer.DefaultParams()),
		store: store,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ UseCase = (*Engine)(nil)

// Load restores the persisted model, if there is one. A missing model is not
// an error; the engine then fits on first use.
func (e *Engine) Load(ctx context.Context) error {
	if e.store == nil {
		return nil
	}
	m, err := e.store.Load(ctx)
	if errors.Is(err, modelstore.ErrNotFound) {
		e.log.Info("no persisted model, will fit on first use", "store", e.store.Name(), "key", e.store.Key())
		return nil
	}
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.vec.Restore(m); err != nil {
		return fmt.Errorf("restore model: %w", err)
	}
	e.log.Info("model loaded", "model_id", m.ID, "terms", len(m.Vocabulary), "store", e.store.Name())
	return nil
}

// Reload re-reads the persisted model, e.g. after another instance retrained it.
func (e *Engine) Reload(ctx context.Context) error {
	return e.Load(ctx)
}

// ModelState reports whether the vectorizer is fitted.
func (e *Engine) ModelState() vectorizer.State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.vec.State()
}

// ModelID returns the id of the current fit, or uuid.Nil.
func (e *Engine) ModelID() uuid.UUID {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.vec.ID()
}

// Train fits the vectorizer on TrainingCorpus and persists it. The in-memory
// model stays trained even when saving fails.
func (e *Engine) Train(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.vec.Fit(TrainingCorpus); err != nil {
		return fmt.Errorf("fit training corpus: %w", err)
	}
	e.log.Info("model trained", "model_id", e.vec.ID(), "terms", e.vec.Dimension())
	if err := e.persistLocked(ctx); err != nil {
		return fmt.Errorf("save model: %w", err)
	}
	return nil
}

// Analyze scores resumeText against jobDescription.
func (e *Engine) Analyze(ctx context.Context, resumeText, jobDescription string) (MatchResult, error) {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobDescription) == "" {
		return MatchResult{}, ErrEmptyInput
	}

	semantic := e.semanticScore(ctx, nlp.NormalizeText(resumeText), nlp.NormalizeText(jobDescription))
	skills := analyzeSkills(nlp.ExtractSkills(resumeText), nlp.ExtractSkills(jobDescription))
	exp := analyzeExperience(resumeText, jobDescription)
	role := analyzeRole(resumeText, jobDescription)

	score := skills.Score*WeightSkills +
		exp.Score*WeightExperience +
		semantic*WeightSemantic +
		role.Score*WeightRole
	score = math.Min(100, round1(score))

	logger.FromContext(ctx, e.log).Debug("match scored",
		"skills", round1(skills.Score),
		"experience", exp.Score,
		"semantic", round1(semantic),
		"role", round1(role.Score),
		"final", score,
	)

	v := recommend(score, skills, exp, role)
	return MatchResult{
		MatchScore:      score,
		Prediction:      v.Prediction,
		Recommendation:  v.Recommendation,
		ShouldApply:     v.ShouldApply,
		Confidence:      v.Confidence,
		Strengths:       v.Strengths,
		Improvements:    v.Improvements,
		MatchedSkills:   head(skills.Matched, maxListedSkills),
		MissingSkills:   head(skills.Missing, maxListedSkills),
		ExperienceMatch: exp.MatchDescription,
		Details: Details{
			SkillsScore:         round1(skills.Score),
			ExperienceScore:     round1(exp.Score),
			SemanticScore:       round1(semantic),
			RoleScore:           round1(role.Score),
			ResumeYears:         exp.ResumeYears,
			RequiredYears:       exp.RequiredYears,
			CriticalSkillsMet:   skills.CriticalMet,
			TotalSkillsMatched:  len(skills.Matched),
			TotalSkillsRequired: len(skills.Matched) + len(skills.Missing),
		},
	}, nil
}

// semanticScore returns the cosine similarity of the two normalised texts
// scaled to 0..100. An unfitted vectorizer is fitted on the pair first.
func (e *Engine) semanticScore(ctx context.Context, resumeNorm, jobNorm string) float64 {
	log := logger.FromContext(ctx, e.log)

	e.mu.RLock()
	if e.vec.State() == vectorizer.Fitted {
		score, err := e.projectLocked(resumeNorm, jobNorm)
		e.mu.RUnlock()
		if err != nil {
			log.Warn("semantic projection failed", "err", err)
			return 0
		}
		return score
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.vec.State() != vectorizer.Fitted {
		if err := e.vec.Fit([]string{resumeNorm, jobNorm}); err != nil {
			log.Warn("fit on request pair failed, semantic score is 0", "err", err)
			return 0
		}
		log.Info("model fitted on request pair", "model_id", e.vec.ID(), "terms", e.vec.Dimension())
		if err := e.persistLocked(ctx); err != nil {
			log.Error("persist model", "err", err)
		}
	}
	score, err := e.projectLocked(resumeNorm, jobNorm)
	if err != nil {
		log.Warn("semantic projection failed", "err", err)
		return 0
	}
	return score
}

// projectLocked requires e.mu held (read or write).
func (e *Engine) projectLocked(a, b string) (float64, error) {
	va, err := e.vec.Transform(a)
	if err != nil {
		return 0, err
	}
	vb, err := e.vec.Transform(b)
	if err != nil {
		return 0, err
	}
	return vectorizer.Cosine(va, vb) * 100, nil
}

// persistLocked requires e.mu held for writing.
func (e *Engine) persistLocked(ctx context.Context) error {
	if e.store == nil {
		return nil
	}
	m, err := e.vec.Snapshot()
	if err != nil {
		return err
	}
	if err := e.store.Save(ctx, m); err != nil {
		return err
	}
	e.log.Info("model saved", "model_id", m.ID, "store", e.store.Name(), "key", e.store.Key())
	if e.notifier != nil {
		if err := e.notifier.ModelUpdated(ctx, m); err != nil {
			e.log.Warn("notify model update", "model_id", m.ID, "err", err)
		}
	}
	return nil
}

// round1 rounds the exact binary value to one decimal, ties to even.
func round1(x float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 1, 64), 64)
	return r
}
