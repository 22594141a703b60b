// Package vectorizer projects text into a TF-IDF space over word n-grams.
//
// A Vectorizer starts Unfitted. Fit learns a vocabulary and IDF weights from
// a corpus; after that Transform maps any text into the fixed-size space.
// The fitted state can be exported as a Model and restored later.
package vectorizer

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFitted is returned by Transform and Snapshot before Fit or Restore.
	ErrNotFitted = errors.New("vectorizer is not fitted")
	// ErrEmptyVocabulary is returned by Fit when no term survives pruning.
	ErrEmptyVocabulary = errors.New("after pruning, no terms remain")
)

// State is the lifecycle state of a Vectorizer.
type State int

const (
	Unfitted State = iota
	Fitted
)

func (s State) String() string {
	if s == Fitted {
		return "fitted"
	}
	return "unfitted"
}

// Params control vocabulary construction.
type Params struct {
	MinN        int     `json:"min_n"`
	MaxN        int     `json:"max_n"`
	MaxFeatures int     `json:"max_features"`
	MaxDF       float64 `json:"max_df"`
}

// DefaultParams: unigrams to trigrams, 2000 terms, drop terms present in
// more than 95% of documents.
func DefaultParams() Params {
	return Params{MinN: 1, MaxN: 3, MaxFeatures: 2000, MaxDF: 0.95}
}

var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

// Vectorizer is not safe for concurrent use; callers serialise access.
type Vectorizer struct {
	params     Params
	state      State
	vocabulary map[string]int
	terms      []string
	idf        []float64

	id         uuid.UUID
	fittedAt   time.Time
	corpusSize int
}

// New returns an unfitted vectorizer.
func New(p Params) *Vectorizer {
	if p.MinN < 1 {
		p.MinN = 1
	}
	if p.MaxN < p.MinN {
		p.MaxN = p.MinN
	}
	return &Vectorizer{params: p, state: Unfitted}
}

func (v *Vectorizer) State() State   { return v.state }
func (v *Vectorizer) Params() Params { return v.params }
func (v *Vectorizer) Dimension() int { return len(v.terms) }

// ID identifies the current fit; zero while unfitted.
func (v *Vectorizer) ID() uuid.UUID { return v.id }

// Fit learns vocabulary and IDF weights from corpus, replacing any previous fit.
// On error the previous state is left untouched.
func (v *Vectorizer) Fit(corpus []string) error {
	if len(corpus) == 0 {
		return errors.New("empty corpus")
	}
	df := make(map[string]int)
	tf := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]struct{})
		for _, term := range v.analyze(doc) {
			tf[term]++
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	n := float64(len(corpus))
	maxDocCount := v.params.MaxDF * n
	kept := make([]string, 0, len(df))
	for term, d := range df {
		if float64(d) <= maxDocCount {
			kept = append(kept, term)
		}
	}
	if len(kept) == 0 {
		return ErrEmptyVocabulary
	}
	if v.params.MaxFeatures > 0 && len(kept) > v.params.MaxFeatures {
		sort.Slice(kept, func(i, j int) bool {
			if tf[kept[i]] != tf[kept[j]] {
				return tf[kept[i]] > tf[kept[j]]
			}
			return kept[i] < kept[j]
		})
		kept = kept[:v.params.MaxFeatures]
	}
	sort.Strings(kept)

	vocab := make(map[string]int, len(kept))
	idf := make([]float64, len(kept))
	for i, term := range kept {
		vocab[term] = i
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	v.vocabulary = vocab
	v.terms = kept
	v.idf = idf
	v.state = Fitted
	v.id = uuid.New()
	v.fittedAt = time.Now().UTC()
	v.corpusSize = len(corpus)
	return nil
}

// Transform returns the L2-normalised TF-IDF vector of text.
func (v *Vectorizer) Transform(text string) ([]float64, error) {
	if v.state != Fitted {
		return nil, ErrNotFitted
	}
	vec := make([]float64, len(v.terms))
	for _, term := range v.analyze(text) {
		if idx, ok := v.vocabulary[term]; ok {
			vec[idx]++
		}
	}
	norm := 0.0
	for i := range vec {
		vec[i] *= v.idf[i]
		norm += vec[i] * vec[i]
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec, nil
}

// analyze tokenizes, drops stop words and expands to n-grams.
func (v *Vectorizer) analyze(doc string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(doc), -1)
	tokens := raw[:0]
	for _, t := range raw {
		if _, stop := englishStopWords[t]; stop {
			continue
		}
		tokens = append(tokens, t)
	}
	var out []string
	for n := v.params.MinN; n <= v.params.MaxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}

// Model is the serialisable fitted state of a Vectorizer.
type Model struct {
	ID         uuid.UUID `json:"id"`
	FittedAt   time.Time `json:"fitted_at"`
	CorpusSize int       `json:"corpus_size"`
	Params     Params    `json:"params"`
	Vocabulary []string  `json:"vocabulary"`
	IDF        []float64 `json:"idf"`
}

// Validate checks that the model can be restored.
func (m Model) Validate() error {
	if len(m.Vocabulary) == 0 {
		return errors.New("model has empty vocabulary")
	}
	if len(m.Vocabulary) != len(m.IDF) {
		return fmt.Errorf("model vocabulary/idf size mismatch: %d != %d", len(m.Vocabulary), len(m.IDF))
	}
	seen := make(map[string]struct{}, len(m.Vocabulary))
	for _, t := range m.Vocabulary {
		if _, dup := seen[t]; dup {
			return fmt.Errorf("model has duplicate term %q", t)
		}
		seen[t] = struct{}{}
	}
	return nil
}

// Snapshot exports the fitted state.
func (v *Vectorizer) Snapshot() (Model, error) {
	if v.state != Fitted {
		return Model{}, ErrNotFitted
	}
	terms := make([]string, len(v.terms))
	copy(terms, v.terms)
	idf := make([]float64, len(v.idf))
	copy(idf, v.idf)
	return Model{
		ID:         v.id,
		FittedAt:   v.fittedAt,
		CorpusSize: v.corpusSize,
		Params:     v.params,
		Vocabulary: terms,
		IDF:        idf,
	}, nil
}

// Restore replaces the vectorizer state with a previously exported model.
func (v *Vectorizer) Restore(m Model) error {
	if err := m.Validate(); err != nil {
		return err
	}
	vocab := make(map[string]int, len(m.Vocabulary))
	terms := make([]string, len(m.Vocabulary))
	for i, t := range m.Vocabulary {
		vocab[t] = i
		terms[i] = t
	}
	idf := make([]float64, len(m.IDF))
	copy(idf, m.IDF)

	if m.Params.MaxN > 0 {
		v.params = m.Params
	}
	v.vocabulary = vocab
	v.terms = terms
	v.idf = idf
	v.id = m.ID
	v.fittedAt = m.FittedAt
	v.corpusSize = m.CorpusSize
	v.state = Fitted
	return nil
}

// Cosine returns the cosine similarity of a and b; 0 when either is a zero vector.
func Cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
