// Package modelstore persists fitted vectorizer models.
package modelstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/artem13815/hr/screening/pkg/vectorizer"
)

// ErrNotFound is returned by Load when nothing has been saved under the key yet.
var ErrNotFound = errors.New("model not found")

// DefaultKey is the fixed location of the model in every backend.
const DefaultKey = "models/resume_classifier.json"

// Store — порт для сохранения/загрузки обученной модели.
type Store interface {
	// Name is the backend kind: file, s3 or postgres.
	Name() string
	// Key is the fixed path the model is stored under.
	Key() string
	Load(ctx context.Context) (vectorizer.Model, error)
	Save(ctx context.Context, m vectorizer.Model) error
	Ping(ctx context.Context) error
}

// Encode serialises a model for storage.
func Encode(m vectorizer.Model) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("encode model: %w", err)
	}
	return json.Marshal(m)
}

// Decode parses and validates a stored model.
func Decode(data []byte) (vectorizer.Model, error) {
	var m vectorizer.Model
	if err := json.Unmarshal(data, &m); err != nil {
		return vectorizer.Model{}, fmt.Errorf("decode model: %w", err)
	}
	if err := m.Validate(); err != nil {
		return vectorizer.Model{}, fmt.Errorf("decode model: %w", err)
	}
	return m, nil
}
