// Package events broadcasts model updates between service instances so that
// every instance scores with the same persisted vectorizer.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/hr/screening/pkg/vectorizer"
)

const (
	Exchange   = "model_updates"
	RoutingKey = "vectorizer.updated"
)

// ModelUpdate is published after a model was fitted and persisted.
type ModelUpdate struct {
	ModelID    uuid.UUID `json:"model_id"`
	InstanceID uuid.UUID `json:"instance_id"`
	Store      string    `json:"store"`
	Key        string    `json:"key"`
	FittedAt   time.Time `json:"fitted_at"`
}

// Reloader re-reads the persisted model.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Nop discards model updates; used when no broker is configured.
type Nop struct{}

func (Nop) ModelUpdated(context.Context, vectorizer.Model) error { return nil }

func decodeUpdate(body []byte) (ModelUpdate, error) {
	var u ModelUpdate
	if err := json.Unmarshal(body, &u); err != nil {
		return ModelUpdate{}, fmt.Errorf("decode model update: %w", err)
	}
	if u.ModelID == uuid.Nil {
		return ModelUpdate{}, fmt.Errorf("decode model update: missing model_id")
	}
	return u, nil
}

// handleUpdate reloads the model unless the update came from this instance.
// It reports whether a reload happened.
func handleUpdate(ctx context.Context, body []byte, self uuid.UUID, r Reloader) (bool, error) {
	u, err := decodeUpdate(body)
	if err != nil {
		return false, err
	}
	if u.InstanceID == self {
		return false, nil
	}
	if err := r.Reload(ctx); err != nil {
		return false, fmt.Errorf("reload model %s: %w", u.ModelID, err)
	}
	return true, nil
}
