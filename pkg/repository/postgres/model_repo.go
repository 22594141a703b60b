package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/hr/screening/pkg/modelstore"
	"github.com/artem13815/hr/screening/pkg/vectorizer"
)

// ModelRepository хранит обученную модель векторизатора в Postgres.
// Table vectorizer_models is created by storage/postgres.Migrate.
type ModelRepository struct {
	pool *pgxpool.Pool
	key  string
}

var _ modelstore.Store = (*ModelRepository)(nil)

func NewModelRepository(pool *pgxpool.Pool, key string) *ModelRepository {
	if key == "" {
		key = modelstore.DefaultKey
	}
	return &ModelRepository{pool: pool, key: key}
}

func (r *ModelRepository) Name() string { return "postgres" }
func (r *ModelRepository) Key() string  { return r.key }

func (r *ModelRepository) Load(ctx context.Context) (vectorizer.Model, error) {
	row := r.pool.QueryRow(ctx, `
SELECT model FROM vectorizer_models WHERE key = $1
`, r.key)
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vectorizer.Model{}, modelstore.ErrNotFound
		}
		return vectorizer.Model{}, err
	}
	return modelstore.Decode(raw)
}

func (r *ModelRepository) Save(ctx context.Context, m vectorizer.Model) error {
	raw, err := modelstore.Encode(m)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO vectorizer_models (key, model_id, model, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (key) DO UPDATE SET model_id = EXCLUDED.model_id, model = EXCLUDED.model, updated_at = EXCLUDED.updated_at
`, r.key, m.ID, raw, time.Now().UTC())
	return err
}

func (r *ModelRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
