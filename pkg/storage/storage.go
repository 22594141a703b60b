// Package storage opens the model store selected by configuration.
package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/hr/screening/pkg/config"
	"github.com/artem13815/hr/screening/pkg/modelstore"
	pgrepo "github.com/artem13815/hr/screening/pkg/repository/postgres"
	"github.com/artem13815/hr/screening/pkg/storage/postgres"
)

// Opened is a ready model store plus the Postgres pool behind it, if any.
type Opened struct {
	Store modelstore.Store
	Pool  *pgxpool.Pool
}

func (o Opened) Close() {
	if o.Pool != nil {
		o.Pool.Close()
	}
}

// OpenModelStore builds the store named by cfg.ModelStore. For postgres it
// connects and applies migrations.
func OpenModelStore(ctx context.Context, cfg config.Config) (Opened, error) {
	switch cfg.ModelStore {
	case config.StoreFile:
		return Opened{Store: modelstore.NewFileStore(cfg.ModelPath)}, nil
	case config.StoreS3:
		s, err := modelstore.NewS3Store(ctx, modelstore.S3Config{
			Endpoint:  cfg.S3.Endpoint,
			Region:    cfg.S3.Region,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Bucket:    cfg.S3.Bucket,
			Key:       cfg.ModelPath,
		})
		if err != nil {
			return Opened{}, err
		}
		return Opened{Store: s}, nil
	case config.StorePostgres:
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return Opened{}, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return Opened{}, err
		}
		return Opened{Store: pgrepo.NewModelRepository(pool, cfg.ModelPath), Pool: pool}, nil
	default:
		return Opened{}, fmt.Errorf("unknown model store %q", cfg.ModelStore)
	}
}
