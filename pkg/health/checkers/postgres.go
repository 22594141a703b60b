package checkers

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var errModelTableMissing = errors.New("table vectorizer_models is missing, migrations not applied")

// PostgresChecker проверяет соединение с БД и наличие таблицы моделей.
type PostgresChecker struct {
	pool *pgxpool.Pool
}

func NewPostgresChecker(pool *pgxpool.Pool) *PostgresChecker {
	return &PostgresChecker{pool: pool}
}

func (c *PostgresChecker) Name() string { return "postgres" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := c.pool.Ping(ctx); err != nil {
		return err
	}
	var exists bool
	if err := c.pool.QueryRow(ctx, `SELECT to_regclass('vectorizer_models') IS NOT NULL`).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return errModelTableMissing
	}
	return nil
}
