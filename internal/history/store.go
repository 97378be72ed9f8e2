package history

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mikhail/content-planner/internal/types"
)

// Store wraps a PostgreSQL connection pool for publish history persistence
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &Store{pool: pool}
	if err := store.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return store, nil
}

// EnsureSchema creates the published_items table if it does not exist yet
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS published_items (
			id BIGSERIAL PRIMARY KEY,
			channel TEXT NOT NULL,
			published_at TIMESTAMPTZ NOT NULL,
			pillar_id TEXT NOT NULL,
			format TEXT NOT NULL,
			title TEXT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure history schema: %w", err)
	}
	return nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Snapshot loads the full publish history ordered by publish date
func (s *Store) Snapshot(ctx context.Context) (*types.PublishHistory, error) {
	return s.snapshotQuery(ctx,
		`SELECT channel, published_at, pillar_id, format, title
		 FROM published_items ORDER BY published_at ASC`)
}

// SnapshotSince loads history items published on or after the cutoff
func (s *Store) SnapshotSince(ctx context.Context, cutoff time.Time) (*types.PublishHistory, error) {
	return s.snapshotQuery(ctx,
		`SELECT channel, published_at, pillar_id, format, title
		 FROM published_items WHERE published_at >= $1 ORDER BY published_at ASC`,
		cutoff)
}

func (s *Store) snapshotQuery(ctx context.Context, query string, args ...any) (*types.PublishHistory, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query published items: %w", err)
	}
	defer rows.Close()

	var history types.PublishHistory
	for rows.Next() {
		var item types.PublishedItem
		var format string
		if err := rows.Scan(&item.Channel, &item.Date, &item.PillarID, &format, &item.Title); err != nil {
			return nil, fmt.Errorf("failed to scan published item: %w", err)
		}
		item.Format = types.Format(format)
		history.Items = append(history.Items, item)
	}
	return &history, nil
}

// Append records a confirmed publication. History is append-only; there is no
// update or delete surface.
func (s *Store) Append(ctx context.Context, item types.PublishedItem) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO published_items (channel, published_at, pillar_id, format, title)
		 VALUES ($1, $2, $3, $4, $5)`,
		item.Channel, item.Date, item.PillarID, string(item.Format), item.Title,
	)
	if err != nil {
		return fmt.Errorf("failed to append published item: %w", err)
	}
	return nil
}
