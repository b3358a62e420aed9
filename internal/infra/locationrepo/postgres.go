package locationrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aqisense/aqi-sense/internal/domain/location"
)

// PostgresRepository persists lookup counters using pgx.
//
// Expected schema:
//
//	CREATE TABLE location_lookups (
//	    canonical    TEXT PRIMARY KEY,
//	    display_name TEXT NOT NULL,
//	    lookup_count BIGINT NOT NULL DEFAULT 0
//	);
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Increment implements location.HistoryRepository.
func (r *PostgresRepository) Increment(ctx context.Context, canonical, display string) error {
	if canonical == "" {
		return nil
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO location_lookups (canonical, display_name, lookup_count)
		VALUES ($1, $2, 1)
		ON CONFLICT (canonical)
		DO UPDATE SET lookup_count = location_lookups.lookup_count + 1
	`, canonical, display)
	return err
}

// Top implements location.HistoryRepository.
func (r *PostgresRepository) Top(ctx context.Context, limit int) ([]location.TrendingLocation, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.pool.Query(ctx, `
		SELECT display_name, lookup_count
		FROM location_lookups
		ORDER BY lookup_count DESC, display_name ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]location.TrendingLocation, 0, limit)
	for rows.Next() {
		var item location.TrendingLocation
		if err := rows.Scan(&item.Name, &item.Count); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

var _ location.HistoryRepository = (*PostgresRepository)(nil)
