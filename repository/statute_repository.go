package repository

import (
	"context"
	"fmt"

	"nyaay-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// StatuteRepository handles database access to the statute dataset for
// deployments that keep the dataset in Postgres instead of a CSV file.
type StatuteRepository struct {
	db *pgxpool.Pool
}

// NewStatuteRepository creates a new statute repository
func NewStatuteRepository(db *pgxpool.Pool) *StatuteRepository {
	return &StatuteRepository{db: db}
}

// LoadAll reads every statute row in insertion order. Row position is the
// only identity the dataset has, so ordering by id keeps scoring ties
// deterministic across restarts.
func (r *StatuteRepository) LoadAll(ctx context.Context) ([]models.StatuteEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT url, description, offense, punishment, cognizable, bailable, court
		FROM statute_sections
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query statute sections: %w", err)
	}
	defer rows.Close()

	var entries []models.StatuteEntry
	for rows.Next() {
		var e models.StatuteEntry
		if err := rows.Scan(
			&e.URL,
			&e.Description,
			&e.Offense,
			&e.Punishment,
			&e.Cognizable,
			&e.Bailable,
			&e.Court,
		); err != nil {
			// Malformed row: skip it, keep the rest of the catalog usable.
			continue
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating statute sections: %w", err)
	}

	return entries, nil
}

// Insert adds a single statute row. Used by the catalog import tool.
func (r *StatuteRepository) Insert(ctx context.Context, e models.StatuteEntry) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO statute_sections (url, description, offense, punishment, cognizable, bailable, court)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.URL, e.Description, e.Offense, e.Punishment, e.Cognizable, e.Bailable, e.Court,
	)
	if err != nil {
		return fmt.Errorf("failed to insert statute section: %w", err)
	}
	return nil
}
