package summaryrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/news-summarizer/internal/domain/summarizer"
)

// Schema creates the summaries table when it does not exist yet.
const Schema = `
CREATE TABLE IF NOT EXISTS summaries (
	id          UUID PRIMARY KEY,
	digest      TEXT NOT NULL,
	summary     TEXT NOT NULL,
	requested   INTEGER NOT NULL,
	selected    INTEGER NOT NULL,
	candidates  INTEGER NOT NULL,
	source_key  TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS summaries_created_at_idx ON summaries (created_at DESC);
`

// PostgresRepository implements summarizer.Repository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Migrate applies Schema.
func (r *PostgresRepository) Migrate(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, Schema)
	return err
}

// Save inserts a summary record.
func (r *PostgresRepository) Save(ctx context.Context, record summarizer.Record) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO summaries (id, digest, summary, requested, selected, candidates, source_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, record.ID, record.Digest, record.Summary, record.Requested, record.Selected, record.Candidates, record.SourceKey, record.CreatedAt)
	return err
}

// Find fetches a record by id.
func (r *PostgresRepository) Find(ctx context.Context, id uuid.UUID) (summarizer.Record, bool, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, digest, summary, requested, selected, candidates, source_key, created_at
		FROM summaries
		WHERE id = $1
	`, id)
	record, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return summarizer.Record{}, false, nil
	}
	if err != nil {
		return summarizer.Record{}, false, err
	}
	return record, true, nil
}

// Recent lists the newest records.
func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]summarizer.Record, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, digest, summary, requested, selected, candidates, source_key, created_at
		FROM summaries
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []summarizer.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

func scanRecord(row pgx.Row) (summarizer.Record, error) {
	var record summarizer.Record
	err := row.Scan(
		&record.ID,
		&record.Digest,
		&record.Summary,
		&record.Requested,
		&record.Selected,
		&record.Candidates,
		&record.SourceKey,
		&record.CreatedAt,
	)
	return record, err
}

var _ summarizer.Repository = (*PostgresRepository)(nil)
