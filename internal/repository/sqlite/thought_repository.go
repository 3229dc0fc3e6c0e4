package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"thoughts-api/internal/domain"
	"thoughts-api/internal/repository"
)

const createThoughtsTable = `
CREATE TABLE IF NOT EXISTS thoughts (
	id TEXT PRIMARY KEY,
	message TEXT NOT NULL,
	hearts INTEGER NOT NULL DEFAULT 0 CHECK (hearts >= 0),
	created_at DATETIME NOT NULL
);
`

type ThoughtRepository struct {
	db *sql.DB
}

func NewThoughtRepository(db *sql.DB) repository.ThoughtRepository {
	return &ThoughtRepository{db: db}
}

func (r *ThoughtRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createThoughtsTable); err != nil {
		return fmt.Errorf("create thoughts table: %w", err)
	}
	return nil
}

func (r *ThoughtRepository) Create(ctx context.Context, thought *domain.Thought) error {
	if thought.CreatedAt.IsZero() {
		thought.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO thoughts (id, message, hearts, created_at)
VALUES (?, ?, ?, ?)`,
		thought.ID,
		thought.Message,
		thought.Hearts,
		thought.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert thought: %w", err)
	}
	return nil
}

func (r *ThoughtRepository) List(ctx context.Context) ([]domain.Thought, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, message, hearts, created_at
FROM thoughts`)
	if err != nil {
		return nil, fmt.Errorf("list thoughts: %w", err)
	}
	defer rows.Close()

	var thoughts []domain.Thought
	for rows.Next() {
		var t domain.Thought
		if err := rows.Scan(&t.ID, &t.Message, &t.Hearts, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan thought: %w", err)
		}
		thoughts = append(thoughts, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate thoughts: %w", err)
	}
	return thoughts, nil
}
