package repository

import (
	"context"

	"thoughts-api/internal/domain"
)

// ThoughtRepository defines persistence operations for Thought entities.
type ThoughtRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, thought *domain.Thought) error
	List(ctx context.Context) ([]domain.Thought, error)
}
