package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"thoughts-api/internal/domain"
	"thoughts-api/internal/repository"
)

// ErrMessageRequired is returned when a posted thought has no message.
var ErrMessageRequired = errors.New("message is required")

// ThoughtService coordinates thought level operations backed by the repository.
type ThoughtService interface {
	CreateThought(ctx context.Context, message string) (*domain.Thought, error)
	ListThoughts(ctx context.Context) ([]domain.Thought, error)
}

type thoughtService struct {
	thoughts repository.ThoughtRepository
}

func NewThoughtService(thoughts repository.ThoughtRepository) ThoughtService {
	return &thoughtService{thoughts: thoughts}
}

func (s *thoughtService) CreateThought(ctx context.Context, message string) (*domain.Thought, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrMessageRequired
	}

	thought := &domain.Thought{
		ID:        uuid.NewString(),
		Message:   message,
		Hearts:    0,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.thoughts.Create(ctx, thought); err != nil {
		return nil, err
	}
	return thought, nil
}

func (s *thoughtService) ListThoughts(ctx context.Context) ([]domain.Thought, error) {
	return s.thoughts.List(ctx)
}
