package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"thoughts-api/internal/domain"
	"thoughts-api/internal/repository"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestUserRepositoryUniqueUsername(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)
	require.NoError(t, repo.Init(ctx))

	err := repo.Create(ctx, &domain.User{
		ID: "u1", Username: "alice", PasswordHash: "h1", AccessToken: "t1",
	})
	require.NoError(t, err)

	err = repo.Create(ctx, &domain.User{
		ID: "u2", Username: "alice", PasswordHash: "h2", AccessToken: "t2",
	})
	require.ErrorIs(t, err, repository.ErrConflict)
}

func TestUserRepositoryLookups(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)
	require.NoError(t, repo.Init(ctx))

	user := &domain.User{ID: "u1", Username: "alice", PasswordHash: "h1", AccessToken: "t1"}
	require.NoError(t, repo.Create(ctx, user))
	require.False(t, user.CreatedAt.IsZero())

	byName, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "u1", byName.ID)
	require.Equal(t, "t1", byName.AccessToken)

	byToken, err := repo.GetByToken(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, "alice", byToken.Username)

	_, err = repo.GetByUsername(ctx, "bob")
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetByToken(ctx, "nope")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestThoughtRepositoryCreateAndList(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewThoughtRepository(db)
	require.NoError(t, repo.Init(ctx))

	thoughts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, thoughts)

	require.NoError(t, repo.Create(ctx, &domain.Thought{ID: "th1", Message: "first"}))
	require.NoError(t, repo.Create(ctx, &domain.Thought{ID: "th2", Message: "second", Hearts: 0}))

	thoughts, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, thoughts, 2)
	for _, th := range thoughts {
		require.Equal(t, 0, th.Hearts)
		require.False(t, th.CreatedAt.IsZero())
	}
}
