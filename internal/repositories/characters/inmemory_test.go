package characters_test

import (
	"context"
	"testing"

	"github.com/fableforge/gamemaster/internal/domain/character"
	apperr "github.com/fableforge/gamemaster/internal/errors"
	"github.com/fableforge/gamemaster/internal/repositories/characters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := characters.NewInMemoryRepository()

	char := character.New("player-1", "Aragorn")
	require.NoError(t, repo.Create(ctx, char))

	got, err := repo.Get(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, "Aragorn", got.Name)
	assert.Equal(t, 10, got.HP)

	// Creating again for the same player is rejected
	err = repo.Create(ctx, character.New("player-1", "Boromir"))
	assert.True(t, apperr.IsAlreadyExists(err))
}

func TestInMemoryRepository_GetNotFound(t *testing.T) {
	ctx := context.Background()
	repo := characters.NewInMemoryRepository()

	_, err := repo.Get(ctx, "missing")
	assert.True(t, apperr.IsNotFound(err))
}

func TestInMemoryRepository_SaveUpserts(t *testing.T) {
	ctx := context.Background()
	repo := characters.NewInMemoryRepository()

	char := character.New("player-1", "Aragorn")
	require.NoError(t, repo.Save(ctx, char))

	char.HP = -5
	require.NoError(t, repo.Save(ctx, char))

	got, err := repo.Get(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, -5, got.HP)
}

func TestInMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := characters.NewInMemoryRepository()

	char := character.New("player-1", "Aragorn")
	require.NoError(t, repo.Create(ctx, char))

	got, err := repo.Get(ctx, "player-1")
	require.NoError(t, err)
	got.HP = 999

	again, err := repo.Get(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, 10, again.HP, "mutating a returned record must not touch the stored one")
}

func TestInMemoryRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := characters.NewInMemoryRepository()

	require.NoError(t, repo.Create(ctx, character.New("player-2", "Borin")))
	require.NoError(t, repo.Create(ctx, character.New("player-1", "Aragorn")))

	chars, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, chars, 2)
	assert.Equal(t, "player-1", chars[0].PlayerID)
	assert.Equal(t, "player-2", chars[1].PlayerID)
}
