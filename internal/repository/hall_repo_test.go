package repository

import (
	"context"
	"testing"

	"expofloor/internal/database"
	"expofloor/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T, name string) *HallRepository {
	t.Helper()
	db, err := database.Connect("file:" + name + "?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return NewHallRepository(db)
}

func TestHallRepository_Create_DuplicateNamePerExhibition(t *testing.T) {
	repo := testDB(t, "hall_dup_test")
	ctx := context.Background()

	first := &domain.Hall{
		ExhibitionID: 1,
		Name:         "Hall A",
		Bounds:       domain.Rect{Width: 20, Height: 20},
	}
	require.NoError(t, repo.Create(ctx, first))
	assert.NotZero(t, first.ID)

	dup := &domain.Hall{
		ExhibitionID: 1,
		Name:         "Hall A",
		Bounds:       domain.Rect{X: 30, Width: 20, Height: 20},
	}
	err := repo.Create(ctx, dup)
	assert.ErrorIs(t, err, ErrDuplicateName)

	// the same name is fine under a different exhibition
	other := &domain.Hall{
		ExhibitionID: 2,
		Name:         "Hall A",
		Bounds:       domain.Rect{Width: 20, Height: 20},
	}
	assert.NoError(t, repo.Create(ctx, other))
}
