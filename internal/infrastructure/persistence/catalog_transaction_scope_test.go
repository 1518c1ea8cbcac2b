package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcatalog "github.com/catalog/backend/internal/application/catalog"
)

func TestGormTransactionScope_CommitsOnSuccess(t *testing.T) {
	db := setupCategoryTestDB(t)
	repo := NewGormCategoryRepository(db)
	scope := NewGormTransactionScope(db)
	ctx := context.Background()

	root := seedCategory(t, repo, "Root", nil, 1)
	child := seedCategory(t, repo, "Child", &root.ID, 2)

	err := scope.Execute(ctx, func(repos appcatalog.TransactionalRepositories) error {
		child.ParentID = nil
		child.Level = 1
		return repos.Categories().Save(ctx, child)
	})
	require.NoError(t, err)

	reloaded, err := repo.FindByID(ctx, child.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.ParentID)
	assert.Equal(t, 1, reloaded.Level)
}

func TestGormTransactionScope_RollsBackOnError(t *testing.T) {
	db := setupCategoryTestDB(t)
	repo := NewGormCategoryRepository(db)
	scope := NewGormTransactionScope(db)
	ctx := context.Background()

	root := seedCategory(t, repo, "Root", nil, 1)
	child := seedCategory(t, repo, "Child", &root.ID, 2)

	boom := errors.New("propagation failed")
	err := scope.Execute(ctx, func(repos appcatalog.TransactionalRepositories) error {
		child.ParentID = nil
		child.Level = 1
		if err := repos.Categories().Save(ctx, child); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// the save inside the failed transaction must not be visible
	reloaded, err := repo.FindByID(ctx, child.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.ParentID)
	assert.Equal(t, root.ID, *reloaded.ParentID)
	assert.Equal(t, 2, reloaded.Level)
}
