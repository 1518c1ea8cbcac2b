package integration

import (
	"context"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcatalog "github.com/catalog/backend/internal/application/catalog"
	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/infrastructure/config"
	"github.com/catalog/backend/internal/infrastructure/i18n"
	"github.com/catalog/backend/internal/infrastructure/persistence"
)

func seedCategory(t *testing.T, repo catalog.CategoryRepository, name shared.LocalizedText, parentID *int64, level int) *catalog.Category {
	t.Helper()
	c := &catalog.Category{
		Name:     name,
		IsActive: true,
		ParentID: parentID,
		Level:    level,
	}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func TestCategorySearchMatchesMultilingualName(t *testing.T) {
	tdb := NewTestDB(t)
	repo := persistence.NewGormCategoryRepository(tdb.DB)
	ctx := context.Background()

	seedCategory(t, repo, shared.LocalizedText{Az: "Elektronika", En: "Electronics", Ru: "Электроника"}, nil, 1)
	seedCategory(t, repo, shared.LocalizedText{Az: "Mebel", En: "Furniture"}, nil, 1)

	// case-insensitive match on the Azerbaijani name
	found, err := repo.FindAll(ctx, shared.Filter{Search: "elektron", PageSize: -1})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Elektronika", found[0].Name.Az)

	// the other language columns are searched too
	found, err = repo.FindAll(ctx, shared.Filter{Search: "furnit", PageSize: -1})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Mebel", found[0].Name.Az)

	count, err := repo.Count(ctx, shared.Filter{Search: "elektron"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCategoryLevelCheckConstraint(t *testing.T) {
	tdb := NewTestDB(t)
	repo := persistence.NewGormCategoryRepository(tdb.DB)

	err := repo.Create(context.Background(), &catalog.Category{
		Name:     shared.LocalizedText{Az: "Too deep"},
		IsActive: true,
		Level:    6,
	})
	assert.Error(t, err, "level above 5 must violate the check constraint")
}

func TestProductSlugUniqueIndex(t *testing.T) {
	tdb := NewTestDB(t)
	categories := persistence.NewGormCategoryRepository(tdb.DB)
	products := persistence.NewGormProductRepository(tdb.DB)
	ctx := context.Background()

	holder := &catalog.Category{
		Name:            shared.LocalizedText{Az: "Qapilar"},
		IsActive:        true,
		IsProductHolder: true,
		Level:           1,
	}
	require.NoError(t, categories.Create(ctx, holder))

	first := &catalog.Product{
		Title:      shared.LocalizedText{Az: "Metal qapi"},
		Slug:       "metal-qapi",
		CategoryID: holder.ID,
		IsActive:   true,
		ImageList:  pq.StringArray{"a.jpg", "b.jpg"},
	}
	require.NoError(t, products.Create(ctx, first))

	dup := &catalog.Product{
		Title:      shared.LocalizedText{Az: "Duplicate"},
		Slug:       "metal-qapi",
		CategoryID: holder.ID,
		IsActive:   true,
	}
	assert.Error(t, products.Create(ctx, dup), "duplicate slug must be rejected")

	// text[] round trip through the real column type
	loaded, err := products.FindBySlug(ctx, "METAL-QAPI")
	require.NoError(t, err)
	assert.Equal(t, pq.StringArray{"a.jpg", "b.jpg"}, loaded.ImageList)
}

func TestCategoryParentForeignKey(t *testing.T) {
	tdb := NewTestDB(t)
	repo := persistence.NewGormCategoryRepository(tdb.DB)

	orphanParent := int64(9999)
	err := repo.Create(context.Background(), &catalog.Category{
		Name:     shared.LocalizedText{Az: "Orphan"},
		IsActive: true,
		ParentID: &orphanParent,
		Level:    2,
	})
	assert.Error(t, err, "parent_id must reference an existing category")
}

func TestCategoryServiceSubtreeMoveOnPostgres(t *testing.T) {
	tdb := NewTestDB(t)
	categories := persistence.NewGormCategoryRepository(tdb.DB)
	products := persistence.NewGormProductRepository(tdb.DB)
	localizer := i18n.New(config.I18nConfig{
		BaseLanguage:       "az",
		SupportedLanguages: []string{"az", "en", "ru"},
	})
	service := appcatalog.NewCategoryService(
		categories, products, persistence.NewGormTransactionScope(tdb.DB), localizer)
	ctx := context.Background()

	rootA := seedCategory(t, categories, shared.LocalizedText{Az: "A"}, nil, 1)
	rootB := seedCategory(t, categories, shared.LocalizedText{Az: "B"}, nil, 1)
	mid := seedCategory(t, categories, shared.LocalizedText{Az: "A1"}, &rootA.ID, 2)
	leaf := seedCategory(t, categories, shared.LocalizedText{Az: "A1a"}, &mid.ID, 3)

	// move the mid node under the other root; the whole subtree keeps
	// its relative depth
	resp, err := service.Update(ctx, mid.ID, appcatalog.UpdateCategoryRequest{
		Parent: appcatalog.NullableParent{Set: true, ID: &rootB.ID},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ParentID)
	assert.Equal(t, rootB.ID, *resp.ParentID)
	assert.Equal(t, 2, resp.Level)

	reloaded, err := categories.FindByID(ctx, leaf.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, reloaded.Level)

	// depth overflow across the subtree is refused atomically
	deep := seedCategory(t, categories, shared.LocalizedText{Az: "D1"}, nil, 1)
	parent := deep
	for i := 2; i <= 4; i++ {
		parent = seedCategory(t, categories, shared.LocalizedText{Az: "Dn"}, &parent.ID, i)
	}
	_, err = service.Update(ctx, mid.ID, appcatalog.UpdateCategoryRequest{
		Parent: appcatalog.NullableParent{Set: true, ID: &parent.ID},
	})
	require.Error(t, err)

	unchanged, err := categories.FindByID(ctx, mid.ID)
	require.NoError(t, err)
	require.NotNil(t, unchanged.ParentID)
	assert.Equal(t, rootB.ID, *unchanged.ParentID)
	assert.Equal(t, 2, unchanged.Level)
}
