package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/shared"
)

func setupProductTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			description TEXT,
			main_image TEXT,
			image_list TEXT,
			detail_pdf TEXT,
			category_id INTEGER NOT NULL,
			is_active INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME,
			updated_at DATETIME
		)
	`).Error
	require.NoError(t, err)

	return db
}

func seedProduct(t *testing.T, repo *GormProductRepository, slug string, categoryID int64, opts ...func(*catalog.Product)) *catalog.Product {
	t.Helper()
	product := &catalog.Product{
		Title:      shared.LocalizedText{Az: slug},
		Slug:       slug,
		CategoryID: categoryID,
		IsActive:   true,
	}
	for _, opt := range opts {
		opt(product)
	}
	require.NoError(t, repo.Create(context.Background(), product))
	return product
}

func TestGormProductRepository_FindBySlug(t *testing.T) {
	repo := NewGormProductRepository(setupProductTestDB(t))
	ctx := context.Background()

	seedProduct(t, repo, "iphone-15", 1)

	found, err := repo.FindBySlug(ctx, "iphone-15")
	require.NoError(t, err)
	assert.Equal(t, "iphone-15", found.Slug)

	// lookup normalizes case before hitting the store
	found, err = repo.FindBySlug(ctx, "IPHONE-15")
	require.NoError(t, err)
	assert.Equal(t, "iphone-15", found.Slug)

	_, err = repo.FindBySlug(ctx, "missing")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormProductRepository_ExistsBySlug(t *testing.T) {
	repo := NewGormProductRepository(setupProductTestDB(t))
	ctx := context.Background()

	seedProduct(t, repo, "galaxy-s24", 1)

	exists, err := repo.ExistsBySlug(ctx, "galaxy-s24")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsBySlug(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormProductRepository_FindAll_CategoryFilter(t *testing.T) {
	repo := NewGormProductRepository(setupProductTestDB(t))
	ctx := context.Background()

	seedProduct(t, repo, "phone-a", 1)
	seedProduct(t, repo, "phone-b", 1)
	seedProduct(t, repo, "laptop-a", 2)

	products, err := repo.FindAll(ctx, shared.Filter{
		PageSize: -1,
		Filters:  map[string]interface{}{"category_id": int64(1)},
	})
	require.NoError(t, err)
	assert.Len(t, products, 2)

	count, err := repo.Count(ctx, shared.Filter{
		Filters: map[string]interface{}{"category_id": int64(1)},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGormProductRepository_CountByCategory(t *testing.T) {
	repo := NewGormProductRepository(setupProductTestDB(t))
	ctx := context.Background()

	seedProduct(t, repo, "phone-a", 7)
	seedProduct(t, repo, "phone-b", 7, func(p *catalog.Product) { p.IsActive = false })

	// inactive products still block category deletion
	count, err := repo.CountByCategory(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGormProductRepository_ImageListRoundTrip(t *testing.T) {
	repo := NewGormProductRepository(setupProductTestDB(t))
	ctx := context.Background()

	created := seedProduct(t, repo, "camera-x", 1, func(p *catalog.Product) {
		p.ImageList = []string{"/uploads/a.jpg", "/uploads/b.jpg"}
	})

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/a.jpg", "/uploads/b.jpg"}, []string(found.ImageList))
}

func TestGormProductRepository_Delete(t *testing.T) {
	repo := NewGormProductRepository(setupProductTestDB(t))
	ctx := context.Background()

	created := seedProduct(t, repo, "old-model", 1)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), shared.ErrNotFound)
}
