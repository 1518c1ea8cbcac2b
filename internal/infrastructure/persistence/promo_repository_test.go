package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/catalog/backend/internal/domain/content"
	"github.com/catalog/backend/internal/domain/shared"
)

func setupPromoTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE promos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			subtitle TEXT,
			description TEXT,
			start_date DATETIME NOT NULL,
			end_date DATETIME NOT NULL,
			background_img TEXT,
			product_id INTEGER NOT NULL,
			is_active INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME,
			updated_at DATETIME
		)
	`).Error
	require.NoError(t, err)

	return db
}

func seedPromo(t *testing.T, repo *GormPromoRepository, title string, start, end time.Time, opts ...func(*content.Promo)) *content.Promo {
	t.Helper()
	promo := &content.Promo{
		Title:     shared.LocalizedText{Az: title},
		StartDate: start,
		EndDate:   end,
		ProductID: 1,
		IsActive:  true,
	}
	for _, opt := range opts {
		opt(promo)
	}
	require.NoError(t, repo.Create(context.Background(), promo))
	return promo
}

func TestGormPromoRepository_FindAll_CurrentWindow(t *testing.T) {
	repo := NewGormPromoRepository(setupPromoTestDB(t))
	ctx := context.Background()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	seedPromo(t, repo, "Running", now.AddDate(0, 0, -5), now.AddDate(0, 0, 5))
	seedPromo(t, repo, "Expired", now.AddDate(0, -2, 0), now.AddDate(0, -1, 0))
	seedPromo(t, repo, "Upcoming", now.AddDate(0, 1, 0), now.AddDate(0, 2, 0))

	current, err := repo.FindAll(ctx, shared.Filter{
		PageSize: -1,
		Filters:  map[string]interface{}{"current_at": now, "is_active": true},
	})
	require.NoError(t, err)
	require.Len(t, current, 1)
	assert.Equal(t, "Running", current[0].Title.Az)
}

func TestGormPromoRepository_FindAll_StartDateRange(t *testing.T) {
	repo := NewGormPromoRepository(setupPromoTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	seedPromo(t, repo, "January", base, base.AddDate(0, 1, 0))
	seedPromo(t, repo, "March", base.AddDate(0, 2, 0), base.AddDate(0, 3, 0))
	seedPromo(t, repo, "June", base.AddDate(0, 5, 0), base.AddDate(0, 6, 0))

	promos, err := repo.FindAll(ctx, shared.Filter{
		PageSize: -1,
		Filters: map[string]interface{}{
			"start_from": base.AddDate(0, 1, 0),
			"start_to":   base.AddDate(0, 4, 0),
		},
	})
	require.NoError(t, err)
	require.Len(t, promos, 1)
	assert.Equal(t, "March", promos[0].Title.Az)
}

func TestGormPromoRepository_FindAll_ProductFilter(t *testing.T) {
	repo := NewGormPromoRepository(setupPromoTestDB(t))
	ctx := context.Background()
	now := time.Now()

	seedPromo(t, repo, "ForPhone", now, now.AddDate(0, 1, 0), func(p *content.Promo) { p.ProductID = 42 })
	seedPromo(t, repo, "ForLaptop", now, now.AddDate(0, 1, 0), func(p *content.Promo) { p.ProductID = 43 })

	promos, err := repo.FindAll(ctx, shared.Filter{
		PageSize: -1,
		Filters:  map[string]interface{}{"product_id": int64(42)},
	})
	require.NoError(t, err)
	require.Len(t, promos, 1)
	assert.Equal(t, "ForPhone", promos[0].Title.Az)
}

func TestGormPromoRepository_DefaultOrderNewestFirst(t *testing.T) {
	repo := NewGormPromoRepository(setupPromoTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	seedPromo(t, repo, "Older", base, base.AddDate(0, 1, 0))
	seedPromo(t, repo, "Newer", base.AddDate(0, 3, 0), base.AddDate(0, 4, 0))

	promos, err := repo.FindAll(ctx, shared.Filter{PageSize: -1})
	require.NoError(t, err)
	require.Len(t, promos, 2)
	assert.Equal(t, "Newer", promos[0].Title.Az)
	assert.Equal(t, "Older", promos[1].Title.Az)
}

func TestGormPromoRepository_Delete(t *testing.T) {
	repo := NewGormPromoRepository(setupPromoTestDB(t))
	ctx := context.Background()
	now := time.Now()

	created := seedPromo(t, repo, "Spring", now, now.AddDate(0, 1, 0))

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err := repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
