package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/catalog/backend/internal/domain/content"
	"github.com/catalog/backend/internal/domain/shared"
)

// GormPromoRepository implements PromoRepository using GORM
type GormPromoRepository struct {
	db *gorm.DB
}

// NewGormPromoRepository creates a new GormPromoRepository
func NewGormPromoRepository(db *gorm.DB) *GormPromoRepository {
	return &GormPromoRepository{db: db}
}

// FindByID finds a promo by its ID
func (r *GormPromoRepository) FindByID(ctx context.Context, id int64) (*content.Promo, error) {
	var promo content.Promo
	if err := r.db.WithContext(ctx).First(&promo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &promo, nil
}

// FindAll finds all promos matching the filter
func (r *GormPromoRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.Promo, error) {
	var promos []content.Promo
	query := r.applyFilter(r.db.WithContext(ctx).Model(&content.Promo{}), filter)

	if err := query.Find(&promos).Error; err != nil {
		return nil, err
	}
	return promos, nil
}

// Count counts promos matching the filter
func (r *GormPromoRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&content.Promo{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create inserts a new promo
func (r *GormPromoRepository) Create(ctx context.Context, promo *content.Promo) error {
	return r.db.WithContext(ctx).Create(promo).Error
}

// Save persists changes to an existing promo
func (r *GormPromoRepository) Save(ctx context.Context, promo *content.Promo) error {
	return r.db.WithContext(ctx).Save(promo).Error
}

// Delete deletes a promo
func (r *GormPromoRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&content.Promo{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormPromoRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		field := ValidateSortField(filter.OrderBy, PromoSortFields, "id")
		query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		// active campaigns surface newest-first
		query = query.Order("start_date DESC, id DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormPromoRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"title->>'az' ILIKE ? OR subtitle->>'az' ILIKE ? OR description->>'az' ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	for key, value := range filter.Filters {
		switch key {
		case "is_active":
			query = query.Where("is_active = ?", value)
		case "product_id":
			query = query.Where("product_id = ?", value)
		case "current_at":
			query = query.Where("start_date <= ? AND end_date >= ?", value, value)
		case "start_from":
			query = query.Where("start_date >= ?", value)
		case "start_to":
			query = query.Where("start_date <= ?", value)
		}
	}

	return query
}

// Ensure GormPromoRepository implements PromoRepository
var _ content.PromoRepository = (*GormPromoRepository)(nil)
