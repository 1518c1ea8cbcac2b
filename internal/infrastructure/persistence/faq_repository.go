package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/catalog/backend/internal/domain/content"
	"github.com/catalog/backend/internal/domain/shared"
)

// GormFAQRepository implements FAQRepository using GORM
type GormFAQRepository struct {
	db *gorm.DB
}

// NewGormFAQRepository creates a new GormFAQRepository
func NewGormFAQRepository(db *gorm.DB) *GormFAQRepository {
	return &GormFAQRepository{db: db}
}

// FindByID finds an FAQ entry by its ID
func (r *GormFAQRepository) FindByID(ctx context.Context, id int64) (*content.FAQ, error) {
	var faq content.FAQ
	if err := r.db.WithContext(ctx).First(&faq, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &faq, nil
}

// FindAll finds all FAQ entries matching the filter
func (r *GormFAQRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.FAQ, error) {
	var faqs []content.FAQ
	query := r.applyFilter(r.db.WithContext(ctx).Model(&content.FAQ{}), filter)

	if err := query.Find(&faqs).Error; err != nil {
		return nil, err
	}
	return faqs, nil
}

// Count counts FAQ entries matching the filter
func (r *GormFAQRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&content.FAQ{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create inserts a new FAQ entry
func (r *GormFAQRepository) Create(ctx context.Context, faq *content.FAQ) error {
	return r.db.WithContext(ctx).Create(faq).Error
}

// Save persists changes to an existing FAQ entry
func (r *GormFAQRepository) Save(ctx context.Context, faq *content.FAQ) error {
	return r.db.WithContext(ctx).Save(faq).Error
}

// Delete deletes an FAQ entry
func (r *GormFAQRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&content.FAQ{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormFAQRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	field := ValidateSortField(filter.OrderBy, CommonSortFields, "id")
	query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormFAQRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"question->>'az' ILIKE ? OR answer->>'az' ILIKE ?",
			pattern, pattern,
		)
	}

	for key, value := range filter.Filters {
		switch key {
		case "is_active":
			query = query.Where("is_active = ?", value)
		}
	}

	return query
}

// Ensure GormFAQRepository implements FAQRepository
var _ content.FAQRepository = (*GormFAQRepository)(nil)
