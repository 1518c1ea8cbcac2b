package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/catalog/backend/internal/domain/content"
	"github.com/catalog/backend/internal/domain/shared"
)

// GormTestimonialRepository implements TestimonialRepository using GORM
type GormTestimonialRepository struct {
	db *gorm.DB
}

// NewGormTestimonialRepository creates a new GormTestimonialRepository
func NewGormTestimonialRepository(db *gorm.DB) *GormTestimonialRepository {
	return &GormTestimonialRepository{db: db}
}

// FindByID finds a testimonial by its ID
func (r *GormTestimonialRepository) FindByID(ctx context.Context, id int64) (*content.Testimonial, error) {
	var testimonial content.Testimonial
	if err := r.db.WithContext(ctx).First(&testimonial, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &testimonial, nil
}

// FindAll finds all testimonials matching the filter
func (r *GormTestimonialRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.Testimonial, error) {
	var testimonials []content.Testimonial
	query := r.applyFilter(r.db.WithContext(ctx).Model(&content.Testimonial{}), filter)

	if err := query.Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

// Count counts testimonials matching the filter
func (r *GormTestimonialRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&content.Testimonial{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create inserts a new testimonial
func (r *GormTestimonialRepository) Create(ctx context.Context, testimonial *content.Testimonial) error {
	return r.db.WithContext(ctx).Create(testimonial).Error
}

// Save persists changes to an existing testimonial
func (r *GormTestimonialRepository) Save(ctx context.Context, testimonial *content.Testimonial) error {
	return r.db.WithContext(ctx).Save(testimonial).Error
}

// Delete deletes a testimonial
func (r *GormTestimonialRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&content.Testimonial{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormTestimonialRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
func (r *GormTestimonialRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"name->>'az' ILIKE ? OR message->>'az' ILIKE ?",
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

// Ensure GormTestimonialRepository implements TestimonialRepository
var _ content.TestimonialRepository = (*GormTestimonialRepository)(nil)
