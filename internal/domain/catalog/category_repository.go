package catalog

import (
	"context"

	"github.com/catalog/backend/internal/domain/shared"
)

// CategoryRepository defines the persistence interface for the category
// tree. Every hierarchy traversal is an explicit store call; there is no
// implicit association loading.
type CategoryRepository interface {
	// FindByID finds a category by its ID
	FindByID(ctx context.Context, id int64) (*Category, error)

	// FindChildren finds all direct children of a category, ordered by
	// sort order then ID
	FindChildren(ctx context.Context, parentID int64) ([]Category, error)

	// FindAll finds all categories matching the filter, ordered by level
	// then ID. Supported filter keys: is_active, parent_id (nil matches
	// roots), level, product_holder. Search matches the multilingual name.
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)

	// Count counts categories matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Create inserts a new category
	Create(ctx context.Context, category *Category) error

	// Save persists changes to an existing category
	Save(ctx context.Context, category *Category) error

	// Delete deletes a category
	Delete(ctx context.Context, id int64) error

	// CountByParent counts the direct children of a category
	CountByParent(ctx context.Context, parentID int64) (int64, error)
}
