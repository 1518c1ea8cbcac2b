package catalog

import (
	"context"

	"github.com/catalog/backend/internal/domain/shared"
)

// ProductRepository defines the persistence interface for products
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id int64) (*Product, error)

	// FindBySlug finds a product by its unique slug
	FindBySlug(ctx context.Context, slug string) (*Product, error)

	// FindAll finds all products matching the filter. Supported filter
	// keys: is_active, category_id. Search matches title and description.
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Create inserts a new product
	Create(ctx context.Context, product *Product) error

	// Save persists changes to an existing product
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product
	Delete(ctx context.Context, id int64) error

	// CountByCategory counts products attached to a category
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)

	// ExistsBySlug checks if a product with the given slug exists
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
