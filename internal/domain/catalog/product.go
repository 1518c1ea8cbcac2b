package catalog

import (
	"strings"

	"github.com/catalog/backend/internal/domain/shared"
	"github.com/lib/pq"
)

// Product is a catalog item attached to exactly one category
type Product struct {
	shared.BaseEntity
	Title       shared.LocalizedText `gorm:"type:jsonb;not null" json:"title"`
	Slug        string               `gorm:"type:varchar(200);not null;uniqueIndex" json:"slug"`
	Description shared.LocalizedText `gorm:"type:jsonb" json:"description"`
	MainImage   string               `gorm:"type:varchar(500)" json:"mainImage,omitempty"`
	ImageList   pq.StringArray       `gorm:"type:text[]" json:"imageList,omitempty"`
	DetailPDF   string               `gorm:"type:varchar(500)" json:"detailPdf,omitempty"`
	CategoryID  int64                `gorm:"not null;index" json:"categoryId"`
	IsActive    bool                 `gorm:"not null;default:true" json:"isActive"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product under a category. The category must be
// flagged as a product holder; that rule lives here, outside the
// hierarchy engine.
func NewProduct(title shared.LocalizedText, slug string, category *Category) (*Product, error) {
	if title.Az == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product title requires the base language (az)")
	}
	if err := validateSlug(slug); err != nil {
		return nil, err
	}
	if category == nil {
		return nil, shared.NewDomainError("INVALID_STATE", "Product category is required")
	}
	if !category.IsProductHolder {
		return nil, shared.NewDomainError("INVALID_STATE", "Category cannot hold products")
	}

	return &Product{
		Title:      title,
		Slug:       strings.ToLower(slug),
		CategoryID: category.ID,
		IsActive:   true,
	}, nil
}

// validateSlug accepts lowercase alphanumerics with hyphens
func validateSlug(slug string) error {
	if slug == "" {
		return shared.NewDomainError("INVALID_INPUT", "Product slug cannot be empty")
	}
	if len(slug) > 200 {
		return shared.NewDomainError("INVALID_INPUT", "Product slug cannot exceed 200 characters")
	}
	for _, r := range strings.ToLower(slug) {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return shared.NewDomainError("INVALID_INPUT", "Product slug can only contain letters, numbers, and hyphens")
		}
	}
	return nil
}
