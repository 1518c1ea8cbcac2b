package catalog

import (
	"fmt"

	"github.com/catalog/backend/internal/domain/shared"
)

// MaxCategoryDepth is the maximum depth of the category hierarchy.
// Root categories sit at level 1.
const MaxCategoryDepth = 5

// Category represents a node in the self-referencing category tree.
// Levels are 1-indexed: a category is a root iff ParentID is nil and
// Level is 1; otherwise Level equals the parent's level plus one.
type Category struct {
	shared.BaseEntity
	Name            shared.LocalizedText `gorm:"type:jsonb;not null" json:"name"`
	ImageURL        string               `gorm:"type:varchar(500)" json:"imageUrl,omitempty"`
	IsActive        bool                 `gorm:"not null;default:true" json:"isActive"`
	IsProductHolder bool                 `gorm:"not null;default:false" json:"isProductHolder"`
	ParentID        *int64               `gorm:"index" json:"parentId"`
	Level           int                  `gorm:"not null;default:1" json:"level"`
	SortOrder       int                  `gorm:"not null;default:0" json:"sortOrder"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewRootCategory creates a new root category (level 1, no parent)
func NewRootCategory(name shared.LocalizedText) (*Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	return &Category{
		Name:     name,
		IsActive: true,
		Level:    1,
	}, nil
}

// NewChildCategory creates a new category under an existing parent.
// The parent must be active and must not already sit at the maximum depth.
func NewChildCategory(name shared.LocalizedText, parent *Category) (*Category, error) {
	if parent == nil {
		return nil, shared.NewDomainError("INVALID_STATE", "Parent category is required")
	}
	if !parent.IsActive {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot create a subcategory under an inactive category")
	}
	if parent.Level+1 > MaxCategoryDepth {
		return nil, shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Category depth cannot exceed %d levels", MaxCategoryDepth))
	}
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	parentID := parent.ID
	return &Category{
		Name:     name,
		IsActive: true,
		ParentID: &parentID,
		Level:    parent.Level + 1,
	}, nil
}

// IsRoot returns true if this is a root category
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

// Rename replaces the multilingual name record
func (c *Category) Rename(name shared.LocalizedText) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}
	c.Name = name
	c.Touch()
	return nil
}

// PlaceUnder rewires the category to a new parent and recomputes its
// level. A nil parent promotes the category to root (level 1). Cycle and
// depth validation belong to the hierarchy engine, which sees the whole
// tree; this only keeps the node's own fields consistent (level ==
// parent.level + 1, or 1 for roots).
func (c *Category) PlaceUnder(parent *Category) {
	if parent == nil {
		c.ParentID = nil
		c.Level = 1
	} else {
		parentID := parent.ID
		c.ParentID = &parentID
		c.Level = parent.Level + 1
	}
	c.Touch()
}

// validateCategoryName requires the base-language variant of the name
func validateCategoryName(name shared.LocalizedText) error {
	if name.Az == "" {
		return shared.NewDomainError("INVALID_INPUT", "Category name requires the base language (az)")
	}
	return nil
}
