package catalog

import (
	"time"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/shared"
)

// Localizer resolves a multilingual text record to a single display
// string for a requested language, falling back to the base language.
type Localizer interface {
	Resolve(text shared.LocalizedText, lang string) string
}

// NullableParent distinguishes three parent intents on update:
// not set (leave the parent unchanged), set to nil (promote to root),
// and set to an ID (move under that category).
type NullableParent struct {
	Set bool
	ID  *int64
}

// CreateCategoryRequest carries input for creating a category
type CreateCategoryRequest struct {
	Name            shared.LocalizedText
	ImageURL        string
	ParentID        *int64
	IsActive        *bool
	IsProductHolder *bool
	SortOrder       *int
}

// UpdateCategoryRequest carries input for updating a category. Nil
// pointer fields are left unchanged; Parent follows NullableParent
// semantics.
type UpdateCategoryRequest struct {
	Name            *shared.LocalizedText
	ImageURL        *string
	IsActive        *bool
	IsProductHolder *bool
	SortOrder       *int
	Parent          NullableParent
}

// CategoryListFilter carries list filtering and pagination options
type CategoryListFilter struct {
	IsActive     *bool
	ParentID     *int64
	ParentIsNull bool
	Level        *int
	Search       string
	Page         int
	PageSize     int
}

// CategoryResponse is the raw (administrative) category shape with the
// full multilingual name record.
type CategoryResponse struct {
	ID              int64                `json:"id"`
	Name            shared.LocalizedText `json:"name"`
	ImageURL        string               `json:"imageUrl,omitempty"`
	IsActive        bool                 `json:"isActive"`
	IsProductHolder bool                 `json:"isProductHolder"`
	ParentID        *int64               `json:"parentId"`
	Level           int                  `json:"level"`
	SortOrder       int                  `json:"sortOrder"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
	Parent          *CategoryResponse    `json:"parent,omitempty"`
	Children        []CategoryResponse   `json:"children,omitempty"`
}

// CategoryView is the localized client-facing category shape. The
// multilingual record is replaced by a single resolved string and never
// exposed here.
type CategoryView struct {
	ID              int64          `json:"id"`
	Name            string         `json:"name"`
	ImageURL        string         `json:"imageUrl,omitempty"`
	IsActive        bool           `json:"isActive"`
	IsProductHolder bool           `json:"isProductHolder"`
	ParentID        *int64         `json:"parentId"`
	Level           int            `json:"level"`
	SortOrder       int            `json:"sortOrder"`
	Parent          *CategoryView  `json:"parent,omitempty"`
	Children        []CategoryView `json:"children"`
}

// CategoryTreeView is a localized nested tree node
type CategoryTreeView struct {
	ID              int64              `json:"id"`
	Name            string             `json:"name"`
	ImageURL        string             `json:"imageUrl,omitempty"`
	IsProductHolder bool               `json:"isProductHolder"`
	ParentID        *int64             `json:"parentId"`
	Level           int                `json:"level"`
	SortOrder       int                `json:"sortOrder"`
	Children        []CategoryTreeView `json:"children"`
}

// ToCategoryResponse maps a category entity to its raw response shape
func ToCategoryResponse(c *catalog.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:              c.ID,
		Name:            c.Name,
		ImageURL:        c.ImageURL,
		IsActive:        c.IsActive,
		IsProductHolder: c.IsProductHolder,
		ParentID:        c.ParentID,
		Level:           c.Level,
		SortOrder:       c.SortOrder,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// ToCategoryView maps a category entity to its localized view
func ToCategoryView(c *catalog.Category, localizer Localizer, lang string) *CategoryView {
	return &CategoryView{
		ID:              c.ID,
		Name:            localizer.Resolve(c.Name, lang),
		ImageURL:        c.ImageURL,
		IsActive:        c.IsActive,
		IsProductHolder: c.IsProductHolder,
		ParentID:        c.ParentID,
		Level:           c.Level,
		SortOrder:       c.SortOrder,
		Children:        []CategoryView{},
	}
}

// ToCategoryTreeView maps a built tree node to its localized view
func ToCategoryTreeView(node *catalog.CategoryTreeNode, localizer Localizer, lang string) CategoryTreeView {
	children := make([]CategoryTreeView, 0, len(node.Children))
	for _, child := range node.Children {
		children = append(children, ToCategoryTreeView(child, localizer, lang))
	}
	return CategoryTreeView{
		ID:              node.ID,
		Name:            localizer.Resolve(node.Name, lang),
		ImageURL:        node.ImageURL,
		IsProductHolder: node.IsProductHolder,
		ParentID:        node.ParentID,
		Level:           node.Level,
		SortOrder:       node.SortOrder,
		Children:        children,
	}
}

// toStoreFilter converts a list filter to the repository filter shape
func (f CategoryListFilter) toStoreFilter() shared.Filter {
	filter := shared.Filter{
		Page:     f.Page,
		PageSize: f.PageSize,
		Search:   f.Search,
		Filters:  make(map[string]interface{}),
	}
	if f.IsActive != nil {
		filter.Filters["is_active"] = *f.IsActive
	}
	if f.ParentIsNull {
		filter.Filters["parent_id"] = nil
	} else if f.ParentID != nil {
		filter.Filters["parent_id"] = *f.ParentID
	}
	if f.Level != nil {
		filter.Filters["level"] = *f.Level
	}
	return filter
}
