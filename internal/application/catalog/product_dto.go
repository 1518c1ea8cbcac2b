package catalog

import (
	"time"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/shared"
)

// CreateProductRequest carries input for creating a product
type CreateProductRequest struct {
	Title       shared.LocalizedText
	Slug        string
	Description shared.LocalizedText
	MainImage   string
	ImageList   []string
	DetailPDF   string
	CategoryID  int64
	IsActive    *bool
}

// UpdateProductRequest carries input for updating a product. Nil
// pointer fields are left unchanged.
type UpdateProductRequest struct {
	Title       *shared.LocalizedText
	Slug        *string
	Description *shared.LocalizedText
	MainImage   *string
	ImageList   []string
	DetailPDF   *string
	CategoryID  *int64
	IsActive    *bool
}

// ProductListFilter carries list filtering and pagination options
type ProductListFilter struct {
	IsActive   *bool
	CategoryID *int64
	Search     string
	Page       int
	PageSize   int
}

// ProductResponse is the raw (administrative) product shape
type ProductResponse struct {
	ID          int64                `json:"id"`
	Title       shared.LocalizedText `json:"title"`
	Slug        string               `json:"slug"`
	Description shared.LocalizedText `json:"description"`
	MainImage   string               `json:"mainImage,omitempty"`
	ImageList   []string             `json:"imageList"`
	DetailPDF   string               `json:"detailPdf,omitempty"`
	CategoryID  int64                `json:"categoryId"`
	IsActive    bool                 `json:"isActive"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// ProductView is the localized client-facing product shape
type ProductView struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Description string        `json:"description"`
	MainImage   string        `json:"mainImage,omitempty"`
	ImageList   []string      `json:"imageList"`
	DetailPDF   string        `json:"detailPdf,omitempty"`
	CategoryID  int64         `json:"categoryId"`
	IsActive    bool          `json:"isActive"`
	Category    *CategoryView `json:"category,omitempty"`
}

// ToProductResponse maps a product entity to its raw response shape
func ToProductResponse(p *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Description: p.Description,
		MainImage:   p.MainImage,
		ImageList:   []string(p.ImageList),
		DetailPDF:   p.DetailPDF,
		CategoryID:  p.CategoryID,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductView maps a product entity to its localized view
func ToProductView(p *catalog.Product, localizer Localizer, lang string) *ProductView {
	return &ProductView{
		ID:          p.ID,
		Title:       localizer.Resolve(p.Title, lang),
		Slug:        p.Slug,
		Description: localizer.Resolve(p.Description, lang),
		MainImage:   p.MainImage,
		ImageList:   []string(p.ImageList),
		DetailPDF:   p.DetailPDF,
		CategoryID:  p.CategoryID,
		IsActive:    p.IsActive,
	}
}

func (f ProductListFilter) toStoreFilter() shared.Filter {
	filter := shared.Filter{
		Page:     f.Page,
		PageSize: f.PageSize,
		Search:   f.Search,
		Filters:  make(map[string]interface{}),
	}
	if f.IsActive != nil {
		filter.Filters["is_active"] = *f.IsActive
	}
	if f.CategoryID != nil {
		filter.Filters["category_id"] = *f.CategoryID
	}
	return filter
}
