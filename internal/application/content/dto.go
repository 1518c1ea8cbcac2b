package content

import (
	"time"

	"github.com/catalog/backend/internal/domain/content"
	"github.com/catalog/backend/internal/domain/shared"
)

// Localizer resolves a multilingual text record to a single display
// string for a requested language, falling back to the base language.
type Localizer interface {
	Resolve(text shared.LocalizedText, lang string) string
}

// CreatePromoRequest carries input for creating a promo
type CreatePromoRequest struct {
	Title         shared.LocalizedText
	Subtitle      shared.LocalizedText
	Description   shared.LocalizedText
	StartDate     time.Time
	EndDate       time.Time
	BackgroundImg string
	ProductID     int64
	IsActive      *bool
}

// UpdatePromoRequest carries input for updating a promo. Nil pointer
// fields are left unchanged.
type UpdatePromoRequest struct {
	Title         *shared.LocalizedText
	Subtitle      *shared.LocalizedText
	Description   *shared.LocalizedText
	StartDate     *time.Time
	EndDate       *time.Time
	BackgroundImg *string
	ProductID     *int64
	IsActive      *bool
}

// PromoListFilter carries list filtering and pagination options
type PromoListFilter struct {
	IsActive    *bool
	ProductID   *int64
	CurrentOnly bool
	Search      string
	Page        int
	PageSize    int
}

// PromoResponse is the raw (administrative) promo shape
type PromoResponse struct {
	ID            int64                `json:"id"`
	Title         shared.LocalizedText `json:"title"`
	Subtitle      shared.LocalizedText `json:"subtitle"`
	Description   shared.LocalizedText `json:"description"`
	StartDate     time.Time            `json:"startDate"`
	EndDate       time.Time            `json:"endDate"`
	BackgroundImg string               `json:"backgroundImg,omitempty"`
	ProductID     int64                `json:"productId"`
	IsActive      bool                 `json:"isActive"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// PromoView is the localized client-facing promo shape
type PromoView struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Subtitle      string    `json:"subtitle"`
	Description   string    `json:"description"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	BackgroundImg string    `json:"backgroundImg,omitempty"`
	ProductID     int64     `json:"productId"`
	ProductSlug   string    `json:"productSlug,omitempty"`
}

// CreateTestimonialRequest carries input for creating a testimonial
type CreateTestimonialRequest struct {
	Name     shared.LocalizedText
	Message  shared.LocalizedText
	ImageURL string
	IsActive *bool
}

// UpdateTestimonialRequest carries input for updating a testimonial
type UpdateTestimonialRequest struct {
	Name     *shared.LocalizedText
	Message  *shared.LocalizedText
	ImageURL *string
	IsActive *bool
}

// TestimonialResponse is the raw testimonial shape
type TestimonialResponse struct {
	ID        int64                `json:"id"`
	Name      shared.LocalizedText `json:"name"`
	Message   shared.LocalizedText `json:"message"`
	ImageURL  string               `json:"imageUrl,omitempty"`
	IsActive  bool                 `json:"isActive"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// TestimonialView is the localized testimonial shape
type TestimonialView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Message  string `json:"message"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// CreateFAQRequest carries input for creating a FAQ entry
type CreateFAQRequest struct {
	Question shared.LocalizedText
	Answer   shared.LocalizedText
	IsActive *bool
}

// UpdateFAQRequest carries input for updating a FAQ entry
type UpdateFAQRequest struct {
	Question *shared.LocalizedText
	Answer   *shared.LocalizedText
	IsActive *bool
}

// FAQResponse is the raw FAQ shape
type FAQResponse struct {
	ID        int64                `json:"id"`
	Question  shared.LocalizedText `json:"question"`
	Answer    shared.LocalizedText `json:"answer"`
	IsActive  bool                 `json:"isActive"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// FAQView is the localized FAQ shape
type FAQView struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ListFilter carries list filtering for testimonials and FAQ entries
type ListFilter struct {
	IsActive *bool
	Search   string
	Page     int
	PageSize int
}

func ToPromoResponse(p *content.Promo) *PromoResponse {
	return &PromoResponse{
		ID:            p.ID,
		Title:         p.Title,
		Subtitle:      p.Subtitle,
		Description:   p.Description,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		BackgroundImg: p.BackgroundImg,
		ProductID:     p.ProductID,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func ToPromoView(p *content.Promo, localizer Localizer, lang string) *PromoView {
	return &PromoView{
		ID:            p.ID,
		Title:         localizer.Resolve(p.Title, lang),
		Subtitle:      localizer.Resolve(p.Subtitle, lang),
		Description:   localizer.Resolve(p.Description, lang),
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		BackgroundImg: p.BackgroundImg,
		ProductID:     p.ProductID,
	}
}

func ToTestimonialResponse(t *content.Testimonial) *TestimonialResponse {
	return &TestimonialResponse{
		ID:        t.ID,
		Name:      t.Name,
		Message:   t.Message,
		ImageURL:  t.ImageURL,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func ToTestimonialView(t *content.Testimonial, localizer Localizer, lang string) *TestimonialView {
	return &TestimonialView{
		ID:       t.ID,
		Name:     localizer.Resolve(t.Name, lang),
		Message:  localizer.Resolve(t.Message, lang),
		ImageURL: t.ImageURL,
	}
}

func ToFAQResponse(f *content.FAQ) *FAQResponse {
	return &FAQResponse{
		ID:        f.ID,
		Question:  f.Question,
		Answer:    f.Answer,
		IsActive:  f.IsActive,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func ToFAQView(f *content.FAQ, localizer Localizer, lang string) *FAQView {
	return &FAQView{
		ID:       f.ID,
		Question: localizer.Resolve(f.Question, lang),
		Answer:   localizer.Resolve(f.Answer, lang),
	}
}

func (f ListFilter) toStoreFilter() shared.Filter {
	filter := shared.Filter{
		Page:     f.Page,
		PageSize: f.PageSize,
		Search:   f.Search,
		Filters:  make(map[string]interface{}),
	}
	if f.IsActive != nil {
		filter.Filters["is_active"] = *f.IsActive
	}
	return filter
}
