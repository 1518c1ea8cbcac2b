package content

import (
	"context"

	"github.com/catalog/backend/internal/domain/shared"
)

// PromoRepository defines the persistence interface for promos
type PromoRepository interface {
	FindByID(ctx context.Context, id int64) (*Promo, error)

	// FindAll finds promos matching the filter. Supported filter keys:
	// is_active, product_id, current_at (time.Time, window containment),
	// start_from, start_to. Search matches title, subtitle, description.
	FindAll(ctx context.Context, filter shared.Filter) ([]Promo, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Create(ctx context.Context, promo *Promo) error
	Save(ctx context.Context, promo *Promo) error
	Delete(ctx context.Context, id int64) error
}

// TestimonialRepository defines the persistence interface for testimonials
type TestimonialRepository interface {
	FindByID(ctx context.Context, id int64) (*Testimonial, error)

	// FindAll finds testimonials matching the filter. Supported filter
	// keys: is_active. Search matches name and message.
	FindAll(ctx context.Context, filter shared.Filter) ([]Testimonial, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Create(ctx context.Context, testimonial *Testimonial) error
	Save(ctx context.Context, testimonial *Testimonial) error
	Delete(ctx context.Context, id int64) error
}

// FAQRepository defines the persistence interface for FAQ entries
type FAQRepository interface {
	FindByID(ctx context.Context, id int64) (*FAQ, error)

	// FindAll finds FAQ entries matching the filter. Supported filter
	// keys: is_active. Search matches question and answer.
	FindAll(ctx context.Context, filter shared.Filter) ([]FAQ, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Create(ctx context.Context, faq *FAQ) error
	Save(ctx context.Context, faq *FAQ) error
	Delete(ctx context.Context, id int64) error
}
