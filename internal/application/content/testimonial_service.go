package content

import (
	"context"
	"errors"

	"github.com/catalog/backend/internal/domain/content"
	"github.com/catalog/backend/internal/domain/shared"
)

// TestimonialService implements testimonial management
type TestimonialService struct {
	testimonials content.TestimonialRepository
	localizer    Localizer
}

func NewTestimonialService(testimonials content.TestimonialRepository, localizer Localizer) *TestimonialService {
	return &TestimonialService{testimonials: testimonials, localizer: localizer}
}

// Create creates a testimonial
func (s *TestimonialService) Create(ctx context.Context, req CreateTestimonialRequest) (*TestimonialResponse, error) {
	testimonial, err := content.NewTestimonial(req.Name, req.Message)
	if err != nil {
		return nil, err
	}
	testimonial.ImageURL = req.ImageURL
	if req.IsActive != nil {
		testimonial.IsActive = *req.IsActive
	}

	if err := s.testimonials.Create(ctx, testimonial); err != nil {
		return nil, err
	}
	return ToTestimonialResponse(testimonial), nil
}

// Update modifies a testimonial
func (s *TestimonialService) Update(ctx context.Context, id int64, req UpdateTestimonialRequest) (*TestimonialResponse, error) {
	testimonial, err := s.testimonials.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Testimonial not found")
		}
		return nil, err
	}

	if req.Name != nil {
		if req.Name.Az == "" {
			return nil, shared.NewDomainError("INVALID_INPUT", "Testimonial name requires the base language (az)")
		}
		testimonial.Name = *req.Name
	}
	if req.Message != nil {
		if req.Message.Az == "" {
			return nil, shared.NewDomainError("INVALID_INPUT", "Testimonial message requires the base language (az)")
		}
		testimonial.Message = *req.Message
	}
	if req.ImageURL != nil {
		testimonial.ImageURL = *req.ImageURL
	}
	if req.IsActive != nil {
		testimonial.IsActive = *req.IsActive
	}
	testimonial.Touch()

	if err := s.testimonials.Save(ctx, testimonial); err != nil {
		return nil, err
	}
	return ToTestimonialResponse(testimonial), nil
}

// Delete removes a testimonial
func (s *TestimonialService) Delete(ctx context.Context, id int64) error {
	if _, err := s.testimonials.FindByID(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Testimonial not found")
		}
		return err
	}
	return s.testimonials.Delete(ctx, id)
}

// GetOne returns a localized testimonial
func (s *TestimonialService) GetOne(ctx context.Context, id int64, lang string) (*TestimonialView, error) {
	testimonial, err := s.testimonials.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Testimonial not found")
		}
		return nil, err
	}
	return ToTestimonialView(testimonial, s.localizer, lang), nil
}

// GetOneAdmin returns the raw testimonial record
func (s *TestimonialService) GetOneAdmin(ctx context.Context, id int64) (*TestimonialResponse, error) {
	testimonial, err := s.testimonials.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Testimonial not found")
		}
		return nil, err
	}
	return ToTestimonialResponse(testimonial), nil
}

// List returns localized testimonials
func (s *TestimonialService) List(ctx context.Context, filter ListFilter, lang string) (shared.Paginated[TestimonialView], error) {
	page, err := s.listPage(ctx, filter)
	if err != nil {
		return shared.Paginated[TestimonialView]{}, err
	}
	views := make([]TestimonialView, 0, len(page.Items))
	for i := range page.Items {
		views = append(views, *ToTestimonialView(&page.Items[i], s.localizer, lang))
	}
	return shared.NewPaginated(views, page.Total, page.Page, page.PageSize), nil
}

// ListAdmin returns raw testimonials
func (s *TestimonialService) ListAdmin(ctx context.Context, filter ListFilter) (shared.Paginated[TestimonialResponse], error) {
	page, err := s.listPage(ctx, filter)
	if err != nil {
		return shared.Paginated[TestimonialResponse]{}, err
	}
	responses := make([]TestimonialResponse, 0, len(page.Items))
	for i := range page.Items {
		responses = append(responses, *ToTestimonialResponse(&page.Items[i]))
	}
	return shared.NewPaginated(responses, page.Total, page.Page, page.PageSize), nil
}

func (s *TestimonialService) listPage(ctx context.Context, filter ListFilter) (shared.Paginated[content.Testimonial], error) {
	storeFilter := filter.toStoreFilter()
	items, err := s.testimonials.FindAll(ctx, storeFilter)
	if err != nil {
		return shared.Paginated[content.Testimonial]{}, err
	}
	total, err := s.testimonials.Count(ctx, storeFilter)
	if err != nil {
		return shared.Paginated[content.Testimonial]{}, err
	}
	page, pageSize := storeFilter.Page, storeFilter.PageSize
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = shared.DefaultFilter().PageSize
	}
	return shared.NewPaginated(items, total, page, pageSize), nil
}
