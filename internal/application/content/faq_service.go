package content

import (
	"context"
	"errors"

	"github.com/catalog/backend/internal/domain/content"
	"github.com/catalog/backend/internal/domain/shared"
)

// FAQService implements FAQ management
type FAQService struct {
	faqs      content.FAQRepository
	localizer Localizer
}

func NewFAQService(faqs content.FAQRepository, localizer Localizer) *FAQService {
	return &FAQService{faqs: faqs, localizer: localizer}
}

// Create creates a FAQ entry
func (s *FAQService) Create(ctx context.Context, req CreateFAQRequest) (*FAQResponse, error) {
	faq, err := content.NewFAQ(req.Question, req.Answer)
	if err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		faq.IsActive = *req.IsActive
	}

	if err := s.faqs.Create(ctx, faq); err != nil {
		return nil, err
	}
	return ToFAQResponse(faq), nil
}

// Update modifies a FAQ entry
func (s *FAQService) Update(ctx context.Context, id int64, req UpdateFAQRequest) (*FAQResponse, error) {
	faq, err := s.faqs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "FAQ entry not found")
		}
		return nil, err
	}

	if req.Question != nil {
		if req.Question.Az == "" {
			return nil, shared.NewDomainError("INVALID_INPUT", "FAQ question requires the base language (az)")
		}
		faq.Question = *req.Question
	}
	if req.Answer != nil {
		if req.Answer.Az == "" {
			return nil, shared.NewDomainError("INVALID_INPUT", "FAQ answer requires the base language (az)")
		}
		faq.Answer = *req.Answer
	}
	if req.IsActive != nil {
		faq.IsActive = *req.IsActive
	}
	faq.Touch()

	if err := s.faqs.Save(ctx, faq); err != nil {
		return nil, err
	}
	return ToFAQResponse(faq), nil
}

// Delete removes a FAQ entry
func (s *FAQService) Delete(ctx context.Context, id int64) error {
	if _, err := s.faqs.FindByID(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "FAQ entry not found")
		}
		return err
	}
	return s.faqs.Delete(ctx, id)
}

// GetOne returns a localized FAQ entry
func (s *FAQService) GetOne(ctx context.Context, id int64, lang string) (*FAQView, error) {
	faq, err := s.faqs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "FAQ entry not found")
		}
		return nil, err
	}
	return ToFAQView(faq, s.localizer, lang), nil
}

// GetOneAdmin returns the raw FAQ record
func (s *FAQService) GetOneAdmin(ctx context.Context, id int64) (*FAQResponse, error) {
	faq, err := s.faqs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "FAQ entry not found")
		}
		return nil, err
	}
	return ToFAQResponse(faq), nil
}

// List returns localized FAQ entries
func (s *FAQService) List(ctx context.Context, filter ListFilter, lang string) (shared.Paginated[FAQView], error) {
	page, err := s.listPage(ctx, filter)
	if err != nil {
		return shared.Paginated[FAQView]{}, err
	}
	views := make([]FAQView, 0, len(page.Items))
	for i := range page.Items {
		views = append(views, *ToFAQView(&page.Items[i], s.localizer, lang))
	}
	return shared.NewPaginated(views, page.Total, page.Page, page.PageSize), nil
}

// ListAdmin returns raw FAQ entries
func (s *FAQService) ListAdmin(ctx context.Context, filter ListFilter) (shared.Paginated[FAQResponse], error) {
	page, err := s.listPage(ctx, filter)
	if err != nil {
		return shared.Paginated[FAQResponse]{}, err
	}
	responses := make([]FAQResponse, 0, len(page.Items))
	for i := range page.Items {
		responses = append(responses, *ToFAQResponse(&page.Items[i]))
	}
	return shared.NewPaginated(responses, page.Total, page.Page, page.PageSize), nil
}

func (s *FAQService) listPage(ctx context.Context, filter ListFilter) (shared.Paginated[content.FAQ], error) {
	storeFilter := filter.toStoreFilter()
	items, err := s.faqs.FindAll(ctx, storeFilter)
	if err != nil {
		return shared.Paginated[content.FAQ]{}, err
	}
	total, err := s.faqs.Count(ctx, storeFilter)
	if err != nil {
		return shared.Paginated[content.FAQ]{}, err
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
