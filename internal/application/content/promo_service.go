package content

import (
	"context"
	"errors"
	"time"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/content"
	"github.com/catalog/backend/internal/domain/shared"
)

// PromoService implements time-boxed promo management. Promos are
// attached to a product; a promo without its own background image
// falls back to the product's main image.
type PromoService struct {
	promos    content.PromoRepository
	products  catalog.ProductRepository
	localizer Localizer
	now       func() time.Time
}

func NewPromoService(
	promos content.PromoRepository,
	products catalog.ProductRepository,
	localizer Localizer,
) *PromoService {
	return &PromoService{
		promos:    promos,
		products:  products,
		localizer: localizer,
		now:       time.Now,
	}
}

// Create creates a promo over a date window for an existing product
func (s *PromoService) Create(ctx context.Context, req CreatePromoRequest) (*PromoResponse, error) {
	product, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
		}
		return nil, err
	}

	promo, err := content.NewPromo(req.Title, product.ID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	promo.Subtitle = req.Subtitle
	promo.Description = req.Description
	promo.BackgroundImg = req.BackgroundImg
	if promo.BackgroundImg == "" {
		promo.BackgroundImg = product.MainImage
	}
	if req.IsActive != nil {
		promo.IsActive = *req.IsActive
	}

	if err := s.promos.Create(ctx, promo); err != nil {
		return nil, err
	}
	return ToPromoResponse(promo), nil
}

// Update modifies a promo. Date window changes are re-validated and a
// product change must point at an existing product.
func (s *PromoService) Update(ctx context.Context, id int64, req UpdatePromoRequest) (*PromoResponse, error) {
	promo, err := s.promos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Promo not found")
		}
		return nil, err
	}

	if req.ProductID != nil && *req.ProductID != promo.ProductID {
		product, err := s.products.FindByID(ctx, *req.ProductID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
			}
			return nil, err
		}
		promo.ProductID = product.ID
	}

	start, end := promo.StartDate, promo.EndDate
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.EndDate != nil {
		end = *req.EndDate
	}
	if end.Before(start) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Promo end date cannot precede the start date")
	}
	promo.StartDate = start
	promo.EndDate = end

	if req.Title != nil {
		if req.Title.Az == "" {
			return nil, shared.NewDomainError("INVALID_INPUT", "Promo title requires the base language (az)")
		}
		promo.Title = *req.Title
	}
	if req.Subtitle != nil {
		promo.Subtitle = *req.Subtitle
	}
	if req.Description != nil {
		promo.Description = *req.Description
	}
	if req.BackgroundImg != nil {
		promo.BackgroundImg = *req.BackgroundImg
	}
	if req.IsActive != nil {
		promo.IsActive = *req.IsActive
	}
	promo.Touch()

	if err := s.promos.Save(ctx, promo); err != nil {
		return nil, err
	}
	return ToPromoResponse(promo), nil
}

// Delete removes a promo
func (s *PromoService) Delete(ctx context.Context, id int64) error {
	if _, err := s.promos.FindByID(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Promo not found")
		}
		return err
	}
	return s.promos.Delete(ctx, id)
}

// GetOne returns a localized promo
func (s *PromoService) GetOne(ctx context.Context, id int64, lang string) (*PromoView, error) {
	promo, err := s.promos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Promo not found")
		}
		return nil, err
	}
	return s.toView(ctx, promo, lang), nil
}

// GetOneAdmin returns the raw promo record
func (s *PromoService) GetOneAdmin(ctx context.Context, id int64) (*PromoResponse, error) {
	promo, err := s.promos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Promo not found")
		}
		return nil, err
	}
	return ToPromoResponse(promo), nil
}

// List returns localized promos. With CurrentOnly the result is limited
// to active promos whose window covers the current instant.
func (s *PromoService) List(ctx context.Context, filter PromoListFilter, lang string) (shared.Paginated[PromoView], error) {
	page, err := s.listPage(ctx, filter)
	if err != nil {
		return shared.Paginated[PromoView]{}, err
	}
	views := make([]PromoView, 0, len(page.Items))
	for i := range page.Items {
		views = append(views, *s.toView(ctx, &page.Items[i], lang))
	}
	return shared.NewPaginated(views, page.Total, page.Page, page.PageSize), nil
}

// ListAdmin returns raw promos including inactive and expired ones
func (s *PromoService) ListAdmin(ctx context.Context, filter PromoListFilter) (shared.Paginated[PromoResponse], error) {
	page, err := s.listPage(ctx, filter)
	if err != nil {
		return shared.Paginated[PromoResponse]{}, err
	}
	responses := make([]PromoResponse, 0, len(page.Items))
	for i := range page.Items {
		responses = append(responses, *ToPromoResponse(&page.Items[i]))
	}
	return shared.NewPaginated(responses, page.Total, page.Page, page.PageSize), nil
}

func (s *PromoService) listPage(ctx context.Context, filter PromoListFilter) (shared.Paginated[content.Promo], error) {
	storeFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.IsActive != nil {
		storeFilter.Filters["is_active"] = *filter.IsActive
	}
	if filter.ProductID != nil {
		storeFilter.Filters["product_id"] = *filter.ProductID
	}
	if filter.CurrentOnly {
		storeFilter.Filters["is_active"] = true
		storeFilter.Filters["current_at"] = s.now()
	}

	items, err := s.promos.FindAll(ctx, storeFilter)
	if err != nil {
		return shared.Paginated[content.Promo]{}, err
	}
	total, err := s.promos.Count(ctx, storeFilter)
	if err != nil {
		return shared.Paginated[content.Promo]{}, err
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

func (s *PromoService) toView(ctx context.Context, promo *content.Promo, lang string) *PromoView {
	view := ToPromoView(promo, s.localizer, lang)
	if product, err := s.products.FindByID(ctx, promo.ProductID); err == nil {
		view.ProductSlug = product.Slug
		if view.BackgroundImg == "" {
			view.BackgroundImg = product.MainImage
		}
	}
	return view
}
