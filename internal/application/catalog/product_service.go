package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/lib/pq"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/shared"
)

// ProductService implements product lifecycle operations. Products are
// always attached to a product-holder category and carry a unique slug.
type ProductService struct {
	products   catalog.ProductRepository
	categories catalog.CategoryRepository
	localizer  Localizer
}

func NewProductService(
	products catalog.ProductRepository,
	categories catalog.CategoryRepository,
	localizer Localizer,
) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
		localizer:  localizer,
	}
}

// Create creates a product under a product-holder category
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.products.ExistsBySlug(ctx, strings.ToLower(req.Slug))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A product with this slug already exists")
	}

	category, err := s.categories.FindByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Category not found")
		}
		return nil, err
	}

	product, err := catalog.NewProduct(req.Title, req.Slug, category)
	if err != nil {
		return nil, err
	}
	product.Description = req.Description
	product.MainImage = req.MainImage
	product.ImageList = pq.StringArray(req.ImageList)
	product.DetailPDF = req.DetailPDF
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// Update modifies a product. A slug change is checked for uniqueness and
// a category change re-validates the product-holder rule.
func (s *ProductService) Update(ctx context.Context, id int64, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
		}
		return nil, err
	}

	if req.Slug != nil {
		newSlug := strings.ToLower(*req.Slug)
		if newSlug != product.Slug {
			exists, err := s.products.ExistsBySlug(ctx, newSlug)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, shared.NewDomainError("ALREADY_EXISTS", "A product with this slug already exists")
			}
			product.Slug = newSlug
		}
	}
	if req.CategoryID != nil && *req.CategoryID != product.CategoryID {
		category, err := s.categories.FindByID(ctx, *req.CategoryID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("NOT_FOUND", "Category not found")
			}
			return nil, err
		}
		if !category.IsProductHolder {
			return nil, shared.NewDomainError("INVALID_STATE", "Category cannot hold products")
		}
		product.CategoryID = category.ID
	}

	if req.Title != nil {
		if req.Title.Az == "" {
			return nil, shared.NewDomainError("INVALID_INPUT", "Product title requires the base language (az)")
		}
		product.Title = *req.Title
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.MainImage != nil {
		product.MainImage = *req.MainImage
	}
	if req.ImageList != nil {
		product.ImageList = pq.StringArray(req.ImageList)
	}
	if req.DetailPDF != nil {
		product.DetailPDF = *req.DetailPDF
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.Touch()

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if _, err := s.products.FindByID(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Product not found")
		}
		return err
	}
	return s.products.Delete(ctx, id)
}

// GetOne returns a localized product with its category attached
func (s *ProductService) GetOne(ctx context.Context, id int64, lang string) (*ProductView, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
		}
		return nil, err
	}
	return s.attachCategory(ctx, product, lang)
}

// GetBySlug returns a localized product looked up by its slug
func (s *ProductService) GetBySlug(ctx context.Context, slug string, lang string) (*ProductView, error) {
	product, err := s.products.FindBySlug(ctx, strings.ToLower(slug))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
		}
		return nil, err
	}
	return s.attachCategory(ctx, product, lang)
}

// GetOneAdmin returns the raw product record
func (s *ProductService) GetOneAdmin(ctx context.Context, id int64) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
		}
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List returns a localized, paginated page of products
func (s *ProductService) List(ctx context.Context, filter ProductListFilter, lang string) (shared.Paginated[ProductView], error) {
	page, err := s.listPage(ctx, filter)
	if err != nil {
		return shared.Paginated[ProductView]{}, err
	}
	views := make([]ProductView, 0, len(page.Items))
	for i := range page.Items {
		views = append(views, *ToProductView(&page.Items[i], s.localizer, lang))
	}
	return shared.NewPaginated(views, page.Total, page.Page, page.PageSize), nil
}

// ListAdmin returns a raw, paginated page of products
func (s *ProductService) ListAdmin(ctx context.Context, filter ProductListFilter) (shared.Paginated[ProductResponse], error) {
	page, err := s.listPage(ctx, filter)
	if err != nil {
		return shared.Paginated[ProductResponse]{}, err
	}
	responses := make([]ProductResponse, 0, len(page.Items))
	for i := range page.Items {
		responses = append(responses, *ToProductResponse(&page.Items[i]))
	}
	return shared.NewPaginated(responses, page.Total, page.Page, page.PageSize), nil
}

func (s *ProductService) listPage(ctx context.Context, filter ProductListFilter) (shared.Paginated[catalog.Product], error) {
	storeFilter := filter.toStoreFilter()
	items, err := s.products.FindAll(ctx, storeFilter)
	if err != nil {
		return shared.Paginated[catalog.Product]{}, err
	}
	total, err := s.products.Count(ctx, storeFilter)
	if err != nil {
		return shared.Paginated[catalog.Product]{}, err
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

func (s *ProductService) attachCategory(ctx context.Context, product *catalog.Product, lang string) (*ProductView, error) {
	view := ToProductView(product, s.localizer, lang)
	category, err := s.categories.FindByID(ctx, product.CategoryID)
	if err == nil {
		view.Category = ToCategoryView(category, s.localizer, lang)
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	return view, nil
}
