package content

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/content"
	"github.com/catalog/backend/internal/domain/shared"
)

// MockPromoRepository is a mock implementation of PromoRepository
type MockPromoRepository struct {
	mock.Mock
}

func (m *MockPromoRepository) FindByID(ctx context.Context, id int64) (*content.Promo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Promo), args.Error(1)
}

func (m *MockPromoRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.Promo, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]content.Promo), args.Error(1)
}

func (m *MockPromoRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPromoRepository) Create(ctx context.Context, promo *content.Promo) error {
	args := m.Called(ctx, promo)
	return args.Error(0)
}

func (m *MockPromoRepository) Save(ctx context.Context, promo *content.Promo) error {
	args := m.Called(ctx, promo)
	return args.Error(0)
}

func (m *MockPromoRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of the product repository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

type fallbackLocalizer struct{}

func (fallbackLocalizer) Resolve(text shared.LocalizedText, lang string) string {
	return text.Get(lang)
}

func testPromoProduct(id int64, mainImage string) *catalog.Product {
	p := &catalog.Product{
		Title:     shared.LocalizedText{Az: "Məhsul"},
		Slug:      "mehsul",
		MainImage: mainImage,
		IsActive:  true,
	}
	p.ID = id
	return p
}

func TestPromoService_Create_BackgroundFallsBackToProductImage(t *testing.T) {
	mockPromos := new(MockPromoRepository)
	mockProducts := new(MockProductRepository)
	service := NewPromoService(mockPromos, mockProducts, fallbackLocalizer{})
	ctx := context.Background()

	product := testPromoProduct(9, "/uploads/watch.png")
	mockProducts.On("FindByID", ctx, int64(9)).Return(product, nil)
	mockPromos.On("Create", ctx, mock.AnythingOfType("*content.Promo")).Return(nil)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	result, err := service.Create(ctx, CreatePromoRequest{
		Title:     shared.LocalizedText{Az: "Yay endirimi"},
		ProductID: 9,
		StartDate: start,
		EndDate:   start.AddDate(0, 1, 0),
	})

	assert.NoError(t, err)
	assert.Equal(t, "/uploads/watch.png", result.BackgroundImg)
	mockPromos.AssertExpectations(t)
	mockProducts.AssertExpectations(t)
}

func TestPromoService_Create_ProductNotFound(t *testing.T) {
	mockPromos := new(MockPromoRepository)
	mockProducts := new(MockProductRepository)
	service := NewPromoService(mockPromos, mockProducts, fallbackLocalizer{})
	ctx := context.Background()

	mockProducts.On("FindByID", ctx, int64(9)).Return(nil, shared.ErrNotFound)

	result, err := service.Create(ctx, CreatePromoRequest{
		Title:     shared.LocalizedText{Az: "Yay endirimi"},
		ProductID: 9,
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(0, 1, 0),
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	mockPromos.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPromoService_Update_RejectsInvertedWindow(t *testing.T) {
	mockPromos := new(MockPromoRepository)
	mockProducts := new(MockProductRepository)
	service := NewPromoService(mockPromos, mockProducts, fallbackLocalizer{})
	ctx := context.Background()

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	promo, _ := content.NewPromo(shared.LocalizedText{Az: "Yay endirimi"}, 9, start, start.AddDate(0, 1, 0))
	promo.ID = 3
	mockPromos.On("FindByID", ctx, int64(3)).Return(promo, nil)

	badEnd := start.AddDate(0, 0, -1)
	result, err := service.Update(ctx, 3, UpdatePromoRequest{EndDate: &badEnd})

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	mockPromos.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPromoService_List_CurrentOnlyFilters(t *testing.T) {
	mockPromos := new(MockPromoRepository)
	mockProducts := new(MockProductRepository)
	service := NewPromoService(mockPromos, mockProducts, fallbackLocalizer{})
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }
	ctx := context.Background()

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	promo, _ := content.NewPromo(shared.LocalizedText{Az: "Yay endirimi"}, 9, start, start.AddDate(0, 1, 0))
	promo.ID = 3

	matchCurrent := mock.MatchedBy(func(f shared.Filter) bool {
		return f.Filters["is_active"] == true && f.Filters["current_at"] == now
	})
	mockPromos.On("FindAll", ctx, matchCurrent).Return([]content.Promo{*promo}, nil)
	mockPromos.On("Count", ctx, matchCurrent).Return(int64(1), nil)
	mockProducts.On("FindByID", ctx, int64(9)).Return(testPromoProduct(9, ""), nil)

	page, err := service.List(ctx, PromoListFilter{CurrentOnly: true}, "az")

	assert.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, "Yay endirimi", page.Items[0].Title)
	assert.Equal(t, "mehsul", page.Items[0].ProductSlug)
	mockPromos.AssertExpectations(t)
}
