package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/shared"
)

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id int64) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindChildren(ctx context.Context, parentID int64) ([]catalog.Category, error) {
	args := m.Called(ctx, parentID)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) CountByParent(ctx context.Context, parentID int64) (int64, error) {
	args := m.Called(ctx, parentID)
	return args.Get(0).(int64), args.Error(1)
}

// MockProductRepository is a mock implementation of ProductRepository
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

func newCategoryService(categories *MockCategoryRepository, products *MockProductRepository) *CategoryService {
	return NewCategoryService(categories, products, NewNoOpTransactionScope(categories), fallbackLocalizer{})
}

func testCategory(id int64, parentID *int64, level int) *catalog.Category {
	c := &catalog.Category{
		Name:     shared.LocalizedText{Az: "Kateqoriya", En: "Category"},
		IsActive: true,
		ParentID: parentID,
		Level:    level,
	}
	c.ID = id
	return c
}

func parentRef(id int64) *int64 {
	return &id
}

func TestCategoryService_Create_Root(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := newCategoryService(mockRepo, new(MockProductRepository))
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.AnythingOfType("*catalog.Category")).Return(nil)

	result, err := service.Create(ctx, CreateCategoryRequest{
		Name: shared.LocalizedText{Az: "Elektronika", En: "Electronics"},
	})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Nil(t, result.ParentID)
	assert.Equal(t, 1, result.Level)
	assert.True(t, result.IsActive)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_Create_ChildLevelFollowsParent(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := newCategoryService(mockRepo, new(MockProductRepository))
	ctx := context.Background()

	parent := testCategory(1, nil, 1)
	mockRepo.On("FindByID", ctx, int64(1)).Return(parent, nil)
	mockRepo.On("Create", ctx, mock.AnythingOfType("*catalog.Category")).Return(nil)

	result, err := service.Create(ctx, CreateCategoryRequest{
		Name:     shared.LocalizedText{Az: "Telefonlar"},
		ParentID: parentRef(1),
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Level)
	assert.Equal(t, parentRef(1), result.ParentID)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_Create_ParentNotFound(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := newCategoryService(mockRepo, new(MockProductRepository))
	ctx := context.Background()

	mockRepo.On("FindByID", ctx, int64(99)).Return(nil, shared.ErrNotFound)

	result, err := service.Create(ctx, CreateCategoryRequest{
		Name:     shared.LocalizedText{Az: "Telefonlar"},
		ParentID: parentRef(99),
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_Create_InactiveParent(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := newCategoryService(mockRepo, new(MockProductRepository))
	ctx := context.Background()

	parent := testCategory(1, nil, 1)
	parent.IsActive = false
	mockRepo.On("FindByID", ctx, int64(1)).Return(parent, nil)

	result, err := service.Create(ctx, CreateCategoryRequest{
		Name:     shared.LocalizedText{Az: "Telefonlar"},
		ParentID: parentRef(1),
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_Create_MaxDepthExceeded(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := newCategoryService(mockRepo, new(MockProductRepository))
	ctx := context.Background()

	parent := testCategory(5, parentRef(4), catalog.MaxCategoryDepth)
	mockRepo.On("FindByID", ctx, int64(5)).Return(parent, nil)

	result, err := service.Create(ctx, CreateCategoryRequest{
		Name:     shared.LocalizedText{Az: "Telefonlar"},
		ParentID: parentRef(5),
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_Update_FieldsOnly(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := newCategoryService(mockRepo, new(MockProductRepository))
	ctx := context.Background()

	category := testCategory(3, parentRef(1), 2)
	mockRepo.On("FindByID", ctx, int64(3)).Return(category, nil)
	mockRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Category")).Return(nil).Once()

	newName := shared.LocalizedText{Az: "Aksesuarlar", En: "Accessories"}
	result, err := service.Update(ctx, 3, UpdateCategoryRequest{Name: &newName})

	assert.NoError(t, err)
	assert.Equal(t, newName, result.Name)
	assert.Equal(t, 2, result.Level)
	assert.Equal(t, parentRef(1), result.ParentID)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "FindChildren", mock.Anything, mock.Anything)
}

func TestCategoryService_Update_SameParentSkipsPropagation(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := newCategoryService(mockRepo, new(MockProductRepository))
	ctx := context.Background()

	category := testCategory(3, parentRef(1), 2)
	mockRepo.On("FindByID", ctx, int64(3)).Return(category, nil)
	mockRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Category")).Return(nil).Once()

	result, err := service.Update(ctx, 3, UpdateCategoryRequest{
		Parent: NullableParent{Set: true, ID: parentRef(1)},
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Level)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "FindChildren", mock.Anything, mock.Anything)
}

func TestCategoryService_Update_SelfParent(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := newCategoryService(mockRepo, new(MockProductRepository))
	ctx := context.Background()

	category := testCategory(3, parentRef(1), 2)
	mockRepo.On("FindByID", ctx, int64(3)).Return(category, nil)

	result, err := service.Update(ctx, 3, UpdateCategoryRequest{
		Parent: NullableParent{Set: true, ID: parentRef(3)},
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCategoryService_Update_CycleRejected(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := newCategoryService(mockRepo, new(MockProductRepository))
	ctx := context.Background()

	root := testCategory(1, nil, 1)
	child := testCategory(2, parentRef(1), 2)
	grandchild := testCategory(3, parentRef(2), 3)

	mockRepo.On("FindByID", ctx, int64(1)).Return(root, nil)
	mockRepo.On("FindByID", ctx, int64(2)).Return(child, nil)
	mockRepo.On("FindByID", ctx, int64(3)).Return(grandchild, nil)

	// moving the root under its own grandchild must fail
	result, err := service.Update(ctx, 1, UpdateCategoryRequest{
		Parent: NullableParent{Set: true, ID: parentRef(3)},
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCategoryService_Update_DepthExceededForSubtree(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := newCategoryService(mockRepo, new(MockProductRepository))
	ctx := context.Background()

	// ancestry chain at levels 1..4 and a target that has one child
	l1 := testCategory(11, nil, 1)
	l2 := testCategory(12, parentRef(11), 2)
	l3 := testCategory(13, parentRef(12), 3)
	l4 := testCategory(14, parentRef(13), 4)
	target := testCategory(20, nil, 1)
	targetChild := testCategory(21, parentRef(20), 2)

	mockRepo.On("FindByID", ctx, int64(11)).Return(l1, nil)
	mockRepo.On("FindByID", ctx, int64(12)).Return(l2, nil)
	mockRepo.On("FindByID", ctx, int64(13)).Return(l3, nil)
	mockRepo.On("FindByID", ctx, int64(14)).Return(l4, nil)
	mockRepo.On("FindByID", ctx, int64(20)).Return(target, nil)
	mockRepo.On("FindChildren", ctx, int64(20)).Return([]catalog.Category{*targetChild}, nil)
	mockRepo.On("FindChildren", ctx, int64(21)).Return([]catalog.Category{}, nil)

	// target would land at level 5 but its child would need level 6
	result, err := service.Update(ctx, 20, UpdateCategoryRequest{
		Parent: NullableParent{Set: true, ID: parentRef(14)},
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCategoryService_Update_ReparentToRootPropagatesLevels(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := newCategoryService(mockRepo, new(MockProductRepository))
	ctx := context.Background()

	// 1 -> 2 -> {3, 4}, 3 -> 5; category 2 becomes a root
	target := testCategory(2, parentRef(1), 2)
	child3 := testCategory(3, parentRef(2), 3)
	child4 := testCategory(4, parentRef(2), 3)
	grandchild5 := testCategory(5, parentRef(3), 4)

	mockRepo.On("FindByID", ctx, int64(2)).Return(target, nil)
	mockRepo.On("FindChildren", ctx, int64(2)).Return([]catalog.Category{*child3, *child4}, nil)
	mockRepo.On("FindChildren", ctx, int64(3)).Return([]catalog.Category{*grandchild5}, nil)
	mockRepo.On("FindChildren", ctx, int64(4)).Return([]catalog.Category{}, nil)
	mockRepo.On("FindChildren", ctx, int64(5)).Return([]catalog.Category{}, nil)

	savedLevels := make(map[int64]int)
	mockRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Category")).
		Run(func(args mock.Arguments) {
			saved := args.Get(1).(*catalog.Category)
			savedLevels[saved.ID] = saved.Level
		}).
		Return(nil)

	result, err := service.Update(ctx, 2, UpdateCategoryRequest{
		Parent: NullableParent{Set: true, ID: nil},
	})

	assert.NoError(t, err)
	assert.Nil(t, result.ParentID)
	assert.Equal(t, 1, result.Level)
	assert.Equal(t, map[int64]int{2: 1, 3: 2, 4: 2, 5: 3}, savedLevels)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := newCategoryService(mockRepo, new(MockProductRepository))
	ctx := context.Background()

	mockRepo.On("FindByID", ctx, int64(42)).Return(nil, shared.ErrNotFound)

	result, err := service.Update(ctx, 42, UpdateCategoryRequest{})

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestCategoryService_Delete_Success(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	mockProducts := new(MockProductRepository)
	service := newCategoryService(mockRepo, mockProducts)
	ctx := context.Background()

	category := testCategory(7, nil, 1)
	mockRepo.On("FindByID", ctx, int64(7)).Return(category, nil)
	mockRepo.On("CountByParent", ctx, int64(7)).Return(int64(0), nil)
	mockProducts.On("CountByCategory", ctx, int64(7)).Return(int64(0), nil)
	mockRepo.On("Delete", ctx, int64(7)).Return(nil)

	err := service.Delete(ctx, 7)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockProducts.AssertExpectations(t)
}

func TestCategoryService_Delete_WithSubcategories(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := newCategoryService(mockRepo, new(MockProductRepository))
	ctx := context.Background()

	category := testCategory(7, nil, 1)
	mockRepo.On("FindByID", ctx, int64(7)).Return(category, nil)
	mockRepo.On("CountByParent", ctx, int64(7)).Return(int64(2), nil)

	err := service.Delete(ctx, 7)

	assert.Error(t, err)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCategoryService_Delete_WithProducts(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	mockProducts := new(MockProductRepository)
	service := newCategoryService(mockRepo, mockProducts)
	ctx := context.Background()

	category := testCategory(7, nil, 1)
	category.IsProductHolder = true
	mockRepo.On("FindByID", ctx, int64(7)).Return(category, nil)
	mockRepo.On("CountByParent", ctx, int64(7)).Return(int64(0), nil)
	mockProducts.On("CountByCategory", ctx, int64(7)).Return(int64(3), nil)

	err := service.Delete(ctx, 7)

	assert.Error(t, err)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCategoryService_GetOne_LocalizesAndAttachesRelations(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := newCategoryService(mockRepo, new(MockProductRepository))
	ctx := context.Background()

	category := testCategory(2, parentRef(1), 2)
	category.Name = shared.LocalizedText{Az: "Telefonlar", En: "Phones"}
	parent := testCategory(1, nil, 1)
	parent.Name = shared.LocalizedText{Az: "Elektronika", En: "Electronics"}
	child := testCategory(3, parentRef(2), 3)
	child.Name = shared.LocalizedText{Az: "Aksesuarlar"}

	mockRepo.On("FindByID", ctx, int64(2)).Return(category, nil)
	mockRepo.On("FindByID", ctx, int64(1)).Return(parent, nil)
	mockRepo.On("FindChildren", ctx, int64(2)).Return([]catalog.Category{*child}, nil)

	view, err := service.GetOne(ctx, 2, "en")

	assert.NoError(t, err)
	assert.Equal(t, "Phones", view.Name)
	assert.Equal(t, "Electronics", view.Parent.Name)
	// az fallback when the requested language is missing
	assert.Len(t, view.Children, 1)
	assert.Equal(t, "Aksesuarlar", view.Children[0].Name)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_GetTree_ActiveOnly(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := newCategoryService(mockRepo, new(MockProductRepository))
	ctx := context.Background()

	root := testCategory(1, nil, 1)
	child := testCategory(2, parentRef(1), 2)
	orphan := testCategory(4, parentRef(3), 2) // parent inactive, not in result set

	mockRepo.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
		active, ok := f.Filters["is_active"]
		return ok && active == true
	})).Return([]catalog.Category{*root, *child, *orphan}, nil)

	tree, err := service.GetTree(ctx, true, "az")

	assert.NoError(t, err)
	assert.Len(t, tree, 1)
	assert.Equal(t, int64(1), tree[0].ID)
	assert.Len(t, tree[0].Children, 1)
	assert.Equal(t, int64(2), tree[0].Children[0].ID)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_GetRoots_FiltersLevelOne(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := newCategoryService(mockRepo, new(MockProductRepository))
	ctx := context.Background()

	root := testCategory(1, nil, 1)
	mockRepo.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Filters["level"] == 1 && f.Filters["is_active"] == true
	})).Return([]catalog.Category{*root}, nil)

	roots, err := service.GetRoots(ctx, "az")

	assert.NoError(t, err)
	assert.Len(t, roots, 1)
	mockRepo.AssertExpectations(t)
}
