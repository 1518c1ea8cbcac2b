package catalog

import (
	"context"
	"errors"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/shared"
)

// CategoryService implements category lifecycle and hierarchy
// maintenance. Structural changes (reparenting) run inside a
// transaction scope so the moved node and its descendants are updated
// atomically.
type CategoryService struct {
	categories catalog.CategoryRepository
	products   catalog.ProductRepository
	txScope    TransactionScope
	localizer  Localizer
}

func NewCategoryService(
	categories catalog.CategoryRepository,
	products catalog.ProductRepository,
	txScope TransactionScope,
	localizer Localizer,
) *CategoryService {
	return &CategoryService{
		categories: categories,
		products:   products,
		txScope:    txScope,
		localizer:  localizer,
	}
}

// Create creates a category. With a parent ID the new category is a
// child placed one level below its parent; without one it is a root at
// level 1. The parent must exist and be active, and the child's level
// may not exceed the depth limit.
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	var (
		category *catalog.Category
		err      error
	)
	if req.ParentID != nil {
		parent, findErr := s.categories.FindByID(ctx, *req.ParentID)
		if findErr != nil {
			if errors.Is(findErr, shared.ErrNotFound) {
				return nil, shared.NewDomainError("NOT_FOUND", "Parent category not found")
			}
			return nil, findErr
		}
		category, err = catalog.NewChildCategory(req.Name, parent)
	} else {
		category, err = catalog.NewRootCategory(req.Name)
	}
	if err != nil {
		return nil, err
	}

	category.ImageURL = req.ImageURL
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if req.IsProductHolder != nil {
		category.IsProductHolder = *req.IsProductHolder
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return ToCategoryResponse(category), nil
}

// Update modifies a category. Non-structural fields are applied
// in place. When the request changes the parent, the move is validated
// (no self-parenting, no cycles, depth limit holds for the whole
// subtree) and the category together with every descendant's level is
// updated in one transaction.
func (s *CategoryService) Update(ctx context.Context, id int64, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Category not found")
		}
		return nil, err
	}

	if req.Name != nil {
		if err := category.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.ImageURL != nil {
		category.ImageURL = *req.ImageURL
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if req.IsProductHolder != nil {
		category.IsProductHolder = *req.IsProductHolder
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}

	if !req.Parent.Set || sameParent(category.ParentID, req.Parent.ID) {
		category.Touch()
		if err := s.categories.Save(ctx, category); err != nil {
			return nil, err
		}
		return ToCategoryResponse(category), nil
	}

	newParent, err := s.validateMove(ctx, category, req.Parent.ID)
	if err != nil {
		return nil, err
	}
	category.PlaceUnder(newParent)
	category.Touch()

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		categories := repos.Categories()
		if err := categories.Save(ctx, category); err != nil {
			return err
		}
		return propagateLevels(ctx, categories, category.ID, category.Level)
	})
	if err != nil {
		return nil, err
	}
	return ToCategoryResponse(category), nil
}

// Delete removes a category. Categories with subcategories or with
// products assigned cannot be deleted.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Category not found")
		}
		return err
	}

	childCount, err := s.categories.CountByParent(ctx, id)
	if err != nil {
		return err
	}
	if childCount > 0 {
		return shared.NewDomainError("INVALID_STATE", "Cannot delete a category that has subcategories")
	}

	productCount, err := s.products.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if productCount > 0 {
		return shared.NewDomainError("INVALID_STATE", "Cannot delete a category that has products")
	}

	return s.categories.Delete(ctx, id)
}

// GetOne returns a localized category with its parent and direct
// children attached.
func (s *CategoryService) GetOne(ctx context.Context, id int64, lang string) (*CategoryView, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Category not found")
		}
		return nil, err
	}

	view := ToCategoryView(category, s.localizer, lang)
	if category.ParentID != nil {
		parent, err := s.categories.FindByID(ctx, *category.ParentID)
		if err == nil {
			view.Parent = ToCategoryView(parent, s.localizer, lang)
		} else if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
	}
	children, err := s.categories.FindChildren(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range children {
		view.Children = append(view.Children, *ToCategoryView(&children[i], s.localizer, lang))
	}
	return view, nil
}

// GetOneAdmin returns the raw category record with parent and children
func (s *CategoryService) GetOneAdmin(ctx context.Context, id int64) (*CategoryResponse, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Category not found")
		}
		return nil, err
	}

	resp := ToCategoryResponse(category)
	if category.ParentID != nil {
		parent, err := s.categories.FindByID(ctx, *category.ParentID)
		if err == nil {
			resp.Parent = ToCategoryResponse(parent)
		} else if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
	}
	children, err := s.categories.FindChildren(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range children {
		resp.Children = append(resp.Children, *ToCategoryResponse(&children[i]))
	}
	return resp, nil
}

// List returns a localized, paginated flat page of categories ordered
// by level then ID.
func (s *CategoryService) List(ctx context.Context, filter CategoryListFilter, lang string) (shared.Paginated[CategoryView], error) {
	page, err := s.listPage(ctx, filter)
	if err != nil {
		return shared.Paginated[CategoryView]{}, err
	}
	views := make([]CategoryView, 0, len(page.Items))
	for i := range page.Items {
		views = append(views, *ToCategoryView(&page.Items[i], s.localizer, lang))
	}
	return shared.NewPaginated(views, page.Total, page.Page, page.PageSize), nil
}

// ListAdmin returns a raw, paginated flat page of categories
func (s *CategoryService) ListAdmin(ctx context.Context, filter CategoryListFilter) (shared.Paginated[CategoryResponse], error) {
	page, err := s.listPage(ctx, filter)
	if err != nil {
		return shared.Paginated[CategoryResponse]{}, err
	}
	responses := make([]CategoryResponse, 0, len(page.Items))
	for i := range page.Items {
		responses = append(responses, *ToCategoryResponse(&page.Items[i]))
	}
	return shared.NewPaginated(responses, page.Total, page.Page, page.PageSize), nil
}

// GetRoots returns localized active root categories
func (s *CategoryService) GetRoots(ctx context.Context, lang string) ([]CategoryView, error) {
	roots, err := s.findRoots(ctx, true)
	if err != nil {
		return nil, err
	}
	views := make([]CategoryView, 0, len(roots))
	for i := range roots {
		views = append(views, *ToCategoryView(&roots[i], s.localizer, lang))
	}
	return views, nil
}

// GetRootsAdmin returns raw root categories regardless of status
func (s *CategoryService) GetRootsAdmin(ctx context.Context) ([]CategoryResponse, error) {
	roots, err := s.findRoots(ctx, false)
	if err != nil {
		return nil, err
	}
	responses := make([]CategoryResponse, 0, len(roots))
	for i := range roots {
		responses = append(responses, *ToCategoryResponse(&roots[i]))
	}
	return responses, nil
}

// GetTree returns the localized nested category tree. With activeOnly
// the tree is built from active categories only, so children of an
// inactive category do not appear even when active themselves.
func (s *CategoryService) GetTree(ctx context.Context, activeOnly bool, lang string) ([]CategoryTreeView, error) {
	nodes, err := s.buildTree(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	views := make([]CategoryTreeView, 0, len(nodes))
	for _, node := range nodes {
		views = append(views, ToCategoryTreeView(node, s.localizer, lang))
	}
	return views, nil
}

// GetTreeAdmin returns the raw nested category tree
func (s *CategoryService) GetTreeAdmin(ctx context.Context, activeOnly bool) ([]*catalog.CategoryTreeNode, error) {
	return s.buildTree(ctx, activeOnly)
}

// GetProductHolders returns localized active categories that can hold
// products.
func (s *CategoryService) GetProductHolders(ctx context.Context, lang string) ([]CategoryView, error) {
	holders, err := s.findProductHolders(ctx, true)
	if err != nil {
		return nil, err
	}
	views := make([]CategoryView, 0, len(holders))
	for i := range holders {
		views = append(views, *ToCategoryView(&holders[i], s.localizer, lang))
	}
	return views, nil
}

// GetProductHoldersAdmin returns raw product-holder categories
func (s *CategoryService) GetProductHoldersAdmin(ctx context.Context) ([]CategoryResponse, error) {
	holders, err := s.findProductHolders(ctx, false)
	if err != nil {
		return nil, err
	}
	responses := make([]CategoryResponse, 0, len(holders))
	for i := range holders {
		responses = append(responses, *ToCategoryResponse(&holders[i]))
	}
	return responses, nil
}

// validateMove checks a reparenting request and returns the resolved
// new parent, or nil when the category becomes a root.
func (s *CategoryService) validateMove(ctx context.Context, category *catalog.Category, newParentID *int64) (*catalog.Category, error) {
	if newParentID == nil {
		return nil, nil
	}
	if *newParentID == category.ID {
		return nil, shared.NewDomainError("INVALID_STATE", "Category cannot be its own parent")
	}

	newParent, err := s.categories.FindByID(ctx, *newParentID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "New parent category not found")
		}
		return nil, err
	}
	if err := s.ensureNotDescendant(ctx, category.ID, newParent); err != nil {
		return nil, err
	}

	newLevel := newParent.Level + 1
	if newLevel > catalog.MaxCategoryDepth {
		return nil, shared.NewDomainError("INVALID_STATE", "Maximum category depth exceeded")
	}
	height, err := s.subtreeHeight(ctx, category.ID)
	if err != nil {
		return nil, err
	}
	if newLevel+height > catalog.MaxCategoryDepth {
		return nil, shared.NewDomainError("INVALID_STATE", "Maximum category depth exceeded for subcategories")
	}
	return newParent, nil
}

// ensureNotDescendant walks up the ancestor chain of the candidate
// parent. Hitting the moved category means the move would create a
// cycle.
func (s *CategoryService) ensureNotDescendant(ctx context.Context, movedID int64, candidate *catalog.Category) error {
	seen := make(map[int64]bool)
	current := candidate
	for {
		if current.ID == movedID {
			return shared.NewDomainError("INVALID_STATE", "Cannot move a category under one of its own subcategories")
		}
		if current.ParentID == nil {
			return nil
		}
		if seen[current.ID] {
			// corrupt ancestry, refuse the move
			return shared.NewDomainError("INVALID_STATE", "Category ancestry contains a cycle")
		}
		seen[current.ID] = true

		parent, err := s.categories.FindByID(ctx, *current.ParentID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil
			}
			return err
		}
		current = parent
	}
}

// subtreeHeight returns the number of levels below a category, zero
// for a leaf.
func (s *CategoryService) subtreeHeight(ctx context.Context, rootID int64) (int, error) {
	height := 0
	frontier := []int64{rootID}
	for len(frontier) > 0 {
		var next []int64
		for _, id := range frontier {
			children, err := s.categories.FindChildren(ctx, id)
			if err != nil {
				return 0, err
			}
			for i := range children {
				next = append(next, children[i].ID)
			}
		}
		if len(next) > 0 {
			height++
		}
		frontier = next
	}
	return height, nil
}

func (s *CategoryService) listPage(ctx context.Context, filter CategoryListFilter) (shared.Paginated[catalog.Category], error) {
	storeFilter := filter.toStoreFilter()
	items, err := s.categories.FindAll(ctx, storeFilter)
	if err != nil {
		return shared.Paginated[catalog.Category]{}, err
	}
	total, err := s.categories.Count(ctx, storeFilter)
	if err != nil {
		return shared.Paginated[catalog.Category]{}, err
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

func (s *CategoryService) findRoots(ctx context.Context, activeOnly bool) ([]catalog.Category, error) {
	filter := shared.Filter{
		PageSize: -1,
		Filters:  map[string]interface{}{"level": 1},
	}
	if activeOnly {
		filter.Filters["is_active"] = true
	}
	return s.categories.FindAll(ctx, filter)
}

func (s *CategoryService) findProductHolders(ctx context.Context, activeOnly bool) ([]catalog.Category, error) {
	filter := shared.Filter{
		PageSize: -1,
		Filters:  map[string]interface{}{"product_holder": true},
	}
	if activeOnly {
		filter.Filters["is_active"] = true
	}
	return s.categories.FindAll(ctx, filter)
}

func (s *CategoryService) buildTree(ctx context.Context, activeOnly bool) ([]*catalog.CategoryTreeNode, error) {
	filter := shared.Filter{PageSize: -1, Filters: map[string]interface{}{}}
	if activeOnly {
		filter.Filters["is_active"] = true
	}
	all, err := s.categories.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return catalog.BuildCategoryTree(all), nil
}

// propagateLevels recomputes descendant levels after a move,
// depth-first from the moved category. Each child is set one level
// below its parent and saved through the transactional repository.
func propagateLevels(ctx context.Context, categories catalog.CategoryRepository, rootID int64, rootLevel int) error {
	type frame struct {
		id    int64
		level int
	}
	stack := []frame{{id: rootID, level: rootLevel}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children, err := categories.FindChildren(ctx, top.id)
		if err != nil {
			return err
		}
		for i := range children {
			child := &children[i]
			child.Level = top.level + 1
			child.Touch()
			if err := categories.Save(ctx, child); err != nil {
				return err
			}
			stack = append(stack, frame{id: child.ID, level: child.Level})
		}
	}
	return nil
}

func sameParent(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
