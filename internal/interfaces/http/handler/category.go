package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/catalog/backend/internal/application/catalog"
	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/interfaces/http/dto"
	"github.com/catalog/backend/internal/interfaces/http/middleware"
)

// CategoryHandler exposes the category hierarchy over HTTP. The public
// routes serve localized, active-only views; the admin routes serve the
// raw multilingual records and the write operations.
type CategoryHandler struct {
	BaseHandler
	service *appcatalog.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(service *appcatalog.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// RegisterRoutes mounts category routes on the public and admin groups
func (h *CategoryHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	categories := public.Group("/categories")
	{
		categories.GET("", h.List)
		categories.GET("/roots", h.GetRoots)
		categories.GET("/tree", h.GetTree)
		categories.GET("/product-holders", h.GetProductHolders)
		categories.GET("/:id", h.GetOne)
	}

	adminCategories := admin.Group("/categories")
	{
		adminCategories.GET("", h.ListAdmin)
		adminCategories.GET("/roots", h.GetRootsAdmin)
		adminCategories.GET("/tree", h.GetTreeAdmin)
		adminCategories.GET("/product-holders", h.GetProductHoldersAdmin)
		adminCategories.GET("/:id", h.GetOneAdmin)
		adminCategories.POST("", h.Create)
		adminCategories.PUT("/:id", h.Update)
		adminCategories.DELETE("/:id", h.Delete)
	}
}

type createCategoryRequest struct {
	Name            shared.LocalizedText `json:"name" binding:"required"`
	ImageURL        string               `json:"imageUrl"`
	ParentID        *int64               `json:"parentId"`
	IsActive        *bool                `json:"isActive"`
	IsProductHolder *bool                `json:"isProductHolder"`
	SortOrder       *int                 `json:"sortOrder"`
}

type updateCategoryRequest struct {
	Name            *shared.LocalizedText `json:"name"`
	ImageURL        *string               `json:"imageUrl"`
	IsActive        *bool                 `json:"isActive"`
	IsProductHolder *bool                 `json:"isProductHolder"`
	SortOrder       *int                  `json:"sortOrder"`
	ParentID        dto.NullableInt64     `json:"parentId"`
}

// categoryListFilter builds the application list filter from query
// parameters shared by the public and admin list endpoints.
func (h *CategoryHandler) categoryListFilter(c *gin.Context) (appcatalog.CategoryListFilter, bool) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "invalid list parameters")
		return appcatalog.CategoryListFilter{}, false
	}
	req.Normalize()

	isActive, err := boolQuery(c, "is_active")
	if err != nil {
		h.BadRequest(c, err.Error())
		return appcatalog.CategoryListFilter{}, false
	}
	parentID, err := int64Query(c, "parent_id")
	if err != nil {
		h.BadRequest(c, err.Error())
		return appcatalog.CategoryListFilter{}, false
	}
	level, err := intQuery(c, "level")
	if err != nil {
		h.BadRequest(c, err.Error())
		return appcatalog.CategoryListFilter{}, false
	}

	return appcatalog.CategoryListFilter{
		IsActive:     isActive,
		ParentID:     parentID,
		ParentIsNull: c.Query("roots") == "true",
		Level:        level,
		Search:       req.Search,
		Page:         req.Page,
		PageSize:     req.PageSize,
	}, true
}

// List returns a localized page of categories
func (h *CategoryHandler) List(c *gin.Context) {
	filter, ok := h.categoryListFilter(c)
	if !ok {
		return
	}

	page, err := h.service.List(c.Request.Context(), filter, middleware.GetLanguage(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Paginated(c, page)
}

// ListAdmin returns a raw page of categories
func (h *CategoryHandler) ListAdmin(c *gin.Context) {
	filter, ok := h.categoryListFilter(c)
	if !ok {
		return
	}

	page, err := h.service.ListAdmin(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Paginated(c, page)
}

// GetOne returns a single localized category with parent and children
func (h *CategoryHandler) GetOne(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	view, err := h.service.GetOne(c.Request.Context(), id, middleware.GetLanguage(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// GetOneAdmin returns a single raw category with parent and children
func (h *CategoryHandler) GetOneAdmin(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.GetOneAdmin(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetRoots returns the active root categories, localized
func (h *CategoryHandler) GetRoots(c *gin.Context) {
	views, err := h.service.GetRoots(c.Request.Context(), middleware.GetLanguage(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, views)
}

// GetRootsAdmin returns all root categories, raw
func (h *CategoryHandler) GetRootsAdmin(c *gin.Context) {
	resp, err := h.service.GetRootsAdmin(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetTree returns the active category tree, localized
func (h *CategoryHandler) GetTree(c *gin.Context) {
	tree, err := h.service.GetTree(c.Request.Context(), true, middleware.GetLanguage(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tree)
}

// GetTreeAdmin returns the full category tree. Inactive categories are
// included unless active_only=true is passed.
func (h *CategoryHandler) GetTreeAdmin(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	tree, err := h.service.GetTreeAdmin(c.Request.Context(), activeOnly)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tree)
}

// GetProductHolders returns active product-holder categories, localized
func (h *CategoryHandler) GetProductHolders(c *gin.Context) {
	views, err := h.service.GetProductHolders(c.Request.Context(), middleware.GetLanguage(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, views)
}

// GetProductHoldersAdmin returns all product-holder categories, raw
func (h *CategoryHandler) GetProductHoldersAdmin(c *gin.Context) {
	resp, err := h.service.GetProductHoldersAdmin(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Create creates a category
func (h *CategoryHandler) Create(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), appcatalog.CreateCategoryRequest{
		Name:            req.Name,
		ImageURL:        req.ImageURL,
		ParentID:        req.ParentID,
		IsActive:        req.IsActive,
		IsProductHolder: req.IsProductHolder,
		SortOrder:       req.SortOrder,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Update updates a category. An explicit "parentId": null promotes the
// category to a root; an absent parentId leaves the parent unchanged.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, appcatalog.UpdateCategoryRequest{
		Name:            req.Name,
		ImageURL:        req.ImageURL,
		IsActive:        req.IsActive,
		IsProductHolder: req.IsProductHolder,
		SortOrder:       req.SortOrder,
		Parent: appcatalog.NullableParent{
			Set: req.ParentID.Present,
			ID:  req.ParentID.Value,
		},
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete deletes a category
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

var _ RouteRegistrar = (*CategoryHandler)(nil)
