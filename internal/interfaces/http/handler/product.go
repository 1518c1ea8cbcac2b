package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	appcatalog "github.com/catalog/backend/internal/application/catalog"
	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/interfaces/http/dto"
	"github.com/catalog/backend/internal/interfaces/http/middleware"
)

// ProductHandler exposes the product catalog over HTTP
type ProductHandler struct {
	BaseHandler
	service *appcatalog.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(service *appcatalog.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// RegisterRoutes mounts product routes on the public and admin groups
func (h *ProductHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	products := public.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/slug/:slug", h.GetBySlug)
		products.GET("/:id", h.GetOne)
	}

	adminProducts := admin.Group("/products")
	{
		adminProducts.GET("", h.ListAdmin)
		adminProducts.GET("/:id", h.GetOneAdmin)
		adminProducts.POST("", h.Create)
		adminProducts.PUT("/:id", h.Update)
		adminProducts.DELETE("/:id", h.Delete)
	}
}

type createProductRequest struct {
	Title       shared.LocalizedText `json:"title" binding:"required"`
	Slug        string               `json:"slug" binding:"required"`
	Description shared.LocalizedText `json:"description"`
	MainImage   string               `json:"mainImage"`
	ImageList   []string             `json:"imageList"`
	DetailPDF   string               `json:"detailPdf"`
	CategoryID  int64                `json:"categoryId" binding:"required"`
	IsActive    *bool                `json:"isActive"`
}

type updateProductRequest struct {
	Title       *shared.LocalizedText `json:"title"`
	Slug        *string               `json:"slug"`
	Description *shared.LocalizedText `json:"description"`
	MainImage   *string               `json:"mainImage"`
	ImageList   []string              `json:"imageList"`
	DetailPDF   *string               `json:"detailPdf"`
	CategoryID  *int64                `json:"categoryId"`
	IsActive    *bool                 `json:"isActive"`
}

func (h *ProductHandler) productListFilter(c *gin.Context) (appcatalog.ProductListFilter, bool) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "invalid list parameters")
		return appcatalog.ProductListFilter{}, false
	}
	req.Normalize()

	isActive, err := boolQuery(c, "is_active")
	if err != nil {
		h.BadRequest(c, err.Error())
		return appcatalog.ProductListFilter{}, false
	}
	categoryID, err := int64Query(c, "category_id")
	if err != nil {
		h.BadRequest(c, err.Error())
		return appcatalog.ProductListFilter{}, false
	}

	return appcatalog.ProductListFilter{
		IsActive:   isActive,
		CategoryID: categoryID,
		Search:     req.Search,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}, true
}

// List returns a localized page of products
func (h *ProductHandler) List(c *gin.Context) {
	filter, ok := h.productListFilter(c)
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

// ListAdmin returns a raw page of products
func (h *ProductHandler) ListAdmin(c *gin.Context) {
	filter, ok := h.productListFilter(c)
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

// GetOne returns a single localized product
func (h *ProductHandler) GetOne(c *gin.Context) {
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

// GetBySlug returns a single localized product looked up by slug
func (h *ProductHandler) GetBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		h.BadRequest(c, "invalid slug parameter")
		return
	}

	view, err := h.service.GetBySlug(c.Request.Context(), slug, middleware.GetLanguage(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// GetOneAdmin returns a single raw product
func (h *ProductHandler) GetOneAdmin(c *gin.Context) {
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

// Create creates a product
func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), appcatalog.CreateProductRequest{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		MainImage:   req.MainImage,
		ImageList:   req.ImageList,
		DetailPDF:   req.DetailPDF,
		CategoryID:  req.CategoryID,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Update updates a product
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, appcatalog.UpdateProductRequest{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		MainImage:   req.MainImage,
		ImageList:   req.ImageList,
		DetailPDF:   req.DetailPDF,
		CategoryID:  req.CategoryID,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete deletes a product
func (h *ProductHandler) Delete(c *gin.Context) {
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

var _ RouteRegistrar = (*ProductHandler)(nil)
