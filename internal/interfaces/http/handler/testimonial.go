package handler

import (
	"github.com/gin-gonic/gin"

	appcontent "github.com/catalog/backend/internal/application/content"
	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/interfaces/http/middleware"
)

// TestimonialHandler exposes customer testimonials over HTTP
type TestimonialHandler struct {
	BaseHandler
	service *appcontent.TestimonialService
}

// NewTestimonialHandler creates a new TestimonialHandler
func NewTestimonialHandler(service *appcontent.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{service: service}
}

// RegisterRoutes mounts testimonial routes on the public and admin groups
func (h *TestimonialHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	testimonials := public.Group("/testimonials")
	{
		testimonials.GET("", h.List)
		testimonials.GET("/:id", h.GetOne)
	}

	adminTestimonials := admin.Group("/testimonials")
	{
		adminTestimonials.GET("", h.ListAdmin)
		adminTestimonials.GET("/:id", h.GetOneAdmin)
		adminTestimonials.POST("", h.Create)
		adminTestimonials.PUT("/:id", h.Update)
		adminTestimonials.DELETE("/:id", h.Delete)
	}
}

type createTestimonialRequest struct {
	Name     shared.LocalizedText `json:"name" binding:"required"`
	Message  shared.LocalizedText `json:"message" binding:"required"`
	ImageURL string               `json:"imageUrl"`
	IsActive *bool                `json:"isActive"`
}

type updateTestimonialRequest struct {
	Name     *shared.LocalizedText `json:"name"`
	Message  *shared.LocalizedText `json:"message"`
	ImageURL *string               `json:"imageUrl"`
	IsActive *bool                 `json:"isActive"`
}

// List returns a localized page of testimonials
func (h *TestimonialHandler) List(c *gin.Context) {
	filter, ok := contentListFilter(c, &h.BaseHandler)
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

// GetOne returns a single localized testimonial
func (h *TestimonialHandler) GetOne(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.GetOne(c.Request.Context(), id, middleware.GetLanguage(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetOneAdmin returns a single raw testimonial
func (h *TestimonialHandler) GetOneAdmin(c *gin.Context) {
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

// ListAdmin returns a raw page of testimonials
func (h *TestimonialHandler) ListAdmin(c *gin.Context) {
	filter, ok := contentListFilter(c, &h.BaseHandler)
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

// Create creates a testimonial
func (h *TestimonialHandler) Create(c *gin.Context) {
	var req createTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), appcontent.CreateTestimonialRequest{
		Name:     req.Name,
		Message:  req.Message,
		ImageURL: req.ImageURL,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Update updates a testimonial
func (h *TestimonialHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req updateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, appcontent.UpdateTestimonialRequest{
		Name:     req.Name,
		Message:  req.Message,
		ImageURL: req.ImageURL,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete deletes a testimonial
func (h *TestimonialHandler) Delete(c *gin.Context) {
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

var _ RouteRegistrar = (*TestimonialHandler)(nil)
