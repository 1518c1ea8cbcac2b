package handler

import (
	"github.com/gin-gonic/gin"

	appcontent "github.com/catalog/backend/internal/application/content"
	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/interfaces/http/middleware"
)

// FAQHandler exposes FAQ entries over HTTP
type FAQHandler struct {
	BaseHandler
	service *appcontent.FAQService
}

// NewFAQHandler creates a new FAQHandler
func NewFAQHandler(service *appcontent.FAQService) *FAQHandler {
	return &FAQHandler{service: service}
}

// RegisterRoutes mounts FAQ routes on the public and admin groups
func (h *FAQHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	faqs := public.Group("/faqs")
	{
		faqs.GET("", h.List)
		faqs.GET("/:id", h.GetOne)
	}

	adminFAQs := admin.Group("/faqs")
	{
		adminFAQs.GET("", h.ListAdmin)
		adminFAQs.GET("/:id", h.GetOneAdmin)
		adminFAQs.POST("", h.Create)
		adminFAQs.PUT("/:id", h.Update)
		adminFAQs.DELETE("/:id", h.Delete)
	}
}

type createFAQRequest struct {
	Question shared.LocalizedText `json:"question" binding:"required"`
	Answer   shared.LocalizedText `json:"answer" binding:"required"`
	IsActive *bool                `json:"isActive"`
}

type updateFAQRequest struct {
	Question *shared.LocalizedText `json:"question"`
	Answer   *shared.LocalizedText `json:"answer"`
	IsActive *bool                 `json:"isActive"`
}

// List returns a localized page of FAQ entries
func (h *FAQHandler) List(c *gin.Context) {
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

// GetOne returns a single localized FAQ entry
func (h *FAQHandler) GetOne(c *gin.Context) {
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

// GetOneAdmin returns a single raw FAQ entry
func (h *FAQHandler) GetOneAdmin(c *gin.Context) {
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

// ListAdmin returns a raw page of FAQ entries
func (h *FAQHandler) ListAdmin(c *gin.Context) {
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

// Create creates a FAQ entry
func (h *FAQHandler) Create(c *gin.Context) {
	var req createFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), appcontent.CreateFAQRequest{
		Question: req.Question,
		Answer:   req.Answer,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Update updates a FAQ entry
func (h *FAQHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req updateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, appcontent.UpdateFAQRequest{
		Question: req.Question,
		Answer:   req.Answer,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete deletes a FAQ entry
func (h *FAQHandler) Delete(c *gin.Context) {
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

var _ RouteRegistrar = (*FAQHandler)(nil)
