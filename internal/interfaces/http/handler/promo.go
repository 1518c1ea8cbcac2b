package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	appcontent "github.com/catalog/backend/internal/application/content"
	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/interfaces/http/dto"
	"github.com/catalog/backend/internal/interfaces/http/middleware"
)

// PromoHandler exposes promotional campaigns over HTTP. The public list
// serves only campaigns whose date window covers the current moment.
type PromoHandler struct {
	BaseHandler
	service *appcontent.PromoService
}

// NewPromoHandler creates a new PromoHandler
func NewPromoHandler(service *appcontent.PromoService) *PromoHandler {
	return &PromoHandler{service: service}
}

// RegisterRoutes mounts promo routes on the public and admin groups
func (h *PromoHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	promos := public.Group("/promos")
	{
		promos.GET("", h.List)
		promos.GET("/:id", h.GetOne)
	}

	adminPromos := admin.Group("/promos")
	{
		adminPromos.GET("", h.ListAdmin)
		adminPromos.GET("/:id", h.GetOneAdmin)
		adminPromos.POST("", h.Create)
		adminPromos.PUT("/:id", h.Update)
		adminPromos.DELETE("/:id", h.Delete)
	}
}

type createPromoRequest struct {
	Title         shared.LocalizedText `json:"title" binding:"required"`
	Subtitle      shared.LocalizedText `json:"subtitle"`
	Description   shared.LocalizedText `json:"description"`
	StartDate     time.Time            `json:"startDate" binding:"required"`
	EndDate       time.Time            `json:"endDate" binding:"required"`
	BackgroundImg string               `json:"backgroundImg"`
	ProductID     int64                `json:"productId" binding:"required"`
	IsActive      *bool                `json:"isActive"`
}

type updatePromoRequest struct {
	Title         *shared.LocalizedText `json:"title"`
	Subtitle      *shared.LocalizedText `json:"subtitle"`
	Description   *shared.LocalizedText `json:"description"`
	StartDate     *time.Time            `json:"startDate"`
	EndDate       *time.Time            `json:"endDate"`
	BackgroundImg *string               `json:"backgroundImg"`
	ProductID     *int64                `json:"productId"`
	IsActive      *bool                 `json:"isActive"`
}

func (h *PromoHandler) promoListFilter(c *gin.Context, currentOnly bool) (appcontent.PromoListFilter, bool) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "invalid list parameters")
		return appcontent.PromoListFilter{}, false
	}
	req.Normalize()

	isActive, err := boolQuery(c, "is_active")
	if err != nil {
		h.BadRequest(c, err.Error())
		return appcontent.PromoListFilter{}, false
	}
	productID, err := int64Query(c, "product_id")
	if err != nil {
		h.BadRequest(c, err.Error())
		return appcontent.PromoListFilter{}, false
	}

	return appcontent.PromoListFilter{
		IsActive:    isActive,
		ProductID:   productID,
		CurrentOnly: currentOnly,
		Search:      req.Search,
		Page:        req.Page,
		PageSize:    req.PageSize,
	}, true
}

// List returns the localized page of currently running promos
func (h *PromoHandler) List(c *gin.Context) {
	filter, ok := h.promoListFilter(c, true)
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

// ListAdmin returns a raw page of promos. Expired and upcoming
// campaigns are included unless current=true is passed.
func (h *PromoHandler) ListAdmin(c *gin.Context) {
	filter, ok := h.promoListFilter(c, c.Query("current") == "true")
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

// GetOne returns a single localized promo
func (h *PromoHandler) GetOne(c *gin.Context) {
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

// GetOneAdmin returns a single raw promo
func (h *PromoHandler) GetOneAdmin(c *gin.Context) {
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

// Create creates a promo
func (h *PromoHandler) Create(c *gin.Context) {
	var req createPromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), appcontent.CreatePromoRequest{
		Title:         req.Title,
		Subtitle:      req.Subtitle,
		Description:   req.Description,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		BackgroundImg: req.BackgroundImg,
		ProductID:     req.ProductID,
		IsActive:      req.IsActive,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Update updates a promo
func (h *PromoHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req updatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, appcontent.UpdatePromoRequest{
		Title:         req.Title,
		Subtitle:      req.Subtitle,
		Description:   req.Description,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		BackgroundImg: req.BackgroundImg,
		ProductID:     req.ProductID,
		IsActive:      req.IsActive,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete deletes a promo
func (h *PromoHandler) Delete(c *gin.Context) {
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

var _ RouteRegistrar = (*PromoHandler)(nil)
