package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	appcontent "github.com/catalog/backend/internal/application/content"
	"github.com/catalog/backend/internal/interfaces/http/dto"
)

// boolQuery parses an optional boolean query parameter. An absent or
// empty parameter yields nil.
func boolQuery(c *gin.Context, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter", name)
	}
	return &v, nil
}

// int64Query parses an optional int64 query parameter
func int64Query(c *gin.Context, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter", name)
	}
	return &v, nil
}

// contentListFilter parses the list parameters shared by the
// testimonial and FAQ endpoints.
func contentListFilter(c *gin.Context, h *BaseHandler) (appcontent.ListFilter, bool) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "invalid list parameters")
		return appcontent.ListFilter{}, false
	}
	req.Normalize()

	isActive, err := boolQuery(c, "is_active")
	if err != nil {
		h.BadRequest(c, err.Error())
		return appcontent.ListFilter{}, false
	}

	return appcontent.ListFilter{
		IsActive: isActive,
		Search:   req.Search,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, true
}

// intQuery parses an optional int query parameter
func intQuery(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter", name)
	}
	return &v, nil
}
