package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/catalog/backend/internal/application/media"
)

// UploadHandler accepts multipart file uploads for the admin panel
type UploadHandler struct {
	BaseHandler
	service *media.UploadService
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(service *media.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// RegisterRoutes mounts upload routes on the admin group only
func (h *UploadHandler) RegisterRoutes(_, admin *gin.RouterGroup) {
	uploads := admin.Group("/uploads")
	{
		uploads.POST("/:folder", h.Upload)
		uploads.DELETE("/*key", h.Delete)
	}
}

// Upload stores a multipart file under the given folder and returns
// its storage key and public URL.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "missing file field")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "unreadable file")
		return
	}
	defer file.Close()

	result, err := h.service.Upload(c.Request.Context(), media.UploadInput{
		Folder:   c.Param("folder"),
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Reader:   file,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// Delete removes a stored file by its storage key
func (h *UploadHandler) Delete(c *gin.Context) {
	// gin wildcard params keep the leading slash
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		h.BadRequest(c, "missing storage key")
		return
	}

	if err := h.service.Delete(c.Request.Context(), key); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

var _ RouteRegistrar = (*UploadHandler)(nil)
