package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/catalog/backend/internal/interfaces/http/dto"
)

// Pinger reports backing-store reachability
type Pinger interface {
	Ping() error
}

// SystemHandler handles health and system info endpoints
type SystemHandler struct {
	BaseHandler
	db        Pinger
	version   string
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db Pinger, version string) *SystemHandler {
	return &SystemHandler{
		db:        db,
		version:   version,
		startTime: time.Now(),
	}
}

// RegisterRoutes mounts system routes on the public group only
func (h *SystemHandler) RegisterRoutes(public, _ *gin.RouterGroup) {
	public.GET("/health", h.Health)
	public.GET("/system/info", h.Info)
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type systemInfoResponse struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"goVersion"`
	Uptime    string `json:"uptime"`
}

// Health reports service and database health. A failing database ping
// yields a 503 so load balancers take the instance out of rotation.
func (h *SystemHandler) Health(c *gin.Context) {
	resp := healthResponse{Status: "ok", Database: "ok"}

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			resp.Status = "degraded"
			resp.Database = "unreachable"
			c.JSON(http.StatusServiceUnavailable, dto.NewSuccessResponse(resp))
			return
		}
	}
	h.Success(c, resp)
}

// Info returns basic build and runtime information
func (h *SystemHandler) Info(c *gin.Context) {
	h.Success(c, systemInfoResponse{
		Name:      "Catalog Backend API",
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}

var _ RouteRegistrar = (*SystemHandler)(nil)
