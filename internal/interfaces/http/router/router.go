package router

import (
	"github.com/gin-gonic/gin"

	"github.com/catalog/backend/internal/interfaces/http/handler"
)

// Router assembles the versioned API surface. Every registrar mounts
// its routes on two groups: the public group and the admin group, the
// latter guarded by the middleware passed to NewRouter.
type Router struct {
	engine          *gin.Engine
	apiVersion      string
	adminMiddleware []gin.HandlerFunc
	registrars      []handler.RouteRegistrar
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix (e.g. "v1", "v2")
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// WithAdminMiddleware sets the middleware chain applied to the admin
// group, typically JWT auth.
func WithAdminMiddleware(mw ...gin.HandlerFunc) RouterOption {
	return func(r *Router) {
		r.adminMiddleware = mw
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		apiVersion: "v1",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a RouteRegistrar to be mounted on Setup
func (r *Router) Register(registrars ...handler.RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrars...)
	return r
}

// Setup mounts all registered routes on the engine
func (r *Router) Setup() {
	public := r.engine.Group("/api/" + r.apiVersion)
	admin := r.engine.Group("/api/"+r.apiVersion+"/admin", r.adminMiddleware...)

	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(public, admin)
	}
}
