package http

import (
	"github.com/gin-gonic/gin"

	"github.com/conceptair/sizing-service/internal/middleware"
)

// SizingRoutes handles sizing and variant catalog route registration.
type SizingRoutes struct {
	handler         *Handler
	variantsHandler *VariantsHandler
}

var (
	_ PublicRouteGroup    = (*SizingRoutes)(nil)
	_ ProtectedRouteGroup = (*SizingRoutes)(nil)
)

// NewSizingRoutes creates a new SizingRoutes instance.
func NewSizingRoutes(handler *Handler, variantsHandler *VariantsHandler) *SizingRoutes {
	return &SizingRoutes{
		handler:         handler,
		variantsHandler: variantsHandler,
	}
}

// RegisterPublicRoutes registers the read and solve routes. Solving is
// pure computation, so these stay open even when catalog mutation is
// protected.
func (r *SizingRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	szg := rg.Group("/sizing")
	{
		szg.POST("/solve", r.handler.SolveDesign)
		szg.POST("/fixed", r.handler.SolveFixedW0)
		szg.POST("/max-range", r.handler.MaxRange)
		szg.POST("/sweep", r.handler.Sweep)
	}

	if r.variantsHandler != nil {
		rg.GET("/variants", r.variantsHandler.ListVariants)
		rg.GET("/variants/:name", r.variantsHandler.GetVariant)
		rg.GET("/variants/:name/history", r.variantsHandler.VariantHistory)
		rg.GET("/variants/:name/solve", r.variantsHandler.SolveVariant)
	}
}

// RegisterProtectedRoutes registers the catalog mutation routes behind JWT
// authentication. With an empty secret the middleware is a no-op and the
// routes are effectively public.
func (r *SizingRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	if r.variantsHandler == nil {
		return
	}

	protected := rg.Group("")
	protected.Use(middleware.JWTAuth(cfg.JWTSecret))

	if cfg.RateLimit > 0 {
		userLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		protected.Use(userLimiter.UserRateLimit())
	}

	protected.PUT("/variants/:name", r.variantsHandler.UpsertVariant)
}

// GetHandler returns the underlying sizing handler.
func (r *SizingRoutes) GetHandler() *Handler {
	return r.handler
}
