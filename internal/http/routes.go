package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup registers routes served without authentication. Solves
// are pure functions of the request body and catalog reads are public, so
// everything except catalog mutation lands here.
type PublicRouteGroup interface {
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup registers routes behind the configured write guard
// (JWT and, when enabled, the per-user rate limit).
type ProtectedRouteGroup interface {
	RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}
