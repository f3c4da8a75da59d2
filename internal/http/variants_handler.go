package http

import (
	"errors"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/conceptair/sizing-service/internal/domain/dto"
	"github.com/conceptair/sizing-service/internal/domain/model"
	"github.com/conceptair/sizing-service/internal/i18n"
	"github.com/conceptair/sizing-service/internal/service"
)

// catalogCache provides a thread-safe TTL snapshot of the merged variant
// catalog. Listing the catalog hits Mongo on every request otherwise, and
// the catalog changes rarely.
type catalogCache struct {
	variants  atomic.Value // holds []model.AircraftVariant
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

// newCatalogCache creates a new catalog cache with the given TTL.
func newCatalogCache(ttl time.Duration) *catalogCache {
	c := &catalogCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// get returns the cached catalog if valid, or nil if expired/empty.
func (c *catalogCache) get() []model.AircraftVariant {
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			if v := c.variants.Load(); v != nil {
				if variants, ok := v.([]model.AircraftVariant); ok {
					return variants
				}
			}
		}
	}
	return nil
}

// set stores the catalog snapshot with TTL.
func (c *catalogCache) set(variants []model.AircraftVariant) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring lock
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			return // Already cached by another goroutine
		}
	}

	c.variants.Store(variants)
	c.expiresAt.Store(time.Now().Add(c.ttl))
}

// invalidate clears the snapshot.
func (c *catalogCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
}

// VariantsHandler provides HTTP handlers for the variant catalog routes.
type VariantsHandler struct {
	variants service.Variants
	sizing   service.Sizing
	catalog  *catalogCache
}

// VariantsHandlerOption configures a VariantsHandler.
type VariantsHandlerOption func(*VariantsHandler)

// WithCatalogCacheTTL sets the TTL for the catalog list snapshot.
func WithCatalogCacheTTL(ttl time.Duration) VariantsHandlerOption {
	return func(h *VariantsHandler) {
		h.catalog = newCatalogCache(ttl)
	}
}

// NewVariantsHandler creates a new VariantsHandler instance.
func NewVariantsHandler(variantsService service.Variants, sizingService service.Sizing, opts ...VariantsHandlerOption) *VariantsHandler {
	h := &VariantsHandler{
		variants: variantsService,
		sizing:   sizingService,
		catalog:  newCatalogCache(30 * time.Second),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// InvalidateCatalogCache clears the catalog snapshot. Call this when a
// variant is updated.
func (h *VariantsHandler) InvalidateCatalogCache() {
	h.catalog.invalidate()
}

// ListVariants handles GET /api/variants requests.
//
// @Summary      List catalog variants
// @Description  Returns the merged variant catalog: built-in variants, file catalog entries, and active Mongo overrides. Overrides shadow static entries of the same name.
// @Tags         Variants
// @Accept       json
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Catalog variants"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/variants [get]
func (h *VariantsHandler) ListVariants(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if cached := h.catalog.get(); cached != nil {
		builder.SuccessOK(cached)
		return
	}

	variants, err := h.variants.List(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	h.catalog.set(variants)
	builder.SuccessOK(variants)
}

// GetVariant handles GET /api/variants/:name requests.
//
// @Summary      Get a catalog variant
// @Description  Returns the named variant. Mongo overrides win over static catalog entries; when the catalog store is unreachable the static entry is served.
// @Tags         Variants
// @Accept       json
// @Produce      json
// @Param        name path string true "Variant name"
// @Success      200 {object} dto.SuccessResponse "Variant configuration"
// @Failure      404 {object} dto.ErrorResponse "Variant not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/variants/{name} [get]
func (h *VariantsHandler) GetVariant(c *gin.Context) {
	builder := NewResponseBuilder(c)

	variant, err := h.variants.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, service.ErrVariantNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(variant)
}

// UpsertVariant handles PUT /api/variants/:name requests.
//
// @Summary      Store a variant configuration
// @Description  Stores a new active version of the named variant in the catalog. The path name wins over any name in the body. Requires a bearer token when authentication is enabled.
// @Tags         Variants
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        name path string true "Variant name"
// @Param        request body dto.UpsertVariantRequest true "Variant configuration"
// @Success      200 {object} dto.SuccessResponse "Stored variant version"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid variant"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      503 {object} dto.ErrorResponse "Catalog store not configured"
// @Security     BearerAuth
// @Router       /api/variants/{name} [put]
func (h *VariantsHandler) UpsertVariant(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpsertVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	req.Variant.Name = c.Param("name")
	if err := req.Variant.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationVariant, err)
		return
	}
	if req.UpdatedBy == "" {
		if name, ok := c.Get("user_name"); ok {
			req.UpdatedBy, _ = name.(string)
		}
	}

	config, err := h.variants.Upsert(c.Request.Context(), req.Variant, req.UpdatedBy)
	if err != nil {
		if errors.Is(err, service.ErrRepositoryNotConfigured) {
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	h.catalog.invalidate()
	if h.sizing != nil {
		h.sizing.InvalidateCache()
	}

	builder.SuccessOK(config)
}

// VariantHistory handles GET /api/variants/:name/history requests.
//
// @Summary      Variant version history
// @Description  Returns stored versions of the named variant, newest first.
// @Tags         Variants
// @Accept       json
// @Produce      json
// @Param        name path string true "Variant name"
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Variant versions"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Catalog store not configured"
// @Router       /api/variants/{name}/history [get]
func (h *VariantsHandler) VariantHistory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	configs, err := h.variants.History(c.Request.Context(), c.Param("name"), limit)
	if err != nil {
		if errors.Is(err, service.ErrRepositoryNotConfigured) {
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(configs)
}

// SolveVariant handles GET /api/variants/:name/solve requests.
//
// @Summary      Size a catalog variant
// @Description  Sizes the named catalog variant on its design mission (design range plus configured alternate).
// @Tags         Variants
// @Accept       json
// @Produce      json
// @Param        name path string true "Variant name"
// @Success      200 {object} dto.SuccessResponse "Sizing result"
// @Failure      404 {object} dto.ErrorResponse "Variant not found"
// @Failure      422 {object} dto.ErrorResponse "Solver exhausted its iteration budget"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/variants/{name}/solve [get]
func (h *VariantsHandler) SolveVariant(c *gin.Context) {
	builder := NewResponseBuilder(c)

	variant, err := h.variants.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, service.ErrVariantNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	result, err := h.sizing.SizeDesign(c.Request.Context(), *variant)
	if err != nil {
		solveError(builder, err)
		return
	}

	builder.SuccessOK(result)
}
