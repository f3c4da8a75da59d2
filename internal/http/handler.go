package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conceptair/sizing-service/internal/domain/dto"
	"github.com/conceptair/sizing-service/internal/i18n"
	"github.com/conceptair/sizing-service/internal/service"
	"github.com/conceptair/sizing-service/internal/sizing"
)

// Handler provides HTTP handlers for the sizing routes.
type Handler struct {
	sizing    service.Sizing
	solverCfg sizing.Config
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithSolverConfig sets the base solver tuning used when a request carries
// per-request overrides. Defaults to sizing.DefaultConfig().
func WithSolverConfig(cfg sizing.Config) HandlerOption {
	return func(h *Handler) {
		h.solverCfg = cfg
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(sizingService service.Sizing, opts ...HandlerOption) *Handler {
	h := &Handler{
		sizing:    sizingService,
		solverCfg: sizing.DefaultConfig(),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// SolveDesign handles POST /api/sizing/solve requests.
//
// @Summary      Size takeoff gross weight
// @Description  Iteratively sizes the takeoff gross weight for the given aircraft variant. When no mission is supplied, the FAR 121.645 international reserve profile is built from the variant's design and alternate ranges. An infeasible mission is a successful response with status "infeasible" and a diagnostic, not an error.
// @Tags         Sizing
// @Accept       json
// @Produce      json
// @Param        request body dto.SolveRequest true "Variant, optional mission, optional solver tuning"
// @Success      200 {object} dto.SuccessResponse "Sizing result"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid variant or mission"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      422 {object} dto.ErrorResponse "Solver exhausted its iteration budget"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/sizing/solve [post]
func (h *Handler) SolveDesign(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationVariant, err)
		return
	}

	var (
		result interface{}
		err    error
	)
	if req.Solver != nil {
		result, err = h.sizing.SizeMissionWithConfig(c.Request.Context(), req.Variant, req.Profile(), req.Solver.Apply(h.solverCfg))
	} else {
		result, err = h.sizing.SizeMission(c.Request.Context(), req.Variant, req.Profile())
	}
	if err != nil {
		solveError(builder, err)
		return
	}

	builder.SuccessOK(result)
}

// SolveFixedW0 handles POST /api/sizing/fixed requests.
//
// @Summary      Evaluate closure at a frozen gross weight
// @Description  Runs the weight balance once at the supplied takeoff gross weight and reports the weight margin. A negative margin means the mission does not close at that weight; the response status is "infeasible" with a diagnostic.
// @Tags         Sizing
// @Accept       json
// @Produce      json
// @Param        request body dto.FixedW0Request true "Variant, optional mission, frozen gross weight"
// @Success      200 {object} dto.SuccessResponse "Closure result with weight margin"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid variant, mission, or w0"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/sizing/fixed [post]
func (h *Handler) SolveFixedW0(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.FixedW0Request
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationVariant, err)
		return
	}

	result, err := h.sizing.EvaluateFixedW0(c.Request.Context(), req.Variant, req.Profile(), req.W0)
	if err != nil {
		solveError(builder, err)
		return
	}

	builder.SuccessOK(result)
}

// MaxRange handles POST /api/sizing/max-range requests.
//
// @Summary      Find the maximum feasible range
// @Description  Bisects the design-profile range to find the longest mission the frozen gross weight can fly. Returns the range found together with the sizing result at that range.
// @Tags         Sizing
// @Accept       json
// @Produce      json
// @Param        request body dto.MaxRangeRequest true "Variant, frozen gross weight, optional search bracket"
// @Success      200 {object} dto.SuccessResponse "Maximum feasible range and the sizing result at that range"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid variant, w0, or bracket"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/sizing/max-range [post]
func (h *Handler) MaxRange(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.MaxRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationMission, err)
		return
	}

	result, rangeNM, err := h.sizing.MaxFeasibleRange(c.Request.Context(), req.Variant, req.W0, req.LoNM, req.HiNM)
	if err != nil {
		solveError(builder, err)
		return
	}

	builder.SuccessOK(dto.MaxRangeResponse{
		MaxRangeNM: rangeNM,
		Result:     result,
	})
}

// Sweep handles POST /api/sizing/sweep requests.
//
// @Summary      Range sensitivity sweep
// @Description  Sizes the variant at each of the requested design ranges and returns the results in order. Useful for range-vs-gross-weight trade studies.
// @Tags         Sizing
// @Accept       json
// @Produce      json
// @Param        request body dto.SweepRequest true "Variant and the design ranges to size at"
// @Success      200 {object} dto.SuccessResponse "One sizing result per requested range"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid variant or empty sweep"
// @Failure      422 {object} dto.ErrorResponse "Solver exhausted its iteration budget at one of the ranges"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/sizing/sweep [post]
func (h *Handler) Sweep(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationMission, err)
		return
	}

	results, err := h.sizing.RangeSweep(c.Request.Context(), req.Variant, req.Ranges)
	if err != nil {
		solveError(builder, err)
		return
	}

	builder.SuccessOK(results)
}

// solveError maps solver failures to HTTP responses. Infeasible missions
// never reach here: they are reported as successful results carrying a
// diagnostic.
func solveError(builder *ResponseBuilder, err error) {
	var convErr *sizing.ConvergenceError
	var domErr *sizing.DomainError

	switch {
	case errors.As(err, &convErr):
		builder.Error(http.StatusUnprocessableEntity, i18n.ErrKeySolverNoConvergence, err)
	case errors.As(err, &domErr):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationVariant, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
