package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/conceptair/sizing-service/internal/catalog"
	"github.com/conceptair/sizing-service/internal/domain/dto"
	"github.com/conceptair/sizing-service/internal/domain/model"
	"github.com/conceptair/sizing-service/internal/middleware"
	"github.com/conceptair/sizing-service/internal/mocks"
	"github.com/conceptair/sizing-service/internal/repository"
	"github.com/conceptair/sizing-service/internal/service"
	"github.com/conceptair/sizing-service/internal/sizing"
)

func setupVariantsRouter(t *testing.T, repo repository.VariantsRepositoryInterface, cfg RouterConfig) *gin.Engine {
	sizingService, err := service.NewSizingService(sizing.DefaultConfig())
	require.NoError(t, err)
	handler := NewHandler(sizingService)
	variantsHandler := NewVariantsHandler(service.NewVariantsService(repo), sizingService)
	return NewRouter(handler, variantsHandler, NewHealthHandler(), cfg)
}

func TestListVariants(t *testing.T) {
	router := setupVariantsRouter(t, nil, DefaultRouterConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/variants", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	dataBytes, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var variants []model.AircraftVariant
	require.NoError(t, json.Unmarshal(dataBytes, &variants))
	assert.Len(t, variants, len(catalog.Builtin()))
}

func TestGetVariant(t *testing.T) {
	router := setupVariantsRouter(t, nil, DefaultRouterConfig())

	t.Run("returns a built-in variant", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/variants/"+url.PathEscape("NA Variant (Composite)"), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.SuccessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		dataBytes, err := json.Marshal(resp.Data)
		require.NoError(t, err)
		var variant model.AircraftVariant
		require.NoError(t, json.Unmarshal(dataBytes, &variant))
		assert.InDelta(t, 17005, variant.PayloadWeight, 0.1)
	})

	t.Run("unknown variant is a 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/variants/"+url.PathEscape("No Such Variant"), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error)
	})
}

func TestSolveVariantByName(t *testing.T) {
	router := setupVariantsRouter(t, nil, DefaultRouterConfig())

	t.Run("sizes a catalog variant on its design mission", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/variants/"+url.PathEscape("NA Variant (Composite)")+"/solve", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		result := decodeResult(t, w)
		assert.Equal(t, model.StatusConverged, result.Status)
		assert.Positive(t, result.W0)
		assert.Equal(t, "NA Variant (Composite)", result.VariantName)
	})

	t.Run("unknown variant is a 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/variants/"+url.PathEscape("No Such Variant")+"/solve", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpsertVariant(t *testing.T) {
	t.Run("without a catalog store returns 503", func(t *testing.T) {
		router := setupVariantsRouter(t, nil, DefaultRouterConfig())

		body := mustJSON(t, dto.UpsertVariantRequest{Variant: testVariant()})
		req := httptest.NewRequest(http.MethodPut, "/api/variants/"+url.PathEscape("Test Regional Jet"), bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("stores a new version and reports it", func(t *testing.T) {
		repo := new(mocks.MockVariantsRepositoryInterface)
		repo.On("Upsert", mock.Anything, mock.AnythingOfType("model.AircraftVariant"), "wind-tunnel").
			Return(&repository.VariantConfig{
				Name:    "Test Regional Jet",
				Variant: testVariant(),
				Active:  true,
				Version: 2,
			}, nil)

		router := setupVariantsRouter(t, repo, DefaultRouterConfig())

		body := mustJSON(t, dto.UpsertVariantRequest{Variant: testVariant(), UpdatedBy: "wind-tunnel"})
		req := httptest.NewRequest(http.MethodPut, "/api/variants/"+url.PathEscape("Test Regional Jet"), bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.SuccessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		dataBytes, err := json.Marshal(resp.Data)
		require.NoError(t, err)
		var config repository.VariantConfig
		require.NoError(t, json.Unmarshal(dataBytes, &config))
		assert.Equal(t, 2, config.Version)
	})

	t.Run("invalid variant is rejected before storage", func(t *testing.T) {
		repo := new(mocks.MockVariantsRepositoryInterface)
		router := setupVariantsRouter(t, repo, DefaultRouterConfig())

		variant := testVariant()
		variant.PayloadWeight = 0
		body := mustJSON(t, dto.UpsertVariantRequest{Variant: variant})
		req := httptest.NewRequest(http.MethodPut, "/api/variants/"+url.PathEscape("Test Regional Jet"), bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "Upsert")
	})
}

func TestUpsertVariant_JWTProtected(t *testing.T) {
	const secret = "test-signing-secret"

	cfg := DefaultRouterConfig()
	cfg.JWTSecret = secret

	repo := new(mocks.MockVariantsRepositoryInterface)
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("model.AircraftVariant"), mock.AnythingOfType("string")).
		Return(&repository.VariantConfig{Name: "Test Regional Jet", Variant: testVariant(), Active: true, Version: 1}, nil).
		Maybe()
	repo.On("ListActive", mock.Anything).Return([]repository.VariantConfig{}, nil).Maybe()

	router := setupVariantsRouter(t, repo, cfg)

	put := func(t *testing.T, token string) *httptest.ResponseRecorder {
		t.Helper()
		body := mustJSON(t, dto.UpsertVariantRequest{Variant: testVariant()})
		req := httptest.NewRequest(http.MethodPut, "/api/variants/"+url.PathEscape("Test Regional Jet"), bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("missing token is rejected", func(t *testing.T) {
		w := put(t, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token passes", func(t *testing.T) {
		claims := middleware.Claims{
			Name: "Aero Engineer",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-42",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		w := put(t, token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("reads stay public", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/variants", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestVariantHistory(t *testing.T) {
	t.Run("without a catalog store returns 503", func(t *testing.T) {
		router := setupVariantsRouter(t, nil, DefaultRouterConfig())

		req := httptest.NewRequest(http.MethodGet, "/api/variants/"+url.PathEscape("Test Regional Jet")+"/history", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("passes the limit query through", func(t *testing.T) {
		repo := new(mocks.MockVariantsRepositoryInterface)
		repo.On("History", mock.Anything, "Test Regional Jet", 5).
			Return([]repository.VariantConfig{{Name: "Test Regional Jet", Version: 2}}, nil)

		router := setupVariantsRouter(t, repo, DefaultRouterConfig())

		req := httptest.NewRequest(http.MethodGet, "/api/variants/"+url.PathEscape("Test Regional Jet")+"/history?limit=5", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
