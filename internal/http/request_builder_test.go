package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conceptair/sizing-service/internal/domain/dto"
)

func newBindContext(t *testing.T, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestBuildRequest(t *testing.T) {
	t.Run("binds a valid body", func(t *testing.T) {
		body := `{"variant": ` + mustJSON(t, testVariant()) + `, "w0": 90000}`
		c := newBindContext(t, body)

		req, err := BuildRequest[dto.FixedW0Request](c)
		require.NoError(t, err)
		assert.Equal(t, 90000.0, req.W0)
		assert.Equal(t, "Test Regional Jet", req.Variant.Name)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		c := newBindContext(t, "{broken")

		_, err := BuildRequest[dto.FixedW0Request](c)
		assert.Error(t, err)
	})
}

func TestBuildRequestAndValidate(t *testing.T) {
	t.Run("runs the request's validator", func(t *testing.T) {
		variant := testVariant()
		variant.OswaldE = 1.5
		body := `{"variant": ` + mustJSON(t, variant) + `, "w0": 90000}`
		c := newBindContext(t, body)

		_, err := BuildRequestAndValidate[dto.FixedW0Request](c)
		assert.Error(t, err)
	})

	t.Run("fills bracket defaults", func(t *testing.T) {
		body := `{"variant": ` + mustJSON(t, testVariant()) + `, "w0": 80000}`
		c := newBindContext(t, body)

		req, err := BuildRequestAndValidate[dto.MaxRangeRequest](c)
		require.NoError(t, err)
		assert.Equal(t, 100.0, req.LoNM)
		assert.Equal(t, 5000.0, req.HiNM)
	})
}

func TestUnmarshalFromReader(t *testing.T) {
	body := `{"variant": ` + mustJSON(t, testVariant()) + `, "ranges_nm": [1000, 2000]}`

	req, err := UnmarshalFromReader[dto.SweepRequest](strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, []float64{1000, 2000}, req.Ranges)
}

func TestUnmarshalFromBytes(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		req, err := UnmarshalFromBytes[dto.SweepRequest]([]byte(`{"ranges_nm": [1850]}`))
		require.NoError(t, err)
		assert.Equal(t, []float64{1850}, req.Ranges)
	})

	t.Run("invalid payload", func(t *testing.T) {
		_, err := UnmarshalFromBytes[dto.SweepRequest]([]byte("nope"))
		assert.Error(t, err)
	})
}

func TestMarshalToWriter(t *testing.T) {
	var buf bytes.Buffer
	err := MarshalToWriter(&buf, dto.MaxRangeResponse{MaxRangeNM: 1460})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"max_range_nm":1460`)
}
