package v1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/billfold/billfold/internal/api"
	v1 "github.com/billfold/billfold/internal/api/v1"
	"github.com/billfold/billfold/internal/config"
	"github.com/billfold/billfold/internal/httpclient"
	"github.com/billfold/billfold/internal/logger"
	"github.com/billfold/billfold/internal/pdfgen"
	"github.com/billfold/billfold/internal/service"
	"github.com/billfold/billfold/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := config.GetDefaultConfig()
	log := logger.L
	svc := service.NewPDFService(cfg, pdfgen.NewEngine(cfg, log), httpclient.NewDefaultClient(), log)

	return api.NewRouter(api.Handlers{
		Health:   v1.NewHealthHandler(log),
		Document: v1.NewDocumentHandler(svc, log),
	}, log)
}

func renderPayload() map[string]any {
	return map[string]any{
		"kind": "invoice",
		"document": map[string]any{
			"number":   "INV-2024-001",
			"customer": map[string]any{"name": "Acme Corp"},
			"line_items": []map[string]any{
				{"description": "Consulting", "quantity": "1", "unit_price": "100", "amount": "100"},
			},
			"subtotal": "100",
			"tax_rate": "21",
			"total":    "121.00",
			"currency": "usd",
			"status":   "sent",
		},
		"company": map[string]any{"name": "Billfold GmbH"},
	}
}

func postRender(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRenderDocumentReturnsPDF(t *testing.T) {
	router := setupRouter()

	w := postRender(t, router, "/v1/documents/render", renderPayload())
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "invoice-INV-2024-001")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
	assert.NotEmpty(t, w.Header().Get(types.HeaderRequestID))
}

func TestRenderDocumentMeta(t *testing.T) {
	router := setupRouter()

	w := postRender(t, router, "/v1/documents/render?meta=true", renderPayload())
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		FileName  string   `json:"file_name"`
		Kind      string   `json:"kind"`
		PageCount int      `json:"page_count"`
		SizeBytes int      `json:"size_bytes"`
		Sections  []string `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "invoice", resp.Kind)
	assert.Equal(t, 1, resp.PageCount)
	assert.Greater(t, resp.SizeBytes, 0)
	assert.Contains(t, resp.Sections, "line_items")
	assert.Contains(t, resp.FileName, "invoice-INV-2024-001")
}

func TestRenderDocumentMalformedJSON(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/documents/render", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error.Message)
}

func TestRenderDocumentInvalidKind(t *testing.T) {
	router := setupRouter()

	payload := renderPayload()
	payload["kind"] = "memo"

	w := postRender(t, router, "/v1/documents/render", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRenderDocumentMissingNumber(t *testing.T) {
	router := setupRouter()

	payload := renderPayload()
	payload["document"].(map[string]any)["number"] = ""

	w := postRender(t, router, "/v1/documents/render", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
