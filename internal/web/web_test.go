package web

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderIndex(t *testing.T, dashboardURL string) string {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	h, err := New(dashboardURL, logger)
	require.NoError(t, err)

	r := chi.NewRouter()
	h.Register(r)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	return rr.Body.String()
}

func TestHandleIndex(t *testing.T) {
	body := renderIndex(t, "")

	assert.Contains(t, body, "Customer Churn Prediction")
	assert.Contains(t, body, `id="inputs"`, "form container present")
	assert.Contains(t, body, "/api/schema", "form fields come from the schema endpoint")
	assert.Contains(t, body, "/api/predict")
	assert.Contains(t, body, "/api/importance")
	assert.NotContains(t, body, "<iframe", "no dashboard section without a URL")
}

func TestHandleIndex_DashboardEmbed(t *testing.T) {
	url := "https://public.tableau.com/views/churn/Dashboard1"
	body := renderIndex(t, url)

	assert.Contains(t, body, "<iframe")
	assert.True(t, strings.Contains(body, url), "dashboard URL embedded")
}
