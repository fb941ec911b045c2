package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		NewHandlers(zerolog.Nop()).RegisterRoutes(r)
	})
	return r
}

func historyJSON(days int, units float64) string {
	points := make([]string, 0, days)
	for i := 0; i < days; i++ {
		points = append(points, fmt.Sprintf(
			`{"date":"2025-01-%02d","units_sold":%g,"inventory_on_hand":40,"unit_price":2.99}`,
			i+1, units))
	}
	out := "["
	for i, p := range points {
		if i > 0 {
			out += ","
		}
		out += p
	}
	return out + "]"
}

func TestHandleMetrics(t *testing.T) {
	router := newTestRouter()

	body := fmt.Sprintf(`{"product_id":"Milk","history":%s}`, historyJSON(30, 10))
	req := httptest.NewRequest(http.MethodPost, "/api/scoring/metrics", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Milk", resp["product_id"])
	assert.InDelta(t, 10.0, resp["current_avg"].(float64), 1e-9)
}

func TestHandleMetrics_MissingProductID(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/scoring/metrics", bytes.NewBufferString(`{"history":[]}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMetrics_EmptyHistory(t *testing.T) {
	router := newTestRouter()

	body := `{"product_id":"Milk","history":[]}`
	req := httptest.NewRequest(http.MethodPost, "/api/scoring/metrics", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "insufficient")
}

func TestHandleClassify(t *testing.T) {
	router := newTestRouter()

	body := fmt.Sprintf(`{"product_id":"Milk","history":%s,"forecast_growth_pct":15}`, historyJSON(30, 10))
	req := httptest.NewRequest(http.MethodPost, "/api/scoring/classify", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Metrics        map[string]interface{} `json:"metrics"`
		Classification map[string]interface{} `json:"classification"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Classification["category"])
	assert.NotEmpty(t, resp.Classification["recommended_action"])
}

func TestHandleClassify_InvalidBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/scoring/classify", bytes.NewBufferString(`{`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
