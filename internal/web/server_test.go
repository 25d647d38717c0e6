package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"carbonwise/internal/api"
	"carbonwise/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, backend http.HandlerFunc) *Server {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	client, err := api.NewClient(srv.URL, 5*time.Second)
	require.NoError(t, err)
	return &Server{client: client}
}

func TestHandleAnalyzeReturnsViewModel(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fp := 7.5
		json.NewEncoder(w).Encode(api.AnalyzeResponse{
			Success:         true,
			ProductName:     "Spoon Set",
			CarbonFootprint: &fp,
		})
	})

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"url":" https://amazon.com/dp/X "}`))
	rec := httptest.NewRecorder()
	s.handleAnalyze(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var reply analyzeReply
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&reply))
	require.NotNil(t, reply.Result)
	assert.Equal(t, "Spoon Set", reply.Result.Product)
	assert.Equal(t, "7.50", reply.Result.Carbon)
	require.NotNil(t, reply.Recommendations)
	assert.Empty(t, reply.Recommendations)
}

func TestHandleAnalyzeValidation(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("backend must not be called for empty input")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"url":"   "}`))
	rec := httptest.NewRecorder()
	s.handleAnalyze(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please enter a valid product URL.")
}

func TestHandleAnalyzeBackendFailure(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"url":"https://x"}`))
	rec := httptest.NewRecorder()
	s.handleAnalyze(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "status 500")
}

func TestHandleAnalyzeServiceReportedFailure(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.AnalyzeResponse{Success: false, Error: "Unsupported URL"})
	})

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"url":"https://x"}`))
	rec := httptest.NewRecorder()
	s.handleAnalyze(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unsupported URL")
}

func TestHandleAnalyzeRejectsGET(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/analyze", nil)
	rec := httptest.NewRecorder()
	s.handleAnalyze(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleRecommendations(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.RecommendationsResponse{
			Success: true,
			Recommendations: map[string][]float64{
				"Steel Bottle": {12.5},
				"Glass Bottle": {4.2},
			},
		})
	})

	req := httptest.NewRequest(http.MethodPost, "/api/recommendations?material=Plastic", nil)
	rec := httptest.NewRecorder()
	s.handleRecommendations(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var recs []model.Recommendation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&recs))
	require.Len(t, recs, 2)
	assert.Equal(t, "Glass Bottle", recs[0].ProductName, "sorted ascending by footprint")
}

func TestHandleRecommendationsRequiresMaterial(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodPost, "/api/recommendations", nil)
	rec := httptest.NewRecorder()
	s.handleRecommendations(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.HealthResponse{Message: "CarbonWise API is running!"})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	s.handleHealth(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "CarbonWise API is running!")
	assert.Contains(t, rec.Body.String(), model.Version)
}

func TestHandleHelpInterpolatesVersion(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/help", nil)
	rec := httptest.NewRecorder()
	s.handleHelp(rec, req)

	assert.Contains(t, rec.Body.String(), model.Version)
	assert.NotContains(t, rec.Body.String(), "{{VERSION}}")
}
