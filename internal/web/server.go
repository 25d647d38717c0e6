package web

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"carbonwise/internal/api"
	"carbonwise/internal/model"
	"carbonwise/internal/workflow"
)

//go:embed help.md
var helpMD string

// Server exposes the analysis workflow as a local JSON API, so a browser
// frontend can consume normalized view models instead of the raw backend
// payload.
type Server struct {
	client *api.Client
}

// StartServer blocks, serving the local API on the given port.
func StartServer(client *api.Client, port string) {
	s := &Server{client: client}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/recommendations", s.handleRecommendations)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/help", s.handleHelp)

	fmt.Printf("Starting carbonwise web server at http://localhost:%s\n", port)
	fmt.Printf("Analysis backend: %s\n", client.BaseURL())

	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Fatal(err)
	}
}

// analyzeBody mirrors the frontend's request shape.
type analyzeBody struct {
	URL string `json:"url"`
}

// analyzeReply is the normalized view model handed to the browser.
type analyzeReply struct {
	Result          *model.AnalysisResult  `json:"result"`
	Recommendations []model.Recommendation `json:"recommendations"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpError(w, http.StatusMethodNotAllowed, "POST only")
		return
	}

	var body analyzeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// Same three stages as the TUI: gate, call, map. The error class picks
	// the status: validation 400, transport 502, service-reported 422.
	trimmed, err := workflow.ValidateURL(body.URL)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	raw, err := s.client.Analyze(r.Context(), trimmed)
	if err != nil {
		httpError(w, http.StatusBadGateway, err.Error())
		return
	}

	result, recs, err := workflow.Map(raw)
	if err != nil {
		httpError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, analyzeReply{Result: result, Recommendations: recs})
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	material := strings.TrimSpace(r.URL.Query().Get("material"))
	if material == "" {
		httpError(w, http.StatusBadRequest, "material is required")
		return
	}

	raw, err := s.client.Alternatives(r.Context(), material)
	if err != nil {
		httpError(w, http.StatusBadGateway, err.Error())
		return
	}

	recs, err := workflow.MapAlternatives(material, raw)
	if err != nil {
		httpError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, recs)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	message, err := s.client.Health(r.Context())
	if err != nil {
		httpError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, map[string]string{
		"backend": message,
		"version": model.Version,
	})
}

func (s *Server) handleHelp(w http.ResponseWriter, _ *http.Request) {
	text := strings.ReplaceAll(helpMD, "{{VERSION}}", model.Version)
	w.Header().Set("Content-Type", "text/markdown")
	w.Write([]byte(text))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
