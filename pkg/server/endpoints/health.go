package endpoints

import (
	"net/http"

	"catalog-in-go/pkg/health"
	"catalog-in-go/pkg/server"
)

// RegisterHealthEndpoints registers the orchestrator probe endpoints
func RegisterHealthEndpoints(s *server.Server) {
	// GET /health/live - process responsiveness only, never touches dependencies
	s.Router.HandleFunc("/health/live", handleLive()).Methods("GET")

	// GET /health/ready - aggregated dependency checks tagged "ready"
	s.Router.HandleFunc("/health/ready", handleReady(s.Health)).Methods("GET")
}

// handleLive answers with an empty healthy report. Serving the response at
// all is the signal; a dead store must not cause a process restart.
func handleLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, health.Report{
			Status: health.Healthy.String(),
			Checks: []health.Entry{},
		})
	}
}

func handleReady(registry *health.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := registry.Run(r.Context(), health.TagReady)

		code := http.StatusOK
		if report.Status != health.Healthy.String() {
			code = http.StatusServiceUnavailable
		}
		respondWithJSON(w, code, report)
	}
}
