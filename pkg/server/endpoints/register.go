package endpoints

import (
	"catalog-in-go/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterItemsEndpoints(srv)
	RegisterHealthEndpoints(srv)
	RegisterMetricsEndpoint(srv)
}

// RegisterMetricsEndpoint exposes the Prometheus scrape endpoint
func RegisterMetricsEndpoint(srv *server.Server) {
	srv.Router.Handle("/metrics", srv.Metrics.Handler()).Methods("GET")
}
