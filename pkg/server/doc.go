// Package server provides the HTTP server for the catalog API.
//
// This package implements the core HTTP server that handles all catalog REST
// requests. It uses gorilla/mux for routing, gorilla/handlers for access
// logging and Prometheus middleware for request metrics.
//
// # Server Setup
//
//	srv := server.NewServer(cfg, itemsStore, healthStore)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds:
//
//   - ItemsStore: catalog item persistence
//   - HealthStore: store connectivity probe
//   - Health: health check registry polled by /health/ready
//   - Metrics: Prometheus request metrics
//   - Router: HTTP request router
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
//
// This registers:
//
//   - /items - catalog CRUD
//   - /health/live, /health/ready - orchestrator probes
//   - /metrics - Prometheus exposition
package server
