// Package main provides catalogctl, the command line interface for the
// catalog service.
//
// The catalog service exposes a catalog of items over HTTP, persists them in
// a document database and reports its own health to an orchestrator.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: storage abstractions and backends
//   - pkg/health: health check aggregation
//   - pkg/metrics: Prometheus request metrics
//   - pkg/seed: item manifest loading
//   - pkg/db: document store connection utilities
//   - pkg/config: configuration management
//
// # Quick Start
//
//	# Start the server
//	catalogctl server
//
//	# Wait for the instance to report ready
//	catalogctl wait
//
//	# Load an item manifest
//	catalogctl seed items.yml
//
// # Environment Variables
//
//   - CATALOG_STORE_HOST / CATALOG_STORE_PORT: document store endpoint
//   - CATALOG_STORE_USERNAME / CATALOG_STORE_PASSWORD: optional credentials
//   - CATALOG_STORE_DATABASE: database name (default: catalog)
//   - BIND_ADDRESS / PORT: HTTP listen address (default: 0.0.0.0:8080)
//   - CATALOG_CONFIG_PATH: directory holding catalog.yml
package main
