package server

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"catalog-in-go/pkg/config"
	"catalog-in-go/pkg/health"
	"catalog-in-go/pkg/metrics"
	"catalog-in-go/pkg/server/store"
)

// storeCheckName is how the store reachability check appears in readiness
// reports. Monitoring dashboards key on it.
const storeCheckName = "catalog-store"

type Server struct {
	Config      *config.CatalogConfig
	ItemsStore  store.ItemsStore
	HealthStore store.HealthStore
	Health      *health.Registry
	Metrics     *metrics.RequestMetrics
	Router      *mux.Router
	srv         *http.Server
}

func NewServer(
	cfg *config.CatalogConfig,
	itemsStore store.ItemsStore,
	healthStore store.HealthStore,
) *Server {

	router := mux.NewRouter().UseEncodedPath()

	requestMetrics := metrics.NewRequestMetrics()
	router.Use(requestMetrics.Middleware)

	registry := health.NewRegistry()
	registry.Register(health.Check{
		Name:    storeCheckName,
		Tags:    []string{health.TagReady},
		Timeout: 3 * time.Second,
		Run:     healthStore.CheckConnectivity,
	})

	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    cfg.BindAddress + ":" + cfg.Port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Config:      cfg,
		ItemsStore:  itemsStore,
		HealthStore: healthStore,
		Health:      registry,
		Metrics:     requestMetrics,
		Router:      router,
		srv:         srv,
	}
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
