package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"catalog-in-go/pkg/config"
	"catalog-in-go/pkg/db"
	"catalog-in-go/pkg/server"
	"catalog-in-go/pkg/server/endpoints"
	mongostore "catalog-in-go/pkg/server/store/mongo"
)

const shutdownTimeout = 15 * time.Second

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the catalog application server",
	Long: `Run the catalog application server.

Configuration is read from catalog.yml (under CATALOG_CONFIG_PATH) merged
with environment variables. The document store connection is established
once at startup and shared by all request handlers.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}

		if host, _ := cmd.Flags().GetString("bind-address"); host != "" {
			cfg.BindAddress = host
		}
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Port = port
		}

		ctx := context.Background()
		client, err := db.Connect(ctx, db.Config{URI: cfg.ConnectionURI()})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to store:", err)
			os.Exit(1)
		}

		database := client.Database(cfg.Store.Database)
		itemsStore := mongostore.NewItemsStore(database)
		healthStore := mongostore.NewHealthStore(client)

		s := server.NewServer(cfg, itemsStore, healthStore)
		endpoints.RegisterAll(s)

		errCh := make(chan error, 1)
		go func() {
			errCh <- s.Start()
		}()
		log.Printf("Running server at http://%s:%s...\n", cfg.BindAddress, cfg.Port)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal(err)
			}
		case sig := <-sigCh:
			log.Printf("Received %s, shutting down...\n", sig)

			shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()

			if err := s.Shutdown(shutdownCtx); err != nil {
				log.Printf("Shutdown error: %v\n", err)
			}
			if err := client.Disconnect(shutdownCtx); err != nil {
				log.Printf("Store disconnect error: %v\n", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", "", "server listen port (overrides PORT)")
	serverCmd.Flags().StringP("bind-address", "b", "", "server bind address (overrides BIND_ADDRESS)")
}
