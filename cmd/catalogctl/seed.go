package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"catalog-in-go/pkg/config"
	"catalog-in-go/pkg/db"
	"catalog-in-go/pkg/seed"
	"catalog-in-go/pkg/server/store"
	mongostore "catalog-in-go/pkg/server/store/mongo"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed <file>",
	Short: "Load an item manifest into the catalog",
	Long: `Load a YAML item manifest into the catalog.

Item names already present in the store are skipped, so repeated loads of
the same manifest are idempotent. With --watch the manifest is reloaded
whenever the file changes.

Example:
  catalogctl seed items.yml
  catalogctl seed items.yml --watch`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filename := args[0]
		watch, _ := cmd.Flags().GetBool("watch")

		itemsStore, err := connectItemsStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to connect to store: %v\n", err)
			os.Exit(1)
		}
		loader := seed.NewLoader(itemsStore)

		if err := loadSeedFile(loader, filename); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load seed file: %v\n", err)
			os.Exit(1)
		}

		if !watch {
			return
		}

		if err := watchSeedFile(loader, filename); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch seed file: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().Bool("watch", false, "reload the manifest when the file changes")
}

func connectItemsStore() (store.ItemsStore, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	client, err := db.Connect(context.Background(), db.Config{URI: cfg.ConnectionURI()})
	if err != nil {
		return nil, err
	}

	return mongostore.NewItemsStore(client.Database(cfg.Store.Database)), nil
}

func loadSeedFile(loader *seed.Loader, filename string) error {
	result, err := loader.LoadFile(context.Background(), filename)
	if err != nil {
		return err
	}

	output, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(output))
	return nil
}

func watchSeedFile(loader *seed.Loader, filename string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filename); err != nil {
		return fmt.Errorf("failed to watch file %s: %w", filename, err)
	}

	fmt.Printf("Watching %s for manifest changes\n", filename)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				fmt.Printf("[%s] File modified, reloading manifest...\n", time.Now().Format(time.RFC3339))
				if err := loadSeedFile(loader, filename); err != nil {
					fmt.Fprintf(os.Stderr, "Error reloading manifest: %v\n", err)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-sigChan:
			fmt.Println("Stopping watch")
			return nil
		}
	}
}
