// Package config provides configuration management for the catalog server.
//
// Configuration is loaded once at startup from an optional YAML file merged
// with environment variables; environment values take precedence. The
// resulting settings are immutable for the process lifetime.
//
// # Configuration Sources
//
//   - catalog.yml under CATALOG_CONFIG_PATH (optional)
//   - Environment variables (override file values)
//
// # Key Configuration Options
//
//   - BIND_ADDRESS / PORT: HTTP listen address
//   - CATALOG_STORE_HOST / CATALOG_STORE_PORT: document store endpoint
//   - CATALOG_STORE_USERNAME / CATALOG_STORE_PASSWORD: optional credentials
//   - CATALOG_STORE_DATABASE: database name
package config
