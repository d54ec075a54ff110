package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/catalog/config"
	ConfigFileName    = "catalog.yml"
)

// ConnectionSettings describes the document store endpoint. It is read
// exactly once at startup to build the connection string.
type ConnectionSettings struct {
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"-"`
	Database string `yaml:"database" json:"database"`
}

// CatalogConfig holds all catalog server configuration settings
type CatalogConfig struct {
	// BindAddress is the address the HTTP server listens on
	BindAddress string `yaml:"bind_address" json:"bind_address"`

	// Port is the HTTP server listen port
	Port string `yaml:"port" json:"port"`

	// Store is the document store connection configuration
	Store ConnectionSettings `yaml:"store" json:"store"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// newDefault returns a config with default values
func newDefault() *CatalogConfig {
	return &CatalogConfig{
		BindAddress: "0.0.0.0",
		Port:        "8080",
		Store: ConnectionSettings{
			Host:     "localhost",
			Port:     27017,
			Database: "catalog",
		},
		sources: make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*CatalogConfig, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("CATALOG_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig CatalogConfig
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"bind_address", "port", "store_host", "store_port",
		"store_username", "store_password", "store_database",
	}
}

func (c *CatalogConfig) applyFileConfig(file *CatalogConfig) {
	if file.BindAddress != "" {
		c.BindAddress = file.BindAddress
		c.sources["bind_address"] = "file"
	}
	if file.Port != "" {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
	if file.Store.Host != "" {
		c.Store.Host = file.Store.Host
		c.sources["store_host"] = "file"
	}
	if file.Store.Port != 0 {
		c.Store.Port = file.Store.Port
		c.sources["store_port"] = "file"
	}
	if file.Store.Username != "" {
		c.Store.Username = file.Store.Username
		c.sources["store_username"] = "file"
	}
	if file.Store.Password != "" {
		c.Store.Password = file.Store.Password
		c.sources["store_password"] = "file"
	}
	if file.Store.Database != "" {
		c.Store.Database = file.Store.Database
		c.sources["store_database"] = "file"
	}
}

func (c *CatalogConfig) applyEnvConfig() {
	if val := os.Getenv("BIND_ADDRESS"); val != "" {
		c.BindAddress = val
		c.sources["bind_address"] = "environment"
	}
	if val := os.Getenv("PORT"); val != "" {
		c.Port = val
		c.sources["port"] = "environment"
	}
	if val := os.Getenv("CATALOG_STORE_HOST"); val != "" {
		c.Store.Host = val
		c.sources["store_host"] = "environment"
	}
	if val := os.Getenv("CATALOG_STORE_PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.Store.Port = i
			c.sources["store_port"] = "environment"
		}
	}
	if val := os.Getenv("CATALOG_STORE_USERNAME"); val != "" {
		c.Store.Username = val
		c.sources["store_username"] = "environment"
	}
	if val := os.Getenv("CATALOG_STORE_PASSWORD"); val != "" {
		c.Store.Password = val
		c.sources["store_password"] = "environment"
	}
	if val := os.Getenv("CATALOG_STORE_DATABASE"); val != "" {
		c.Store.Database = val
		c.sources["store_database"] = "environment"
	}
}

// ConnectionURI builds the document store connection string. Credentials
// are included only when a username is configured.
func (c *CatalogConfig) ConnectionURI() string {
	u := url.URL{
		Scheme: "mongodb",
		Host:   fmt.Sprintf("%s:%d", c.Store.Host, c.Store.Port),
	}
	if c.Store.Username != "" {
		u.User = url.UserPassword(c.Store.Username, c.Store.Password)
	}
	return u.String()
}

// ConfigFilePath returns the path to the config file
func (c *CatalogConfig) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *CatalogConfig) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// Attributes returns all configuration attributes with their values and
// sources. The store password is redacted.
func (c *CatalogConfig) Attributes() []Attribute {
	password := ""
	if c.Store.Password != "" {
		password = "(redacted)"
	}
	return []Attribute{
		{Name: "bind_address", Value: c.BindAddress, Source: c.Source("bind_address")},
		{Name: "port", Value: c.Port, Source: c.Source("port")},
		{Name: "store_host", Value: c.Store.Host, Source: c.Source("store_host")},
		{Name: "store_port", Value: strconv.Itoa(c.Store.Port), Source: c.Source("store_port")},
		{Name: "store_username", Value: c.Store.Username, Source: c.Source("store_username")},
		{Name: "store_password", Value: password, Source: c.Source("store_password")},
		{Name: "store_database", Value: c.Store.Database, Source: c.Source("store_database")},
	}
}

// FormatText returns a text representation of the configuration
func (c *CatalogConfig) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *CatalogConfig) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
