// Package app holds the shared configuration and storage wiring for the POS
// admin command suite.
package app

import (
	"os"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Storage backend names.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds the complete application configuration, loadable from
// environment variables (POS_ prefix), flags, or YAML config files.
type Config struct {
	Storage     string `default:"memory" usage:"Storage backend: memory or postgres"`
	DatabaseURL string `usage:"PostgreSQL connection URL (POS_DATABASE_URL or DATABASE_URL)" flag:"database-url"`
	OutputDir   string `default:"reports" usage:"Directory for generated report files" flag:"output-dir"`
	Report      ReportConfig
	Export      ExportConfig
}

// ReportConfig sizes the ranked sections of the monthly report.
type ReportConfig struct {
	TopItems     int `default:"5" usage:"Ranked items in the monthly report" flag:"top-items"`
	TopCustomers int `default:"4" usage:"Ranked customers in the monthly report" flag:"top-customers"`
}

// ExportConfig selects the document produced by a report-export invocation.
type ExportConfig struct {
	Kind    string `default:"monthly" usage:"Document kind: receipt, monthly, annual, customers, items"`
	Period  string `default:"2024-01" usage:"Report period: YYYY-MM for monthly, YYYY for annual"`
	OrderID string `usage:"Order id for receipt export" flag:"order-id"`
}

// LoadConfig loads configuration from environment variables, flags, YAML
// config files, and applies platform-specific defaults.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "POS",
		Files:     []string{"config.yaml", "/etc/pos-admin/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()

	switch cfg.Storage {
	case StorageMemory:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("database URL is required: set POS_DATABASE_URL or DATABASE_URL")
		}
	default:
		return nil, errors.Errorf("unknown storage backend: %q", cfg.Storage)
	}

	return &cfg, nil
}

// applyPlatformDefaults maps platform-provided environment variables that
// use standard names like DATABASE_URL to the application's POS_-prefixed
// configuration.
func (c *Config) applyPlatformDefaults() {
	if c.DatabaseURL == "" {
		if v := os.Getenv("DATABASE_URL"); v != "" {
			c.DatabaseURL = v
		}
	}
}
