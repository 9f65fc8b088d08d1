package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	StorageDriver      string
	SQLitePath         string
	MigrationsPath     string
	RequireTLS         bool
	ViewCacheSize      int
	MutationRateLimit  string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("POSTGRES_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("STORAGE_DRIVER", DriverPostgres)
	viper.SetDefault("SQLITE_PATH", "invoices.db")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("REQUIRE_TLS", true)
	viper.SetDefault("VIEW_CACHE_SIZE", 128)
	viper.SetDefault("MUTATION_RATE_LIMIT", "60-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	// Real environment variables override .env values and defaults.
	viper.AutomaticEnv()

	cfg := &Config{
		Port:              viper.GetString("PORT"),
		IsProduction:      viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:     viper.GetBool("ENABLE_DB_CHECK"),
		StorageDriver:     strings.ToLower(strings.TrimSpace(viper.GetString("STORAGE_DRIVER"))),
		SQLitePath:        viper.GetString("SQLITE_PATH"),
		MigrationsPath:    viper.GetString("MIGRATIONS_PATH"),
		RequireTLS:        viper.GetBool("REQUIRE_TLS"),
		ViewCacheSize:     viper.GetInt("VIEW_CACHE_SIZE"),
		MutationRateLimit: strings.TrimSpace(viper.GetString("MUTATION_RATE_LIMIT")),
	}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = viper.GetString("POSTGRES_URL")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StorageDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: neither PGSQL_URL nor POSTGRES_URL is set.")
		}
	case DriverSQLite:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q (valid: %s, %s)", cfg.StorageDriver, DriverPostgres, DriverSQLite)
	}

	if cfg.ViewCacheSize <= 0 {
		log.Printf("Warning: invalid VIEW_CACHE_SIZE %d. Defaulting to 128.\n", cfg.ViewCacheSize)
		cfg.ViewCacheSize = 128
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
