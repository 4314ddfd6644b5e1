package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	STORAGE_DRIVER=postgres
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=admin
//	POSTGRES_PASSWORD=secret
//	POSTGRES_DB=businessdays
//	POSTGRES_SSLMODE=disable
//	HOLIDAYS_CACHE_MIN_YEAR=1750
//	HOLIDAYS_CACHE_MAX_YEAR=2250
//	HOLIDAYS_CUSTOM=01/10,02/10
//	HOLIDAYS_WARM_CACHE=true
//	RATE_LIMIT_PER_MINUTE=120
type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Postgres PostgresConfig
	Holidays HolidaysConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string // TCP port the HTTP server listens on (e.g., "8080")
	RateLimitPerMinute int    // requests allowed per client IP per minute
}

// StorageConfig selects where custom holidays are persisted.
//
// Driver is "postgres" or "memory". The memory driver keeps custom holidays
// for the lifetime of the process only.
type StorageConfig struct {
	Driver string
}

// PostgresConfig defines connection details for PostgreSQL.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// HolidaysConfig tunes the holiday calendar.
//
// Fields:
//   - CacheMinYear, CacheMaxYear: inclusive range of years whose Easter date is memoized.
//   - Custom: extra "DD/MM" holidays registered at startup.
//   - WarmCache: precompute the whole cacheable range on startup.
type HolidaysConfig struct {
	CacheMinYear int
	CacheMaxYear int
	Custom       []string
	WarmCache    bool
}

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// AppConfig is the globally accessible configuration instance, populated by LoadConfig().
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() terminates the app.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 120)

	viper.SetDefault("STORAGE_DRIVER", DriverPostgres)

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "businessdays")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("HOLIDAYS_CACHE_MIN_YEAR", 1750)
	viper.SetDefault("HOLIDAYS_CACHE_MAX_YEAR", 2250)
	viper.SetDefault("HOLIDAYS_CUSTOM", "")
	viper.SetDefault("HOLIDAYS_WARM_CACHE", false)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			RateLimitPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(strings.TrimSpace(viper.GetString("STORAGE_DRIVER"))),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Holidays: HolidaysConfig{
			CacheMinYear: viper.GetInt("HOLIDAYS_CACHE_MIN_YEAR"),
			CacheMaxYear: viper.GetInt("HOLIDAYS_CACHE_MAX_YEAR"),
			Custom:       splitList(viper.GetString("HOLIDAYS_CUSTOM")),
			WarmCache:    viper.GetBool("HOLIDAYS_WARM_CACHE"),
		},
	}

	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	validateConfig()
}

// splitList turns "01/10, 02/10" into ["01/10", "02/10"], dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// problems lists missing or invalid settings of AppConfig.
// Postgres settings are only required with the postgres driver.
func problems() []string {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Server.RateLimitPerMinute <= 0 {
		missing = append(missing, "RATE_LIMIT_PER_MINUTE")
	}
	switch AppConfig.Storage.Driver {
	case DriverMemory:
	case DriverPostgres:
		if AppConfig.Postgres.Host == "" {
			missing = append(missing, "POSTGRES_HOST")
		}
		if AppConfig.Postgres.Port == 0 {
			missing = append(missing, "POSTGRES_PORT")
		}
		if AppConfig.Postgres.User == "" {
			missing = append(missing, "POSTGRES_USER")
		}
		if AppConfig.Postgres.Password == "" {
			missing = append(missing, "POSTGRES_PASSWORD")
		}
		if AppConfig.Postgres.DBName == "" {
			missing = append(missing, "POSTGRES_DB")
		}
	default:
		missing = append(missing, "STORAGE_DRIVER")
	}
	if AppConfig.Holidays.CacheMinYear == 0 || AppConfig.Holidays.CacheMaxYear == 0 ||
		AppConfig.Holidays.CacheMinYear > AppConfig.Holidays.CacheMaxYear {
		missing = append(missing, "HOLIDAYS_CACHE_MIN_YEAR/HOLIDAYS_CACHE_MAX_YEAR")
	}
	return missing
}

// validateConfig terminates the application when required settings are
// missing or invalid.
func validateConfig() {
	if missing := problems(); len(missing) > 0 {
		log.Fatalf("❌ Missing or invalid environment variables: %v\n", missing)
	}
}
