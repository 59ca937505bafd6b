package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	Environment string
	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string

	APIKey         string // API key for authentication
	TrustedProxies []string
	CORSOrigins    []string
	RateLimit      int

	StorageDriver string
	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        string
	DBName        string
	DBSSLMode     string
	DBMaxConns    int
	DBMaxIdle     time.Duration
	DBMaxLifetime time.Duration
	RunMigrations bool

	CatalogPath      string
	SpinCost         int
	StartingCurrency int

	AdminHandles    []string
	AdminMatchMode  string
	AdminDenialMode string
	AdminCacheSize  int
	AdminCacheTTL   time.Duration

	EventDeadLetterPath string
	ShutdownTimeout     time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", EnvDev),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "text")),
		LogDir:      getEnv("LOG_DIR", "logs"),
		ServiceName: getEnv("SERVICE_NAME", "fntd-world"),
		Version:     getEnv("VERSION", "dev"),

		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
		CORSOrigins:    getEnvAsList("CORS_ALLOWED_ORIGINS"),
		RateLimit:      getEnvAsInt("RATE_LIMIT", DefaultRateLimit),

		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", StoragePostgres)),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBName:        getEnv("DB_NAME", "fntdworld"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		DBMaxConns:    getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxIdle:     getEnvAsDuration("DB_MAX_IDLE", DefaultDBMaxIdle),
		DBMaxLifetime: getEnvAsDuration("DB_MAX_LIFETIME", DefaultDBMaxLifetime),
		RunMigrations: getEnvAsBool("RUN_MIGRATIONS", true),

		CatalogPath:      getEnv("CATALOG_PATH", ""),
		SpinCost:         getEnvAsInt("SPIN_COST", 1000),
		StartingCurrency: getEnvAsInt("STARTING_CURRENCY", 500),

		AdminHandles:    getEnvAsList("ADMIN_HANDLES"),
		AdminMatchMode:  strings.ToLower(getEnv("ADMIN_MATCH_MODE", "case_insensitive")),
		AdminDenialMode: strings.ToLower(getEnv("ADMIN_DENIAL_MODE", "not_found")),
		AdminCacheSize:  getEnvAsInt("ADMIN_CACHE_SIZE", DefaultAdminCacheSize),
		AdminCacheTTL:   getEnvAsDuration("ADMIN_CACHE_TTL", DefaultAdminCacheTTL),

		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", ""),
		ShutdownTimeout:     getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	var problems []string

	switch c.StorageDriver {
	case StoragePostgres, StorageMemory:
	default:
		problems = append(problems, fmt.Sprintf("STORAGE_DRIVER must be %q or %q, got %q", StoragePostgres, StorageMemory, c.StorageDriver))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("LOG_FORMAT must be text or json, got %q", c.LogFormat))
	}
	switch c.AdminMatchMode {
	case "case_insensitive", "exact":
	default:
		problems = append(problems, fmt.Sprintf("ADMIN_MATCH_MODE must be case_insensitive or exact, got %q", c.AdminMatchMode))
	}
	switch c.AdminDenialMode {
	case "not_found", "unauthorized":
	default:
		problems = append(problems, fmt.Sprintf("ADMIN_DENIAL_MODE must be not_found or unauthorized, got %q", c.AdminDenialMode))
	}
	if c.SpinCost <= 0 {
		problems = append(problems, fmt.Sprintf("SPIN_COST must be positive, got %d", c.SpinCost))
	}
	if c.StartingCurrency < 0 {
		problems = append(problems, fmt.Sprintf("STARTING_CURRENCY must not be negative, got %d", c.StartingCurrency))
	}
	if c.RateLimit <= 0 {
		problems = append(problems, fmt.Sprintf("RATE_LIMIT must be positive, got %d", c.RateLimit))
	}
	if c.DBMaxConns <= 0 {
		problems = append(problems, fmt.Sprintf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
