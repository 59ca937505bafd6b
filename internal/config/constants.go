package config

import "time"

// Storage drivers
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Environments
const (
	EnvDev        = "dev"
	EnvProduction = "production"
)

// Defaults
const (
	DefaultPort            = 8080
	DefaultDBMaxConns      = 20
	DefaultDBMaxIdle       = 5 * time.Minute
	DefaultDBMaxLifetime   = 30 * time.Minute
	DefaultAdminCacheSize  = 256
	DefaultAdminCacheTTL   = time.Minute
	DefaultShutdownTimeout = 10 * time.Second
	DefaultRateLimit       = 1000 // requests per IP per window
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)
