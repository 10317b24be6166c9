package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by the server.
const (
	envAddress     = "ADDRESS"
	envDatabaseDSN = "DATABASE_DSN"
	envSecretKey   = "JWT_SECRET"
	envTokenTTL    = "TOKEN_TTL"
	envBcryptCost  = "BCRYPT_COST"
)

// parseEnv overlays Config fields from the process environment. A .env
// file in the working directory is loaded first if present; already-set
// variables win over the file.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envAddress); v != "" {
		config.Address = v
	}
	if v := os.Getenv(envDatabaseDSN); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv(envSecretKey); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv(envTokenTTL); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenTTL = d
		}
	}
	if v := os.Getenv(envBcryptCost); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
}
