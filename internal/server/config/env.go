package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/mkravets/bookshelf/internal/flagx"
)

// loadDotenv loads a dotenv file into the process environment before
// parseEnv runs. An explicit path can be given with -e/-env-file; otherwise
// a .env file is looked up in the working directory and up to two parent
// directories. Values already present in the environment win.
func loadDotenv() {
	if path := flagx.EnvFileFlags(); path != "" {
		_ = godotenv.Load(path)
		return
	}
	for _, p := range []string{".env", filepath.Join("..", ".env"), filepath.Join("..", "..", ".env")} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			return
		}
	}
}

// parseEnv overlays Config fields from environment variables.
//
// Recognized variables:
//
//	ADDRESS                 HTTP bind address (e.g. ":8080")
//	DATABASE_DSN            PostgreSQL DSN
//	SECRET_KEY              JWT HMAC secret
//	JWT_ALGORITHM           signing algorithm identifier (HS256/HS384/HS512)
//	ACCESS_TOKEN_VALIDITY   token lifetime as a Go duration string ("20m")
//	CORS_ORIGIN             allowed browser origins, comma-separated
//	DEBUG                   "true"/"1" enables debug logging
func parseEnv(config *Config) {
	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("JWT_ALGORITHM"); v != "" {
		config.SigningAlgorithm = v
	}
	if v := os.Getenv("ACCESS_TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		config.CORSOrigin = v
	}
	if v := os.Getenv("DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.Debug = b
		}
	}
}
