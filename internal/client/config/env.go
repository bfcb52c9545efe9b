package config

import "os"

// parseEnv overlays Config with values from environment variables.
//
// Supported variables:
//
//	SERVER_ADDRESS  base URL of the backend HTTP endpoint
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv("SERVER_ADDRESS"); ok && v != "" {
		cfg.ServerEndpointAddr = v
	}
}
