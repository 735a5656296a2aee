package config

import "os"

// GetEnv reads a variable from the environment. godotenv loads .env in
// main before anything calls this.
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvOrDefault returns fallback when the variable is unset or empty.
func GetEnvOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
