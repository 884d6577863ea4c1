package config

import (
	"os"
	"path/filepath"
)

// Getenv returns the value of key, or fallback when unset or empty.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DefaultOutputPath is where the rendered clip lands unless overridden.
func DefaultOutputPath() string {
	return filepath.Join(OutputDir, OutputFile)
}

// APIAddr returns the listen address for API mode (PORT env or :8080).
func APIAddr() string {
	if v := os.Getenv("PORT"); v != "" {
		return ":" + v
	}
	return ":8080"
}

// S3Bucket returns the archive bucket name; empty disables archival.
func S3Bucket() string {
	return os.Getenv("S3_BUCKET")
}

// S3Region returns the AWS region override for the archive client.
func S3Region() string {
	return os.Getenv("AWS_REGION")
}

// RedisAddr returns the render-history Redis address; empty disables history.
func RedisAddr() string {
	return os.Getenv("REDIS_ADDR")
}
