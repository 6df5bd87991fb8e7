package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr    string
	DatabaseDSN string
	JWTSecret   string

	// Upload limits, bytes.
	MaxUploadBytes int64

	// Object storage backing the media CDN.
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	// Public base URL media files are served from, e.g. an ImageKit
	// endpoint fronting the bucket. Object keys get appended to this.
	MediaURLEndpoint string

	CORSOrigins []string
}

func Load() Config {
	cfg := Config{
		HTTPAddr:         getEnv("SIMPLESOCIAL_HTTP_ADDR", ":8000"),
		DatabaseDSN:      getEnv("SIMPLESOCIAL_DB_DSN", "file:simplesocial.db?cache=shared&mode=rwc"),
		JWTSecret:        getEnv("SIMPLESOCIAL_JWT_SECRET", "dev-secret-change"),
		MaxUploadBytes:   getEnvInt64("SIMPLESOCIAL_MAX_UPLOAD_BYTES", 50<<20),
		MinioEndpoint:    getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey:   getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey:   getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinioBucket:      getEnv("MINIO_BUCKET", "simplesocial-media"),
		MinioUseSSL:      getEnv("MINIO_USE_SSL", "false") == "true",
		MediaURLEndpoint: getEnv("MEDIA_URL_ENDPOINT", "http://localhost:9000/simplesocial-media"),
		CORSOrigins:      splitList(getEnv("SIMPLESOCIAL_CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")),
	}
	if cfg.JWTSecret == "dev-secret-change" {
		log.Println("WARNING: using development JWT secret; set SIMPLESOCIAL_JWT_SECRET")
	}
	return cfg
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
