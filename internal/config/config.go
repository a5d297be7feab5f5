package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Supported asset storage drivers.
const (
	StorageDriverLocal = "local"
	StorageDriverMinio = "minio"
)

// AppConfig bundles everything the server needs at startup.
type AppConfig struct {
	ListenAddr string
	Port       string
	AppEnv     string

	DatabasePath string

	JWTSecret         string
	JWTRefreshSecret  string
	JWTAccessTTLSecs  int
	JWTRefreshTTLSecs int

	// Bootstrap admin account created on startup when both values are set.
	AdminEmail    string
	AdminPassword string

	// Asset storage. StorageDriver selects exactly one backend: "local" or "minio".
	StorageDriver  string
	UploadDir      string
	UploadURLPath  string
	BaseURL        string // fixed-base URL resolution when set; request-derived otherwise
	MaxUploadBytes int64

	// MinIO / S3-compatible object storage.
	StorageEndpoint   string
	StorageAccessKey  string
	StorageSecretKey  string
	StorageBucket     string
	StorageUseSSL     bool
	StoragePublicBase string

	CORSAllowedOrigins []string
}

// Load reads a .env file when present, then environment variables, providing
// safe defaults for anything missing.
func Load() AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	port := getEnv("PORT", "3005")
	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	return AppConfig{
		ListenAddr: listenAddr,
		Port:       port,
		AppEnv:     getEnv("APP_ENV", "development"),

		DatabasePath: getEnv("DATABASE_PATH", "victoriaclean.db"),

		JWTSecret:         getEnv("JWT_SECRET", "victoriaclean-dev-secret"),
		JWTRefreshSecret:  getEnv("JWT_REFRESH_SECRET", "victoriaclean-dev-refresh-secret"),
		JWTAccessTTLSecs:  getEnvInt("JWT_ACCESS_EXPIRES_IN", 3600),
		JWTRefreshTTLSecs: getEnvInt("JWT_REFRESH_EXPIRES_IN", 86400),

		AdminEmail:    strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))),
		AdminPassword: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),

		StorageDriver:  getEnv("STORAGE_DRIVER", "local"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		UploadURLPath:  getEnv("UPLOAD_URL_PATH", "/uploads"),
		BaseURL:        strings.TrimRight(strings.TrimSpace(os.Getenv("BASE_URL")), "/"),
		MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", 100<<20),

		StorageEndpoint:   getEnv("STORAGE_ENDPOINT", "localhost:9000"),
		StorageAccessKey:  getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
		StorageSecretKey:  getEnv("STORAGE_SECRET_KEY", "minioadmin"),
		StorageBucket:     getEnv("STORAGE_BUCKET", "victoriaclean"),
		StorageUseSSL:     getEnv("STORAGE_USE_SSL", "false") == "true",
		StoragePublicBase: strings.TrimRight(getEnv("STORAGE_PUBLIC_BASE", "http://localhost:9000/victoriaclean"), "/"),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
	}
}

// IsProduction reports whether the app runs in production mode.
// Error detail is suppressed from responses outside development.
func (c AppConfig) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return parsed
}

func getEnvInt64(key string, fallback int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || parsed <= 0 {
		log.Printf("config: invalid %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return parsed
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
