package config

import "os"

// Config holds the runtime settings read from the environment.
type Config struct {
	Addr       string
	RedisAddr  string
	RedisDB    int
	JWTSecret  string
	LocalesDir string
	QRBaseURL  string
}

// Load reads the configuration from environment variables, falling back to
// local development defaults.
func Load() Config {
	return Config{
		Addr:       getenv("EBOTIKA_ADDR", ":8080"),
		RedisAddr:  getenv("REDIS_ADDR", "localhost:6379"),
		RedisDB:    0,
		JWTSecret:  getenv("JWT_SECRET", "ebotika-dev-secret"),
		LocalesDir: getenv("LOCALES_DIR", "locales"),
		QRBaseURL:  getenv("QR_BASE_URL", "https://api.qrserver.com/v1/create-qr-code/"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
