package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string

	ListenAddr string

	// BackendBaseURL is the root of the marketplace API this frontend
	// delegates every business operation to.
	BackendBaseURL string

	AuthCookieSecure bool
	DefaultLocale    string

	LogLevel  string
	LogFormat string

	OTLPEndpoint string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	environment := getenv("ENVIRONMENT", "development")
	authCookieSecure := environment == "production"
	if !authCookieSecure {
		authCookieSecure = getenvBool("AUTH_COOKIE_SECURE", false)
	}

	return Config{
		AppName:          getenv("APP_SERVICE", "vitrina"),
		AppVersion:       getenv("APP_VERSION", "0.1.0"),
		Environment:      environment,
		ListenAddr:       getenv("LISTEN_ADDR", ":3000"),
		BackendBaseURL:   strings.TrimRight(getenv("BACKEND_BASE_URL", "http://localhost:5000"), "/"),
		AuthCookieSecure: authCookieSecure,
		DefaultLocale:    getenv("DEFAULT_LOCALE", "en"),
		LogLevel:         strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogFormat:        strings.ToLower(getenv("LOG_FORMAT", "json")),
		OTLPEndpoint:     getenv("OTLP_ENDPOINT", "localhost:4317"),
	}
}

func (c Config) IsDev() bool {
	switch strings.ToLower(strings.TrimSpace(c.Environment)) {
	case "dev", "development", "local", "test":
		return true
	default:
		return false
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// Module wires application configuration.
var Module = fx.Module("config",
	fx.Provide(
		Load,
		NewUIConfigHolder,
	),
)
