package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/vos-crm/crm/pkg/httpx"
)

type Config struct {
	Env       string // Environment (dev, test, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)
	Port      int    // HTTP server port (default: 8080)

	JWTSecret string        // Required in prod: HS256 secret, at least 32 bytes
	JWTTTL    time.Duration // Token lifetime (default: 7 days)
	Issuer    string        // Issuer claim (default: vos-crm)

	CORSOrigins    []string // Allowed origins (default: *)
	TrustedProxies []string // Peers whose X-Forwarded-For is believed (default: none)

	DatabaseURL string // postgres://... or a sqlite path (default: crm.db)
	PepperFile  string // Path to the password pepper file (default: ./pepper)

	UploadDir      string // Document storage root (default: ./uploads)
	MaxUploadBytes int64  // Upload size cap (default: 25 MiB)

	SMTPHost   string // Empty selects the log-only mailer
	SMTPPort   string // (default: 587)
	SMTPSecure bool   // Implicit TLS instead of STARTTLS
	SMTPUser   string
	SMTPPass   string
	MailFrom   string // (default: noreply@vos-crm.nl)

	FrontendURL string // Base of invite links (default: http://localhost:5173)

	AddressLookupURL     string        // PDOK locatieserver free search endpoint
	AddressLookupTimeout time.Duration // (default: 5s)

	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

const (
	defaultMaxUploadBytes   = 25 << 20
	defaultAddressLookupURL = "https://api.pdok.nl/bzk/locatieserver/search/v3_1/free"
)

// LoadConfig reads the environment, after loading ./.env when present.
func LoadConfig() Config {
	// A missing .env is the normal case in containers.
	_ = godotenv.Load()
	httpx.LoadRateLimitsFromEnv()

	cfg := Config{
		Env:       getEnvOrDefault("ENV", "dev"),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "json"),
		Port:      getEnvIntOrDefault("PORT", 8080),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    getEnvDurationOrDefault("JWT_TTL", 7*24*time.Hour),
		Issuer:    getEnvOrDefault("JWT_ISSUER", "vos-crm"),

		CORSOrigins:    httpx.SplitList(getEnvOrDefault("CORS_ORIGIN", "*")),
		TrustedProxies: httpx.SplitList(os.Getenv("TRUSTED_PROXIES")),

		DatabaseURL: getEnvOrDefault("DATABASE_URL", "crm.db"),
		PepperFile:  getEnvOrDefault("PEPPER_FILE", "pepper"),

		UploadDir:      getEnvOrDefault("UPLOAD_DIR", "uploads"),
		MaxUploadBytes: int64(getEnvIntOrDefault("MAX_UPLOAD_BYTES", defaultMaxUploadBytes)),

		SMTPHost:   os.Getenv("SMTP_HOST"),
		SMTPPort:   getEnvOrDefault("SMTP_PORT", "587"),
		SMTPSecure: getEnvBoolOrDefault("SMTP_SECURE", false),
		SMTPUser:   os.Getenv("SMTP_USER"),
		SMTPPass:   os.Getenv("SMTP_PASS"),
		MailFrom:   getEnvOrDefault("MAIL_FROM", "noreply@vos-crm.nl"),

		FrontendURL: getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),

		AddressLookupURL:     getEnvOrDefault("ADDRESS_LOOKUP_URL", defaultAddressLookupURL),
		AddressLookupTimeout: getEnvDurationOrDefault("ADDRESS_LOOKUP_TIMEOUT", 5*time.Second),

		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	return cfg
}

// IsProd reports whether the service runs in production.
func (c Config) IsProd() bool {
	return strings.EqualFold(c.Env, "prod") || strings.EqualFold(c.Env, "production")
}

// Validate rejects configurations that must not start.
func (c Config) Validate() error {
	if c.IsProd() && c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required in production")
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < 32 {
		return errors.New("JWT_SECRET must be at least 32 bytes")
	}
	if c.MaxUploadBytes <= 0 {
		return errors.New("MAX_UPLOAD_BYTES must be positive")
	}
	if _, err := httpx.ParseTrustedProxies(c.TrustedProxies); err != nil {
		return fmt.Errorf("TRUSTED_PROXIES: %w", err)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
