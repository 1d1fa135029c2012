// Package config load and validate process configuration from environment.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	// Load .env file to environments
	_ "github.com/joho/godotenv/autoload"
)

// Storage provider selectors.
const (
	ProviderFile     = "file"
	ProviderPostgres = "postgres"
)

// Default values, matching the long-standing deployment knobs.
const (
	defaultPort             = 4010
	defaultDataFile         = "data/jobs.json"
	defaultClickDataFile    = "data/clicks.json"
	defaultAllowOrigin      = "http://localhost:3000,http://localhost:3010,http://localhost:5173"
	defaultRateLimitWindow  = 15 * time.Minute
	defaultMaxSubmit        = 20
	defaultMaxAdminLogin    = 30
	defaultMaxClick         = 60
	defaultClickDedupWindow = time.Minute
	defaultOpenAIModel      = "gpt-4o-mini"
	defaultTokenTTL         = 24 * time.Hour
)

var bcryptHashPattern = regexp.MustCompile(`^\$2[aby]\$\d{2}\$[./A-Za-z0-9]{53}$`)

// Config holds everything the server needs at startup. It is built once in
// main and passed down explicitly; nothing reads the environment afterwards.
type Config struct {
	Env  string
	Port int

	StorageProvider string
	DataFile        string
	ClickDataFile   string
	DBConnStr       string

	AllowOrigins []string

	AdminUsername     string
	AdminPasswordHash string
	AdminTokenSecret  string
	AdminTokenTTL     time.Duration

	OpenAIKey   string
	OpenAIModel string

	RateLimitWindow   time.Duration
	RateLimitSubmit   uint
	RateLimitLogin    uint
	RateLimitClick    uint
	ClickDedupWindow  time.Duration
}

// Load reads configuration from environment variables, applies defaults and
// validates the admin credential shape. Validation of admin credentials is
// skipped when APP_ENV=test so handler tests can construct their own.
func Load() (*Config, error) {
	cfg := &Config{
		Env:               getEnvDefault("APP_ENV", "development"),
		Port:              getEnvInt("PORT", defaultPort),
		StorageProvider:   getEnvDefault("STORAGE_PROVIDER", ProviderFile),
		DataFile:          getEnvDefault("DATA_FILE", defaultDataFile),
		ClickDataFile:     getEnvDefault("CLICK_DATA_FILE", defaultClickDataFile),
		DBConnStr:         os.Getenv("DB_CONNECTION_STR"),
		AllowOrigins:      splitOrigins(getEnvDefault("ALLOW_ORIGIN", defaultAllowOrigin)),
		AdminUsername:     strings.TrimSpace(os.Getenv("ADMIN_USERNAME")),
		AdminPasswordHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
		AdminTokenSecret:  os.Getenv("ADMIN_TOKEN_SECRET"),
		AdminTokenTTL:     defaultTokenTTL,
		OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:       getEnvDefault("OPENAI_MODEL", defaultOpenAIModel),
		RateLimitWindow:   getEnvMillis("RATE_LIMIT_WINDOW_MS", defaultRateLimitWindow),
		RateLimitSubmit:   getEnvUint("RATE_LIMIT_MAX_SUBMIT", defaultMaxSubmit),
		RateLimitLogin:    getEnvUint("RATE_LIMIT_MAX_ADMIN_LOGIN", defaultMaxAdminLogin),
		RateLimitClick:    getEnvUint("RATE_LIMIT_MAX_CLICK", defaultMaxClick),
		ClickDedupWindow:  getEnvMillis("CLICK_DEDUPE_WINDOW_MS", defaultClickDedupWindow),
	}

	if cfg.ClickDedupWindow < time.Millisecond {
		cfg.ClickDedupWindow = defaultClickDedupWindow
	}

	switch cfg.StorageProvider {
	case ProviderFile, ProviderPostgres:
	default:
		return nil, fmt.Errorf("STORAGE_PROVIDER must be %q or %q, got %q",
			ProviderFile, ProviderPostgres, cfg.StorageProvider)
	}

	if cfg.StorageProvider == ProviderPostgres && cfg.DBConnStr == "" {
		return nil, fmt.Errorf("STORAGE_PROVIDER=postgres requires DB_CONNECTION_STR")
	}

	if cfg.Env != "test" {
		if err := cfg.validateAdminCredentials(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// AdminAuthConfigured reports whether the login endpoint can operate.
func (c *Config) AdminAuthConfigured() bool {
	return c.AdminUsername != "" && c.AdminPasswordHash != "" && c.AdminTokenSecret != ""
}

// AIConfigured reports whether the remote extraction model can be called.
func (c *Config) AIConfigured() bool {
	return c.OpenAIKey != ""
}

func (c *Config) validateAdminCredentials() error {
	if c.AdminUsername == "" {
		return fmt.Errorf("missing required env: ADMIN_USERNAME")
	}
	if len(c.AdminUsername) < 3 {
		return fmt.Errorf("ADMIN_USERNAME must be at least 3 characters")
	}
	if c.AdminPasswordHash == "" {
		return fmt.Errorf("missing required env: ADMIN_PASSWORD_HASH")
	}
	if !bcryptHashPattern.MatchString(c.AdminPasswordHash) {
		return fmt.Errorf("ADMIN_PASSWORD_HASH must be a valid bcrypt hash")
	}
	if c.AdminTokenSecret == "" {
		return fmt.Errorf("missing required env: ADMIN_TOKEN_SECRET")
	}
	if len(c.AdminTokenSecret) < 32 {
		return fmt.Errorf("ADMIN_TOKEN_SECRET must be at least 32 characters")
	}
	return nil
}

func getEnvDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getEnvUint(key string, fallback uint) uint {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return uint(v)
}

func getEnvMillis(key string, fallback time.Duration) time.Duration {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return time.Duration(v) * time.Millisecond
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
