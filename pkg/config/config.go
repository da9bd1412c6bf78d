package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Supported record sources.
const (
	SourceSheets   = "sheets"
	SourcePostgres = "postgres"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Source      SourceConfig
	Sheets      SheetsConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	CaseStudies CaseStudiesConfig
	Auth        AuthConfig
	CORS        CORSConfig
	Log         LogConfig
	Metrics     MetricsConfig
}

// SourceConfig selects where case study rows are read from.
type SourceConfig struct {
	Driver string
}

// SheetsConfig identifies the published spreadsheet and the service account used to read it.
type SheetsConfig struct {
	SpreadsheetID       string
	SheetName           string
	ServiceAccountEmail string
	PrivateKey          string
	Timeout             time.Duration
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Enabled  bool
	URL      string
	Host     string
	Port     int
	Password string
	DB       int
}

// CaseStudiesConfig tunes record caching. A zero WarmInterval disables background refetching.
type CaseStudiesConfig struct {
	CacheTTL     time.Duration
	WarmInterval time.Duration
}

// AuthConfig holds the shared secrets and session cookie settings for the login gate.
type AuthConfig struct {
	Password        string
	PasswordHash    string
	TokenSecret     string
	SigningSecret   string
	CookieSecure    bool
	SessionMaxAge   time.Duration
	PublicPaths     []string
	RateLimit       int
	RateLimitWindow time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Source = SourceConfig{Driver: strings.ToLower(strings.TrimSpace(v.GetString("SOURCE_DRIVER")))}

	cfg.Sheets = SheetsConfig{
		SpreadsheetID:       v.GetString("SHEETS_SPREADSHEET_ID"),
		SheetName:           v.GetString("SHEETS_SHEET_NAME"),
		ServiceAccountEmail: v.GetString("GOOGLE_SERVICE_ACCOUNT_EMAIL"),
		PrivateKey:          strings.ReplaceAll(v.GetString("GOOGLE_PRIVATE_KEY"), `\n`, "\n"),
		Timeout:             parseDuration(v.GetString("SHEETS_TIMEOUT"), 15*time.Second),
	}

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Enabled:  v.GetBool("REDIS_ENABLED"),
		URL:      v.GetString("REDIS_URL"),
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CaseStudies = CaseStudiesConfig{
		CacheTTL:     parseDuration(v.GetString("CASE_STUDIES_CACHE_TTL"), time.Hour),
		WarmInterval: parseDuration(v.GetString("CASE_STUDIES_WARM_INTERVAL"), 0),
	}

	cfg.Auth = AuthConfig{
		Password:        v.GetString("AUTH_PASSWORD"),
		PasswordHash:    v.GetString("AUTH_PASSWORD_HASH"),
		TokenSecret:     v.GetString("AUTH_TOKEN_SECRET"),
		SigningSecret:   v.GetString("SESSION_SIGNING_SECRET"),
		CookieSecure:    v.GetBool("SESSION_COOKIE_SECURE"),
		SessionMaxAge:   parseDuration(v.GetString("SESSION_MAX_AGE"), 7*24*time.Hour),
		PublicPaths:     splitAndTrim(v.GetString("AUTH_PUBLIC_PATHS")),
		RateLimit:       v.GetInt("AUTH_RATE_LIMIT"),
		RateLimitWindow: parseDuration(v.GetString("AUTH_RATE_WINDOW"), time.Minute),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Metrics = MetricsConfig{Enabled: v.GetBool("ENABLE_METRICS")}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects configurations that would leave the gate or the record source unusable.
// Secrets are only mandatory in production; in development an unset secret disables that scheme.
func (c *Config) Validate() error {
	switch c.Source.Driver {
	case SourceSheets, SourcePostgres:
	default:
		return errors.New("SOURCE_DRIVER must be one of sheets, postgres")
	}
	if c.Env != EnvProduction {
		return nil
	}
	if c.Auth.Password == "" && c.Auth.PasswordHash == "" {
		return errors.New("AUTH_PASSWORD or AUTH_PASSWORD_HASH is required in production")
	}
	if c.Auth.TokenSecret == "" {
		return errors.New("AUTH_TOKEN_SECRET is required in production")
	}
	if c.Source.Driver == SourceSheets && (c.Sheets.ServiceAccountEmail == "" || c.Sheets.PrivateKey == "") {
		return errors.New("GOOGLE_SERVICE_ACCOUNT_EMAIL and GOOGLE_PRIVATE_KEY are required for the sheets source")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api")

	v.SetDefault("SOURCE_DRIVER", SourceSheets)
	v.SetDefault("SHEETS_SPREADSHEET_ID", "1VZwRXjokYMSpFtsXSfgPi0rq_BFxxeCwuBDjkRYAPZo")
	v.SetDefault("SHEETS_SHEET_NAME", "PUBLISHED - Customer Stories")
	v.SetDefault("GOOGLE_SERVICE_ACCOUNT_EMAIL", "")
	v.SetDefault("GOOGLE_PRIVATE_KEY", "")
	v.SetDefault("SHEETS_TIMEOUT", "15s")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "case_studies")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 5)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("CASE_STUDIES_CACHE_TTL", "1h")
	v.SetDefault("CASE_STUDIES_WARM_INTERVAL", "0s")

	v.SetDefault("AUTH_PASSWORD", "")
	v.SetDefault("AUTH_PASSWORD_HASH", "")
	v.SetDefault("AUTH_TOKEN_SECRET", "")
	v.SetDefault("SESSION_SIGNING_SECRET", "")
	v.SetDefault("SESSION_COOKIE_SECURE", false)
	v.SetDefault("SESSION_MAX_AGE", "168h")
	v.SetDefault("AUTH_PUBLIC_PATHS", "/health,/ready,/metrics")
	v.SetDefault("AUTH_RATE_LIMIT", 0)
	v.SetDefault("AUTH_RATE_WINDOW", "1m")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("ENABLE_METRICS", true)
}

func isMissingFile(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
