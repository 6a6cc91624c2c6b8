package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Log      LogConfig
	Cron     CronConfig
	Fetch    FetchConfig
	Telegram TelegramConfig
	WhatsApp WhatsAppConfig
	Site     SiteConfig
}

type AppConfig struct {
	Name string
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig cache for stats and hot listings
type RedisConfig struct {
	URL      string // redis://localhost:6379
	Password string
	DB       int
}

// NATSConfig optional event bus; empty URL disables it
type NATSConfig struct {
	URL string // nats://localhost:4222
}

type JWTConfig struct {
	Secret string
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string // logs/app.log
	MaxSize    int    // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// CronConfig scheduling and trigger-endpoint secret
type CronConfig struct {
	Secret      string // pre-shared key for /cron/* endpoints
	FetchExpr   string // cron expression for the fetch pipeline
	CleanupExpr string // cron expression for the maintenance sweep
	Enabled     bool   // false = external trigger only
}

// FetchConfig source fetching limits
type FetchConfig struct {
	Timeout       time.Duration // per-source network timeout
	RunBudget     time.Duration // wall-clock budget for one pipeline run
	Concurrency   int           // bounded parallel source fetches
	UserAgent     string
	RetentionDays int // EXPIRED → ARCHIVED after this many days
}

type TelegramConfig struct {
	BotToken  string
	ChannelID string
}

// WhatsAppConfig gateway HTTP API keyed by bearer token
type WhatsAppConfig struct {
	APIURL      string
	AccessToken string
	ChannelID   string
}

// SiteConfig public site used for deep links in channel messages
type SiteConfig struct {
	BaseURL string // e.g. https://jobupdate.site
}

func LoadConfig() (*Config, error) {
	// missing .env is fine, environment variables are used directly
	_ = godotenv.Load()

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	fetchTimeout, _ := strconv.Atoi(getEnv("FETCH_TIMEOUT_SECONDS", "10"))
	runBudget, _ := strconv.Atoi(getEnv("FETCH_RUN_BUDGET_SECONDS", "120"))
	concurrency, _ := strconv.Atoi(getEnv("FETCH_CONCURRENCY", "4"))
	retentionDays, _ := strconv.Atoi(getEnv("ARCHIVE_RETENTION_DAYS", "90"))
	cronEnabled := getEnv("CRON_ENABLED", "true") == "true"

	config := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "JobUpdate API"),
			Port: getEnv("APP_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "jobupdate"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		NATS: NATSConfig{
			URL: getEnv("NATS_URL", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "both"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
		Cron: CronConfig{
			Secret:      getEnv("CRON_SECRET", ""),
			FetchExpr:   getEnv("CRON_FETCH_EXPR", "0 */2 * * *"),
			CleanupExpr: getEnv("CRON_CLEANUP_EXPR", "30 1 * * *"),
			Enabled:     cronEnabled,
		},
		Fetch: FetchConfig{
			Timeout:       time.Duration(fetchTimeout) * time.Second,
			RunBudget:     time.Duration(runBudget) * time.Second,
			Concurrency:   concurrency,
			UserAgent:     getEnv("FETCH_USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
			RetentionDays: retentionDays,
		},
		Telegram: TelegramConfig{
			BotToken:  getEnv("TELEGRAM_BOT_TOKEN", ""),
			ChannelID: getEnv("TELEGRAM_CHANNEL_ID", ""),
		},
		WhatsApp: WhatsAppConfig{
			APIURL:      getEnv("WHATSAPP_API_URL", ""),
			AccessToken: getEnv("WHATSAPP_ACCESS_TOKEN", ""),
			ChannelID:   getEnv("WHATSAPP_CHANNEL_ID", ""),
		},
		Site: SiteConfig{
			BaseURL: getEnv("SITE_URL", "https://jobupdate.site"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsDevelopment reports development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction reports production mode
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
