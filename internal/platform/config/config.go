package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported values for DB_DRIVER.
const (
	DriverPostgres     = "postgres"
	DriverGormPostgres = "gorm-postgres"
	DriverGormMySQL    = "gorm-mysql"
	DriverMemory       = "memory"
)

const (
	defaultPort                     = "8080"
	defaultLogLevel                 = "info"
	defaultDBDriver                 = DriverPostgres
	defaultLockTimeout              = 5 * time.Second
	defaultStatementTimeout         = 30 * time.Second
	defaultCurrency                 = "USD"
	defaultAccountNumberMaxAttempts = 100
	defaultCreateWalletMaxRetries   = 5
	defaultRateLimit                = "100-M"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     string

	DBDriver         string
	DatabaseURL      string
	MySQLDSN         string
	LockTimeout      time.Duration
	StatementTimeout time.Duration
	RunMigrations    bool

	DefaultCurrency          string
	AccountNumberMaxAttempts int
	CreateWalletMaxRetries   int

	RateLimit          string
	RedisURL           string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", defaultPort)
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("DB_DRIVER", defaultDBDriver)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("MYSQL_DSN", "")
	viper.SetDefault("DB_LOCK_TIMEOUT", defaultLockTimeout.String())
	viper.SetDefault("DB_STATEMENT_TIMEOUT", defaultStatementTimeout.String())
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("DEFAULT_CURRENCY", defaultCurrency)
	viper.SetDefault("ACCOUNT_NUMBER_MAX_ATTEMPTS", defaultAccountNumberMaxAttempts)
	viper.SetDefault("CREATE_WALLET_MAX_RETRIES", defaultCreateWalletMaxRetries)
	viper.SetDefault("RATE_LIMIT", defaultRateLimit)
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.LogLevel = strings.ToLower(viper.GetString("LOG_LEVEL"))
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", cfg.LogLevel, defaultLogLevel)
		cfg.LogLevel = defaultLogLevel
	}

	cfg.DBDriver = strings.ToLower(viper.GetString("DB_DRIVER"))
	switch cfg.DBDriver {
	case DriverPostgres, DriverGormPostgres, DriverGormMySQL, DriverMemory:
	default:
		log.Printf("Warning: Invalid value for DB_DRIVER ('%s'). Defaulting to %s.\n", cfg.DBDriver, defaultDBDriver)
		cfg.DBDriver = defaultDBDriver
	}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" && (cfg.DBDriver == DriverPostgres || cfg.DBDriver == DriverGormPostgres) {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	cfg.MySQLDSN = viper.GetString("MYSQL_DSN")
	if cfg.MySQLDSN == "" && cfg.DBDriver == DriverGormMySQL {
		log.Println("Warning: MYSQL_DSN environment variable not set.")
	}

	cfg.LockTimeout = durationOrDefault("DB_LOCK_TIMEOUT", defaultLockTimeout)
	cfg.StatementTimeout = durationOrDefault("DB_STATEMENT_TIMEOUT", defaultStatementTimeout)
	cfg.RunMigrations = viper.GetBool("RUN_MIGRATIONS")

	cfg.DefaultCurrency = strings.ToUpper(strings.TrimSpace(viper.GetString("DEFAULT_CURRENCY")))
	if len(cfg.DefaultCurrency) != 3 {
		log.Printf("Warning: Invalid value for DEFAULT_CURRENCY ('%s'). Defaulting to %s.\n", cfg.DefaultCurrency, defaultCurrency)
		cfg.DefaultCurrency = defaultCurrency
	}

	cfg.AccountNumberMaxAttempts = positiveIntOrDefault("ACCOUNT_NUMBER_MAX_ATTEMPTS", defaultAccountNumberMaxAttempts)
	cfg.CreateWalletMaxRetries = positiveIntOrDefault("CREATE_WALLET_MAX_RETRIES", defaultCreateWalletMaxRetries)

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}
	cfg.RedisURL = viper.GetString("REDIS_URL")

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func positiveIntOrDefault(key string, def int) int {
	v := viper.GetInt(key)
	if v <= 0 {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %d.\n", key, viper.GetString(key), def)
		return def
	}
	return v
}
