package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	Cart      CartConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	S3        S3Config
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
	LogFormat   string
	Locale      string
	AssetsDir   string
}

type CatalogConfig struct {
	// Source is an http(s) URL, an s3://bucket/key URI or a local file path.
	Source      string
	Timeout     time.Duration
	RefreshCron string
}

type CartConfig struct {
	Backend string // sqlite, postgres, redis
	Slot    string
	TTL     time.Duration
}

type DatabaseConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string
	SQLitePath string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type S3Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// Load reads configuration from the environment. Files listed in envFiles are
// loaded first; with none given the default .env is tried.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
			LogFormat:   getEnv("LOG_FORMAT", "console"),
			Locale:      getEnv("STORE_LOCALE", "fr"),
			AssetsDir:   getEnv("ASSETS_DIR", "./web/assets"),
		},
		Catalog: CatalogConfig{
			Source:      getEnv("CATALOG_SOURCE", "data/products.json"),
			Timeout:     parseDuration(getEnv("CATALOG_TIMEOUT", "10s"), 10*time.Second),
			RefreshCron: getEnv("CATALOG_REFRESH_CRON", ""),
		},
		Cart: CartConfig{
			Backend: getEnv("CART_BACKEND", "sqlite"),
			Slot:    getEnv("CART_SLOT", "mt_cart"),
			TTL:     parseDuration(getEnv("CART_TTL", "720h"), 720*time.Hour),
		},
		Database: DatabaseConfig{
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "admin"),
			Password:   getEnv("DB_PASSWORD", "1234"),
			DBName:     getEnv("DB_NAME", "storefront"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			SQLitePath: getEnv("SQLITE_PATH", "storefront.db"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       parseInt(getEnv("REDIS_DB", "0"), 0),
		},
		S3: S3Config{
			Region:          getEnv("AWS_REGION", "eu-west-3"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Endpoint:        getEnv("AWS_S3_ENDPOINT", ""),
		},
		RateLimit: RateLimitConfig{
			RPS:   parseFloat(getEnv("RATE_LIMIT_RPS", "20"), 20),
			Burst: parseInt(getEnv("RATE_LIMIT_BURST", "40"), 40),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseList(getEnv("CORS_ALLOWED_ORIGINS", "")),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	switch c.Cart.Backend {
	case "sqlite", "postgres", "redis":
	default:
		return fmt.Errorf("unsupported CART_BACKEND %q", c.Cart.Backend)
	}
	if strings.TrimSpace(c.Catalog.Source) == "" {
		return fmt.Errorf("CATALOG_SOURCE must not be empty")
	}
	if c.Cart.Slot == "" {
		return fmt.Errorf("CART_SLOT must not be empty")
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration %s, using default %s", s, fallback)
		return fallback
	}
	return duration
}

func parseInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("Invalid integer %s, using default %d", s, fallback)
		return fallback
	}
	return v
}

func parseFloat(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("Invalid number %s, using default %v", s, fallback)
		return fallback
	}
	return v
}

func parseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
