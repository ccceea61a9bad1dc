package config

import (
	"fmt"
	"log"
	"time"

	"roomchat/internal/domain/message"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	AppPort string `envconfig:"APP_PORT" default:"8080"`
	AppMode string `envconfig:"APP_MODE" default:"debug"`
	LogFile string `envconfig:"LOG_FILE"`

	// DB_DRIVER selects the store: a single sqlite file (default) or postgres.
	DBDriver   string `envconfig:"DB_DRIVER" default:"sqlite"`
	DBPath     string `envconfig:"DB_PATH" default:"chat.db"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName     string `envconfig:"DB_NAME" default:"roomchat"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`

	JWTSecret    string `envconfig:"JWT_SECRET" default:"change-me"`
	JWTExpiryMin int    `envconfig:"JWT_EXPIRY_MIN" default:"60"`

	MessageMaxLength int `envconfig:"MESSAGE_MAX_LENGTH" default:"100"`

	RedisEnabled  bool   `envconfig:"REDIS_ENABLED" default:"false"`
	RedisHost     string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     string `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	MessageRateLimit  int           `envconfig:"MESSAGE_RATE_LIMIT" default:"60"`
	MessageRateWindow time.Duration `envconfig:"MESSAGE_RATE_WINDOW" default:"1m"`
	AuthRateLimit     int           `envconfig:"AUTH_RATE_LIMIT" default:"10"`
	AuthRateWindow    time.Duration `envconfig:"AUTH_RATE_WINDOW" default:"1m"`
}

func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("config error: unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.MessageMaxLength <= 0 || c.MessageMaxLength > message.MaxContentLength {
		return fmt.Errorf("config error: MESSAGE_MAX_LENGTH must be between 1 and %d", message.MaxContentLength)
	}
	if c.JWTExpiryMin <= 0 {
		return fmt.Errorf("config error: JWT_EXPIRY_MIN must be positive")
	}
	return nil
}

// PostgresDSN builds the connection string used when DBDriver is postgres.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}
