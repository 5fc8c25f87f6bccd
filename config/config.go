package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the application configuration.
type Config struct {
	Port          string
	GinMode       string
	LogLevel      string
	DBDriver      string
	DBDSN         string
	JWTSecret     []byte
	JWTTTL        time.Duration
	KafkaBrokers  []string
	KafkaTopic    string
	CORSOrigins   []string
	AdminEmail    string
	AdminPassword string
}

// Load reads the configuration from the environment, after loading .env if present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.Warnf("could not read .env: %v", err)
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBDSN:         getEnv("DB_DSN", "file:ordereat.db?_pragma=foreign_keys(1)"),
		JWTSecret:     []byte(getEnv("JWT_SECRET", "ordereat_super_secret_change_me")),
		JWTTTL:        getDuration("JWT_TTL", 24*time.Hour),
		KafkaBrokers:  getList("KAFKA_BROKERS"),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "orders"),
		CORSOrigins:   getListOr("CORS_ORIGINS", []string{"*"}),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

// SetupLogger configures the global logrus logger.
func (c *Config) SetupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.Warnf("unknown LOG_LEVEL %q, using info", c.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if hours, err := strconv.Atoi(raw); err == nil {
		return time.Duration(hours) * time.Hour
	}
	logrus.Warnf("invalid %s=%q, using %s", key, raw, fallback)
	return fallback
}

func getList(key string) []string {
	return getListOr(key, nil)
}

func getListOr(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
