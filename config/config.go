package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Env               string
	Port              string
	DBURL             string
	RedisURL          string
	AMQPURL           string
	AccessTokenSecret string
	AccessExpiryMin   int
	RefreshExpiryDays int
	Lockout           LockoutPolicy
}

// LockoutPolicy is tunable per deployment; the defaults match the production
// values (5 failures inside 15 minutes locks the pair for 15 minutes).
type LockoutPolicy struct {
	MaxFailures      int `yaml:"max_failures"`
	WindowMinutes    int `yaml:"window_minutes"`
	LockoutMinutes   int `yaml:"lockout_minutes"`
	MinPasswordChars int `yaml:"min_password_chars"`
}

func (p LockoutPolicy) Window() time.Duration {
	return time.Duration(p.WindowMinutes) * time.Minute
}

func (p LockoutPolicy) LockoutDuration() time.Duration {
	return time.Duration(p.LockoutMinutes) * time.Minute
}

func Load() *Config {
	// A missing .env is fine; real env vars always win.
	_ = godotenv.Load()

	cfg := &Config{
		Env:               getEnv("ENV", "development"),
		Port:              getEnv("PORT", "8080"),
		DBURL:             mustGetEnv("DB_URL"),
		RedisURL:          getEnv("REDIS_URL", ""),
		AMQPURL:           getEnv("AMQP_URL", ""),
		AccessTokenSecret: mustGetEnv("ACCESS_TOKEN_SECRET"),
		AccessExpiryMin:   getEnvAsInt("ACCESS_TOKEN_EXPIRY", 60),
		RefreshExpiryDays: getEnvAsInt("REFRESH_TOKEN_EXPIRY_DAYS", 30),
		Lockout: LockoutPolicy{
			MaxFailures:      getEnvAsInt("LOCKOUT_MAX_FAILURES", 5),
			WindowMinutes:    getEnvAsInt("LOCKOUT_WINDOW_MINUTES", 15),
			LockoutMinutes:   getEnvAsInt("LOCKOUT_DURATION_MINUTES", 15),
			MinPasswordChars: getEnvAsInt("MIN_PASSWORD_CHARS", 8),
		},
	}

	if path := getEnv("POLICY_FILE", ""); path != "" {
		if err := cfg.loadPolicyFile(path); err != nil {
			log.Fatalf("Failed to load policy file %s: %v", path, err)
		}
	}

	return cfg
}

func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessExpiryMin) * time.Minute
}

func (c *Config) RefreshTokenTTL() time.Duration {
	return time.Duration(c.RefreshExpiryDays) * 24 * time.Hour
}

func (c *Config) loadPolicyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, &c.Lockout)
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
