package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the resolved application configuration.
// Values come from the yaml config file for the current APP_ENV,
// overridden by environment variables.
type Config struct {
	Env string `yaml:"env"`

	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"database"`

	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	JWT struct {
		Secret    string        `yaml:"secret"`
		ExpiresIn time.Duration `yaml:"expires_in"`
	} `yaml:"jwt"`

	CORS struct {
		AllowOrigins string `yaml:"allow_origins"`
	} `yaml:"cors"`

	Campaign struct {
		// CopyTitleSuffix appends " (복사본)" to the title on duplication.
		// Off by default; the suffix variant is kept for parity with the
		// legacy UI until the owners settle the behavior.
		CopyTitleSuffix bool `yaml:"copy_title_suffix"`
	} `yaml:"campaign"`
}

// LoadDotEnv loads .env files with priority: .env.local > .env
// godotenv.Load does NOT overwrite already-set env vars, so OS env vars
// always win. Returns the list of files actually loaded.
func LoadDotEnv() []string {
	candidates := []string{".env.local", ".env"}
	var loaded []string
	for _, f := range candidates {
		if _, err := os.Stat(f); err == nil {
			loaded = append(loaded, f)
		}
	}
	if len(loaded) > 0 {
		_ = godotenv.Load(loaded...)
	}
	return loaded
}

// Path returns the config file path for the current APP_ENV
func Path() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

// Load reads the yaml config file (when present) and applies env overrides
func Load(path string) (*Config, error) {
	cfg := defaults()

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret is not configured (set JWT_SECRET)")
	}
	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Env = "local"
	cfg.Server.Port = 8080
	cfg.Database.Host = "127.0.0.1"
	cfg.Database.Port = 3306
	cfg.Database.User = "crmcal"
	cfg.Database.Name = "crmcal"
	cfg.Redis.Host = "127.0.0.1"
	cfg.Redis.Port = 6379
	cfg.JWT.ExpiresIn = 24 * time.Hour
	cfg.CORS.AllowOrigins = "http://localhost:3000"
	return cfg
}

func applyEnv(cfg *Config) {
	cfg.Env = getenv("APP_ENV", cfg.Env)
	cfg.Server.Port = getenvInt("PORT", cfg.Server.Port)
	cfg.Database.Host = getenv("DB_HOST", cfg.Database.Host)
	cfg.Database.Port = getenvInt("DB_PORT", cfg.Database.Port)
	cfg.Database.User = getenv("DB_USER", cfg.Database.User)
	cfg.Database.Password = getenv("DB_PASSWORD", cfg.Database.Password)
	cfg.Database.Name = getenv("DB_NAME", cfg.Database.Name)
	cfg.Redis.Enabled = getenvBool("REDIS_ENABLED", cfg.Redis.Enabled)
	cfg.Redis.Host = getenv("REDIS_HOST", cfg.Redis.Host)
	cfg.Redis.Port = getenvInt("REDIS_PORT", cfg.Redis.Port)
	cfg.Redis.Password = getenv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getenvInt("REDIS_DB", cfg.Redis.DB)
	cfg.JWT.Secret = getenv("JWT_SECRET", cfg.JWT.Secret)
	cfg.CORS.AllowOrigins = getenv("CORS_ALLOW_ORIGINS", cfg.CORS.AllowOrigins)
	cfg.Campaign.CopyTitleSuffix = getenvBool("COPY_TITLE_SUFFIX", cfg.Campaign.CopyTitleSuffix)
}

// DSN returns the MySQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

// IsDevelopment reports whether the app runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Env == "local" || c.Env == "dev" || c.Env == "development"
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
