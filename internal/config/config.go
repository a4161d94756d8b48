package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig      `toml:"app"`
	Auth     AuthConfig     `toml:"auth"`
	Postgres PostgresConfig `toml:"postgres"`
	S3       S3Config       `toml:"s3"`
	Seed     SeedConfig     `toml:"seed"`
}

type AppConfig struct {
	Name    string `toml:"name"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	GinMode string `toml:"gin_mode"`
}

type AuthConfig struct {
	JWTSecret            string `toml:"jwt_secret"`
	TokenLifetimeSeconds int    `toml:"token_lifetime_seconds"`
}

type PostgresConfig struct {
	URL           string `toml:"url"`
	MigrationsDir string `toml:"migrations_dir"`
}

type S3Config struct {
	Endpoint        string `toml:"endpoint"`
	AccessKeyID     string `toml:"access_key_id"`
	SecretAccessKey string `toml:"secret_access_key"`
	Bucket          string `toml:"bucket"`
	Region          string `toml:"region"`
	UseSSL          bool   `toml:"use_ssl"`
}

type SeedConfig struct {
	CSVPath string `toml:"csv_path"`
}

var (
	ErrMissingJWTSecret   = errors.New("jwt secret is not configured (set JWT_SECRET)")
	ErrMissingDatabaseURL = errors.New("database url is not configured (set DATABASE_URL)")
)

func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env failed: %w", err)
		}
	}

	cfg := defaultConfig()

	configPath := getEnv("CONFIG_FILE", "configs/config.toml")
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("decode config file failed: %w", err)
		}
	}

	overrideByEnv(cfg)

	if cfg.Auth.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}
	if cfg.Postgres.URL == "" {
		return nil, ErrMissingDatabaseURL
	}
	return cfg, nil
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "bokasafn",
			Host:    "127.0.0.1",
			Port:    3000,
			GinMode: "debug",
		},
		Auth: AuthConfig{
			// 5 days, matching the lifetime the deployed service has always used.
			TokenLifetimeSeconds: 432000,
		},
		Postgres: PostgresConfig{
			MigrationsDir: "migrations",
		},
		S3: S3Config{
			Region: "us-east-1",
		},
		Seed: SeedConfig{
			CSVPath: "data/books.csv",
		},
	}
}

func overrideByEnv(cfg *Config) {
	cfg.App.Name = getEnv("APP_NAME", cfg.App.Name)
	cfg.App.Host = getEnv("HOST", cfg.App.Host)
	cfg.App.Port = getEnvAsInt("PORT", cfg.App.Port)
	cfg.App.GinMode = getEnv("GIN_MODE", cfg.App.GinMode)

	cfg.Auth.JWTSecret = getEnv("JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Auth.TokenLifetimeSeconds = getEnvAsInt("TOKEN_LIFETIME", cfg.Auth.TokenLifetimeSeconds)

	cfg.Postgres.URL = getEnv("DATABASE_URL", cfg.Postgres.URL)
	cfg.Postgres.MigrationsDir = getEnv("MIGRATIONS_DIR", cfg.Postgres.MigrationsDir)

	cfg.S3.Endpoint = getEnv("S3_ENDPOINT", cfg.S3.Endpoint)
	cfg.S3.AccessKeyID = getEnv("S3_ACCESS_KEY_ID", cfg.S3.AccessKeyID)
	cfg.S3.SecretAccessKey = getEnv("S3_SECRET_ACCESS_KEY", cfg.S3.SecretAccessKey)
	cfg.S3.Bucket = getEnv("S3_BUCKET", cfg.S3.Bucket)
	cfg.S3.Region = getEnv("S3_REGION", cfg.S3.Region)
	if raw, ok := os.LookupEnv("S3_USE_SSL"); ok {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			cfg.S3.UseSSL = parsed
		}
	}

	cfg.Seed.CSVPath = getEnv("SEED_CSV_PATH", cfg.Seed.CSVPath)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
