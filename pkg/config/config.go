package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/artem13815/hr/screening/pkg/modelstore"
)

// Model store backends.
const (
	StoreFile     = "file"
	StoreS3       = "s3"
	StorePostgres = "postgres"
)

type S3 struct {
	Bucket    string `yaml:"bucket"`
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

type Config struct {
	Port        string `yaml:"port"`
	AppEnv      string `yaml:"app_env"`
	LogLevel    string `yaml:"log_level"`
	MaxUploadMB int    `yaml:"max_upload_mb"`
	CORSOrigins string `yaml:"cors_origins"`

	ModelStore  string `yaml:"model_store"`
	ModelPath   string `yaml:"model_path"`
	DatabaseURL string `yaml:"database_url"`
	S3          S3     `yaml:"s3"`
	Pretrain    bool   `yaml:"pretrain"`

	RabbitMQURL string `yaml:"rabbitmq_url"`

	JWTSecret     string `yaml:"jwt_secret"`
	JWTIssuer     string `yaml:"jwt_issuer"`
	JWTTTLMinutes int    `yaml:"jwt_ttl_minutes"`
}

func defaults() Config {
	return Config{
		Port:          "5000",
		AppEnv:        "development",
		LogLevel:      "info",
		MaxUploadMB:   16,
		CORSOrigins:   "*",
		ModelStore:    StoreFile,
		ModelPath:     modelstore.DefaultKey,
		S3:            S3{Region: "auto"},
		JWTIssuer:     "screening-service",
		JWTTTLMinutes: 60,
	}
}

// Load reads configuration: defaults, then the optional YAML file named by
// CONFIG_FILE (config.yaml), then environment variables, optionally from .env.
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := defaults()
	if err := readFile(getEnv("CONFIG_FILE", "config.yaml"), &cfg); err != nil {
		return Config{}, err
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.AppEnv = getEnv("APP_ENV", cfg.AppEnv)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.MaxUploadMB = getEnvInt("MAX_UPLOAD_MB", cfg.MaxUploadMB)
	cfg.CORSOrigins = getEnv("CORS_ORIGINS", cfg.CORSOrigins)
	cfg.ModelStore = strings.ToLower(getEnv("MODEL_STORE", cfg.ModelStore))
	cfg.ModelPath = getEnv("MODEL_PATH", cfg.ModelPath)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.S3.Bucket = getEnv("S3_BUCKET", cfg.S3.Bucket)
	cfg.S3.Endpoint = getEnv("S3_ENDPOINT", cfg.S3.Endpoint)
	cfg.S3.Region = getEnv("S3_REGION", cfg.S3.Region)
	cfg.S3.AccessKey = getEnv("S3_ACCESS_KEY", cfg.S3.AccessKey)
	cfg.S3.SecretKey = getEnv("S3_SECRET_KEY", cfg.S3.SecretKey)
	cfg.Pretrain = getEnvBool("PRETRAIN", cfg.Pretrain)
	cfg.RabbitMQURL = getEnv("RABBITMQ_URL", cfg.RabbitMQURL)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.JWTIssuer = getEnv("JWT_ISSUER", cfg.JWTIssuer)
	cfg.JWTTTLMinutes = getEnvInt("JWT_TTL_MINUTES", cfg.JWTTTLMinutes)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the selected model store has what it needs.
func (c Config) Validate() error {
	switch c.ModelStore {
	case StoreFile:
		if c.ModelPath == "" {
			return errors.New("config: MODEL_PATH is required for the file model store")
		}
	case StoreS3:
		if c.S3.Bucket == "" {
			return errors.New("config: S3_BUCKET is required for the s3 model store")
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			return errors.New("config: DATABASE_URL is required for the postgres model store")
		}
	default:
		return fmt.Errorf("config: unknown MODEL_STORE %q (want file, s3 or postgres)", c.ModelStore)
	}
	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("config: MAX_UPLOAD_MB must be positive, got %d", c.MaxUploadMB)
	}
	return nil
}

// AuthEnabled reports whether admin-only routes require a token.
func (c Config) AuthEnabled() bool { return c.JWTSecret != "" }

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
