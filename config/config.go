package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Env Environment

	// Server configuration
	ServerPort     string
	ServerHost     string
	AllowedOrigins []string

	// Database configuration. DBDriver is "postgres" or "sqlite".
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	SQLitePath    string
	MigrationsDir string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// Recipe generator
	LLMEndpoint              string
	LLMModel                 string
	LLMAPIKey                string
	LLMTimeout               time.Duration
	LLMMultilineInstructions bool
	RecipeCount              int
	RecipeRateLimit          int
	RecipeRateWindow         time.Duration

	// Item image storage
	S3Bucket  string
	AWSRegion string
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// DSN returns the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

var defaults = map[string]string{
	"server_port":                "5000",
	"server_host":                "0.0.0.0",
	"allowed_origins":            "*",
	"db_driver":                  "postgres",
	"db_host":                    "localhost",
	"db_port":                    "5432",
	"db_user":                    "postgres",
	"db_password":                "postgres",
	"db_name":                    "nutricheck",
	"db_ssl_mode":                "disable",
	"sqlite_path":                "nutricheck.db",
	"migrations_dir":             "migrations",
	"redis_host":                 "localhost",
	"redis_port":                 "6379",
	"redis_db":                   "0",
	"jwt_secret":                 "dev-secret-change-me",
	"llm_endpoint":               "http://localhost:11434/v1/chat/completions",
	"llm_model":                  "llama3",
	"llm_timeout":                "120s",
	"llm_multiline_instructions": "false",
	"recipe_count":               "5",
	"recipe_rate_limit":          "20",
	"recipe_rate_window":         "1h",
	"s3_bucket":                  "nutricheck-food-images",
}

// LoadConfig reads configuration for the current environment and validates it.
//
// CI reads environment variables only. Every other environment reads Docker secrets
// from SECRETS_DIR (default /run/secrets) and falls back to environment variables;
// development and test additionally fall back to local defaults.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	l := &loader{env: env, secretsDir: secretsDir()}

	cfg := &Config{
		Env:                      env,
		ServerPort:               l.str("server_port"),
		ServerHost:               l.str("server_host"),
		AllowedOrigins:           splitList(l.str("allowed_origins")),
		DBDriver:                 strings.ToLower(l.str("db_driver")),
		DBHost:                   l.str("db_host"),
		DBPort:                   l.str("db_port"),
		DBUser:                   l.str("db_user"),
		DBPassword:               l.str("db_password"),
		DBName:                   l.str("db_name"),
		DBSSLMode:                l.str("db_ssl_mode"),
		SQLitePath:               l.str("sqlite_path"),
		MigrationsDir:            l.str("migrations_dir"),
		RedisHost:                l.str("redis_host"),
		RedisPort:                l.str("redis_port"),
		RedisPassword:            l.str("redis_password"),
		RedisDB:                  l.int("redis_db"),
		RedisURL:                 l.str("redis_url"),
		JWTSecret:                l.str("jwt_secret"),
		LLMEndpoint:              l.str("llm_endpoint"),
		LLMModel:                 l.str("llm_model"),
		LLMAPIKey:                l.str("llm_api_key"),
		LLMTimeout:               l.duration("llm_timeout"),
		RecipeCount:              l.int("recipe_count"),
		RecipeRateLimit:          l.int("recipe_rate_limit"),
		RecipeRateWindow:         l.duration("recipe_rate_window"),
		LLMMultilineInstructions: l.bool("llm_multiline_instructions"),
		S3Bucket:                 l.str("s3_bucket"),
		AWSRegion:                l.str("aws_region"),
	}

	if len(l.errs) > 0 {
		return nil, fmt.Errorf("failed to load %s configuration:\n%s", env, joinErrors(l.errs))
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func secretsDir() string {
	if dir := os.Getenv("SECRETS_DIR"); dir != "" {
		return dir
	}
	return "/run/secrets"
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(dir, name string) string {
	if data, err := os.ReadFile(filepath.Join(dir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

type loader struct {
	env        Environment
	secretsDir string
	errs       []error
}

// str resolves a key: secret file (lower_case), then env var (UPPER_CASE), then default.
func (l *loader) str(key string) string {
	if l.env.readsSecrets() {
		if v := readSecret(l.secretsDir, key); v != "" {
			return v
		}
	}
	if v := os.Getenv(strings.ToUpper(key)); v != "" {
		return v
	}
	if l.env.allowsDefaults() {
		return defaults[key]
	}
	return ""
}

func (l *loader) int(key string) int {
	raw := l.str(key)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		l.errs = append(l.errs, ValidationError{Field: key, Message: fmt.Sprintf("not an integer: %q", raw)})
	}
	return n
}

func (l *loader) bool(key string) bool {
	raw := l.str(key)
	if raw == "" {
		return false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		l.errs = append(l.errs, ValidationError{Field: key, Message: fmt.Sprintf("not a boolean: %q", raw)})
	}
	return b
}

func (l *loader) duration(key string) time.Duration {
	raw := l.str(key)
	if raw == "" {
		return 0
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		l.errs = append(l.errs, ValidationError{Field: key, Message: fmt.Sprintf("not a duration: %q", raw)})
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
