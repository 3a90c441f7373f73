package config

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that cfg is usable. All problems are reported together.
func ValidateConfig(cfg *Config) error {
	var errs []error
	require := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, ValidationError{Field: field, Message: "is required"})
		}
	}

	require("server_port", cfg.ServerPort)
	require("jwt_secret", cfg.JWTSecret)
	require("llm_endpoint", cfg.LLMEndpoint)
	require("llm_model", cfg.LLMModel)

	switch cfg.DBDriver {
	case "postgres":
		require("db_host", cfg.DBHost)
		require("db_port", cfg.DBPort)
		require("db_user", cfg.DBUser)
		require("db_password", cfg.DBPassword)
		require("db_name", cfg.DBName)
	case "sqlite":
		require("sqlite_path", cfg.SQLitePath)
	default:
		errs = append(errs, ValidationError{Field: "db_driver", Message: fmt.Sprintf("unsupported driver %q", cfg.DBDriver)})
	}

	if cfg.LLMEndpoint != "" {
		if u, err := url.Parse(cfg.LLMEndpoint); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, ValidationError{Field: "llm_endpoint", Message: "must be an absolute URL"})
		}
	}
	if cfg.LLMTimeout <= 0 {
		errs = append(errs, ValidationError{Field: "llm_timeout", Message: "must be positive"})
	}
	if cfg.RecipeCount < 0 {
		errs = append(errs, ValidationError{Field: "recipe_count", Message: "must not be negative"})
	}
	if cfg.RecipeRateLimit > 0 && cfg.RecipeRateWindow <= 0 {
		errs = append(errs, ValidationError{Field: "recipe_rate_window", Message: "must be positive when a rate limit is set"})
	}

	if cfg.Env == Production && cfg.JWTSecret == defaults["jwt_secret"] {
		errs = append(errs, ValidationError{Field: "jwt_secret", Message: "development secret used in production"})
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", joinErrors(errs))
	}
	return nil
}

func joinErrors(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}
