package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.App.Mode {
	case ModeDevelopment, ModeProduction, ModeTest:
	default:
		return fmt.Errorf("app.mode must be one of development, production, test (got %q)", c.App.Mode)
	}

	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in 4..31 (got %d)", c.Auth.PasswordHashCost)
	}

	if c.Exam.MaxQuestions <= 0 {
		return fmt.Errorf("exam.max_questions must be > 0 (got %d)", c.Exam.MaxQuestions)
	}
	if c.Exam.RetentionDays <= 0 {
		return fmt.Errorf("exam.retention_days must be > 0 (got %d)", c.Exam.RetentionDays)
	}
	if c.GraphQL.MaxListLimit <= 0 {
		return fmt.Errorf("graphql.max_list_limit must be > 0 (got %d)", c.GraphQL.MaxListLimit)
	}

	if c.RateLimit.AuthPerMinute <= 0 || c.RateLimit.RESTPerMinute <= 0 {
		return fmt.Errorf("rate_limit budgets must be > 0 (got auth %d, rest %d)",
			c.RateLimit.AuthPerMinute, c.RateLimit.RESTPerMinute)
	}

	if c.App.IsProduction() && strings.TrimSpace(c.CORS.AllowedOrigins) == "*" {
		return fmt.Errorf("cors.allowed_origins must name the client origin in production")
	}

	return nil
}
