package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if !strings.HasPrefix(c.Auth.LoginURL, "/") {
		return fmt.Errorf("auth.login_url must be a local path (got %q)", c.Auth.LoginURL)
	}
	if c.Auth.CookieName == "" {
		return fmt.Errorf("auth.cookie_name must not be empty")
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in 4..31 (got %d)", c.Auth.PasswordHashCost)
	}

	if c.Posts.PageSize < 1 || c.Posts.PageSize > 100 {
		return fmt.Errorf("posts.page_size must be in 1..100 (got %d)", c.Posts.PageSize)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.RateLimit.LoginPerMinute <= 0 {
		return fmt.Errorf("rate_limit.login_per_minute must be > 0 (got %d)", c.RateLimit.LoginPerMinute)
	}

	return nil
}
