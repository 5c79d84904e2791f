package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the %s store driver", StoreDriverPostgres)
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("store.driver must be %q or %q (got %q)", StoreDriverPostgres, StoreDriverMemory, c.Store.Driver)
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if c.RateLimit.RequestsPerMinute > 0 && c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 when limiting is enabled")
	}

	if err := c.Limits.validate(); err != nil {
		return fmt.Errorf("limits: %w", err)
	}

	return nil
}

func (t Tunables) validate() error {
	if t.RecentlyViewedDecksMax <= 0 {
		return fmt.Errorf("recently_viewed_decks_max must be > 0 (got %d)", t.RecentlyViewedDecksMax)
	}
	if t.AnswersFeedLimit <= 0 {
		return fmt.Errorf("answers_feed_limit must be > 0 (got %d)", t.AnswersFeedLimit)
	}
	if t.NameMaxLength <= 0 {
		return fmt.Errorf("name_max_length must be > 0 (got %d)", t.NameMaxLength)
	}
	if t.MaxTags < 0 {
		return fmt.Errorf("max_tags must be >= 0 (got %d)", t.MaxTags)
	}
	if t.MaxTagID < 0 {
		return fmt.Errorf("max_tag_id must be >= 0 (got %d)", t.MaxTagID)
	}
	if t.MaxUsageIncrement <= 0 {
		return fmt.Errorf("max_usage_increment must be > 0 (got %s)", t.MaxUsageIncrement)
	}
	return nil
}
