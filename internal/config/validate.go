package config

import (
	"fmt"
	"net/url"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Chapterdesk.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("chapterdesk.base_url must be an absolute URL (got %q)", c.Chapterdesk.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("chapterdesk.base_url must use http or https (got %q)", u.Scheme)
	}
	if c.Chapterdesk.Timeout <= 0 {
		return fmt.Errorf("chapterdesk.timeout must be > 0 (got %v)", c.Chapterdesk.Timeout)
	}

	if c.Poll.Interval < time.Second {
		return fmt.Errorf("poll.interval must be at least 1s (got %v)", c.Poll.Interval)
	}

	if len(c.Actions.TokenSecret) < 32 {
		return fmt.Errorf("actions.token_secret must be at least 32 characters (got %d)", len(c.Actions.TokenSecret))
	}
	if c.Actions.TokenTTL <= 0 {
		return fmt.Errorf("actions.token_ttl must be > 0 (got %v)", c.Actions.TokenTTL)
	}

	return nil
}
