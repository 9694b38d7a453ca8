package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Chapterdesk ChapterdeskConfig `yaml:"chapterdesk"`
	Poll        PollConfig        `yaml:"poll"`
	Actions     ActionsConfig     `yaml:"actions"`
	Community   CommunityConfig   `yaml:"community"`
	Log         LogConfig         `yaml:"log"`
}

// ChapterdeskConfig holds connection settings for the ChapterDesk API.
type ChapterdeskConfig struct {
	BaseURL string        `yaml:"base_url" env:"CHAPTERDESK_BASE_URL" env-required:"true"`
	Secret  string        `yaml:"secret"   env:"CHAPTERDESK_SECRET"   env-required:"true"`
	Timeout time.Duration `yaml:"timeout"  env:"CHAPTERDESK_TIMEOUT"  env-default:"10s"`
}

// PollConfig holds reconciliation poller settings.
type PollConfig struct {
	Enabled  bool          `yaml:"enabled"  env:"POLL_ENABLED"  env-default:"true"`
	Interval time.Duration `yaml:"interval" env:"POLL_INTERVAL" env-default:"30s"`
}

// ActionsConfig holds settings for signed approval-action tokens.
type ActionsConfig struct {
	TokenSecret string        `yaml:"token_secret" env:"ACTION_TOKEN_SECRET" env-required:"true"`
	TokenIssuer string        `yaml:"token_issuer" env:"ACTION_TOKEN_ISSUER" env-default:"chaptergate"`
	TokenTTL    time.Duration `yaml:"token_ttl"    env:"ACTION_TOKEN_TTL"    env-default:"24h"`
}

// CommunityConfig holds local community settings.
type CommunityConfig struct {
	// Operators is a comma-separated list of member IDs allowed to
	// approve or reject applications.
	Operators string `yaml:"operators" env:"COMMUNITY_OPERATORS"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// OperatorIDs returns the parsed operator list, empty entries removed.
func (c CommunityConfig) OperatorIDs() []string {
	var ids []string
	for _, part := range strings.Split(c.Operators, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
