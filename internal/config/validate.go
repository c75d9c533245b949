package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is required")
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be > 0 (got %d)", c.LLM.MaxTokens)
	}
	if c.LLM.RequestTimeout <= 0 {
		return fmt.Errorf("llm.request_timeout must be > 0 (got %v)", c.LLM.RequestTimeout)
	}

	if err := c.Chat.validate(); err != nil {
		return fmt.Errorf("chat: %w", err)
	}

	return nil
}

func (c *ChatConfig) validate() error {
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be > 0 (got %d)", c.HistoryLimit)
	}
	if c.MaxToolRounds < 1 || c.MaxToolRounds > 10 {
		return fmt.Errorf("max_tool_rounds must be in [1,10] (got %d)", c.MaxToolRounds)
	}
	if c.MaxMessageLength <= 0 {
		return fmt.Errorf("max_message_length must be > 0 (got %d)", c.MaxMessageLength)
	}
	if c.RatePerMinute <= 0 {
		return fmt.Errorf("rate_per_minute must be > 0 (got %d)", c.RatePerMinute)
	}
	if c.RetentionDays <= 0 {
		return fmt.Errorf("retention_days must be > 0 (got %d)", c.RetentionDays)
	}
	if c.PurgeAfterDays <= 0 {
		return fmt.Errorf("purge_after_days must be > 0 (got %d)", c.PurgeAfterDays)
	}
	return nil
}
