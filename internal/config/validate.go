package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// Tool-specific requirements are checked separately with RequireLLM and
// RequireDatabase so that tools which do not need them can run without them.
func (c *Config) Validate() error {
	if err := c.HintGen.validate(); err != nil {
		return fmt.Errorf("hintgen: %w", err)
	}
	if err := c.Import.validate(); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm: max_tokens must be > 0 (got %d)", c.LLM.MaxTokens)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 1 {
		return fmt.Errorf("llm: temperature must be in [0, 1] (got %v)", c.LLM.Temperature)
	}
	return nil
}

// RequireLLM reports an error when no API key is configured.
func (c *Config) RequireLLM() error {
	if strings.TrimSpace(c.LLM.APIKey) == "" {
		return fmt.Errorf("llm: api key is required (set ANTHROPIC_API_KEY)")
	}
	return nil
}

// RequireDatabase reports an error when no database DSN is configured.
func (c *Config) RequireDatabase() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database: dsn is required (set DATABASE_DSN)")
	}
	return nil
}

func (h *HintGenConfig) validate() error {
	if h.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", h.BatchSize)
	}
	if h.RequestDelay < 0 {
		return fmt.Errorf("request_delay must be >= 0 (got %v)", h.RequestDelay)
	}
	if h.MaxHintWords <= 0 {
		return fmt.Errorf("max_hint_words must be > 0 (got %d)", h.MaxHintWords)
	}
	if !IsPromptStyleKnown(h.PromptStyle) {
		return fmt.Errorf("prompt_style %q is not one of %s", h.PromptStyle, strings.Join(PromptStyles, ", "))
	}
	if h.CheckpointPath == "" {
		return fmt.Errorf("checkpoint_path is required")
	}
	return nil
}

func (i *ImportConfig) validate() error {
	switch i.Direction {
	case "forward", "reverse":
	default:
		return fmt.Errorf("direction must be forward or reverse (got %q)", i.Direction)
	}
	if i.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", i.BatchSize)
	}
	if strings.TrimSpace(i.Source) == "" {
		return fmt.Errorf("source is required")
	}
	return nil
}
