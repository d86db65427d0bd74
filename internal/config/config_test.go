package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// isolate moves the test into an empty working directory so that a .env
// file of the developer machine is never picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func validConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			APIKey:      "sk-test",
			Model:       "claude-sonnet-4-5-20250929",
			MaxTokens:   50,
			Temperature: 0.3,
		},
		HintGen: HintGenConfig{
			CheckpointPath: "checkpoint.json",
			BatchSize:      10,
			RequestDelay:   350 * time.Millisecond,
			MaxHintWords:   8,
			PromptStyle:    "direct",
		},
		Import: ImportConfig{
			Direction: "forward",
			BatchSize: 500,
			Source:    "llm",
		},
	}
}

const validYAML = `
log:
  level: "debug"
  format: "json"
  file: "/tmp/hints.log"

data:
  vocabulary_path: "./vocab.json"
  collocations_path: "./colloc.json"

llm:
  api_key: "sk-yaml"
  model: "claude-test"
  max_tokens: 40
  temperature: 0.2

hintgen:
  checkpoint_path: "./cp.json"
  batch_size: 5
  request_delay: "500ms"
  max_hint_words: 6
  prompt_style: "noun"
  interactive: true

import:
  direction: "reverse"
  batch_size: 100

database:
  dsn: "postgres://u:p@localhost:5432/hints"
  max_conns: 4
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "config.yaml", validYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.Log.MaxSizeMB != 20 {
		t.Errorf("log.max_size_mb = %d, want 20 (default)", cfg.Log.MaxSizeMB)
	}
	if cfg.Data.VocabularyPath != "./vocab.json" {
		t.Errorf("data.vocabulary_path = %q", cfg.Data.VocabularyPath)
	}
	if cfg.Data.HintsPath != "./data/collocation_hints.json" {
		t.Errorf("data.hints_path = %q, want default", cfg.Data.HintsPath)
	}
	if cfg.LLM.APIKey != "sk-yaml" || cfg.LLM.Model != "claude-test" || cfg.LLM.MaxTokens != 40 {
		t.Errorf("llm = %+v", cfg.LLM)
	}
	if cfg.HintGen.BatchSize != 5 {
		t.Errorf("hintgen.batch_size = %d, want 5", cfg.HintGen.BatchSize)
	}
	if cfg.HintGen.RequestDelay != 500*time.Millisecond {
		t.Errorf("hintgen.request_delay = %v, want 500ms", cfg.HintGen.RequestDelay)
	}
	if cfg.HintGen.PromptStyle != "noun" || !cfg.HintGen.Interactive {
		t.Errorf("hintgen = %+v", cfg.HintGen)
	}
	if cfg.Import.Direction != "reverse" || cfg.Import.Source != "llm" {
		t.Errorf("import = %+v", cfg.Import)
	}
	if cfg.Database.MaxConns != 4 || cfg.Database.MinConns != 1 {
		t.Errorf("database = %+v", cfg.Database)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "config.yaml", validYAML)
	t.Setenv("HINTGEN_BATCH_SIZE", "20")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HintGen.BatchSize != 20 {
		t.Errorf("hintgen.batch_size = %d, want 20 (ENV override)", cfg.HintGen.BatchSize)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
}

func TestLoad_ENVOnlyDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HintGen.BatchSize != 10 {
		t.Errorf("hintgen.batch_size = %d, want 10", cfg.HintGen.BatchSize)
	}
	if cfg.HintGen.RequestDelay != 350*time.Millisecond {
		t.Errorf("hintgen.request_delay = %v, want 350ms", cfg.HintGen.RequestDelay)
	}
	if cfg.HintGen.MaxHintWords != 8 {
		t.Errorf("hintgen.max_hint_words = %d, want 8", cfg.HintGen.MaxHintWords)
	}
	if cfg.HintGen.PromptStyle != "direct" {
		t.Errorf("hintgen.prompt_style = %q, want direct", cfg.HintGen.PromptStyle)
	}
	if cfg.LLM.Temperature != 0.3 {
		t.Errorf("llm.temperature = %v, want 0.3", cfg.LLM.Temperature)
	}
	if !cfg.HintGen.WriteReverse {
		t.Error("hintgen.write_reverse should default to true")
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, DotEnvPath, "ANTHROPIC_API_KEY=sk-from-dotenv\n")
	// godotenv sets the variable directly; register it so it is restored.
	t.Setenv("ANTHROPIC_API_KEY", "")
	os.Unsetenv("ANTHROPIC_API_KEY")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.LLM.APIKey != "sk-from-dotenv" {
		t.Errorf("llm.api_key = %q, want value from .env", cfg.LLM.APIKey)
	}
}

func TestLoad_DotEnvDoesNotOverrideEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, DotEnvPath, "ANTHROPIC_API_KEY=sk-from-dotenv\n")
	t.Setenv("ANTHROPIC_API_KEY", "sk-from-env")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.LLM.APIKey != "sk-from-env" {
		t.Errorf("llm.api_key = %q, want sk-from-env", cfg.LLM.APIKey)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	isolate(t)

	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "config.yaml", `{{{invalid yaml`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoad_InvalidPromptStyle(t *testing.T) {
	isolate(t)
	t.Setenv("HINTGEN_PROMPT_STYLE", "poetic")

	_, err := Load("")
	if err == nil {
		t.Fatal("expected error for unknown prompt style")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"batch size zero", func(c *Config) { c.HintGen.BatchSize = 0 }, true},
		{"negative delay", func(c *Config) { c.HintGen.RequestDelay = -time.Second }, true},
		{"zero delay allowed", func(c *Config) { c.HintGen.RequestDelay = 0 }, false},
		{"max hint words zero", func(c *Config) { c.HintGen.MaxHintWords = 0 }, true},
		{"unknown prompt style", func(c *Config) { c.HintGen.PromptStyle = "haiku" }, true},
		{"noun prompt style", func(c *Config) { c.HintGen.PromptStyle = "noun" }, false},
		{"empty checkpoint path", func(c *Config) { c.HintGen.CheckpointPath = "" }, true},
		{"max tokens zero", func(c *Config) { c.LLM.MaxTokens = 0 }, true},
		{"temperature too high", func(c *Config) { c.LLM.Temperature = 1.5 }, true},
		{"import direction unknown", func(c *Config) { c.Import.Direction = "sideways" }, true},
		{"import batch size zero", func(c *Config) { c.Import.BatchSize = 0 }, true},
		{"import source empty", func(c *Config) { c.Import.Source = " " }, true},
		{"missing api key is not a global error", func(c *Config) { c.LLM.APIKey = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRequireLLM(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	if err := cfg.RequireLLM(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.LLM.APIKey = "  "
	if err := cfg.RequireLLM(); err == nil {
		t.Fatal("expected error for empty API key")
	}
}

func TestRequireDatabase(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	if err := cfg.RequireDatabase(); err == nil {
		t.Fatal("expected error for empty DSN")
	}

	cfg.Database.DSN = "postgres://localhost/hints"
	if err := cfg.RequireDatabase(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
