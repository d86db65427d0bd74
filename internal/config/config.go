package config

import (
	"slices"
	"time"
)

// Config is the root configuration shared by all offline tools.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Data      DataConfig      `yaml:"data"`
	LLM       LLMConfig       `yaml:"llm"`
	HintGen   HintGenConfig   `yaml:"hintgen"`
	Collocate CollocateConfig `yaml:"collocate"`
	Import    ImportConfig    `yaml:"import"`
	Database  DatabaseConfig  `yaml:"database"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level      string `yaml:"level"       env:"LOG_LEVEL"        env-default:"info"`
	Format     string `yaml:"format"      env:"LOG_FORMAT"       env-default:"text"`
	File       string `yaml:"file"        env:"LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb" env:"LOG_MAX_SIZE_MB"  env-default:"20"`
	MaxBackups int    `yaml:"max_backups" env:"LOG_MAX_BACKUPS"  env-default:"3"`
}

// DataConfig holds paths of the JSON artifacts.
type DataConfig struct {
	VocabularyPath   string `yaml:"vocabulary_path"    env:"DATA_VOCABULARY_PATH"    env-default:"./data/vocabulary.json"`
	CollocationsPath string `yaml:"collocations_path"  env:"DATA_COLLOCATIONS_PATH"  env-default:"./data/collocations.json"`
	HintsPath        string `yaml:"hints_path"         env:"DATA_HINTS_PATH"         env-default:"./data/collocation_hints.json"`
	ReverseHintsPath string `yaml:"reverse_hints_path" env:"DATA_REVERSE_HINTS_PATH" env-default:"./data/collocation_hints_reverse.json"`
}

// LLMConfig holds text-generation API settings.
type LLMConfig struct {
	APIKey      string        `yaml:"api_key"     env:"ANTHROPIC_API_KEY"`
	Model       string        `yaml:"model"       env:"LLM_MODEL"        env-default:"claude-sonnet-4-5-20250929"`
	MaxTokens   int64         `yaml:"max_tokens"  env:"LLM_MAX_TOKENS"   env-default:"50"`
	Temperature float64       `yaml:"temperature" env:"LLM_TEMPERATURE"  env-default:"0.3"`
	Timeout     time.Duration `yaml:"timeout"     env:"LLM_TIMEOUT"      env-default:"30s"`
}

// HintGenConfig holds settings of the checkpointed hint pipeline.
type HintGenConfig struct {
	CheckpointPath string        `yaml:"checkpoint_path" env:"HINTGEN_CHECKPOINT_PATH" env-default:"./data/hints_checkpoint.json"`
	BatchSize      int           `yaml:"batch_size"      env:"HINTGEN_BATCH_SIZE"      env-default:"10"`
	RequestDelay   time.Duration `yaml:"request_delay"   env:"HINTGEN_REQUEST_DELAY"   env-default:"350ms"`
	MaxHintWords   int           `yaml:"max_hint_words"  env:"HINTGEN_MAX_HINT_WORDS"  env-default:"8"`
	PromptStyle    string        `yaml:"prompt_style"    env:"HINTGEN_PROMPT_STYLE"    env-default:"direct"`
	Interactive    bool          `yaml:"interactive"     env:"HINTGEN_INTERACTIVE"     env-default:"false"`
	WriteReverse   bool          `yaml:"write_reverse"   env:"HINTGEN_WRITE_REVERSE"   env-default:"true"`
	SeedPath       string        `yaml:"seed_path"       env:"HINTGEN_SEED_PATH"`
}

// CollocateConfig holds settings of the pairing generator.
type CollocateConfig struct {
	PairingsPath string `yaml:"pairings_path" env:"COLLOCATE_PAIRINGS_PATH" env-default:"./data/pairings.yaml"`
	FillReadings bool   `yaml:"fill_readings" env:"COLLOCATE_FILL_READINGS" env-default:"true"`
}

// ImportConfig holds settings of the hints publisher.
type ImportConfig struct {
	Direction string `yaml:"direction"  env:"IMPORT_DIRECTION"  env-default:"forward"`
	BatchSize int    `yaml:"batch_size" env:"IMPORT_BATCH_SIZE" env-default:"500"`
	Source    string `yaml:"source"     env:"IMPORT_SOURCE"     env-default:"llm"`
	DryRun    bool   `yaml:"dry_run"    env:"IMPORT_DRY_RUN"`
	Migrate   bool   `yaml:"migrate"    env:"IMPORT_MIGRATE"`
	Replace   bool   `yaml:"replace"    env:"IMPORT_REPLACE"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// PromptStyles lists the supported hint prompt styles.
var PromptStyles = []string{"direct", "noun"}

// IsPromptStyleKnown reports whether style is one of PromptStyles.
func IsPromptStyleKnown(style string) bool {
	return slices.Contains(PromptStyles, style)
}
