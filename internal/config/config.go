// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Cache backends
const (
	CacheFile     = "file"
	CacheRedis    = "redis"
	CacheSQLite   = "sqlite"
	CachePostgres = "postgres"
	CacheNone     = "none"
)

// Embedders. EmbedderAuto picks Gemini when an API key is set and the
// offline hash embedder otherwise.
const (
	EmbedderAuto   = "auto"
	EmbedderGemini = "gemini"
	EmbedderHash   = "hash"
)

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// Zero values are filled from Default by MergeWithDefaults.
type Config struct {
	// Skill matching
	SkillsCSV      string `json:"skills_csv,omitempty" yaml:"skills_csv,omitempty"`
	FuzzyThreshold int    `json:"fuzzy_threshold,omitempty" yaml:"fuzzy_threshold,omitempty" validate:"min=0,max=100"`
	Chunker        string `json:"chunker,omitempty" yaml:"chunker,omitempty" validate:"omitempty,oneof=prose simple"`

	// Embeddings
	Embedder       string `json:"embedder,omitempty" yaml:"embedder,omitempty" validate:"omitempty,oneof=auto gemini hash"`
	EmbedModel     string `json:"embed_model,omitempty" yaml:"embed_model,omitempty"`
	EmbedDimension int    `json:"embed_dimension,omitempty" yaml:"embed_dimension,omitempty" validate:"min=0,max=4096"`
	APIKey         string `json:"api_key,omitempty" yaml:"api_key,omitempty"` // Gemini API key

	// Embedding cache
	CacheBackend string `json:"cache_backend,omitempty" yaml:"cache_backend,omitempty" validate:"omitempty,oneof=file redis sqlite postgres none"`
	CacheDir     string `json:"cache_dir,omitempty" yaml:"cache_dir,omitempty"`
	RedisURL     string `json:"redis_url,omitempty" yaml:"redis_url,omitempty"`
	SQLitePath   string `json:"sqlite_path,omitempty" yaml:"sqlite_path,omitempty"`
	DatabaseURL  string `json:"database_url,omitempty" yaml:"database_url,omitempty"` // PostgreSQL connection URL

	// Scoring
	// Pointer so that an explicit 0 (skills only) survives MergeWithDefaults
	SemanticWeight *float64 `json:"semantic_weight,omitempty" yaml:"semantic_weight,omitempty" validate:"omitempty,min=0,max=1"`
	Concurrency    int     `json:"concurrency,omitempty" yaml:"concurrency,omitempty" validate:"min=0,max=64"`

	// Output
	LogLevel  string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	LogFormat string `json:"log_format,omitempty" yaml:"log_format,omitempty" validate:"omitempty,oneof=json pretty"`
	Verbose   bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		SkillsCSV:      "data/skills.csv",
		FuzzyThreshold: 88,
		Chunker:        "prose",
		Embedder:       EmbedderAuto,
		EmbedDimension: 384,
		CacheBackend:   CacheFile,
		CacheDir:       filepath.Join(".cache", "embeddings"),
		SQLitePath:     filepath.Join(".cache", "embeddings.db"),
		SemanticWeight: Float64(0.5),
		Concurrency:    4,
		LogLevel:       "info",
		LogFormat:      "pretty",
	}
}

// LoadConfig loads configuration from a .json, .yaml or .yml file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// ApplyEnv fills empty secrets and endpoints from the environment.
func (c *Config) ApplyEnv() {
	fill := func(dst *string, key string) {
		if *dst == "" {
			*dst = os.Getenv(key)
		}
	}
	fill(&c.APIKey, "GEMINI_API_KEY")
	fill(&c.DatabaseURL, "DATABASE_URL")
	fill(&c.RedisURL, "REDIS_URL")
	fill(&c.SkillsCSV, "SKILL_GAP_SKILLS_CSV")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their config key rather than the Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks value ranges and the settings each backend requires.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			ve := verrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' check (value %v)", ve.Field(), ve.Tag(), ve.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	switch c.CacheBackend {
	case CacheRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("config error: 'redis_url' is required for the redis cache")
		}
	case CachePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config error: 'database_url' is required for the postgres cache")
		}
	}

	if c.Embedder == EmbedderGemini && c.APIKey == "" {
		return fmt.Errorf("config error: 'api_key' (or GEMINI_API_KEY) is required for the gemini embedder")
	}

	return nil
}

// Float64 returns a pointer to v, for optional numeric settings.
func Float64(v float64) *float64 {
	return &v
}

// Weight returns the semantic weight, or 0.5 when unset.
func (c *Config) Weight() float64 {
	if c.SemanticWeight == nil {
		return 0.5
	}
	return *c.SemanticWeight
}

// ResolvedEmbedder returns the concrete embedder name, resolving auto.
func (c *Config) ResolvedEmbedder() string {
	if c.Embedder == EmbedderAuto || c.Embedder == "" {
		if c.APIKey != "" {
			return EmbedderGemini
		}
		return EmbedderHash
	}
	return c.Embedder
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	str := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	str(&result.SkillsCSV, defaults.SkillsCSV)
	str(&result.Chunker, defaults.Chunker)
	str(&result.Embedder, defaults.Embedder)
	str(&result.EmbedModel, defaults.EmbedModel)
	str(&result.APIKey, defaults.APIKey)
	str(&result.CacheBackend, defaults.CacheBackend)
	str(&result.CacheDir, defaults.CacheDir)
	str(&result.RedisURL, defaults.RedisURL)
	str(&result.SQLitePath, defaults.SQLitePath)
	str(&result.DatabaseURL, defaults.DatabaseURL)
	str(&result.LogLevel, defaults.LogLevel)
	str(&result.LogFormat, defaults.LogFormat)

	if result.FuzzyThreshold == 0 {
		result.FuzzyThreshold = defaults.FuzzyThreshold
	}
	if result.EmbedDimension == 0 {
		result.EmbedDimension = defaults.EmbedDimension
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.SemanticWeight == nil {
		result.SemanticWeight = defaults.SemanticWeight
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
