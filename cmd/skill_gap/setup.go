package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-gap/internal/config"
	"github.com/jonathan/skill-gap/internal/db"
	"github.com/jonathan/skill-gap/internal/embedding"
	"github.com/jonathan/skill-gap/internal/llm"
	"github.com/jonathan/skill-gap/internal/logging"
	"github.com/jonathan/skill-gap/internal/observability"
	"github.com/jonathan/skill-gap/internal/pipeline"
	"github.com/jonathan/skill-gap/internal/skills"
)

// settings is the resolved configuration for the running command.
var settings config.Config

// loadSettings resolves the configuration, then initializes logging.
// Precedence from low to high: defaults, environment, config file, flags.
func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	settings = cfg

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	return nil
}

func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if configFile != "" {
		loaded, err := config.LoadConfig(configFile)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}
	cfg.ApplyEnv()
	cfg = cfg.MergeWithDefaults(config.Default())

	flags := cmd.Flags()
	if flags.Changed("skills") {
		cfg.SkillsCSV = skillsCSV
	}
	if flags.Changed("threshold") {
		cfg.FuzzyThreshold = fuzzyThreshold
	}
	if flags.Changed("semantic-weight") {
		cfg.SemanticWeight = config.Float64(semanticWeight)
	}
	if flags.Changed("cache") {
		cfg.CacheBackend = cacheBackend
	}
	if flags.Changed("embedder") {
		cfg.Embedder = embedderName
	}
	if flags.Changed("api-key") {
		cfg.APIKey = apiKey
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// session bundles what a command needs and how to release it.
type session struct {
	analyzer *pipeline.Analyzer
	embedder *embedding.CachedEmbedder
	cache    embedding.Cache
	llm      *llm.GeminiClient
	printer  *observability.Printer
	closers  []func()
}

func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	if s.embedder != nil {
		hits, misses := s.embedder.Stats()
		logging.Debug().Int64("hits", hits).Int64("misses", misses).Msg("embedding cache stats")
	}
}

// newSession builds the analyzer from settings.
func newSession(ctx context.Context, cfg config.Config) (*session, error) {
	sess := &session{printer: observability.NewPrinter(os.Stderr)}

	if cfg.APIKey != "" {
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		sess.llm = client
		sess.closers = append(sess.closers, func() { _ = client.Close() })
	}

	inner, err := newEmbedder(cfg, sess.llm)
	if err != nil {
		sess.Close()
		return nil, err
	}

	sess.cache = openCache(ctx, cfg, sess)
	sess.embedder = embedding.NewCachedEmbedder(inner, sess.cache)

	dict := skills.LoadDictionary(cfg.SkillsCSV)
	matcher := skills.NewMatcher(dict, skills.NewChunker(skills.ChunkerKind(cfg.Chunker)),
		skills.WithFuzzyThreshold(cfg.FuzzyThreshold))

	opts := []pipeline.Option{
		pipeline.WithSemanticWeight(cfg.Weight()),
		pipeline.WithConcurrency(cfg.Concurrency),
	}
	if cfg.Verbose {
		opts = append(opts, pipeline.WithProgress(func(e pipeline.ProgressEvent) {
			sess.printer.PrintProgress(e.Step, e.Side, e.Message)
		}))
	}

	analyzer, err := pipeline.NewAnalyzer(matcher, sess.embedder, opts...)
	if err != nil {
		sess.Close()
		return nil, err
	}
	sess.analyzer = analyzer

	logging.Debug().
		Str("skills_csv", cfg.SkillsCSV).
		Int("dictionary_size", dict.Len()).
		Str("embedder", inner.Model()).
		Str("cache", cfg.CacheBackend).
		Msg("analyzer ready")

	return sess, nil
}

func newEmbedder(cfg config.Config, client *llm.GeminiClient) (embedding.Embedder, error) {
	switch cfg.ResolvedEmbedder() {
	case config.EmbedderGemini:
		if client == nil {
			return nil, fmt.Errorf("API key is required for the gemini embedder (set GEMINI_API_KEY environment variable or use --api-key flag)")
		}
		return embedding.NewGeminiEmbedder(client, cfg.EmbedModel), nil
	default:
		return embedding.NewHashEmbedder(cfg.EmbedDimension), nil
	}
}

// openCache opens the configured backend and registers its closer on sess.
// A backend that cannot be reached degrades to no caching: embeddings are
// recomputed and every command still runs.
func openCache(ctx context.Context, cfg config.Config, sess *session) embedding.Cache {
	cache, err := dialCache(ctx, cfg, sess)
	if err != nil {
		logging.Warn().Err(err).Str("backend", cfg.CacheBackend).Msg("embedding cache unavailable, continuing without cache")
		return embedding.NopCache{}
	}
	return cache
}

func dialCache(ctx context.Context, cfg config.Config, sess *session) (embedding.Cache, error) {
	switch cfg.CacheBackend {
	case config.CacheNone:
		return embedding.NopCache{}, nil

	case config.CacheRedis:
		c, err := embedding.DialRedisCache(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		sess.closers = append(sess.closers, func() { _ = c.Close() })
		return c, nil

	case config.CacheSQLite:
		c, err := embedding.OpenSQLiteCache(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		sess.closers = append(sess.closers, func() { _ = c.Close() })
		return c, nil

	case config.CachePostgres:
		database, err := db.Connect(ctx, cfg.DatabaseURL, cfg.Concurrency)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(ctx); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		sess.closers = append(sess.closers, database.Close)
		return embedding.NewPostgresCache(database), nil

	default:
		return embedding.NewFileCache(cfg.CacheDir), nil
	}
}

// feedbackClient returns the LLM client as an interface, or a nil interface
// when none is configured.
func (s *session) feedbackClient() llm.Client {
	if s.llm == nil {
		return nil
	}
	return s.llm
}
