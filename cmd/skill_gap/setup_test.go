package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-gap/internal/config"
	"github.com/jonathan/skill-gap/internal/embedding"
)

// newTestCommand returns a command with the persistent flags parsed from args.
func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	t.Cleanup(func() { configFile = "" })

	cmd := &cobra.Command{Use: "test"}
	registerPersistentFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func clearEnv(t *testing.T) {
	for _, key := range []string{"GEMINI_API_KEY", "DATABASE_URL", "REDIS_URL", "SKILL_GAP_SKILLS_CSV"} {
		t.Setenv(key, "")
	}
}

func TestResolveConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := resolveConfig(newTestCommand(t))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestResolveConfig_Precedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("SKILL_GAP_SKILLS_CSV", "env.csv")
	configPath := writeTemp(t, "config.yaml", "fuzzy_threshold: 75\ncache_backend: sqlite\n")

	cfg, err := resolveConfig(newTestCommand(t, "--config", configPath, "--threshold", "90"))
	require.NoError(t, err)

	assert.Equal(t, "env.csv", cfg.SkillsCSV)
	assert.Equal(t, 90, cfg.FuzzyThreshold, "flag beats config file")
	assert.Equal(t, config.CacheSQLite, cfg.CacheBackend, "config file beats default")
}

func TestResolveConfig_Invalid(t *testing.T) {
	clearEnv(t)

	_, err := resolveConfig(newTestCommand(t, "--cache", "redis"))
	assert.ErrorContains(t, err, "redis_url")

	_, err = resolveConfig(newTestCommand(t, "--embedder", "gemini"))
	assert.ErrorContains(t, err, "api_key")
}

func TestResolveConfig_MissingConfigFile(t *testing.T) {
	clearEnv(t)

	_, err := resolveConfig(newTestCommand(t, "--config", "/nonexistent/config.json"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestOpenCache(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	blocker := writeTemp(t, "not-a-dir", "x")

	isNop := func(t *testing.T, c embedding.Cache) {
		assert.IsType(t, embedding.NopCache{}, c)
	}

	tests := []struct {
		name   string
		mutate func(*config.Config)
		check  func(t *testing.T, c embedding.Cache)
	}{
		{
			name:   "none",
			mutate: func(c *config.Config) { c.CacheBackend = config.CacheNone },
			check:  isNop,
		},
		{
			name:   "file",
			mutate: func(c *config.Config) { c.CacheBackend = config.CacheFile },
			check: func(t *testing.T, c embedding.Cache) {
				fc, ok := c.(*embedding.FileCache)
				require.True(t, ok)
				assert.Equal(t, filepath.Join(dir, "emb"), fc.Dir())
			},
		},
		{
			name:   "sqlite",
			mutate: func(c *config.Config) { c.CacheBackend = config.CacheSQLite },
			check: func(t *testing.T, c embedding.Cache) {
				assert.IsType(t, &embedding.SQLiteCache{}, c)
			},
		},
		{
			name: "unreachable redis degrades",
			mutate: func(c *config.Config) {
				c.CacheBackend = config.CacheRedis
				c.RedisURL = "redis://127.0.0.1:1/0"
			},
			check: isNop,
		},
		{
			name: "unwritable sqlite path degrades",
			mutate: func(c *config.Config) {
				c.CacheBackend = config.CacheSQLite
				c.SQLitePath = filepath.Join(blocker, "sub", "emb.db")
			},
			check: isNop,
		},
		{
			name: "unreachable postgres degrades",
			mutate: func(c *config.Config) {
				c.CacheBackend = config.CachePostgres
				c.DatabaseURL = "postgres://skillgap@127.0.0.1:1/skillgap?connect_timeout=1"
			},
			check: isNop,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.CacheDir = filepath.Join(dir, "emb")
			cfg.SQLitePath = filepath.Join(dir, "emb.db")
			tt.mutate(&cfg)

			sess := &session{}
			defer sess.Close()
			tt.check(t, openCache(ctx, cfg, sess))
		})
	}
}

func TestNewSession_UnreachableRedisStillAnalyzes(t *testing.T) {
	cfg := config.Default()
	cfg.SkillsCSV = skillsCSVPath()
	cfg.Chunker = "simple"
	cfg.CacheBackend = config.CacheRedis
	cfg.RedisURL = "redis://127.0.0.1:1/0"

	sess, err := newSession(context.Background(), cfg)
	require.NoError(t, err)
	defer sess.Close()

	report, err := sess.analyzer.Analyze(context.Background(), testResume, testJob)
	require.NoError(t, err)
	assert.Greater(t, report.Similarity, 0.0)
}

func TestResolveConfig_ZeroSemanticWeightFlag(t *testing.T) {
	clearEnv(t)

	cfg, err := resolveConfig(newTestCommand(t, "--semantic-weight", "0"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.Weight())
}

func TestNewSession_HashEmbedder(t *testing.T) {
	cfg := config.Default()
	cfg.SkillsCSV = skillsCSVPath()
	cfg.CacheBackend = config.CacheNone
	cfg.Chunker = "simple"

	sess, err := newSession(context.Background(), cfg)
	require.NoError(t, err)
	defer sess.Close()

	assert.Nil(t, sess.llm)
	assert.Nil(t, sess.feedbackClient(), "no client must be a nil interface")
	assert.Equal(t, "hash-384", sess.embedder.Model())
	assert.False(t, sess.analyzer.Matcher().Dictionary().IsEmpty())

	report, err := sess.analyzer.Analyze(context.Background(), testResume, testJob)
	require.NoError(t, err)
	assert.Contains(t, report.SkillMatch.Overlap, "python")
}

func TestNewEmbedder_GeminiNeedsClient(t *testing.T) {
	cfg := config.Default()
	cfg.Embedder = config.EmbedderGemini

	_, err := newEmbedder(cfg, nil)
	assert.ErrorContains(t, err, "API key is required")
}
