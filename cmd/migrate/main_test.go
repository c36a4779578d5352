package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/andrewpaige1/flashcard-api/config"
	"github.com/andrewpaige1/flashcard-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const flashcardsFile = `{
	"A1": [
		{"chinese":"你好","pinyin":"nǐ hǎo","vietnamese":"xin chào","example":"你好!","example_vi":"Xin chào!"},
		{"chinese":"谢谢","pinyin":"xiè xie","vietnamese":"cảm ơn","example":"谢谢!","example_vi":"Cảm ơn!"}
	]
}`

func newEnvironment(t *testing.T, autoMigrate bool) (*config.Environment, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "flashcards.json")
	require.NoError(t, os.WriteFile(path, []byte(flashcardsFile), 0o600))

	return &config.Environment{
		DB: config.DBConfig{
			Driver:       "sqlite",
			URL:          filepath.Join(dir, "flashcards.db"),
			AutoMigrate:  autoMigrate,
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		},
	}, path
}

func TestRun_CreatesSchemaOnFreshDatabase(t *testing.T) {
	cfg, path := newEnvironment(t, true)

	summaries, err := run(context.Background(), cfg, path, 50, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []models.LevelSummary{{Level: "A1", Count: 2}}, summaries)
}

func TestRun_WithoutAutoMigrate(t *testing.T) {
	cfg, path := newEnvironment(t, false)

	_, err := run(context.Background(), cfg, path, 50, zap.NewNop())
	require.Error(t, err)

	cfg.DB.AutoMigrate = true
	summaries, err := run(context.Background(), cfg, path, 50, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []models.LevelSummary{{Level: "A1", Count: 2}}, summaries)
}

func TestRun_MissingFile(t *testing.T) {
	cfg, _ := newEnvironment(t, true)

	_, err := run(context.Background(), cfg, filepath.Join(t.TempDir(), "nope.json"), 50, zap.NewNop())
	require.Error(t, err)
}
