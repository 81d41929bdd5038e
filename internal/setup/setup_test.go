package setup

import (
	"context"
	"github.com/gissleh/nerdify"
	"github.com/gissleh/nerdify/adapters/yamldictionary"
	"github.com/gissleh/nerdify/config"
	"github.com/gissleh/nerdify/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"path/filepath"
	"testing"
)

func TestService(t *testing.T) {
	ctx := context.Background()

	t.Run("builtin", func(t *testing.T) {
		cfg := config.Default()
		cfg.Translator.Decorate = false

		svc, err := Service(ctx, cfg, logger.Discard(), true)
		require.NoError(t, err)

		res, err := svc.Translate(ctx, "fast")
		require.NoError(t, err)
		assert.Equal(t, "efficient ", res.Output)
	})

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dict.yaml")
		require.NoError(t, yamldictionary.Save(path, nerdify.Dictionary{{Source: "hello", Target: "greetings", Category: nerdify.Uninflected}}))

		cfg := config.Default()
		cfg.Dictionary.Path = path
		cfg.Translator.Seed = 3

		svc, err := Service(ctx, cfg, logger.Discard(), true)
		require.NoError(t, err)

		res, err := svc.Translate(ctx, "Hello fast")
		require.NoError(t, err)
		assert.Contains(t, res.Output, "Greetings fast ")
	})

	t.Run("broken_yaml", func(t *testing.T) {
		cfg := config.Default()
		cfg.Dictionary.Path = t.TempDir()
		require.NoError(t, yamldictionary.Save(filepath.Join(cfg.Dictionary.Path, "a.yaml"), nerdify.Dictionary{{Source: "x", Target: "", Category: nerdify.Noun}}))

		_, err := Service(ctx, cfg, logger.Discard(), true)
		assert.Error(t, err)
	})
}
