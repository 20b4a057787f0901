package injector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/vecmath/internal/check"
	"github.com/zeusync/vecmath/internal/core/observability/log"
)

func TestProvideLogger(t *testing.T) {
	cfg := check.DefaultConfig()
	cfg.LogLevel = "warn"

	logger := ProvideLogger(cfg)
	require.NotNil(t, logger)
	assert.Equal(t, log.LevelWarn, logger.GetLevel())
}

func TestInitializeRunner(t *testing.T) {
	cfg := check.DefaultConfig()
	cfg.LogLevel = "silent"

	runner := InitializeRunner(cfg)
	require.NotNil(t, runner)
	assert.Equal(t, cfg, runner.Config())
}
