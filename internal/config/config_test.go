package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("ENV", "test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.Port)

	// Timeouts and TTLs are configured as whole seconds.
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 20*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, time.Hour, cfg.Quiz.SessionTTL)

	assert.Equal(t, "llm", cfg.Quiz.Source)
	assert.Equal(t, 8, cfg.Quiz.DefaultCount)
	assert.Equal(t, 8, cfg.Quiz.MaxSteps)
}
