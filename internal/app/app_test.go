package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptrouter/internal/config"
	"promptrouter/internal/router"
)

func baseConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Log.Level = "error"
	cfg.Server.Port = "8080"
	return cfg
}

func TestNewApp(t *testing.T) {
	appInstance, err := NewApp(baseConfig())
	require.NoError(t, err)
	require.NotNil(t, appInstance.RouterService)

	rec, err := appInstance.RouterService.Classify("tl;dr bitte")
	require.NoError(t, err)
	assert.Equal(t, router.ModelO4Mini, rec.Model)
}

func TestNewApp_ExtraKeywordsWired(t *testing.T) {
	cfg := baseConfig()
	cfg.Router.ExtraKeywords = map[string][]string{"code": {"segfault"}}

	appInstance, err := NewApp(cfg)
	require.NoError(t, err)

	rec, err := appInstance.RouterService.Classify("segfault beim start")
	require.NoError(t, err)
	assert.Equal(t, router.ModelGPT41, rec.Model)
}

func TestNewApp_BadLogLevel(t *testing.T) {
	cfg := baseConfig()
	cfg.Log.Level = "verbose"

	_, err := NewApp(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "init logging")
}

func TestNewApp_UnknownExtraSet(t *testing.T) {
	// Config validation normally catches this, but NewApp must not rely on it.
	cfg := baseConfig()
	cfg.Router.ExtraKeywords = map[string][]string{"video": {"mp4"}}

	_, err := NewApp(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "init router")
}
