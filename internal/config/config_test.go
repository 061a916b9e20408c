package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadFromDir runs LoadConfig with the working directory switched to dir.
func loadFromDir(t *testing.T, dir string) (*Config, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	return LoadConfig()
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadFromDir(t, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "localhost", cfg.Server.Addr)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Empty(t, cfg.Router.ExtraKeywords)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	content := `
log:
  level: debug
server:
  port: "9090"
router:
  extra_keywords:
    code: ["segfault", "panic"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := loadFromDir(t, dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"segfault", "panic"}, cfg.Router.ExtraKeywords["code"])
}

func TestLoadConfig_UnknownKeywordSet(t *testing.T) {
	dir := t.TempDir()
	content := `
router:
  extra_keywords:
    video: ["mp4"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	_, err := loadFromDir(t, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown set "video"`)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.Server.Port = "8080"
		return cfg
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("bad log level", func(t *testing.T) {
		cfg := valid()
		cfg.Log.Level = "verbose"
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty port", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("known extra keyword sets pass", func(t *testing.T) {
		cfg := valid()
		cfg.Router.ExtraKeywords = map[string][]string{
			"audio": {"podcast"}, "quick-edit": {"shorten"},
		}
		assert.NoError(t, cfg.Validate())
	})
}
