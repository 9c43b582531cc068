package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/containers/internal/logging"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".containers.yml")
	content := `
log:
  level: debug
  format: json
hashmap:
  buckets: 4
  max_load_factor: 1.5
bounded:
  capacity: 3
  queue_mode: circular
render:
  format: dot
demo:
  scenarios: [hashmap, avlset]
  output: yaml
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := LoadFrom(v)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 4, cfg.HashMap.Buckets)
	assert.Equal(t, 1.5, cfg.HashMap.MaxLoadFactor)
	assert.Equal(t, 3, cfg.Bounded.Capacity)
	assert.Equal(t, QueueModeCircular, cfg.Bounded.QueueMode)
	assert.Equal(t, "dot", cfg.Render.Format)
	assert.Equal(t, []string{"hashmap", "avlset"}, cfg.Demo.Scenarios)
	assert.Equal(t, "yaml", cfg.Demo.Output)

	lc := cfg.LoggerConfig()
	assert.Equal(t, logging.LevelDebug, lc.Level)
	assert.Equal(t, "json", lc.Format)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CONTAINERS_HASHMAP_BUCKETS", "32")
	t.Setenv("CONTAINERS_DEMO_SCENARIOS", "vector, list")

	v := viper.New()
	v.SetEnvPrefix("CONTAINERS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("hashmap.buckets")
	v.BindEnv("demo.scenarios")

	cfg, err := LoadFrom(v)
	require.NoError(t, err)

	assert.Equal(t, 32, cfg.HashMap.Buckets)
	assert.Equal(t, []string{"vector", "list"}, cfg.Demo.Scenarios)
}

func TestExplicitZeroCapacityKept(t *testing.T) {
	v := viper.New()
	v.Set("bounded.capacity", 0)

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Bounded.Capacity)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log config"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log config"},
		{"zero buckets", func(c *Config) { c.HashMap.Buckets = 0 }, "buckets must be at least 1"},
		{"zero load factor", func(c *Config) { c.HashMap.MaxLoadFactor = 0 }, "max_load_factor"},
		{"negative capacity", func(c *Config) { c.Bounded.Capacity = -1 }, "capacity"},
		{"huge capacity", func(c *Config) { c.Bounded.Capacity = 1 << 30 }, "capacity"},
		{"bad queue mode", func(c *Config) { c.Bounded.QueueMode = "ring" }, "queue_mode"},
		{"bad render", func(c *Config) { c.Render.Format = "svg" }, "render config"},
		{"bad output", func(c *Config) { c.Demo.Output = "csv" }, "demo config"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := Validate(cfg)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	v := viper.New()
	v.Set("hashmap.max_load_factor", -2.0)

	_, err := LoadFrom(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
