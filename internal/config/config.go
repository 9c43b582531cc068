// Package config provides configuration management for the containers
// CLI using Viper for loading from files, environment variables and
// command-line flags.
//
// The configuration tunes the example callers only: hash map bucket count
// and load factor, bounded adapter capacity and queue mode, tree render
// format, logging, and which demonstration scenarios run.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/conneroisu/containers/internal/logging"
)

type Config struct {
	Log     LogConfig     `yaml:"log" json:"log" mapstructure:"log"`
	HashMap HashMapConfig `yaml:"hashmap" json:"hashmap" mapstructure:"hashmap"`
	Bounded BoundedConfig `yaml:"bounded" json:"bounded" mapstructure:"bounded"`
	Render  RenderConfig  `yaml:"render" json:"render" mapstructure:"render"`
	Demo    DemoConfig    `yaml:"demo" json:"demo" mapstructure:"demo"`
}

type LogConfig struct {
	Level  string `yaml:"level" json:"level" mapstructure:"level"`
	Format string `yaml:"format" json:"format" mapstructure:"format"`
}

type HashMapConfig struct {
	Buckets       int     `yaml:"buckets" json:"buckets" mapstructure:"buckets"`
	MaxLoadFactor float64 `yaml:"max_load_factor" json:"max_load_factor" mapstructure:"max_load_factor"`
}

type BoundedConfig struct {
	Capacity  int    `yaml:"capacity" json:"capacity" mapstructure:"capacity"`
	QueueMode string `yaml:"queue_mode" json:"queue_mode" mapstructure:"queue_mode"`
}

type RenderConfig struct {
	Format string `yaml:"format" json:"format" mapstructure:"format"`
}

type DemoConfig struct {
	Scenarios []string `yaml:"scenarios" json:"scenarios" mapstructure:"scenarios"`
	Output    string   `yaml:"output" json:"output" mapstructure:"output"`
}

const (
	QueueModeLinear   = "linear"
	QueueModeCircular = "circular"

	maxBoundedCapacity = 1 << 20
)

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Log:     LogConfig{Level: "info", Format: "text"},
		HashMap: HashMapConfig{Buckets: 8, MaxLoadFactor: 0.75},
		Bounded: BoundedConfig{Capacity: 10, QueueMode: QueueModeLinear},
		Render:  RenderConfig{Format: "ascii"},
		Demo:    DemoConfig{Output: "text"},
	}
}

// Load reads the configuration from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// SetDefaults registers every configuration key on v so that
// environment overrides are seen by Unmarshal even without a file.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("hashmap.buckets", d.HashMap.Buckets)
	v.SetDefault("hashmap.max_load_factor", d.HashMap.MaxLoadFactor)
	v.SetDefault("bounded.capacity", d.Bounded.Capacity)
	v.SetDefault("bounded.queue_mode", d.Bounded.QueueMode)
	v.SetDefault("render.format", d.Render.Format)
	v.SetDefault("demo.scenarios", d.Demo.Scenarios)
	v.SetDefault("demo.output", d.Demo.Output)
}

// LoadFrom reads the configuration from v, applies defaults for unset
// values and validates the result.
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	defaults := Default()

	// Empty strings in a config file fall back to the defaults
	if config.Log.Level == "" {
		config.Log.Level = defaults.Log.Level
	}
	if config.Log.Format == "" {
		config.Log.Format = defaults.Log.Format
	}
	if config.Bounded.QueueMode == "" {
		config.Bounded.QueueMode = defaults.Bounded.QueueMode
	}
	if config.Render.Format == "" {
		config.Render.Format = defaults.Render.Format
	}
	if config.Demo.Output == "" {
		config.Demo.Output = defaults.Demo.Output
	}

	// Scenarios from env arrive comma separated (workaround for viper slice handling)
	config.Demo.Scenarios = splitList(strings.Join(config.Demo.Scenarios, ","))

	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks configuration values for correctness
func Validate(config *Config) error {
	if err := validateLogConfig(&config.Log); err != nil {
		return fmt.Errorf("log config: %w", err)
	}

	if err := validateHashMapConfig(&config.HashMap); err != nil {
		return fmt.Errorf("hashmap config: %w", err)
	}

	if err := validateBoundedConfig(&config.Bounded); err != nil {
		return fmt.Errorf("bounded config: %w", err)
	}

	if err := oneOf("render format", config.Render.Format, "ascii", "dot"); err != nil {
		return fmt.Errorf("render config: %w", err)
	}

	if err := oneOf("output", config.Demo.Output, "text", "json", "yaml"); err != nil {
		return fmt.Errorf("demo config: %w", err)
	}

	return nil
}

func validateLogConfig(config *LogConfig) error {
	if _, err := logging.ParseLevel(config.Level); err != nil {
		return err
	}
	return oneOf("format", config.Format, "text", "json")
}

func validateHashMapConfig(config *HashMapConfig) error {
	if config.Buckets < 1 {
		return fmt.Errorf("buckets must be at least 1, got %d", config.Buckets)
	}
	if config.MaxLoadFactor <= 0 {
		return fmt.Errorf("max_load_factor must be positive, got %g", config.MaxLoadFactor)
	}
	return nil
}

func validateBoundedConfig(config *BoundedConfig) error {
	if config.Capacity < 0 || config.Capacity > maxBoundedCapacity {
		return fmt.Errorf("capacity %d is not in valid range 0-%d", config.Capacity, maxBoundedCapacity)
	}
	return oneOf("queue_mode", config.QueueMode, QueueModeLinear, QueueModeCircular)
}

func oneOf(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("unsupported %s %q (supported: %s)", field, value, strings.Join(allowed, ", "))
}

// LoggerConfig converts the log section into a logging.LoggerConfig.
func (c *Config) LoggerConfig() *logging.LoggerConfig {
	level, _ := logging.ParseLevel(c.Log.Level)
	lc := logging.DefaultConfig()
	lc.Level = level
	lc.Format = c.Log.Format
	return lc
}
