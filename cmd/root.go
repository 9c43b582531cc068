// Package cmd provides the command-line interface for the containers demo
// with configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration through multiple sources with clear precedence:
//	1. Command-line flags (--config, --buckets, etc.) - highest priority
//	2. CONTAINERS_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (CONTAINERS_HASHMAP_BUCKETS, etc.)
//	4. Configuration files (.containers.yml) - lowest priority
//
// Environment Variables:
//
//	CONTAINERS_CONFIG_FILE: Path to custom configuration file
//	CONTAINERS_LOG_LEVEL: Override log level
//	CONTAINERS_HASHMAP_BUCKETS: Override initial hash map bucket count
//	CONTAINERS_BOUNDED_QUEUE_MODE: linear or circular
//	And the rest following the CONTAINERS_<SECTION>_<OPTION> pattern
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/containers/internal/config"
	"github.com/conneroisu/containers/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "containers",
	Short: "Walk through generic container implementations",
	Long: `containers drives a small library of generic containers through the
same canonical scenarios and exposes each container for experimentation.

Containers:
  • DynamicArray, DoublyLinkedList and BlockDeque sequences
  • OrderedMap (binary search tree) and OrderedSet (AVL tree)
  • HashMap with separate chaining and load factor rehashing
  • BoundedStack and BoundedQueue adapters

Quick Start:
  containers demo                 Run every scenario
  containers demo avlset hashmap  Run selected scenarios
  containers avl 10 20 30         Build an AVL set and draw it
  containers hash --count 1000    Watch a hash map rehash
  containers config show          Print the effective configuration`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return applyViperBindings(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .containers.yml, can also use CONTAINERS_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	bindViperFlag(rootCmd, "log-level", "log.level")
	bindViperFlag(rootCmd, "log-format", "log.format")
}

// initConfig initializes the configuration system with support for multiple config sources.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. CONTAINERS_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .containers.yml in current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("CONTAINERS_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".containers")
	}

	viper.SetEnvPrefix("CONTAINERS")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing or malformed file leaves viper on defaults.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadRuntime resolves the effective configuration and builds a logger
// writing to the command's error stream.
func loadRuntime(cmd *cobra.Command) (*config.Config, logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	lc := cfg.LoggerConfig()
	lc.Output = cmd.ErrOrStderr()
	logger := logging.NewLogger(lc).WithComponent(cmd.Name())

	return cfg, logger, nil
}
