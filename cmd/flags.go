package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// viperBindings maps each command to the flags it overrides config keys with.
// Bindings are applied only for the executing command so that two commands
// sharing a key never shadow each other.
var viperBindings = map[*cobra.Command]map[string]string{}

// bindViperFlag records that flagName on cmd overrides the config key.
func bindViperFlag(cmd *cobra.Command, flagName, key string) {
	if viperBindings[cmd] == nil {
		viperBindings[cmd] = make(map[string]string)
	}
	viperBindings[cmd][flagName] = key
}

// applyViperBindings binds the flags of cmd and of every ancestor.
func applyViperBindings(cmd *cobra.Command) error {
	for c := cmd; c != nil; c = c.Parent() {
		for flagName, key := range viperBindings[c] {
			flag := c.Flags().Lookup(flagName)
			if flag == nil {
				flag = c.PersistentFlags().Lookup(flagName)
			}
			if flag == nil {
				return fmt.Errorf("flag --%s not defined on %s", flagName, c.Name())
			}
			if err := viper.BindPFlag(key, flag); err != nil {
				return fmt.Errorf("failed to bind --%s: %w", flagName, err)
			}
		}
	}
	return nil
}

// hashMapFlags returns the flags tuning hash map construction.
func hashMapFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("hashmap", pflag.ContinueOnError)
	fs.Int("buckets", 8, "Initial bucket count")
	fs.Float64("max-load-factor", 0.75, "Load factor above which the map rehashes")
	return fs
}

// boundedFlags returns the flags tuning the bounded adapters.
func boundedFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("bounded", pflag.ContinueOnError)
	fs.Int("capacity", 10, "Capacity of bounded stacks and queues")
	fs.String("queue-mode", "linear", "Bounded queue design (linear, circular)")
	return fs
}

// renderFlags returns the tree rendering flags.
func renderFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("render", pflag.ContinueOnError)
	fs.StringP("render", "r", "ascii", "Tree render format (ascii, dot)")
	return fs
}

func addHashMapFlags(cmd *cobra.Command) {
	cmd.Flags().AddFlagSet(hashMapFlags())
	bindViperFlag(cmd, "buckets", "hashmap.buckets")
	bindViperFlag(cmd, "max-load-factor", "hashmap.max_load_factor")
}

func addBoundedFlags(cmd *cobra.Command) {
	cmd.Flags().AddFlagSet(boundedFlags())
	bindViperFlag(cmd, "capacity", "bounded.capacity")
	bindViperFlag(cmd, "queue-mode", "bounded.queue_mode")
}

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().AddFlagSet(renderFlags())
	bindViperFlag(cmd, "render", "render.format")
}
