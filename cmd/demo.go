package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/containers/internal/config"
	"github.com/conneroisu/containers/internal/logging"
	"github.com/conneroisu/containers/internal/scenario"
)

var (
	demoWatch bool
	demoList  bool
)

var demoCmd = &cobra.Command{
	Use:     "demo [scenario...]",
	Aliases: []string{"d"},
	Short:   "Run the canonical container scenarios",
	Long: `Run the canonical container scenarios and print what each one observed.

Without arguments the scenarios listed under demo.scenarios in the
configuration run, or all of them when that list is empty. Container
errors a scenario provokes on purpose (a full stack, a missing key) are
reported after its output.

Examples:
  containers demo                       # Run every scenario
  containers demo stack queue           # Run selected scenarios
  containers demo --queue-mode circular # Use the ring buffer queue
  containers demo --format yaml         # Structured output
  containers demo --watch               # Re-run whenever the config file changes`,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return scenario.Names(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringP("format", "f", "text", "Output format (text, json, yaml)")
	demoCmd.Flags().BoolVarP(&demoWatch, "watch", "w", false, "Re-run when the config file changes")
	demoCmd.Flags().BoolVar(&demoList, "list", false, "List available scenarios and exit")
	bindViperFlag(demoCmd, "format", "demo.output")

	addHashMapFlags(demoCmd)
	addBoundedFlags(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if demoList {
		return listScenarios(out)
	}

	cfg, logger, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	if !demoWatch {
		return runScenarios(cmd.Context(), out, cfg, logger, args)
	}

	if viper.ConfigFileUsed() == "" {
		return fmt.Errorf("--watch requires a config file (use --config or .containers.yml)")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchScenarios(ctx, out, cfg, logger, args)
}

func listScenarios(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, s := range scenario.All() {
		fmt.Fprintf(tw, "%s\t%s\n", s.Name, s.Description)
	}
	return tw.Flush()
}

func runScenarios(ctx context.Context, w io.Writer, cfg *config.Config, logger logging.Logger, args []string) error {
	names := args
	if len(names) == 0 {
		names = cfg.Demo.Scenarios
	}

	env := scenario.NewEnv(cfg, logger)
	results, err := scenario.Run(ctx, env, names)
	if err != nil {
		return err
	}

	if env.Errors.HasErrors() {
		for kind, n := range env.Errors.Counts() {
			logger.Debug(ctx, "Tolerated container errors", "kind", string(kind), "count", n)
		}
	}

	return writeResults(w, cfg.Demo.Output, results)
}

// watchScenarios runs once, then again after every config file change
// until ctx is done.
func watchScenarios(ctx context.Context, w io.Writer, cfg *config.Config, logger logging.Logger, args []string) error {
	reload := make(chan struct{}, 1)
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		logger.Info(ctx, "Config file changed", "file", e.Name, "op", e.Op.String())
		select {
		case reload <- struct{}{}:
		default:
		}
	})
	viper.WatchConfig()

	if err := runScenarios(ctx, w, cfg, logger, args); err != nil {
		return err
	}
	logger.Info(ctx, "Watching for configuration changes", "file", viper.ConfigFileUsed())

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-reload:
			next, err := config.Load()
			if err != nil {
				logger.Error(ctx, err, "Ignoring invalid configuration")
				continue
			}
			fmt.Fprintln(w)
			if err := runScenarios(ctx, w, next, logger, args); err != nil {
				logger.Error(ctx, err, "Scenario run failed")
			}
		}
	}
}

func writeResults(w io.Writer, format string, results []scenario.Result) error {
	switch format {
	case "text", "":
		return scenario.WriteText(w, results)
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(results); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json, yaml)", format)
	}
}
