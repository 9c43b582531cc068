package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/conneroisu/containers/containers/hashmap"
	"github.com/conneroisu/containers/internal/logging"
)

var (
	hashCount  int
	hashChains bool
)

var hashCmd = &cobra.Command{
	Use:   "hash [key...]",
	Short: "Insert keys into a HashMap and report every rehash",
	Long: `Insert string keys into a chained HashMap and report each rehash
(bucket count before and after) followed by the final load factor.

With --count N the keys key-0 .. key-(N-1) are generated instead. Without
keys or --count, seven keys are inserted, which rehashes a default map
exactly once.

Examples:
  containers hash                          # Seven keys, one rehash
  containers hash alice bob carol          # Explicit keys
  containers hash --count 100000           # Many rehashes
  containers hash --buckets 1 --max-load-factor 2 --chains`,
	RunE: runHash,
}

func init() {
	rootCmd.AddCommand(hashCmd)

	hashCmd.Flags().IntVarP(&hashCount, "count", "n", 0, "Generate this many keys")
	hashCmd.Flags().BoolVar(&hashChains, "chains", false, "Print the chain length of every bucket")
	addHashMapFlags(hashCmd)
}

func runHash(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	if hashCount < 0 {
		return fmt.Errorf("--count must not be negative, got %d", hashCount)
	}

	keys := args
	switch {
	case hashCount > 0:
		keys = make([]string, hashCount)
		for i := range keys {
			keys[i] = fmt.Sprintf("key-%d", i)
		}
	case len(keys) == 0:
		keys = []string{"k1", "k2", "k3", "k4", "k5", "k6", "k7"}
	}

	p := message.NewPrinter(language.English)
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	inserted := 0
	rehashes := 0
	m := hashmap.New[string, int](
		hashmap.WithBuckets(cfg.HashMap.Buckets),
		hashmap.WithMaxLoadFactor(cfg.HashMap.MaxLoadFactor),
		hashmap.WithRehashHook(func(oldBuckets, newBuckets int) {
			rehashes++
			logger.Debug(ctx, "Rehashed", "old_buckets", oldBuckets, "new_buckets", newBuckets, "entries", inserted)
			p.Fprintf(out, "rehash: %d -> %d buckets at %d entries\n", oldBuckets, newBuckets, inserted)
		}),
	)

	perf := logging.StartOperation(logger, "hash.insert")
	for i, k := range keys {
		inserted = i + 1
		m.Insert(k, i)
	}
	perf.End(ctx)

	p.Fprintf(out, "entries: %d\n", m.Len())
	p.Fprintf(out, "buckets: %d\n", m.BucketCount())
	p.Fprintf(out, "rehashes: %d\n", rehashes)
	p.Fprintf(out, "load factor: %.3f (max %.3f)\n", m.LoadFactor(), m.MaxLoadFactor())

	if hashChains {
		lengths := m.ChainLengths()
		parts := make([]string, len(lengths))
		longest := 0
		for i, n := range lengths {
			parts[i] = fmt.Sprint(n)
			longest = max(longest, n)
		}
		p.Fprintf(out, "chains: %s\n", strings.Join(parts, " "))
		p.Fprintf(out, "longest chain: %d\n", longest)
	}

	return nil
}
