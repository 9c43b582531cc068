package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conneroisu/containers/containers/treemap"
	"github.com/conneroisu/containers/internal/render"
)

var (
	bstErase []int
	bstGet   []int
)

var bstCmd = &cobra.Command{
	Use:   "bst [key=value...]",
	Short: "Build an unbalanced OrderedMap and draw it",
	Long: `Insert integer keys with string values into an OrderedMap, optionally
look some up or erase them, and print the in-order entries and tree shape.

Without entries the canonical 10=ten 20=twenty 5=five 15=fifteen is used.
Re-inserting a key overwrites its value.

Examples:
  containers bst                          # Canonical entries
  containers bst 1=a 2=b 3=c              # Ascending inserts form a chain
  containers bst --erase 20,10            # Erase a leaf then a two-child node
  containers bst --get 15,99              # Look keys up`,
	RunE: runBST,
}

func init() {
	rootCmd.AddCommand(bstCmd)

	bstCmd.Flags().IntSliceVarP(&bstErase, "erase", "e", nil, "Keys to erase after inserting")
	bstCmd.Flags().IntSliceVarP(&bstGet, "get", "g", nil, "Keys to look up after inserting")
	addRenderFlags(bstCmd)
}

type bstEntry struct {
	key   int
	value string
}

func parseEntries(args []string) ([]bstEntry, error) {
	entries := make([]bstEntry, 0, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid entry %q, expected key=value", arg)
		}
		key, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			return nil, fmt.Errorf("invalid key in %q: %w", arg, err)
		}
		entries = append(entries, bstEntry{key: key, value: v})
	}
	return entries, nil
}

func runBST(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	entries, err := parseEntries(args)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		entries = []bstEntry{{10, "ten"}, {20, "twenty"}, {5, "five"}, {15, "fifteen"}}
	}

	out := cmd.OutOrStdout()
	m := treemap.New[int, string]()
	for _, e := range entries {
		m.Insert(e.key, e.value)
	}
	if err := describeMap(out, "After inserting", m, cfg.Render.Format); err != nil {
		return err
	}

	for _, k := range bstGet {
		v, err := m.MustGet(k)
		switch {
		case errors.Is(err, treemap.ErrNotFound):
			fmt.Fprintf(out, "get %d: not found\n", k)
		case err != nil:
			return err
		default:
			fmt.Fprintf(out, "get %d: %s\n", k, v)
		}
	}

	if len(bstErase) == 0 {
		return nil
	}

	for _, k := range bstErase {
		if !m.Erase(k) {
			logger.Warn(cmd.Context(), nil, "Key not present", "key", k)
		}
	}
	fmt.Fprintln(out)
	return describeMap(out, "After erasing", m, cfg.Render.Format)
}

func describeMap(w io.Writer, title string, m *treemap.OrderedMap[int, string], format string) error {
	fmt.Fprintf(w, "%s:\n", title)
	for k, v := range m.All() {
		fmt.Fprintf(w, "%d: %s\n", k, v)
	}
	fmt.Fprintf(w, "Size: %d Height: %d\n", m.Len(), m.Height())
	return render.Write(w, format, "OrderedMap", render.FromTreeMap(m.Shape()))
}
