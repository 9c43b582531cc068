package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conneroisu/containers/containers/avlset"
	"github.com/conneroisu/containers/internal/render"
)

var avlErase []int

var avlCmd = &cobra.Command{
	Use:   "avl [value...]",
	Short: "Build an AVL-balanced OrderedSet and draw it",
	Long: `Insert integers into an OrderedSet, optionally erase some, and print the
in-order sequence, the height and the tree shape after each phase.

Without values the canonical sequence 10 20 30 40 50 25 is used, which
exercises single and double rotations.

Examples:
  containers avl                        # Canonical sequence
  containers avl 1 2 3 4 5 6 7          # Ascending inserts stay balanced
  containers avl --erase 10,40          # Erase after inserting
  containers avl 3 1 2 --render dot     # Graphviz output`,
	RunE: runAVL,
}

func init() {
	rootCmd.AddCommand(avlCmd)

	avlCmd.Flags().IntSliceVarP(&avlErase, "erase", "e", nil, "Values to erase after inserting")
	addRenderFlags(avlCmd)
}

func parseInts(args []string) ([]int, error) {
	vals := make([]int, 0, len(args))
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid integer %q: %w", field, err)
			}
			vals = append(vals, v)
		}
	}
	return vals, nil
}

func runAVL(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	vals, err := parseInts(args)
	if err != nil {
		return err
	}
	if len(vals) == 0 {
		vals = []int{10, 20, 30, 40, 50, 25}
	}

	out := cmd.OutOrStdout()
	set := avlset.New[int]()
	for _, v := range vals {
		if !set.Insert(v) {
			logger.Debug(cmd.Context(), "Duplicate ignored", "value", v)
		}
	}
	if err := describeSet(out, "After inserting", set, cfg.Render.Format); err != nil {
		return err
	}

	if len(avlErase) == 0 {
		return nil
	}

	for _, v := range avlErase {
		if !set.Erase(v) {
			logger.Warn(cmd.Context(), nil, "Value not present", "value", v)
		}
	}
	fmt.Fprintln(out)
	return describeSet(out, "After erasing", set, cfg.Render.Format)
}

func describeSet(w io.Writer, title string, set *avlset.OrderedSet[int], format string) error {
	if err := set.Valid(); err != nil {
		return fmt.Errorf("AVL invariant violated: %w", err)
	}

	parts := make([]string, 0, set.Len())
	for v := range set.All() {
		parts = append(parts, strconv.Itoa(v))
	}

	fmt.Fprintf(w, "%s: %s\n", title, strings.Join(parts, " "))
	fmt.Fprintf(w, "Size: %d Height: %d\n", set.Len(), set.Height())
	return render.Write(w, format, "OrderedSet", render.FromAVLSet(set.Shape()))
}
