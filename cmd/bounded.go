package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/conneroisu/containers/containers/bounded"
	"github.com/conneroisu/containers/internal/config"
	"github.com/conneroisu/containers/internal/scenario"
)

var boundedCmd = &cobra.Command{
	Use:   "bounded",
	Short: "Fill and drain the bounded stack and queue",
	Long: `Push into a BoundedStack and enqueue into a BoundedQueue until each reports
Full, then drain both until they report Empty.

The linear queue never reclaims slots freed at the front, so enqueueing
after a full drain still reports Full until it is reset. The circular
queue reuses them.

Examples:
  containers bounded                          # Capacity 10, linear queue
  containers bounded --capacity 3 --queue-mode circular`,
	Args: cobra.NoArgs,
	RunE: runBounded,
}

func init() {
	rootCmd.AddCommand(boundedCmd)
	addBoundedFlags(boundedCmd)
}

func runBounded(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if err := exerciseStack(out, cfg.Bounded.Capacity); err != nil {
		return err
	}
	fmt.Fprintln(out)

	q := scenario.NewQueue[int](cfg.Bounded)
	if err := exerciseQueue(out, cfg.Bounded, q); err != nil {
		return err
	}

	if lq, ok := q.(*bounded.BoundedQueue[int]); ok && lq.Exhausted() {
		logger.Info(cmd.Context(), "Linear queue exhausted, resetting", "capacity", lq.Cap())
		lq.Reset()
		if err := lq.Enqueue(0); err != nil {
			return err
		}
		fmt.Fprintf(out, "after reset: enqueued 1, len %d\n", lq.Len())
	}
	return nil
}

func exerciseStack(w io.Writer, capacity int) error {
	s := bounded.NewStack[int](capacity)
	fmt.Fprintf(w, "stack: capacity %d\n", s.Cap())

	pushed := 0
	for {
		err := s.Push(pushed)
		if errors.Is(err, bounded.ErrFull) {
			fmt.Fprintf(w, "pushed %d, then: %v\n", pushed, err)
			break
		}
		if err != nil {
			return err
		}
		pushed++
	}

	popped := 0
	for {
		_, err := s.Pop()
		if errors.Is(err, bounded.ErrEmpty) {
			fmt.Fprintf(w, "popped %d, then: %v\n", popped, err)
			return nil
		}
		if err != nil {
			return err
		}
		popped++
	}
}

func exerciseQueue(w io.Writer, cfg config.BoundedConfig, q bounded.Queue[int]) error {
	fmt.Fprintf(w, "queue (%s): capacity %d\n", cfg.QueueMode, q.Cap())

	enqueued := 0
	for {
		err := q.Enqueue(enqueued)
		if errors.Is(err, bounded.ErrFull) {
			fmt.Fprintf(w, "enqueued %d, then: %v\n", enqueued, err)
			break
		}
		if err != nil {
			return err
		}
		enqueued++
	}

	dequeued := 0
	for {
		_, err := q.Dequeue()
		if errors.Is(err, bounded.ErrEmpty) {
			fmt.Fprintf(w, "dequeued %d, then: %v\n", dequeued, err)
			break
		}
		if err != nil {
			return err
		}
		dequeued++
	}

	if err := q.Enqueue(-1); err != nil {
		fmt.Fprintf(w, "enqueue after drain: %v\n", err)
		return nil
	}
	fmt.Fprintf(w, "enqueue after drain: ok, len %d\n", q.Len())
	return nil
}
