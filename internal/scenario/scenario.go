// Package scenario holds the canonical container walkthroughs run by the
// demo command. Each scenario drives one container through a fixed
// sequence of operations and records what it observed.
package scenario

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/conneroisu/containers/internal/config"
	cerrors "github.com/conneroisu/containers/internal/errors"
	"github.com/conneroisu/containers/internal/logging"
)

// Env carries the collaborators shared by every scenario in a run.
type Env struct {
	Config *config.Config
	Logger logging.Logger
	Errors *cerrors.Collector
}

// NewEnv returns an Env with a fresh error collector. A nil cfg or logger
// is replaced by the defaults.
func NewEnv(cfg *config.Config, logger logging.Logger) *Env {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Env{Config: cfg, Logger: logger, Errors: cerrors.NewCollector()}
}

// Result is the outcome of one scenario.
type Result struct {
	Name   string   `json:"name" yaml:"name"`
	Lines  []string `json:"lines" yaml:"lines"`
	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

type recorder struct {
	name   string
	env    *Env
	lines  []string
	errors []string
}

func (r *recorder) printf(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

// expect records err as an anticipated container error for step.
func (r *recorder) expect(step string, err error) {
	if err == nil {
		return
	}
	r.env.Errors.Add(r.name+"."+step, err)
	r.errors = append(r.errors, err.Error())
}

// Scenario is a named walkthrough.
type Scenario struct {
	Name        string
	Description string
	run         func(ctx context.Context, r *recorder) error
}

var registry = []Scenario{
	{Name: "vector", Description: "push four names, pop one, report size and capacity", run: runVector},
	{Name: "list", Description: "push and pop at both ends of a linked list", run: runList},
	{Name: "deque", Description: "push and pop at both ends of a block deque", run: runDeque},
	{Name: "treemap", Description: "insert four keys and erase leaf and two-child nodes", run: runTreeMap},
	{Name: "avlset", Description: "insert six values with rotations, erase two", run: runAVLSet},
	{Name: "hashmap", Description: "find, erase and default-insert in a chained hash map", run: runHashMap},
	{Name: "stack", Description: "overfill a bounded stack", run: runStack},
	{Name: "queue", Description: "overfill a bounded queue", run: runQueue},
}

// All returns every scenario in run order.
func All() []Scenario {
	out := make([]Scenario, len(registry))
	copy(out, registry)
	return out
}

// Names returns the scenario names in run order.
func Names() []string {
	names := make([]string, len(registry))
	for i, s := range registry {
		names[i] = s.Name
	}
	return names
}

// Lookup finds a scenario by name.
func Lookup(name string) (Scenario, bool) {
	for _, s := range registry {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

// Run executes the named scenarios, or all of them when names is empty.
// Unknown names fail before anything runs.
func Run(ctx context.Context, env *Env, names []string) ([]Result, error) {
	selected := registry
	if len(names) > 0 {
		selected = make([]Scenario, 0, len(names))
		for _, name := range names {
			s, ok := Lookup(name)
			if !ok {
				return nil, fmt.Errorf("unknown scenario %q (available: %s)", name, strings.Join(Names(), ", "))
			}
			selected = append(selected, s)
		}
	}

	results := make([]Result, 0, len(selected))
	for _, s := range selected {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		r := &recorder{name: s.Name, env: env}
		perf := logging.StartOperation(env.Logger.WithComponent("scenario"), s.Name)
		if err := s.run(ctx, r); err != nil {
			perf.EndWithError(ctx, err)
			return results, fmt.Errorf("scenario %s: %w", s.Name, err)
		}
		perf.End(ctx)

		results = append(results, Result{Name: s.Name, Lines: r.lines, Errors: r.errors})
	}
	return results, nil
}

// WriteText prints results in the plain layout used by the demo command.
func WriteText(w io.Writer, results []Result) error {
	var sb strings.Builder
	for i, res := range results {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "== %s\n", res.Name)
		for _, line := range res.Lines {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		for _, e := range res.Errors {
			fmt.Fprintf(&sb, "! %s\n", e)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
