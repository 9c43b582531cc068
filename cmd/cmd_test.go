package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/containers/internal/config"
	"github.com/conneroisu/containers/internal/scenario"
)

// resetFlags restores every flag to its default so commands can be executed
// repeatedly within one test binary.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "containers.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDemoText(t *testing.T) {
	out, err := executeCommand(t, "demo", "vector")
	require.NoError(t, err)

	expected := "== vector\n" +
		"gaurav\tneeraj\trachit\tricha\n" +
		"richa Popped back\n" +
		"gaurav\tneeraj\trachit\n" +
		"vector size is 3\n" +
		"vector capacity is 4\n"
	assert.Equal(t, expected, out)
}

func TestDemoJSON(t *testing.T) {
	out, err := executeCommand(t, "demo", "--format", "json", "avlset", "treemap")
	require.NoError(t, err)

	var results []scenario.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "avlset", results[0].Name)
	assert.Equal(t, "Set after insertions: 10 20 25 30 40 50", results[0].Lines[0])
	assert.Equal(t, "treemap", results[1].Name)
}

func TestDemoYAML(t *testing.T) {
	out, err := executeCommand(t, "demo", "-f", "yaml", "stack")
	require.NoError(t, err)

	var results []scenario.Result
	require.NoError(t, yaml.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Len(t, results[0].Errors, 2)
	assert.Equal(t, "stack.Push: container is full", results[0].Errors[0])
}

func TestDemoQueueMode(t *testing.T) {
	out, err := executeCommand(t, "demo", "--queue-mode", "circular", "queue")
	require.NoError(t, err)
	assert.Contains(t, out, "rachit6 Inserted")
	assert.Contains(t, out, "! circular_queue.Enqueue: container is full")

	out, err = executeCommand(t, "demo", "queue")
	require.NoError(t, err)
	assert.NotContains(t, out, "rachit6 Inserted")
	assert.Contains(t, out, "! queue.Enqueue: container is full")
}

func TestDemoScenariosFromConfig(t *testing.T) {
	path := writeConfig(t, "demo:\n  scenarios: [list]\n")

	out, err := executeCommand(t, "--config", path, "demo")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "== list\n"))
	assert.NotContains(t, out, "== vector")
}

func TestDemoErrors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown scenario", []string{"demo", "heap"}, `unknown scenario "heap"`},
		{"bad format", []string{"demo", "--format", "csv", "list"}, "unsupported output"},
		{"bad queue mode", []string{"demo", "--queue-mode", "ring"}, "queue_mode"},
		{"watch without file", []string{"demo", "--watch"}, "--watch requires a config file"},
		{"bad log level", []string{"--log-level", "loud", "demo", "list"}, "unknown log level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := executeCommand(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestDemoList(t *testing.T) {
	out, err := executeCommand(t, "demo", "--list")
	require.NoError(t, err)
	for _, name := range scenario.Names() {
		assert.Contains(t, out, name)
	}
}

func TestAVLCommand(t *testing.T) {
	out, err := executeCommand(t, "avl", "--erase", "10,40")
	require.NoError(t, err)

	assert.Contains(t, out, "After inserting: 10 20 25 30 40 50\n")
	assert.Contains(t, out, "Size: 6 Height: 3\n")
	assert.Contains(t, out, "30 (h=3)\n")
	assert.Contains(t, out, "After erasing: 20 25 30 50\n")
}

func TestAVLCommandDOT(t *testing.T) {
	out, err := executeCommand(t, "avl", "--render", "dot", "1", "2", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "digraph OrderedSet {")
	assert.Contains(t, out, `n0 [label="2\nh=2"];`)
}

func TestAVLCommandInvalid(t *testing.T) {
	_, err := executeCommand(t, "avl", "ten")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid integer "ten"`)
}

func TestBSTCommand(t *testing.T) {
	out, err := executeCommand(t, "bst", "--get", "15,99", "--erase", "20,10")
	require.NoError(t, err)

	assert.Contains(t, out, "After inserting:\n5: five\n10: ten\n15: fifteen\n20: twenty\n")
	assert.Contains(t, out, "get 15: fifteen\n")
	assert.Contains(t, out, "get 99: not found\n")
	assert.Contains(t, out, "After erasing:\n5: five\n15: fifteen\n")
}

func TestBSTCommandInvalid(t *testing.T) {
	_, err := executeCommand(t, "bst", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected key=value")
}

func TestHashCommand(t *testing.T) {
	out, err := executeCommand(t, "hash")
	require.NoError(t, err)

	assert.Contains(t, out, "rehash: 8 -> 16 buckets at 7 entries\n")
	assert.Contains(t, out, "entries: 7\n")
	assert.Contains(t, out, "buckets: 16\n")
	assert.Contains(t, out, "rehashes: 1\n")
}

func TestHashCommandCount(t *testing.T) {
	out, err := executeCommand(t, "hash", "--count", "1000", "--chains")
	require.NoError(t, err)

	assert.Contains(t, out, "entries: 1,000\n")
	assert.Contains(t, out, "buckets: 2,048\n")
	assert.Contains(t, out, "rehashes: 8\n")
	assert.Contains(t, out, "longest chain:")
}

func TestHashCommandEnvOverride(t *testing.T) {
	t.Setenv("CONTAINERS_HASHMAP_BUCKETS", "2")

	out, err := executeCommand(t, "hash", "only")
	require.NoError(t, err)
	assert.Contains(t, out, "buckets: 2\n")
	assert.Contains(t, out, "rehashes: 0\n")
}

func TestHashCommandInvalidBuckets(t *testing.T) {
	_, err := executeCommand(t, "hash", "--buckets", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "buckets must be at least 1")
}

func TestBoundedCommand(t *testing.T) {
	out, err := executeCommand(t, "bounded", "--capacity", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "pushed 3, then: stack.Push: container is full\n")
	assert.Contains(t, out, "popped 3, then: stack.Pop: container is empty\n")
	assert.Contains(t, out, "queue (linear): capacity 3\n")
	assert.Contains(t, out, "enqueue after drain: queue.Enqueue: container is full\n")
	assert.Contains(t, out, "after reset: enqueued 1, len 1\n")
}

func TestBoundedCommandCircular(t *testing.T) {
	out, err := executeCommand(t, "bounded", "--capacity", "3", "--queue-mode", "circular")
	require.NoError(t, err)

	assert.Contains(t, out, "queue (circular): capacity 3\n")
	assert.Contains(t, out, "enqueue after drain: ok, len 1\n")
	assert.NotContains(t, out, "after reset")
}

func TestConfigShow(t *testing.T) {
	out, err := executeCommand(t, "config", "show")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, 8, cfg.HashMap.Buckets)
	assert.Equal(t, config.QueueModeLinear, cfg.Bounded.QueueMode)
}

func TestConfigShowFromFile(t *testing.T) {
	path := writeConfig(t, "hashmap:\n  buckets: 4\nrender:\n  format: dot\n")

	out, err := executeCommand(t, "--config", path, "config", "show", "--format", "json")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, 4, cfg.HashMap.Buckets)
	assert.Equal(t, "dot", cfg.Render.Format)
}

func TestConfigValidate(t *testing.T) {
	valid := writeConfig(t, "bounded:\n  capacity: 5\n")
	out, err := executeCommand(t, "config", "validate", "--file", valid)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	unknownKey := writeConfig(t, "hashmap:\n  bukets: 5\n")
	_, err = executeCommand(t, "config", "validate", "--file", unknownKey)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bukets")

	invalid := writeConfig(t, "bounded:\n  queue_mode: ring\n")
	_, err = executeCommand(t, "config", "validate", "--file", invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "queue_mode")
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version", "--format", "json")
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &fields))
	assert.Contains(t, fields, "version")
	assert.Contains(t, fields, "go_version")

	out, err = executeCommand(t, "version", "--short")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))

	_, err = executeCommand(t, "version", "--format", "xml")
	assert.Error(t, err)
}
