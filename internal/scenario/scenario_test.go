package scenario

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/containers/internal/config"
	cerrors "github.com/conneroisu/containers/internal/errors"
	"github.com/conneroisu/containers/internal/logging"
)

func runOne(t *testing.T, env *Env, name string) Result {
	t.Helper()
	results, err := Run(context.Background(), env, []string{name})
	require.NoError(t, err)
	require.Len(t, results, 1)
	return results[0]
}

func TestScenarioOutput(t *testing.T) {
	testCases := []struct {
		name     string
		expected []string
		errors   int
	}{
		{
			name: "vector",
			expected: []string{
				"gaurav\tneeraj\trachit\tricha",
				"richa Popped back",
				"gaurav\tneeraj\trachit",
				"vector size is 3",
				"vector capacity is 4",
			},
		},
		{
			name:     "list",
			expected: []string{"1 2 3", "0 1 2 3", "0 1 2", "1 2", "Front: 1", "Back: 2"},
		},
		{
			name: "deque",
			expected: []string{
				"Front: 5",
				"Back: 20",
				"After popping front, front: 10",
				"After popping back, back: 10",
			},
		},
		{
			name: "treemap",
			expected: []string{
				"Before erasing:", "5: five", "10: ten", "15: fifteen", "20: twenty",
				"After erasing 20:", "5: five", "10: ten", "15: fifteen",
				"After erasing 10:", "5: five", "15: fifteen",
			},
		},
		{
			name: "avlset",
			expected: []string{
				"Set after insertions: 10 20 25 30 40 50",
				"Height: 3",
				"Set after erasing 10: 20 25 30 40 50",
				"Set after erasing 40: 20 25 30 50",
			},
		},
		{
			name:     "hashmap",
			expected: []string{"Bob's age: 25", "David's age: 40", "Size: 3", "Size: 2"},
			errors:   1,
		},
		{
			name: "stack",
			expected: []string{
				"Pushed Element = 10", "Pushed Element = 20", "Pushed Element = 30",
				"Pushed Element = 40", "Pushed Element = 50", "Pushed Element = 60",
				"Pushed Element = 70", "Popped Element = 70",
				"Pushed Element = 80", "Pushed Element = 90", "Pushed Element = 71",
				"Pushed Element = 73", "Popped Element = 73", "Popped Element = 71",
				"Full: false",
			},
			errors: 2,
		},
		{
			name: "queue",
			expected: []string{
				"gaurav Inserted", "neeraj Inserted", "vivek Inserted", "rachit Inserted",
				"gaurav Deleted", "richa Inserted",
				"Front element is neeraj size of queue = 4",
				"rachit1 Inserted", "rachit2 Inserted", "rachit3 Inserted",
				"rachit4 Inserted", "rachit5 Inserted",
			},
			errors: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := runOne(t, NewEnv(nil, nil), tc.name)
			assert.Equal(t, tc.name, res.Name)
			assert.Equal(t, tc.expected, res.Lines)
			assert.Len(t, res.Errors, tc.errors)
		})
	}
}

func TestCircularQueueScenario(t *testing.T) {
	cfg := config.Default()
	cfg.Bounded.QueueMode = config.QueueModeCircular
	env := NewEnv(cfg, nil)

	res := runOne(t, env, "queue")

	assert.Contains(t, res.Lines, "rachit6 Inserted")
	assert.NotContains(t, res.Lines, "rachit7 Inserted")
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "circular_queue.Enqueue: container is full", res.Errors[0])
}

func TestErrorsCollected(t *testing.T) {
	env := NewEnv(nil, nil)
	_, err := Run(context.Background(), env, []string{"hashmap", "stack"})
	require.NoError(t, err)

	counts := env.Errors.Counts()
	assert.Equal(t, 1, counts[cerrors.KindNotFound])
	assert.Equal(t, 2, counts[cerrors.KindFull])

	records := env.Errors.ByContainer("stack")
	require.Len(t, records, 2)
	assert.Equal(t, "stack.Push", records[0].Step)
}

func TestHashMapRehashLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&logging.LoggerConfig{Level: logging.LevelDebug, Output: &buf})

	cfg := config.Default()
	cfg.HashMap.Buckets = 1
	env := NewEnv(cfg, logger)

	runOne(t, env, "hashmap")
	assert.Contains(t, buf.String(), "Rehashed")
	assert.Contains(t, buf.String(), "component=hashmap")
}

func TestRunAll(t *testing.T) {
	results, err := Run(context.Background(), NewEnv(nil, nil), nil)
	require.NoError(t, err)

	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Name
	}
	assert.Equal(t, Names(), names)
}

func TestRunUnknown(t *testing.T) {
	results, err := Run(context.Background(), NewEnv(nil, nil), []string{"vector", "heap"})
	require.Error(t, err)
	assert.Nil(t, results)
	assert.Contains(t, err.Error(), `unknown scenario "heap"`)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Run(ctx, NewEnv(nil, nil), nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestLookup(t *testing.T) {
	s, ok := Lookup("avlset")
	require.True(t, ok)
	assert.NotEmpty(t, s.Description)

	_, ok = Lookup("missing")
	assert.False(t, ok)
	assert.Len(t, All(), len(Names()))
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	err := WriteText(&buf, []Result{
		{Name: "a", Lines: []string{"one"}},
		{Name: "b", Lines: []string{"two"}, Errors: []string{"stack.Push: container is full"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "== a\none\n\n== b\ntwo\n! stack.Push: container is full\n", buf.String())
}
