package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/containers/containers/avlset"
	"github.com/conneroisu/containers/containers/treemap"
)

func TestASCIIAVLSet(t *testing.T) {
	s := avlset.From(10, 20, 30, 40, 50, 25)

	var buf bytes.Buffer
	require.NoError(t, ASCII(&buf, FromAVLSet(s.Shape())))

	expected := strings.Join([]string{
		"30 (h=3)",
		"├── 20 (h=2)",
		"│   ├── 10 (h=1)",
		"│   └── 25 (h=1)",
		"└── 40 (h=2)",
		"    ├── -",
		"    └── 50 (h=1)",
		"",
	}, "\n")
	assert.Equal(t, expected, buf.String())
}

func TestASCIITreeMap(t *testing.T) {
	m := treemap.New[int, string]()
	m.Insert(10, "ten")
	m.Insert(5, "five")

	var buf bytes.Buffer
	require.NoError(t, ASCII(&buf, FromTreeMap(m.Shape())))

	assert.Equal(t, "10 (ten)\n├── 5 (five)\n└── -\n", buf.String())
}

func TestASCIIEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ASCII(&buf, nil))
	assert.Equal(t, "(empty)\n", buf.String())
}

func TestDOT(t *testing.T) {
	root := &Node{
		Label: "20",
		Note:  "h=2",
		Left:  &Node{Label: "10", Note: "h=1"},
		Right: &Node{Label: "30", Note: "h=1"},
	}

	var buf bytes.Buffer
	require.NoError(t, DOT(&buf, "AVL", root))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "digraph AVL {\n"))
	assert.Contains(t, out, `n0 [label="20\nh=2"];`)
	assert.Contains(t, out, `n0 -> n1 [label="L"];`)
	assert.Contains(t, out, `n0 -> n2 [label="R"];`)
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestDOTQuoting(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DOT(&buf, "my tree", &Node{Label: `say "hi"`}))

	assert.Contains(t, buf.String(), `digraph "my tree" {`)
	assert.Contains(t, buf.String(), `label="say \"hi\""`)
}

func TestWrite(t *testing.T) {
	testCases := []struct {
		format  string
		prefix  string
		wantErr bool
	}{
		{FormatASCII, "1", false},
		{"", "1", false},
		{FormatDOT, "digraph Tree", false},
		{"svg", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			var buf bytes.Buffer
			err := Write(&buf, tc.format, "", &Node{Label: "1"})
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(buf.String(), tc.prefix))
		})
	}
}
