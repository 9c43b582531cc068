// Package render draws binary tree shapes as indented ASCII or as
// Graphviz DOT source.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/conneroisu/containers/containers/avlset"
	"github.com/conneroisu/containers/containers/treemap"
)

// Supported output formats.
const (
	FormatASCII = "ascii"
	FormatDOT   = "dot"
)

// Node is one rendered tree node.
type Node struct {
	Label string
	Note  string
	Left  *Node
	Right *Node
}

// FromTreeMap converts an OrderedMap shape into render nodes, noting each value.
func FromTreeMap[K, V any](s *treemap.Shape[K, V]) *Node {
	if s == nil {
		return nil
	}
	return &Node{
		Label: fmt.Sprint(s.Key),
		Note:  fmt.Sprint(s.Value),
		Left:  FromTreeMap(s.Left),
		Right: FromTreeMap(s.Right),
	}
}

// FromAVLSet converts an OrderedSet shape into render nodes, noting each height.
func FromAVLSet[T any](s *avlset.Shape[T]) *Node {
	if s == nil {
		return nil
	}
	return &Node{
		Label: fmt.Sprint(s.Value),
		Note:  fmt.Sprintf("h=%d", s.Height),
		Left:  FromAVLSet(s.Left),
		Right: FromAVLSet(s.Right),
	}
}

// Write renders root in the named format.
func Write(w io.Writer, format, name string, root *Node) error {
	switch format {
	case FormatASCII, "":
		return ASCII(w, root)
	case FormatDOT:
		return DOT(w, name, root)
	default:
		return fmt.Errorf("unsupported render format %q", format)
	}
}

// ASCII writes root as an indented tree, left child first. A missing
// child is drawn as "-" when its sibling exists.
func ASCII(w io.Writer, root *Node) error {
	var buf bytes.Buffer
	if root == nil {
		buf.WriteString("(empty)\n")
	} else {
		buf.WriteString(root.text())
		buf.WriteByte('\n')
		writeChildren(&buf, root, "")
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func (n *Node) text() string {
	if n.Note == "" {
		return n.Label
	}
	return fmt.Sprintf("%s (%s)", n.Label, n.Note)
}

func writeChildren(buf *bytes.Buffer, n *Node, prefix string) {
	if n.Left == nil && n.Right == nil {
		return
	}
	writeBranch(buf, n.Left, prefix, false)
	writeBranch(buf, n.Right, prefix, true)
}

func writeBranch(buf *bytes.Buffer, n *Node, prefix string, last bool) {
	connector, indent := "├── ", "│   "
	if last {
		connector, indent = "└── ", "    "
	}
	buf.WriteString(prefix)
	buf.WriteString(connector)
	if n == nil {
		buf.WriteString("-\n")
		return
	}
	buf.WriteString(n.text())
	buf.WriteByte('\n')
	writeChildren(buf, n, prefix+indent)
}

// DOT writes root as a Graphviz digraph. Nodes are numbered in preorder
// and edges are labelled L or R.
func DOT(w io.Writer, name string, root *Node) error {
	if name == "" {
		name = "Tree"
	}
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("digraph %s {\n", quoteID(name)))
	buf.WriteString("  node [shape=circle, fontsize=10];\n")
	buf.WriteString("  edge [fontsize=9];\n")

	next := 0
	var walk func(n *Node) string
	walk = func(n *Node) string {
		id := fmt.Sprintf("n%d", next)
		next++
		label := escape(n.Label)
		if n.Note != "" {
			label += `\n` + escape(n.Note)
		}
		buf.WriteString(fmt.Sprintf("  %s [label=\"%s\"];\n", id, label))
		if n.Left != nil {
			child := walk(n.Left)
			buf.WriteString(fmt.Sprintf("  %s -> %s [label=\"L\"];\n", id, child))
		}
		if n.Right != nil {
			child := walk(n.Right)
			buf.WriteString(fmt.Sprintf("  %s -> %s [label=\"R\"];\n", id, child))
		}
		return id
	}
	if root != nil {
		walk(root)
	}

	buf.WriteString("}\n")
	_, err := w.Write(buf.Bytes())
	return err
}

func escape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

func quoteID(s string) string {
	for _, r := range s {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return `"` + escape(s) + `"`
		}
	}
	return s
}
