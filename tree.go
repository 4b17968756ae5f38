package valfmt

import (
	"fmt"
	"io"
	"strings"
)

// TreeNode is the capability a type implements to be rendered by [WriteTree].
// Label is a short, single-line description of the node; Children returns the
// ordered child nodes. Nil entries in the children slice are skipped.
//
// Implementations must be acyclic; the renderer does not guard against
// cycles.
type TreeNode interface {
	Label() string
	Children() []TreeNode
}

const (
	treeBranch     = "├── "
	treeLastBranch = "└── "
	treeVertical   = "│   "
	treeIndent     = "    "
)

// WriteTree renders root and its descendants as an indented tree with
// box-drawing connectors, one node per line.
func WriteTree(w io.Writer, root TreeNode) error {
	if root == nil {
		return nil
	}
	if _, err := fmt.Fprintln(w, root.Label()); err != nil {
		return err
	}
	return writeSubtree(w, root.Children(), "")
}

// RenderTree is [WriteTree] returning the text.
func RenderTree(root TreeNode) string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = WriteTree(&sb, root)
	return sb.String()
}

func writeSubtree(w io.Writer, children []TreeNode, prefix string) error {
	var present []TreeNode
	for _, c := range children {
		if c != nil {
			present = append(present, c)
		}
	}
	for i, c := range present {
		connector, continuation := treeBranch, treeVertical
		if i == len(present)-1 {
			connector, continuation = treeLastBranch, treeIndent
		}
		if _, err := fmt.Fprintln(w, prefix+connector+c.Label()); err != nil {
			return err
		}
		if err := writeSubtree(w, c.Children(), prefix+continuation); err != nil {
			return err
		}
	}
	return nil
}

// labeledNode wraps an arbitrary label above zero or more children. Used to
// give object fields their key labels.
type labeledNode struct {
	label    string
	children []TreeNode
}

func (n labeledNode) Label() string        { return n.label }
func (n labeledNode) Children() []TreeNode { return n.children }

// Label implements [TreeNode]: the kind name for containers, the stringified
// scalar otherwise.
func (v Value) Label() string { return v.String() }

// Children implements [TreeNode]. Object fields holding scalars collapse
// into "key → value" leaves; fields holding containers become a "key" node
// with the nested value as its single child, so subtrees stay labeled
// without inlining grandchildren. Array elements appear unlabeled.
func (v Value) Children() []TreeNode {
	switch v.kind {
	case KindObject:
		keys := v.Keys()
		nodes := make([]TreeNode, 0, len(keys))
		for _, k := range keys {
			f := v.obj[k]
			switch f.kind {
			case KindObject, KindArray:
				nodes = append(nodes, labeledNode{label: k, children: []TreeNode{f}})
			default:
				nodes = append(nodes, labeledNode{label: k + " → " + f.String()})
			}
		}
		return nodes
	case KindArray:
		nodes := make([]TreeNode, len(v.arr))
		for i, e := range v.arr {
			nodes[i] = e
		}
		return nodes
	default:
		return nil
	}
}
