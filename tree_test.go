package valfmt_test

import (
	"strings"
	"testing"

	"github.com/bjaus/valfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNode struct {
	label    string
	children []valfmt.TreeNode
}

func (n stubNode) Label() string { return n.label }

func (n stubNode) Children() []valfmt.TreeNode { return n.children }

func TestRenderTreeLeaf(t *testing.T) {
	t.Parallel()
	got := valfmt.RenderTree(stubNode{label: "x"})
	assert.Equal(t, "x\n", got)
}

func TestRenderTreeNil(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", valfmt.RenderTree(nil))
}

func TestRenderTreeConnectors(t *testing.T) {
	t.Parallel()
	root := stubNode{
		label: "root",
		children: []valfmt.TreeNode{
			stubNode{label: "first", children: []valfmt.TreeNode{
				stubNode{label: "nested"},
			}},
			stubNode{label: "middle"},
			stubNode{label: "last", children: []valfmt.TreeNode{
				stubNode{label: "deep"},
			}},
		},
	}
	want := strings.Join([]string{
		"root",
		"├── first",
		"│   └── nested",
		"├── middle",
		"└── last",
		"    └── deep",
		"",
	}, "\n")
	assert.Equal(t, want, valfmt.RenderTree(root))
}

func TestRenderTreeSkipsAbsentChildren(t *testing.T) {
	t.Parallel()
	root := stubNode{
		label: "root",
		children: []valfmt.TreeNode{
			nil,
			stubNode{label: "only"},
			nil,
		},
	}
	want := "root\n└── only\n"
	assert.Equal(t, want, valfmt.RenderTree(root))
}

func TestWriteTreeError(t *testing.T) {
	t.Parallel()
	err := valfmt.WriteTree(&errWriter{}, stubNode{label: "x"})
	require.Error(t, err)
}

func TestValueTreeScalars(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "42\n", valfmt.RenderTree(valfmt.Int(42)))
	assert.Equal(t, "hi\n", valfmt.RenderTree(valfmt.String("hi")))
	assert.Equal(t, "null\n", valfmt.RenderTree(valfmt.Null))
}

func TestValueTree(t *testing.T) {
	t.Parallel()
	v, err := valfmt.Parse(`{"a": 1, "b": {"c": "2.5"}, "list": ["x", "y"]}`)
	require.NoError(t, err)

	want := strings.Join([]string{
		"object",
		"├── a → 1",
		"├── b",
		"│   └── object",
		"│       └── c → 2.5",
		"└── list",
		"    └── array",
		"        ├── x",
		"        └── y",
		"",
	}, "\n")
	assert.Equal(t, want, valfmt.RenderTree(v))
}

func TestValueTreeEmptyContainers(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "object\n", valfmt.RenderTree(valfmt.Object(nil)))
	assert.Equal(t, "array\n", valfmt.RenderTree(valfmt.Array(nil)))
}

func TestValueTreeArrayOfObjects(t *testing.T) {
	t.Parallel()
	v, err := valfmt.Parse(`[{"id": 1}, {"id": 2}]`)
	require.NoError(t, err)

	want := strings.Join([]string{
		"array",
		"├── object",
		"│   └── id → 1",
		"└── object",
		"    └── id → 2",
		"",
	}, "\n")
	assert.Equal(t, want, valfmt.RenderTree(v))
}
