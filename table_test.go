package valfmt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bjaus/valfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteGrid(t *testing.T) {
	t.Parallel()
	grid := [][]string{{"a", "bb"}, {"ccc", "d"}}
	want := strings.Join([]string{
		"╭─────┬────╮",
		"│ a   │ bb │",
		"├─────┼────┤",
		"│ ccc │ d  │",
		"╰─────┴────╯",
		"",
	}, "\n")

	var buf bytes.Buffer
	err := valfmt.WriteGrid(&buf, grid, valfmt.GridOptions{})
	require.NoError(t, err)
	assert.Equal(t, want, buf.String())
}

func TestWriteGridEmpty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := valfmt.WriteGrid(&buf, [][]string{}, valfmt.GridOptions{})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestWriteGridIrregular(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := valfmt.WriteGrid(&buf, [][]string{{"a", "b"}, {"c"}}, valfmt.GridOptions{})
	require.ErrorIs(t, err, valfmt.ErrIrregularGrid)
	assert.Contains(t, err.Error(), "row 1")
	assert.Empty(t, buf.String())

	err = valfmt.WriteGrid(&buf, [][]string{{"a"}, {"b", "c"}}, valfmt.GridOptions{})
	require.ErrorIs(t, err, valfmt.ErrIrregularGrid)
}

func TestWriteColumn(t *testing.T) {
	t.Parallel()
	want := strings.Join([]string{
		"╭────╮",
		"│ x  │",
		"├────┤",
		"│ yy │",
		"╰────╯",
		"",
	}, "\n")

	var buf bytes.Buffer
	err := valfmt.WriteColumn(&buf, []string{"x", "yy"}, valfmt.GridOptions{})
	require.NoError(t, err)
	assert.Equal(t, want, buf.String())
}

func TestRenderGridCellTypes(t *testing.T) {
	t.Parallel()
	// Ints go through %v, Values through fmt.Stringer.
	got, err := valfmt.RenderGrid([][]int{{1, 22}, {333, 4}}, valfmt.GridOptions{})
	require.NoError(t, err)
	assert.Contains(t, got, "│ 1   │ 22 │")

	got, err = valfmt.RenderGrid([][]valfmt.Value{{valfmt.Int(7), valfmt.Null}}, valfmt.GridOptions{})
	require.NoError(t, err)
	assert.Contains(t, got, "│ 7 │ null │")
}

func TestWriteGridBorderStyles(t *testing.T) {
	t.Parallel()
	grid := [][]string{{"a"}}
	tests := map[string]struct {
		border valfmt.BorderStyle
		glyphs []string
	}{
		"ascii":  {border: valfmt.BorderASCII, glyphs: []string{"+", "|", "-"}},
		"heavy":  {border: valfmt.BorderHeavy, glyphs: []string{"┏", "┃", "┗"}},
		"double": {border: valfmt.BorderDouble, glyphs: []string{"╔", "║", "╚"}},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := valfmt.RenderGrid(grid, valfmt.GridOptions{Border: tt.border})
			require.NoError(t, err)
			for _, glyph := range tt.glyphs {
				assert.Contains(t, got, glyph)
			}
		})
	}
}

func TestWriteGridBorderNone(t *testing.T) {
	t.Parallel()
	got, err := valfmt.RenderGrid([][]string{{"a", "bb"}, {"ccc", "d"}}, valfmt.GridOptions{Border: valfmt.BorderNone})
	require.NoError(t, err)
	want := strings.Join([]string{
		"a    bb",
		"---  --",
		"ccc  d",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestWriteGridAlignments(t *testing.T) {
	t.Parallel()
	grid := [][]string{{"a", "b", "c"}, {"xxx", "yyy", "zzz"}}
	got, err := valfmt.RenderGrid(grid, valfmt.GridOptions{
		Alignments: []valfmt.Alignment{valfmt.AlignLeft, valfmt.AlignCenter, valfmt.AlignRight},
	})
	require.NoError(t, err)
	assert.Contains(t, got, "│ a   │  b  │   c │")
}

func TestWriteGridWideRunes(t *testing.T) {
	t.Parallel()
	// Full-width characters count at display width, not rune count.
	got, err := valfmt.RenderGrid([][]string{{"你好"}, {"ab"}}, valfmt.GridOptions{})
	require.NoError(t, err)
	want := strings.Join([]string{
		"╭──────╮",
		"│ 你好 │",
		"├──────┤",
		"│ ab   │",
		"╰──────╯",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestWriteGridWriterError(t *testing.T) {
	t.Parallel()
	err := valfmt.WriteGrid(&errWriter{}, [][]string{{"a"}}, valfmt.GridOptions{})
	require.Error(t, err)
}
