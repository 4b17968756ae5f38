package valfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// GridOptions controls grid rendering. The zero value renders a rounded-
// border, left-aligned table.
type GridOptions struct {
	Border BorderStyle
	// Alignments sets per-column alignment; missing columns default to
	// AlignLeft.
	Alignments []Alignment
}

// WriteGrid renders a rectangular grid of cells as a bordered table: a top
// border, each row's cells padded to the widest cell in their column, a
// separator line between consecutive rows, and a bottom border.
//
// Cells stringify via [fmt.Stringer] when implemented, else fmt's %v verb.
// Every row must have the first row's cell count or the call fails with
// [ErrIrregularGrid]. An empty grid writes nothing.
func WriteGrid[T any](w io.Writer, grid [][]T, opts GridOptions) error {
	rows, err := stringifyGrid(grid)
	if err != nil {
		return err
	}
	return writeStringGrid(w, rows, opts)
}

// RenderGrid is [WriteGrid] returning the text.
func RenderGrid[T any](grid [][]T, opts GridOptions) (string, error) {
	var sb strings.Builder
	if err := WriteGrid(&sb, grid, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteColumn renders a one-dimensional sequence as a single-column table,
// each element on its own bordered row.
func WriteColumn[T any](w io.Writer, items []T, opts GridOptions) error {
	grid := make([][]T, len(items))
	for i, item := range items {
		grid[i] = []T{item}
	}
	return WriteGrid(w, grid, opts)
}

func stringifyGrid[T any](grid [][]T) ([][]string, error) {
	if len(grid) == 0 {
		return nil, nil
	}
	numCols := len(grid[0])
	rows := make([][]string, len(grid))
	for i, row := range grid {
		if len(row) != numCols {
			return nil, fmt.Errorf("%w: row %d has %d cells, first row has %d", ErrIrregularGrid, i, len(row), numCols)
		}
		cells := make([]string, numCols)
		for j, cell := range row {
			cells[j] = cellString(cell)
		}
		rows[i] = cells
	}
	return rows, nil
}

func cellString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}

func writeStringGrid(w io.Writer, rows [][]string, opts GridOptions) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}
	widths := gridWidths(rows)
	aligns := extendAligns(opts.Alignments, len(widths))
	if opts.Border == BorderNone {
		return renderPlainGrid(w, rows, widths, aligns)
	}
	return renderBorderedGrid(w, rows, widths, aligns, borderSets[opts.Border])
}

func gridWidths(rows [][]string) []int {
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func extendAligns(aligns []Alignment, numCols int) []Alignment {
	if len(aligns) >= numCols {
		return aligns[:numCols]
	}
	extended := make([]Alignment, numCols)
	copy(extended, aligns)
	return extended
}

func renderBorderedGrid(w io.Writer, rows [][]string, widths []int, aligns []Alignment, bc borderChars) error {
	if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}
	for i, row := range rows {
		if i > 0 {
			if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
				return err
			}
		}
		if err := drawBorderedRow(w, row, widths, aligns, bc.vertical); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, cells []string, widths []int, aligns []Alignment, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(alignCell(cells[i], width, aligns[i]))
		sb.WriteString(" ")
		sb.WriteString(vert)
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func renderPlainGrid(w io.Writer, rows [][]string, widths []int, aligns []Alignment) error {
	sep := make([]string, len(widths))
	for j, width := range widths {
		sep[j] = strings.Repeat("-", width)
	}
	sepLine := strings.Join(sep, "  ")
	for i, row := range rows {
		if i > 0 {
			if _, err := fmt.Fprintln(w, sepLine); err != nil {
				return err
			}
		}
		parts := make([]string, len(widths))
		for j, width := range widths {
			parts[j] = alignCell(row[j], width, aligns[j])
		}
		line := strings.TrimRight(strings.Join(parts, "  "), " ")
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
