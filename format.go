package valfmt

import (
	"bytes"
	"fmt"
	"io"
)

// Format represents an output format.
type Format string

const (
	Tree     Format = "tree"
	Table    Format = "table"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	YAML     Format = "yaml"
	List     Format = "list"
	ENV      Format = "env"
	Plain    Format = "plain"
)

var formats = []Format{Tree, Table, Markdown, CSV, TSV, YAML, List, ENV, Plain}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders v in format f and writes the text to w.
//
// Tree, YAML, and Plain accept any Value. Table, Markdown, CSV, and TSV
// require an array of equal-length arrays (rendered as a grid) or an array of
// scalars (rendered as a single column). List requires an array; ENV requires
// an object. Shape violations fail with [ErrTypeMismatch] or
// [ErrIrregularGrid].
func Write(w io.Writer, f Format, v Value) error {
	switch f {
	case Tree:
		return WriteTree(w, v)
	case Table:
		return writeValueTable(w, v)
	case Markdown:
		return writeValueMarkdown(w, v)
	case CSV:
		return writeValueCSV(w, v, ',')
	case TSV:
		return writeValueCSV(w, v, '\t')
	case YAML:
		return writeYAML(w, v)
	case List:
		return writeList(w, v)
	case ENV:
		return writeENV(w, v)
	case Plain:
		_, err := fmt.Fprintln(w, v.String())
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders v in format f and returns the bytes.
func Marshal(f Format, v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// gridFromValue flattens v into rows of cell text for the grid-shaped
// formats. An array of arrays becomes one row per element, all required to
// match the first row's length; an array of anything else becomes a single
// column with one stringified element per row.
func gridFromValue(v Value) ([][]string, error) {
	if v.kind != KindArray {
		return nil, v.mismatch("grid", KindArray)
	}
	if len(v.arr) == 0 {
		return nil, nil
	}
	if v.arr[0].kind != KindArray {
		rows := make([][]string, len(v.arr))
		for i, e := range v.arr {
			rows[i] = []string{e.String()}
		}
		return rows, nil
	}
	numCols := len(v.arr[0].arr)
	rows := make([][]string, len(v.arr))
	for i, row := range v.arr {
		if row.kind != KindArray {
			return nil, row.mismatch(fmt.Sprintf("grid row %d", i), KindArray)
		}
		if len(row.arr) != numCols {
			return nil, fmt.Errorf("%w: row %d has %d cells, first row has %d", ErrIrregularGrid, i, len(row.arr), numCols)
		}
		cells := make([]string, numCols)
		for j, cell := range row.arr {
			cells[j] = cell.String()
		}
		rows[i] = cells
	}
	return rows, nil
}

func writeValueTable(w io.Writer, v Value) error {
	rows, err := gridFromValue(v)
	if err != nil {
		return err
	}
	return writeStringGrid(w, rows, GridOptions{})
}
