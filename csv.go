package valfmt

import (
	"encoding/csv"
	"io"
)

func writeValueCSV(w io.Writer, v Value, delim rune) error {
	rows, err := gridFromValue(v)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	cw.Comma = delim
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
