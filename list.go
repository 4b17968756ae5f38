package valfmt

import (
	"fmt"
	"io"
)

func writeList(w io.Writer, v Value) error {
	if v.kind != KindArray {
		return v.mismatch("list", KindArray)
	}
	for _, e := range v.arr {
		if _, err := fmt.Fprintln(w, e.String()); err != nil {
			return err
		}
	}
	return nil
}
