package valfmt

import (
	"fmt"
	"io"
)

func writeENV(w io.Writer, v Value) error {
	if v.kind != KindObject {
		return v.mismatch("env", KindObject)
	}
	for _, k := range v.Keys() {
		if _, err := fmt.Fprintf(w, "%s=%s\n", k, v.obj[k].String()); err != nil {
			return err
		}
	}
	return nil
}
