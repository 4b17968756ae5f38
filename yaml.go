package valfmt

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, v Value) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v.native()); err != nil {
		return err
	}
	return enc.Close()
}
