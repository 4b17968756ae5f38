package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/bjaus/valfmt"
)

var cli struct {
	Input  string `help:"Path to input JSON file. Reads stdin when omitted." short:"i" type:"path"`
	Format string `help:"Output format: tree, table, markdown, csv, tsv, yaml, list, env, plain." short:"f" default:"tree"`
	Path   string `help:"Dot-separated path to select before rendering, e.g. users.0.name." short:"p"`
	Strict bool   `help:"Keep numeric-looking strings as strings."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("valfmt"),
		kong.Description("Render JSON documents as trees, tables, and other text formats."),
		kong.UsageOnError(),
	)
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "valfmt: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	format, err := valfmt.ParseFormat(cli.Format)
	if err != nil {
		return err
	}

	var r io.Reader = os.Stdin
	if cli.Input != "" {
		f, err := os.Open(cli.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	var v valfmt.Value
	if cli.Strict {
		v, err = valfmt.ParseReaderStrict(r)
	} else {
		v, err = valfmt.ParseReader(r)
	}
	if err != nil {
		return err
	}

	if cli.Path != "" {
		v, err = selectPath(v, cli.Path)
		if err != nil {
			return err
		}
	}

	return valfmt.Write(os.Stdout, format, v)
}

// selectPath walks v along a dot-separated path. Numeric segments index
// arrays; everything else is an object field.
func selectPath(v valfmt.Value, path string) (valfmt.Value, error) {
	for _, seg := range strings.Split(path, ".") {
		var err error
		if i, convErr := strconv.Atoi(seg); convErr == nil && v.Kind() == valfmt.KindArray {
			v, err = v.Index(i)
		} else {
			v, err = v.Field(seg)
		}
		if err != nil {
			return valfmt.Value{}, fmt.Errorf("path %q: %w", path, err)
		}
	}
	return v, nil
}
