// Package valfmt models semi-structured JSON-like data and renders it as
// text.
//
// The center of the package is [Value], an immutable six-variant tagged
// union (object, array, double, int, string, null) with fail-fast typed
// accessors: asking an array for a field, or an object for an index, is a
// loud [ErrTypeMismatch], never a silent default, and a missing field is
// [ErrMissingKey] rather than null. [Value.Lookup] covers the cases where
// presence is genuinely optional.
//
// # Building Values
//
// Construct Values directly ([Object], [Array], [Double], [Int], [String],
// [Null]) or convert decoded JSON:
//
//	v, err := valfmt.Parse(`{"answer": "42"}`)
//
// [Parse] delegates decoding to [encoding/json] and then applies [Convert],
// which normalizes numeric-looking strings ("42" becomes an int Value) so
// typed accessors work uniformly against sources that quote their numerals.
// Use [ParseStrict] or [ConvertStrict] to keep such strings verbatim.
//
// # Tree Rendering
//
// Any type implementing [TreeNode] — a label plus ordered children — renders
// as a connector-annotated tree via [WriteTree] or [RenderTree]. Value
// implements TreeNode, so a parsed document prints as:
//
//	object
//	├── name → gopher
//	└── tags
//	    └── array
//	        ├── go
//	        └── json
//
// # Table Rendering
//
// [WriteGrid] renders a rectangular grid of stringifiable cells as a
// Unicode box-drawn table, columns sized to their widest cell. Rows that
// disagree with the first row's cell count fail with [ErrIrregularGrid].
// [WriteColumn] runs a flat sequence through the same engine as a
// single-column table.
//
// # Format Selection
//
// [Write] and [Marshal] render a Value in a named [Format] (tree, table,
// markdown, csv, tsv, yaml, list, env, plain). Use [ParseFormat] to convert
// a CLI flag string into a Format:
//
//	f, err := valfmt.ParseFormat(flagValue)
//	valfmt.Write(os.Stdout, f, v)
//
// # Errors
//
// Every failure wraps one of the package's sentinel errors
// ([ErrTypeMismatch], [ErrMissingKey], [ErrIndexOutOfRange],
// [ErrUnsupportedType], [ErrMalformedInput], [ErrIrregularGrid],
// [ErrUnsupportedFormat]) for handling with [errors.Is].
package valfmt
