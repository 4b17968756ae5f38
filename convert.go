package valfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Convert maps a loosely-typed native structure (the output of a generic
// JSON decode) into a [Value], depth-first. Strings that parse as integer or
// floating-point literals are coerced to Int and Double respectively, which
// normalizes data sources that quote their numerals. Use [ConvertStrict] to
// keep such strings verbatim.
//
// Booleans and any other unrecognized Go type fail with [ErrUnsupportedType];
// there is no partial result.
func Convert(v any) (Value, error) { return convert(v, true) }

// ConvertStrict is [Convert] without the numeric-string coercion.
func ConvertStrict(v any) (Value, error) { return convert(v, false) }

func convert(v any, coerce bool) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null, nil
	case map[string]any:
		fields := make(map[string]Value, len(t))
		for k, e := range t {
			c, err := convert(e, coerce)
			if err != nil {
				return Value{}, err
			}
			fields[k] = c
		}
		return Value{kind: KindObject, obj: fields}, nil
	case []any:
		items := make([]Value, len(t))
		for i, e := range t {
			c, err := convert(e, coerce)
			if err != nil {
				return Value{}, err
			}
			items[i] = c
		}
		return Value{kind: KindArray, arr: items}, nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Int(i), nil
		}
		if d, err := t.Float64(); err == nil {
			return Double(d), nil
		}
		// Overflows both int64 and float64; keep the digits as text.
		return String(t.String()), nil
	case int:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case float32:
		return Double(float64(t)), nil
	case float64:
		return Double(t), nil
	case string:
		if coerce {
			if i, err := strconv.ParseInt(t, 10, 64); err == nil {
				return Int(i), nil
			}
			if d, err := strconv.ParseFloat(t, 64); err == nil {
				return Double(d), nil
			}
		}
		return String(t), nil
	case Value:
		return t, nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

// Parse decodes text as JSON and converts the result via [Convert]. Decode
// failures, including trailing data after the first value, wrap
// [ErrMalformedInput].
func Parse(text string) (Value, error) {
	return ParseReader(strings.NewReader(text))
}

// ParseStrict is [Parse] without the numeric-string coercion.
func ParseStrict(text string) (Value, error) {
	return ParseReaderStrict(strings.NewReader(text))
}

// ParseReader is [Parse] reading from r.
func ParseReader(r io.Reader) (Value, error) {
	raw, err := decodeJSON(r)
	if err != nil {
		return Value{}, err
	}
	return Convert(raw)
}

// ParseReaderStrict is [ParseReader] without the numeric-string coercion.
func ParseReaderStrict(r io.Reader) (Value, error) {
	raw, err := decodeJSON(r)
	if err != nil {
		return Value{}, err
	}
	return ConvertStrict(raw)
}

func decodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after first JSON value", ErrMalformedInput)
	}
	return raw, nil
}
