package record

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// LineKind classifies the outcome of parsing one input line.
type LineKind int

const (
	// LineMalformed is anything that did not parse as exactly one JSON value.
	LineMalformed LineKind = iota
	// LineOther is well-formed JSON whose top-level value is not an object.
	LineOther
	// LineObject is a well-formed JSON object.
	LineObject
)

// Record is the parsed representation of one input line. Records are
// line-scoped: built once, rendered once, discarded.
type Record struct {
	Raw   string
	Kind  LineKind
	Value Value
}

// Nesting deeper than this makes a line malformed rather than risking the
// call stack on adversarial input.
const maxDepth = 10000

// Parse classifies one raw line. It never fails: lines that are not valid
// JSON come back as LineMalformed and are rendered as verbatim text.
func Parse(line string) Record {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Record{Raw: line, Kind: LineMalformed}
	}

	dec := json.NewDecoder(strings.NewReader(trimmed))
	// Numbers stay opaque tokens; round-tripping a millisecond timestamp
	// through float64 would lose precision.
	dec.UseNumber()

	value, err := decodeValue(dec, 0)
	if err != nil {
		return Record{Raw: line, Kind: LineMalformed}
	}
	// A log line holds exactly one value. Trailing content means the line
	// was never JSON to begin with ("{} extra" and the like).
	if _, err := dec.Token(); err != io.EOF {
		return Record{Raw: line, Kind: LineMalformed}
	}

	kind := LineOther
	if value.Kind == KindObject {
		kind = LineObject
	}
	return Record{Raw: line, Kind: kind, Value: value}
}

func decodeValue(dec *json.Decoder, depth int) (Value, error) {
	if depth > maxDepth {
		return Value{}, fmt.Errorf("nesting exceeds %d levels", maxDepth)
	}
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec, depth)
		case '[':
			return decodeArray(dec, depth)
		}
		return Value{}, fmt.Errorf("unexpected delimiter %q", t.String())
	case string:
		return Value{Kind: KindString, Str: t}, nil
	case json.Number:
		return Value{Kind: KindNumber, Num: t}, nil
	case bool:
		return Value{Kind: KindBool, Boolean: t}, nil
	case nil:
		return Value{Kind: KindNull}, nil
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

func decodeObject(dec *json.Decoder, depth int) (Value, error) {
	obj := Value{Kind: KindObject}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key is %v, not a string", keyTok)
		}
		val, err := decodeValue(dec, depth+1)
		if err != nil {
			return Value{}, err
		}
		obj.setMember(key, val)
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder, depth int) (Value, error) {
	arr := Value{Kind: KindArray}
	for dec.More() {
		item, err := decodeValue(dec, depth+1)
		if err != nil {
			return Value{}, err
		}
		arr.Items = append(arr.Items, item)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return arr, nil
}
