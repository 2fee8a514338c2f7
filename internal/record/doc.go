// Package record parses raw input lines into classified JSON value trees.
//
// # Overview
//
// Each input line is parsed independently into a Record carrying the original
// raw text, a line kind, and (when parsing succeeded) the parsed value tree.
// The three kinds drive the renderer's top-level dispatch:
//
//   - LineObject: a JSON object, eligible for field classification
//   - LineOther: valid JSON that is not an object (array, string, number, ...)
//   - LineMalformed: anything else, rendered as verbatim passthrough text
//
// # Why not encoding/json.Unmarshal into a map
//
// Two requirements rule out the obvious map[string]any decode:
//
//  1. Field order matters. Log emitters group related fields deliberately,
//     and Go maps iterate in randomized order. Object members are therefore
//     kept as an ordered slice.
//  2. Numbers must stay opaque. A 13-digit millisecond timestamp does not
//     survive a trip through float64. The decoder runs with UseNumber and
//     Values carry json.Number tokens.
//
// # Duplicate keys
//
// JSON permits duplicate keys within an object and log streams occasionally
// contain them. The decoder resolves them deterministically: the first
// occurrence fixes the key's position, the last occurrence supplies the
// value.
//
// # Error handling
//
// Parse never returns an error. Malformed input is an expected, common
// condition in real log streams (interleaved plain-text output, truncated
// lines) and is reported as a classification, not a failure.
package record
