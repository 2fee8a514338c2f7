// Package render lays out one parsed log record as styled text segments.
//
// # Overview
//
// The Renderer is the layout engine of prettylog. Given one Record it
// produces an ordered []Segment; each segment is a span of text tagged with
// a semantic role (timestamp, level, key, string value, ...). Styles resolve
// to concrete escape sequences only at the output boundary, which keeps the
// layout logic independent of terminal concerns and trivially testable.
//
// # Layout algorithm
//
// Malformed lines and non-object JSON render as a single plain segment: the
// raw line verbatim, or the value's textual form. Objects render as:
//
//  1. Header: timestamp (compact UTC ISO form), level (severity-styled,
//     padded for column alignment across lines), message.
//  2. Remaining fields as key=value pairs on the same line, in the object's
//     insertion order. The renderer never sorts fields.
//  3. Deferred blocks: any field whose value is a non-empty object or array
//     moves below the main line as an indented block, two spaces per nesting
//     level, recursing without a depth cutoff.
//  4. Long-text fields (string values with embedded newlines, stack traces
//     being the usual case) as verbatim indented blocks so they stay
//     readable and copy-pasteable.
//
// An empty object yields a header line only; a missing message with a
// present level shows the level alone.
//
// # Timestamps
//
// Numeric epoch values convert per the configured TimestampFormat: seconds,
// milliseconds, raw passthrough, or auto, where values past the year 3000
// (interpreted as seconds) are assumed to be milliseconds.
package render
