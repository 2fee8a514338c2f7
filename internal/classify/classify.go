// Package classify partitions a parsed log object into semantic roles.
//
// Classification proceeds role by role in a fixed priority order (timestamp,
// level, message, long-text detection); each key is claimed at most once, so
// the roles plus the remaining fields always partition the object's key set
// exactly. Candidate key lists are data, not code, and can be overridden via
// configuration without touching the matching algorithm.
package classify

import (
	"strings"

	"prettylog/internal/record"
)

// Field pairs an object key with its value.
type Field struct {
	Key   string
	Value record.Value
}

// Fields is the role partition of one object record. Every key of the source
// object lands in exactly one of Timestamp, Level, Message, LongText, or
// Remaining.
type Fields struct {
	Timestamp *Field
	Level     *Field
	Severity  Severity
	Message   *Field
	LongText  []Field
	Remaining []Field
}

// Lists holds the candidate key names for each role, in priority order.
// The first candidate present in the object wins the role; key matching is
// case-sensitive.
type Lists struct {
	Timestamp []string
	Level     []string
	Message   []string
}

// DefaultLists returns the built-in candidate keys.
func DefaultLists() Lists {
	return Lists{
		Timestamp: []string{"timestamp", "time", "ts", "@timestamp"},
		Level:     []string{"level", "lvl", "severity"},
		Message:   []string{"message", "msg"},
	}
}

// Classify partitions an object value's keys into roles. It is a pure
// function of the object and the candidate lists: identical input yields an
// identical partition.
func Classify(obj record.Value, lists Lists) Fields {
	claimed := make(map[string]bool, 4)

	var out Fields
	out.Timestamp = claim(obj, lists.Timestamp, claimed)
	out.Level = claim(obj, lists.Level, claimed)
	if out.Level != nil && out.Level.Value.Kind == record.KindString {
		out.Severity = ParseSeverity(out.Level.Value.Str)
	}
	out.Message = claim(obj, lists.Message, claimed)

	for _, m := range obj.Members {
		if claimed[m.Key] {
			continue
		}
		f := Field{Key: m.Key, Value: m.Value}
		if m.Value.Kind == record.KindString && strings.ContainsRune(m.Value.Str, '\n') {
			out.LongText = append(out.LongText, f)
		} else {
			out.Remaining = append(out.Remaining, f)
		}
	}
	return out
}

// claim finds the highest-priority unclaimed candidate key present in the
// object and marks it claimed. A candidate holding an object or array value
// is passed over: header roles take scalars only, and the structured field
// stays an ordinary field at its original position.
func claim(obj record.Value, candidates []string, claimed map[string]bool) *Field {
	for _, key := range candidates {
		if claimed[key] {
			continue
		}
		for _, m := range obj.Members {
			if m.Key != key {
				continue
			}
			if m.Value.Kind == record.KindObject || m.Value.Kind == record.KindArray {
				break
			}
			claimed[key] = true
			return &Field{Key: m.Key, Value: m.Value}
		}
	}
	return nil
}
