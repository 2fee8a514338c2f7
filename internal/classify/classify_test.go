package classify

import (
	"testing"

	"prettylog/internal/record"
)

func parseObject(t *testing.T, line string) record.Value {
	t.Helper()
	rec := record.Parse(line)
	if rec.Kind != record.LineObject {
		t.Fatalf("Parse(%q).Kind = %v, want LineObject", line, rec.Kind)
	}
	return rec.Value
}

func TestClassify_PartitionsKeySet(t *testing.T) {
	obj := parseObject(t, `{"time":1,"level":"info","msg":"m","trace":"a\nb","extra":1,"more":"x"}`)
	fields := Classify(obj, DefaultLists())

	seen := map[string]int{}
	if fields.Timestamp != nil {
		seen[fields.Timestamp.Key]++
	}
	if fields.Level != nil {
		seen[fields.Level.Key]++
	}
	if fields.Message != nil {
		seen[fields.Message.Key]++
	}
	for _, f := range fields.LongText {
		seen[f.Key]++
	}
	for _, f := range fields.Remaining {
		seen[f.Key]++
	}

	if len(seen) != len(obj.Members) {
		t.Fatalf("partition covers %d keys, want %d", len(seen), len(obj.Members))
	}
	for _, m := range obj.Members {
		if seen[m.Key] != 1 {
			t.Fatalf("key %q appears %d times in partition, want exactly once", m.Key, seen[m.Key])
		}
	}
}

func TestClassify_RecognizesRoles(t *testing.T) {
	obj := parseObject(t, `{"timestamp":1729811012050,"level":"WARN","message":"hello there"}`)
	fields := Classify(obj, DefaultLists())

	if fields.Timestamp == nil || fields.Timestamp.Key != "timestamp" {
		t.Fatalf("Timestamp = %+v, want key timestamp", fields.Timestamp)
	}
	if fields.Level == nil || fields.Level.Key != "level" {
		t.Fatalf("Level = %+v, want key level", fields.Level)
	}
	if fields.Severity != Warn {
		t.Fatalf("Severity = %v, want Warn", fields.Severity)
	}
	if fields.Message == nil || fields.Message.Key != "message" {
		t.Fatalf("Message = %+v, want key message", fields.Message)
	}
	if len(fields.Remaining) != 0 || len(fields.LongText) != 0 {
		t.Fatalf("Remaining = %v, LongText = %v, want both empty", fields.Remaining, fields.LongText)
	}
}

func TestClassify_FirstCandidateInListOrderWins(t *testing.T) {
	// Both candidates present; "message" precedes "msg" in the list.
	obj := parseObject(t, `{"msg":"second","message":"first"}`)
	fields := Classify(obj, DefaultLists())

	if fields.Message == nil || fields.Message.Key != "message" {
		t.Fatalf("Message = %+v, want key message (list order, not input order)", fields.Message)
	}
	if len(fields.Remaining) != 1 || fields.Remaining[0].Key != "msg" {
		t.Fatalf("Remaining = %+v, want the unclaimed msg field", fields.Remaining)
	}
}

func TestClassify_KeyClaimedOnce(t *testing.T) {
	lists := Lists{
		Level:   []string{"tag"},
		Message: []string{"tag", "msg"},
	}
	obj := parseObject(t, `{"tag":"warn","msg":"m"}`)
	fields := Classify(obj, lists)

	if fields.Level == nil || fields.Level.Key != "tag" {
		t.Fatalf("Level = %+v, want key tag", fields.Level)
	}
	if fields.Message == nil || fields.Message.Key != "msg" {
		t.Fatalf("Message = %+v, want key msg (tag already claimed by level)", fields.Message)
	}
}

func TestClassify_StructuredCandidateNotClaimed(t *testing.T) {
	obj := parseObject(t, `{"time":{"sec":1},"ts":1627494000,"msg":"m"}`)
	fields := Classify(obj, DefaultLists())

	if fields.Timestamp == nil || fields.Timestamp.Key != "ts" {
		t.Fatalf("Timestamp = %+v, want key ts (structured time passed over)", fields.Timestamp)
	}
	if len(fields.Remaining) != 1 || fields.Remaining[0].Key != "time" {
		t.Fatalf("Remaining = %+v, want the structured time field", fields.Remaining)
	}
}

func TestClassify_LongTextDetection(t *testing.T) {
	obj := parseObject(t, `{"msg":"m","stacktrace":"foo\nbar\nblah","plain":"one line"}`)
	fields := Classify(obj, DefaultLists())

	if len(fields.LongText) != 1 || fields.LongText[0].Key != "stacktrace" {
		t.Fatalf("LongText = %+v, want only stacktrace", fields.LongText)
	}
	if len(fields.Remaining) != 1 || fields.Remaining[0].Key != "plain" {
		t.Fatalf("Remaining = %+v, want only plain", fields.Remaining)
	}
}

func TestClassify_NumericLevelIsUnknown(t *testing.T) {
	obj := parseObject(t, `{"level":30,"msg":"m"}`)
	fields := Classify(obj, DefaultLists())

	if fields.Level == nil {
		t.Fatalf("Level = nil, want the numeric level claimed")
	}
	if fields.Severity != Unknown {
		t.Fatalf("Severity = %v, want Unknown for a numeric level", fields.Severity)
	}
}

func TestClassify_RemainingKeepsInsertionOrder(t *testing.T) {
	obj := parseObject(t, `{"zz":1,"level":"info","aa":2,"mm":3}`)
	fields := Classify(obj, DefaultLists())

	want := []string{"zz", "aa", "mm"}
	if len(fields.Remaining) != len(want) {
		t.Fatalf("got %d remaining fields, want %d", len(fields.Remaining), len(want))
	}
	for i, key := range want {
		if fields.Remaining[i].Key != key {
			t.Fatalf("Remaining[%d].Key = %q, want %q", i, fields.Remaining[i].Key, key)
		}
	}
}

func TestParseSeverity(t *testing.T) {
	cases := []struct {
		in   string
		want Severity
	}{
		{"trace", Trace},
		{"debug", Debug},
		{"dbg", Debug},
		{"info", Info},
		{"informational", Info},
		{"WARN", Warn},
		{"warn", Warn},
		{"Warn", Warn},
		{"warning", Warn},
		{"error", Error},
		{"err", Error},
		{"fatal", Fatal},
		{"crit", Fatal},
		{"critical", Fatal},
		{"panic", Fatal},
		{"  info  ", Info},
		{"notice", Unknown},
		{"", Unknown},
		{"42", Unknown},
	}
	for _, c := range cases {
		if got := ParseSeverity(c.in); got != c.want {
			t.Fatalf("ParseSeverity(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseSeverity_Idempotent(t *testing.T) {
	for _, sev := range []Severity{Trace, Debug, Info, Warn, Error, Fatal} {
		if got := ParseSeverity(sev.String()); got != sev {
			t.Fatalf("ParseSeverity(%q) = %v, want %v", sev.String(), got, sev)
		}
	}
}
