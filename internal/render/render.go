package render

import (
	"fmt"
	"strconv"
	"strings"

	"prettylog/internal/classify"
	"prettylog/internal/record"
)

const (
	// Spaces of indentation per nesting level in deferred blocks.
	indentWidth = 2
	// Levels pad to len("ERROR") so consecutive lines stay column-aligned.
	levelWidth = 5
)

// Options configure a Renderer.
type Options struct {
	Lists           classify.Lists
	TimestampFormat TimestampFormat
}

// Renderer lays out one record as an ordered sequence of styled segments.
// It holds no per-line state and is safe to reuse across lines.
type Renderer struct {
	lists    classify.Lists
	tsFormat TimestampFormat
}

// New builds a Renderer. Empty candidate lists fall back to the defaults so
// zero configuration renders correctly.
func New(opts Options) *Renderer {
	lists := opts.Lists
	if len(lists.Timestamp) == 0 && len(lists.Level) == 0 && len(lists.Message) == 0 {
		lists = classify.DefaultLists()
	}
	return &Renderer{lists: lists, tsFormat: opts.TimestampFormat}
}

// Render produces the full rendering of one record. Malformed lines pass
// through verbatim; non-object JSON renders as a single plain segment;
// objects get the structured header/fields/blocks layout.
func (r *Renderer) Render(rec record.Record) []Segment {
	switch rec.Kind {
	case record.LineObject:
		return r.renderObject(classify.Classify(rec.Value, r.lists))
	case record.LineOther:
		return []Segment{{Text: strings.TrimSpace(rec.Raw), Role: RolePlain}}
	}
	return []Segment{{Text: rec.Raw, Role: RolePlain}}
}

func (r *Renderer) renderObject(fields classify.Fields) []Segment {
	var segs []Segment
	first := true
	space := func() {
		if !first {
			segs = append(segs, Segment{Text: " ", Role: RolePlain})
		}
		first = false
	}
	newline := func() {
		if len(segs) > 0 {
			segs = append(segs, Segment{Text: "\n", Role: RolePlain})
		}
	}

	if f := fields.Timestamp; f != nil {
		space()
		segs = append(segs, Segment{Text: r.formatTimestamp(f.Value), Role: RoleTimestamp})
	}
	if f := fields.Level; f != nil {
		space()
		segs = append(segs, Segment{
			Text:     fmt.Sprintf("%-*s", levelWidth, levelText(f.Value, fields.Severity)),
			Role:     RoleLevel,
			Severity: fields.Severity,
		})
	}
	if f := fields.Message; f != nil {
		space()
		segs = append(segs, Segment{Text: scalarText(f.Value), Role: RoleMessage})
	}

	var deferred []classify.Field
	for _, f := range fields.Remaining {
		if isBlock(f.Value) {
			deferred = append(deferred, f)
			continue
		}
		space()
		segs = r.appendInline(segs, f)
	}

	for _, f := range deferred {
		newline()
		segs = r.appendBlock(segs, f.Key, f.Value, 1)
	}
	for _, f := range fields.LongText {
		newline()
		segs = appendLongText(segs, f.Key, f.Value.Str)
	}
	return segs
}

// isBlock reports whether a value is large enough to deserve its own
// indented block below the main line.
func isBlock(v record.Value) bool {
	switch v.Kind {
	case record.KindObject:
		return len(v.Members) > 0
	case record.KindArray:
		return len(v.Items) > 0
	}
	return false
}

// levelText shows the canonical severity name when the level was
// recognized, and the original value verbatim when it was not.
func levelText(v record.Value, sev classify.Severity) string {
	if sev == classify.Unknown {
		return scalarText(v)
	}
	return sev.String()
}

func scalarText(v record.Value) string {
	switch v.Kind {
	case record.KindString:
		return v.Str
	case record.KindNumber:
		return v.Num.String()
	case record.KindBool:
		return strconv.FormatBool(v.Boolean)
	case record.KindNull:
		return "null"
	}
	return ""
}

// appendInline emits key=value on the main line.
func (r *Renderer) appendInline(segs []Segment, f classify.Field) []Segment {
	segs = append(segs,
		Segment{Text: f.Key, Role: RoleKey},
		Segment{Text: "=", Role: RolePunct},
	)
	return appendFlat(segs, f.Value, 0)
}

// appendFlat emits the single-token form of a value: a scalar, or {} / []
// for composites with nothing inside.
func appendFlat(segs []Segment, v record.Value, depth int) []Segment {
	switch v.Kind {
	case record.KindObject:
		return append(segs, Segment{Text: "{}", Role: RolePunct, Depth: depth})
	case record.KindArray:
		return append(segs, Segment{Text: "[]", Role: RolePunct, Depth: depth})
	case record.KindString:
		return append(segs, Segment{Text: quote(v.Str), Role: RoleString})
	case record.KindNumber:
		return append(segs, Segment{Text: v.Num.String(), Role: RoleNumber})
	case record.KindBool:
		return append(segs, Segment{Text: strconv.FormatBool(v.Boolean), Role: RoleBool})
	}
	return append(segs, Segment{Text: "null", Role: RoleNull})
}

// appendBlock emits "key:" at the given depth followed by the value, nested
// members each on their own line one level deeper. Depth is bounded only by
// the input's own nesting.
func (r *Renderer) appendBlock(segs []Segment, key string, v record.Value, depth int) []Segment {
	segs = append(segs,
		Segment{Text: indent(depth), Role: RolePlain},
		Segment{Text: key, Role: RoleKey, Depth: depth},
		Segment{Text: ":", Role: RolePunct, Depth: depth},
	)
	return r.appendBlockValue(segs, v, depth)
}

// appendItem emits one array element as "- value" at the given depth.
func (r *Renderer) appendItem(segs []Segment, v record.Value, depth int) []Segment {
	segs = append(segs,
		Segment{Text: indent(depth), Role: RolePlain},
		Segment{Text: "-", Role: RolePunct, Depth: depth},
	)
	return r.appendBlockValue(segs, v, depth)
}

func (r *Renderer) appendBlockValue(segs []Segment, v record.Value, depth int) []Segment {
	switch {
	case v.Kind == record.KindObject && len(v.Members) > 0:
		for _, m := range v.Members {
			segs = append(segs, Segment{Text: "\n", Role: RolePlain})
			segs = r.appendBlock(segs, m.Key, m.Value, depth+1)
		}
	case v.Kind == record.KindArray && len(v.Items) > 0:
		for _, item := range v.Items {
			segs = append(segs, Segment{Text: "\n", Role: RolePlain})
			segs = r.appendItem(segs, item, depth+1)
		}
	case v.Kind == record.KindString && strings.ContainsRune(v.Str, '\n'):
		segs = appendTextLines(segs, v.Str, depth+1)
	default:
		segs = append(segs, Segment{Text: " ", Role: RolePlain})
		segs = appendFlat(segs, v, depth)
	}
	return segs
}

// appendLongText emits a long-text field (stack traces and the like) as an
// indented verbatim block, internal newlines preserved.
func appendLongText(segs []Segment, key, text string) []Segment {
	segs = append(segs,
		Segment{Text: indent(1), Role: RolePlain},
		Segment{Text: key, Role: RoleKey, Depth: 1},
		Segment{Text: ":", Role: RolePunct, Depth: 1},
	)
	return appendTextLines(segs, text, 2)
}

func appendTextLines(segs []Segment, text string, depth int) []Segment {
	for _, line := range strings.Split(text, "\n") {
		segs = append(segs,
			Segment{Text: "\n", Role: RolePlain},
			Segment{Text: indent(depth), Role: RolePlain},
			Segment{Text: line, Role: RoleLongText},
		)
	}
	return segs
}

func indent(depth int) string {
	return strings.Repeat(" ", depth*indentWidth)
}

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quote wraps a string value in quotes only when leaving it bare would be
// ambiguous next to key=value pairs.
func quote(s string) string {
	if !strings.ContainsAny(s, " =\"\\") {
		return s
	}
	return `"` + escaper.Replace(s) + `"`
}
