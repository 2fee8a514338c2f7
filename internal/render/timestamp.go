package render

import (
	"time"

	"prettylog/internal/record"
)

// TimestampFormat selects how numeric timestamp values are interpreted.
type TimestampFormat int

const (
	// TimestampAuto infers seconds or milliseconds from the magnitude.
	TimestampAuto TimestampFormat = iota
	// TimestampSeconds treats the value as a Unix epoch in seconds.
	TimestampSeconds
	// TimestampMillis treats the value as a Unix epoch in milliseconds.
	TimestampMillis
	// TimestampRaw emits the value untouched.
	TimestampRaw
)

// The number of seconds between 1970 and the year 3000. Auto mode treats
// anything larger as milliseconds.
const year3kEpoch = 32503698000

const (
	secondsLayout = "2006-01-02T15:04:05Z"
	millisLayout  = "2006-01-02T15:04:05.000Z"
)

// formatTimestamp converts a numeric epoch to compact UTC ISO form per the
// configured format. String timestamps are already readable and pass
// through untouched.
func (r *Renderer) formatTimestamp(v record.Value) string {
	if v.Kind != record.KindNumber {
		return scalarText(v)
	}
	if r.tsFormat == TimestampRaw {
		return v.Num.String()
	}
	n, err := v.Num.Int64()
	if err != nil {
		// Fractional or out-of-range epoch; show the token as-is.
		return v.Num.String()
	}

	format := r.tsFormat
	if format == TimestampAuto {
		if n > year3kEpoch {
			format = TimestampMillis
		} else {
			format = TimestampSeconds
		}
	}
	if format == TimestampMillis {
		return time.UnixMilli(n).UTC().Format(millisLayout)
	}
	return time.Unix(n, 0).UTC().Format(secondsLayout)
}
