package classify

import "strings"

// Severity is the canonical log level of a record.
type Severity int

const (
	Unknown Severity = iota
	Trace
	Debug
	Info
	Warn
	Error
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Trace:
		return "TRACE"
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	}
	return "UNKNOWN"
}

var prefixes = []struct {
	name string
	sev  Severity
}{
	{"TRACE", Trace},
	{"DEBUG", Debug},
	{"INFO", Info},
	{"WARN", Warn},
	{"ERROR", Error},
	{"FATAL", Fatal},
	{"CRIT", Fatal},
}

// ParseSeverity maps a level string to its canonical severity. Matching is
// case-insensitive and prefix-tolerant ("warning" resolves to WARN,
// "informational" to INFO); anything unrecognized is Unknown.
func ParseSeverity(s string) Severity {
	upper := strings.ToUpper(strings.TrimSpace(s))
	switch upper {
	case "TRACE":
		return Trace
	case "DEBUG", "DBG":
		return Debug
	case "INFO":
		return Info
	case "WARN", "WARNING":
		return Warn
	case "ERROR", "ERR":
		return Error
	case "FATAL", "CRIT", "CRITICAL", "PANIC":
		return Fatal
	}
	for _, p := range prefixes {
		if strings.HasPrefix(upper, p.name) {
			return p.sev
		}
	}
	return Unknown
}
