// Package style maps segment roles to terminal styles.
//
// The Policy is built once at startup from the color mode and read-only
// afterwards; rendering a line never mutates it. The mapping is total: every
// role and severity the renderer can produce resolves to a style, and with
// color disabled every style resolves to plain text through the same code
// path rather than a separate uncolored one.
package style

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"prettylog/internal/classify"
	"prettylog/internal/render"
)

// Mode controls when output is colorized.
type Mode int

const (
	// ModeAuto colorizes when stdout is a terminal (or CI is set).
	ModeAuto Mode = iota
	// ModeOn always emits escape sequences, even into a pipe.
	ModeOn
	// ModeOff never emits escape sequences.
	ModeOff
)

// Policy is the resolved role-to-style mapping.
type Policy struct {
	colorize bool

	plain     lipgloss.Style
	timestamp lipgloss.Style
	message   lipgloss.Style
	value     lipgloss.Style
	longText  lipgloss.Style
	levels    map[classify.Severity]lipgloss.Style
	depths    []lipgloss.Style
}

// NewPolicy builds the style mapping for the given color mode.
func NewPolicy(mode Mode) *Policy {
	colorize := false
	switch mode {
	case ModeOn:
		colorize = true
	case ModeAuto:
		colorize = isatty.IsTerminal(os.Stdout.Fd()) || os.Getenv("CI") != ""
	}

	// An explicit profile keeps --color=on working into a pipe and makes
	// --color=off independent of the environment.
	r := lipgloss.NewRenderer(os.Stdout)
	if colorize {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	p := &Policy{
		colorize: colorize,
		plain:    r.NewStyle(),
		message:  r.NewStyle(),
		value:    r.NewStyle(),
		longText: r.NewStyle(),
	}
	if !colorize {
		p.timestamp = p.plain
		p.levels = map[classify.Severity]lipgloss.Style{}
		p.depths = []lipgloss.Style{p.plain}
		return p
	}

	p.timestamp = r.NewStyle().Faint(true)
	p.levels = map[classify.Severity]lipgloss.Style{
		classify.Trace:   r.NewStyle().Faint(true),
		classify.Debug:   r.NewStyle().Foreground(lipgloss.Color("4")).Faint(true),
		classify.Info:    r.NewStyle().Foreground(lipgloss.Color("6")),
		classify.Warn:    r.NewStyle().Foreground(lipgloss.Color("3")),
		classify.Error:   r.NewStyle().Foreground(lipgloss.Color("1")),
		classify.Fatal:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		classify.Unknown: r.NewStyle(),
	}
	// Keys and structural punctuation cycle by nesting depth so sibling
	// levels are visually distinguishable.
	p.depths = []lipgloss.Style{
		r.NewStyle().Foreground(lipgloss.Color("4")),
		r.NewStyle().Foreground(lipgloss.Color("6")),
		r.NewStyle().Foreground(lipgloss.Color("2")),
		r.NewStyle().Foreground(lipgloss.Color("4")).Faint(true),
		r.NewStyle().Foreground(lipgloss.Color("6")).Faint(true),
		r.NewStyle().Foreground(lipgloss.Color("2")).Faint(true),
	}
	return p
}

// For resolves one segment to its style.
func (p *Policy) For(seg render.Segment) lipgloss.Style {
	switch seg.Role {
	case render.RoleTimestamp:
		return p.timestamp
	case render.RoleLevel:
		if s, ok := p.levels[seg.Severity]; ok {
			return s
		}
		return p.plain
	case render.RoleKey, render.RolePunct:
		return p.depths[seg.Depth%len(p.depths)]
	case render.RoleMessage:
		return p.message
	case render.RoleString, render.RoleNumber, render.RoleBool, render.RoleNull:
		return p.value
	case render.RoleLongText:
		return p.longText
	}
	return p.plain
}

// Sprint resolves a segment sequence to one output string.
func (p *Policy) Sprint(segs []render.Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		if seg.Text == "" {
			continue
		}
		b.WriteString(p.For(seg).Render(seg.Text))
	}
	return b.String()
}
