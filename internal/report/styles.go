package report

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	primaryColor = lipgloss.Color("#A78BFA") // Purple
	accentColor  = lipgloss.Color("#10B981") // Green
	mutedColor   = lipgloss.Color("#9CA3AF") // Gray
	warningColor = lipgloss.Color("#F59E0B") // Amber
)

// styles holds the lipgloss styles of one report. Every style renders text
// unchanged when color is off.
type styles struct {
	heading lipgloss.Style
	word    lipgloss.Style
	subWord lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	warning lipgloss.Style
}

func newStyles(out io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(out)
	if color {
		r.SetColorProfile(termenv.TrueColor)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		heading: r.NewStyle().Bold(true).Foreground(primaryColor),
		word:    r.NewStyle().Bold(true).Foreground(accentColor),
		subWord: r.NewStyle().Foreground(accentColor),
		label:   r.NewStyle().Foreground(mutedColor),
		value:   r.NewStyle().Bold(true),
		warning: r.NewStyle().Foreground(warningColor),
	}
}

// useColor resolves a color setting against the destination. "auto" colors
// only a terminal.
func useColor(mode ColorMode, out io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
}

// lineWidth narrows limit to the terminal width when out is a terminal.
// A limit of zero means no wrapping and is kept as is.
func lineWidth(limit int, out io.Writer) int {
	if limit <= 0 {
		return 0
	}
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return limit
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return limit
	}
	return min(w, limit)
}
