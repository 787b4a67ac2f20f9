package curate

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Theme holds the color scheme for the curation dialogue.
type Theme struct {
	Heading lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Hint    lipgloss.Color

	// plain disables styling, e.g. when output is not a terminal.
	plain bool
}

// defaultTheme provides default colors.
var defaultTheme = Theme{
	Heading: lipgloss.Color("#5FAFD7"), // light blue
	Success: lipgloss.Color("#00D787"), // green
	Warning: lipgloss.Color("#FFAF00"), // amber
	Hint:    lipgloss.Color("#6C6C6C"), // dim gray
}

// ThemeFor returns the default theme, styled only when w is a terminal.
func ThemeFor(w io.Writer) Theme {
	t := defaultTheme
	f, ok := w.(*os.File)
	t.plain = !ok || !term.IsTerminal(int(f.Fd()))
	return t
}

// PlainTheme returns a theme that renders text unchanged.
func PlainTheme() Theme {
	t := defaultTheme
	t.plain = true
	return t
}

// OutputTheme returns PlainTheme when noColor is set and ThemeFor(w)
// otherwise.
func OutputTheme(w io.Writer, noColor bool) Theme {
	if noColor {
		return PlainTheme()
	}
	return ThemeFor(w)
}

func (t Theme) render(style lipgloss.Style, s string) string {
	if t.plain {
		return s
	}
	return style.Render(s)
}

func (t Theme) heading(s string) string {
	return t.render(lipgloss.NewStyle().Foreground(t.Heading).Bold(true), s)
}

func (t Theme) success(s string) string {
	return t.render(lipgloss.NewStyle().Foreground(t.Success).Bold(true), s)
}

func (t Theme) warning(s string) string {
	return t.render(lipgloss.NewStyle().Foreground(t.Warning), s)
}

func (t Theme) hint(s string) string {
	return t.render(lipgloss.NewStyle().Foreground(t.Hint).Italic(true), s)
}
