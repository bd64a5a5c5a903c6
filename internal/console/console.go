// Package console renders color-coded status lines for the operator.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Theme holds the styles used for status output.
type Theme struct {
	OK   lipgloss.Style
	Warn lipgloss.Style
	Fail lipgloss.Style
	Step lipgloss.Style
	Dim  lipgloss.Style
}

// DefaultTheme returns the standard color theme.
func DefaultTheme() Theme {
	return Theme{
		OK:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Warn: lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		Fail: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Step: lipgloss.NewStyle().Bold(true),
		Dim:  lipgloss.NewStyle().Faint(true),
	}
}

// PlainTheme returns a theme with no styling, for --no-color and for tests.
func PlainTheme() Theme {
	return Theme{
		OK:   lipgloss.NewStyle(),
		Warn: lipgloss.NewStyle(),
		Fail: lipgloss.NewStyle(),
		Step: lipgloss.NewStyle(),
		Dim:  lipgloss.NewStyle(),
	}
}

// Console writes status lines to a single writer.
type Console struct {
	w     io.Writer
	theme Theme
}

// New creates a Console with the default theme.
func New(w io.Writer) *Console {
	return &Console{w: w, theme: DefaultTheme()}
}

// NewPlain creates a Console without color.
func NewPlain(w io.Writer) *Console {
	return &Console{w: w, theme: PlainTheme()}
}

// IsTerminal reports whether w writes to an interactive terminal.
// Styled output is only emitted on a real TTY.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Step prints the "[i/n] name" header for a step about to run.
func (c *Console) Step(i, n int, name string) {
	fmt.Fprintf(c.w, "%s %s\n", c.theme.Dim.Render(fmt.Sprintf("[%d/%d]", i, n)), c.theme.Step.Render(name))
}

// OK prints a success line.
func (c *Console) OK(msg string) {
	fmt.Fprintf(c.w, "  %s %s\n", c.theme.OK.Render("ok"), msg)
}

// Warn prints an advisory failure line.
func (c *Console) Warn(msg string) {
	fmt.Fprintf(c.w, "  %s %s\n", c.theme.Warn.Render("warn"), msg)
}

// Fail prints a fatal failure line.
func (c *Console) Fail(msg string) {
	fmt.Fprintf(c.w, "  %s %s\n", c.theme.Fail.Render("fail"), msg)
}

// Info prints an unstyled informational line.
func (c *Console) Info(msg string) {
	fmt.Fprintln(c.w, msg)
}

// Infof is Info with formatting.
func (c *Console) Infof(format string, args ...any) {
	fmt.Fprintf(c.w, format+"\n", args...)
}
