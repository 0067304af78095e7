package repl

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#2CD7C7")
	colorWarn   = lipgloss.Color("#F4D03F")
	colorError  = lipgloss.Color("#E74C3C")
	colorMuted  = lipgloss.Color("#5C6F7A")
)

var styles = struct {
	Banner lipgloss.Style
	Title  lipgloss.Style
	Item   lipgloss.Style
	Result lipgloss.Style
	Warn   lipgloss.Style
	Error  lipgloss.Style
	Muted  lipgloss.Style
}{
	Banner: lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccent).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 2),
	Title:  lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
	Item:   lipgloss.NewStyle().PaddingLeft(2),
	Result: lipgloss.NewStyle().Bold(true),
	Warn:   lipgloss.NewStyle().Foreground(colorWarn),
	Error:  lipgloss.NewStyle().Foreground(colorError),
	Muted:  lipgloss.NewStyle().Foreground(colorMuted),
}
