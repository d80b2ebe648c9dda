// Package theme centralizes the lipgloss styles for the checklist TUI.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

type Theme struct {
	Title    lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Done     lipgloss.Style
	Help     lipgloss.Style
	Prompt   lipgloss.Style
	Panel    lipgloss.Style

	BadgeGreen  lipgloss.Style
	BadgeOrange lipgloss.Style
	BadgeRed    lipgloss.Style
}

// Default builds the theme, nudging the badge ramp toward the terminal
// background so the colors stay readable on light terminals.
func Default() Theme {
	dark := termenv.HasDarkBackground()

	green := ramp("#2fbf71", dark)
	orange := ramp("#f2a541", dark)
	red := ramp("#e63946", dark)

	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Underline(true),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Prompt:   lipgloss.NewStyle().Bold(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),

		BadgeGreen:  lipgloss.NewStyle().Foreground(green),
		BadgeOrange: lipgloss.NewStyle().Foreground(orange),
		BadgeRed:    lipgloss.NewStyle().Foreground(red),
	}
}

// ramp darkens a badge color for light backgrounds so it keeps contrast.
func ramp(hex string, dark bool) lipgloss.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.Color(hex)
	}
	if !dark {
		black, _ := colorful.Hex("#000000")
		c = c.BlendLab(black, 0.25).Clamped()
	}
	return lipgloss.Color(c.Hex())
}
