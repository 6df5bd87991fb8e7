package ui

import "github.com/charmbracelet/lipgloss"

// Media URLs render inside a fixed-width block, the terminal stand-in
// for the fixed pixel width the web UI used.
const mediaWidth = 64

type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Success  lipgloss.Style
	Post     lipgloss.Style
	PostMeta lipgloss.Style
	Media    lipgloss.Style
	Caption  lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1),
		Header:   lipgloss.NewStyle().Bold(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
		Post:     lipgloss.NewStyle().PaddingLeft(1),
		PostMeta: lipgloss.NewStyle().Bold(true),
		Media:    lipgloss.NewStyle().Width(mediaWidth).Foreground(lipgloss.Color("39")),
		Caption:  lipgloss.NewStyle().Italic(true),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("236")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
	}
}
