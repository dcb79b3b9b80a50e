package main

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Header lipgloss.Style
	Gutter lipgloss.Style
	Token  lipgloss.Style
	Empty  lipgloss.Style
	Help   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	gutter := r.NewStyle().Foreground(lipgloss.Color("240"))
	return styles{
		Header: r.NewStyle().Bold(true),
		Gutter: gutter,
		Token:  r.NewStyle(),
		Empty:  r.NewStyle().Foreground(lipgloss.Color("244")).Faint(true),
		Help:   gutter,
	}
}
