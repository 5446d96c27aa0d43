package main

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles is the visual theme for text output.
// Lipgloss degrades to plain text when stdout is not a TTY.
type Styles struct {
	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Pass   lipgloss.Style
	Fail   lipgloss.Style
	Muted  lipgloss.Style
}

// DefaultStyles returns the colored theme.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Label:  lipgloss.NewStyle().Bold(true),
		Value:  lipgloss.NewStyle(),
		Pass:   lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true),
		Fail:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// PlainStyles returns a theme that renders text unchanged.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Header: plain,
		Label:  plain,
		Value:  plain,
		Pass:   plain,
		Fail:   plain,
		Muted:  plain,
	}
}

// Verdict renders a pass/fail marker.
func (s Styles) Verdict(ok bool) string {
	if ok {
		return s.Pass.Render("✓")
	}
	return s.Fail.Render("✗")
}
