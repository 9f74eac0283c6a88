package tui

import (
	"github.com/charmbracelet/lipgloss"

	"homeprice/internal/anim"
)

// Palette. Indigo and violet follow the confetti colors.
var (
	colorPrimary = lipgloss.Color("#6366f1")
	colorAccent  = lipgloss.Color("#8b5cf6")
	colorSuccess = lipgloss.Color("#10b981")
	colorDanger  = lipgloss.Color("#e53935")
	colorMuted   = lipgloss.Color("#6b7280")
)

// Styles are built once at package init and never mutated.
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Padding(0, 1)
	helpStyle  = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)

	labelStyle         = lipgloss.NewStyle().Width(30).Foreground(colorMuted)
	focusedLabelStyle  = lipgloss.NewStyle().Width(30).Bold(true).Foreground(colorPrimary)
	selectStyle        = lipgloss.NewStyle()
	focusedSelectStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)

	inRangeStyle    = lipgloss.NewStyle().Foreground(colorSuccess)
	outOfRangeStyle = lipgloss.NewStyle().Foreground(colorDanger)

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted)
	focusedButtonStyle = buttonStyle.
				BorderForeground(colorPrimary).
				Foreground(colorPrimary).
				Bold(true)
	disabledButtonStyle = buttonStyle.Foreground(colorMuted).Faint(true)

	resultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 2)
	priceStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	subPriceStyle  = lipgloss.NewStyle().Foreground(colorAccent)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	rangeFillStyle = lipgloss.NewStyle().Foreground(colorAccent)

	toastStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(colorDanger).
			Padding(0, 1)
	toastLeavingStyle = toastStyle.Faint(true)
	toastTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorDanger)
)

// confettiStyles maps each particle color to its style.
var confettiStyles = func() map[string]lipgloss.Style {
	m := make(map[string]lipgloss.Style, len(anim.ConfettiColors))
	for _, c := range anim.ConfettiColors {
		m[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return m
}()
