package chart

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("86")  // Cyan
	colorSecondary = lipgloss.Color("240") // Gray
	colorWarning   = lipgloss.Color("214") // Orange
	colorMuted     = lipgloss.Color("245") // Light gray
)

const (
	pointGlyph = '●'
	lineGlyph  = '·'
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	pointStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	lineStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	axisStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)
