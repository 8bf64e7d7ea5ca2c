package ui

import "github.com/charmbracelet/lipgloss"

// tend's color palette — garden greens, warm soil, morning light.
var (
	// Primary colors
	Leaf   = lipgloss.Color("#7FB069")
	Moss   = lipgloss.Color("#5C8A3A")
	Soil   = lipgloss.Color("#8A6F4D")
	Sun    = lipgloss.Color("#F2C14E")
	Berry  = lipgloss.Color("#C3423F")
	Sky    = lipgloss.Color("#4A90A4")
	Dim    = lipgloss.Color("#666666")
	Bright = lipgloss.Color("#FFFFFF")

	// Semantic styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Leaf)

	Subtitle = lipgloss.NewStyle().
			Foreground(Moss)

	Success = lipgloss.NewStyle().
		Foreground(Leaf)

	Error = lipgloss.NewStyle().
		Foreground(Berry)

	Warning = lipgloss.NewStyle().
		Foreground(Sun)

	Info = lipgloss.NewStyle().
		Foreground(Sky)

	Muted = lipgloss.NewStyle().
		Foreground(Dim)

	Accent = lipgloss.NewStyle().
		Foreground(Sun).
		Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Moss).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Bright)
)

// Icon constants — consistent emoji language.
const (
	IconTend   = "🌱 "
	IconStreak = "🔥"
	IconHabit  = "🌿"
	IconDone   = "✅"
	IconBest   = "⭐"
	IconWarn   = "⚠️ "
	IconError  = "✗ "
	IconOk     = "✓ "
	IconArrow  = "→"
	IconDot    = "·"
)
