package ui

import "github.com/charmbracelet/lipgloss"

var (
	identityStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#111111", Dark: "#FFFFFF"})

	navLinkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#A1A1AA"})

	compactBarStyle = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#F4F4F5", Dark: "#0B0B0B"})

	compactBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#D4D4D8", Dark: "#262626"})

	overlayItemStyle = lipgloss.NewStyle().
				Italic(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#444444", Dark: "#D4D4D8"})

	overlayActiveStyle = lipgloss.NewStyle().
				Italic(true).
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"})

	leadStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#71717A", Dark: "#A1A1AA"})

	headlineStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#111111", Dark: "#FFFFFF"})

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#111111", Dark: "#FFFFFF"})

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#111111", Dark: "#FFFFFF"})

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#888888", Dark: "#71717A"})

	bodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#D4D4D8"})

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#A1A1AA"})

	quoteStyle = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: "#3F3F46"}).
			PaddingLeft(2).
			Foreground(lipgloss.AdaptiveColor{Light: "#111111", Dark: "#FFFFFF"})

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#A1A1AA"})

	linkStyle = lipgloss.NewStyle().
			Underline(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#111111", Dark: "#FFFFFF"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#52525B"})
)
