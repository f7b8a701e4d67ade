package bubble

import "github.com/charmbracelet/lipgloss"

// Tokyo Night palette
var (
	ColorText   = lipgloss.Color("#C0CAF5")
	ColorNotice = lipgloss.Color("#E0AF68")
	ColorButton = lipgloss.Color("#7AA2F7")
	ColorRing   = lipgloss.Color("#9ECE6A")
	ColorTrack  = lipgloss.Color("#3B4261")
	ColorWave   = lipgloss.Color("#7DCFFF")
	ColorCancel = lipgloss.Color("#F7768E")
	ColorHint   = lipgloss.Color("#565F89")
)

var (
	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorNotice).
			Bold(true)

	ButtonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorButton).
			Foreground(ColorButton).
			Bold(true).
			Padding(1, 5).
			Align(lipgloss.Center)

	CountStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	WaveStyle = lipgloss.NewStyle().
			Foreground(ColorWave)

	CancelStyle = lipgloss.NewStyle().
			Foreground(ColorCancel).
			Bold(true)
)
