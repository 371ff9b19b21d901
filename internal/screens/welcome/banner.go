package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wisdomquest/internal/curriculum"
	"github.com/abhisek/wisdomquest/internal/ui/theme"
)

// RenderBanner returns the game title. Narrow terminals get the title
// without its frame.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Bold(true)

	title := "✨ " + curriculum.Story.Title + " ✨"
	if width < 52 {
		return style.Render(title)
	}
	return style.
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 6).
		Render(title)
}
