package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wisdomquest/internal/ui/theme"
)

// MascotVariant selects which owl art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // No stars yet
	MascotHappy                            // Some progress
	MascotCelebrating                      // A subject was cleared
)

const mascotIdle = `╭─╮   ╭─╮
│ ◉   ◉ │
│   ▼   │
╰─┬───┬─╯`

const mascotHappy = `╭─╮   ╭─╮
│ ^   ^ │
│   ▼   │
╰─┬───┬─╯`

const mascotCelebrating = `╭─╮ ♛ ╭─╮
│ ★   ★ │
│   ▼   │
╰─┬───┬─╯
 ╲│   │╱`

// RenderMascot returns the owl art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotHappy:
		art = mascotHappy
		fg = theme.Secondary
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Gold
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
