package components

import (
	"strings"

	"github.com/abhisek/wisdomquest/internal/ui/theme"
)

// Stars renders a rating as filled and empty stars.
func Stars(n, max int) string {
	if n < 0 {
		n = 0
	}
	if n > max {
		n = max
	}
	return theme.StarOn.Render(strings.Repeat("★", n)) +
		theme.StarOff.Render(strings.Repeat("☆", max-n))
}

// Hearts renders the remaining health.
func Hearts(n, max int) string {
	if n < 0 {
		n = 0
	}
	if n > max {
		n = max
	}
	return strings.Repeat("❤️", n) + theme.StarOff.Render(strings.Repeat("♡", max-n))
}
