package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wisdomquest/internal/curriculum"
	"github.com/abhisek/wisdomquest/internal/scoring"
	"github.com/abhisek/wisdomquest/internal/ui/components"
	"github.com/abhisek/wisdomquest/internal/ui/theme"
)

// maxSubjectStars is the best total a subject can reach.
const maxSubjectStars = curriculum.LevelCount * scoring.MaxStars

// buttonWidth is the fixed width for subject buttons.
const buttonWidth = 34

// subjectStat is the per-subject summary shown on a button.
type subjectStat struct {
	Subject  curriculum.Subject
	Stars    int
	Unlocked int
}

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Bold(true)

	title := curriculum.Story.Title
	if !compact {
		title = "✨ " + title + " ✨"
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders the overall star count in a bordered box.
func renderStatsBar(total, cleared, cw int) string {
	starStyle := theme.StarOn
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	stats := fmt.Sprintf("%s  %s",
		starStyle.Render(fmt.Sprintf("★ %d 顆星星", total)),
		dimStyle.Render(fmt.Sprintf("已通過 %d 關", cleared)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Cyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func subjectLabel(st subjectStat) string {
	info := curriculum.Info(st.Subject)
	return fmt.Sprintf("%s %s  %s", info.Icon, info.Name,
		theme.StarOn.Render(fmt.Sprintf("★%d/%d", st.Stars, maxSubjectStars)))
}

const exitLabel = "離開遊戲"

// renderMenu renders each subject as a fixed-width button followed by the
// exit item. Compact terminals get the plain menu list.
func (h *HomeScreen) renderMenu(stats []subjectStat, cw int, compact bool) string {
	selected := h.menu.Selected
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	if compact {
		m := h.menu
		m.Items = append([]components.MenuItem(nil), h.menu.Items...)
		for i, st := range stats {
			m.Items[i].Label = subjectLabel(st)
		}
		return center.Render(strings.TrimRight(m.View(), "\n"))
	}

	var rows []string
	for i, st := range stats {
		label := subjectLabel(st)
		btn := lipgloss.NewStyle().
			Width(buttonWidth).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
		if i == selected {
			btn = btn.BorderForeground(theme.SubjectColor(st.Subject)).Bold(true)
			label = "▸ " + label
		} else {
			btn = btn.BorderForeground(theme.Border)
		}
		bar := components.NewProgressBar("", float64(st.Unlocked)/float64(curriculum.LevelCount), false, buttonWidth-4)
		rows = append(rows, btn.Render(label+"\n"+bar.View()))
	}
	rows = append(rows, exitRow(selected == len(stats)))

	return center.Render(strings.Join(rows, "\n"))
}

func exitRow(selected bool) string {
	if selected {
		return lipgloss.NewStyle().
			Foreground(theme.BgDark).
			Background(theme.Gold).
			Bold(true).
			Render(" ▸ " + exitLabel + " ")
	}
	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Render("   " + exitLabel)
}

// renderLLMBanner warns that lessons will use the offline stub.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ 尚未設定 AI 金鑰，課程將無法產生 (請設定 GEMINI_API_KEY)")
}
