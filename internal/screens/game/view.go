package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wisdomquest/internal/curriculum"
	"github.com/abhisek/wisdomquest/internal/session"
	"github.com/abhisek/wisdomquest/internal/ui/components"
	"github.com/abhisek/wisdomquest/internal/ui/theme"
)

func (g *GameScreen) renderLoading(width, height int) string {
	topic := g.env.Session.Topic()
	msg := fmt.Sprintf("%s %s %s正在準備「%s」的課程...",
		g.spinner.View(), curriculum.Story.MascotEmoji, curriculum.Story.MascotName, topic)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(msg))
}

func (g *GameScreen) renderStory(width, height int) string {
	lc := g.env.Session.Content()
	if lc == nil {
		return ""
	}
	cw := components.ContentWidth(width)

	title := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Bold(true).
		Render(g.env.Text(lc.LessonTitle))
	text := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(cw - 8).
		Render(g.env.Text(lc.LessonText))

	var hint string
	if lc.Playable() {
		hint = theme.Hint.Render(fmt.Sprintf("共 %d 題，按 Enter 開始挑戰！", len(lc.Questions)))
	} else {
		hint = lipgloss.NewStyle().Foreground(theme.Accent).Render("按 Enter 或 Esc 回到地圖，稍後再試一次")
	}

	card := components.ArcadeCard(title+"\n\n"+text, cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card+"\n\n"+hint)
}

// statusLine shows hearts, question number and score.
func statusLine(b *session.Battle, width int) string {
	left := components.Hearts(b.Hearts(), session.MaxHearts)
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("第 %d/%d 題  得分 %d", b.Index()+1, b.Total(), b.Score()))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	return "  " + left + strings.Repeat(" ", gap) + right
}

func (g *GameScreen) renderQuiz(b *session.Battle, width, height int) string {
	q, ok := b.Question()
	if !ok {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(statusLine(b, width))
	sb.WriteString("\n")
	bar := components.NewProgressBar("", float64(b.Index())/float64(b.Total()), false, width-4)
	sb.WriteString("  " + bar.View())
	sb.WriteString("\n\n")

	question := lipgloss.NewStyle().
		Width(width - 8).
		Foreground(theme.Text).
		Bold(true).
		Render(g.env.Text(q.Question))
	sb.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(question))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(g.choice.View(g.env.Text)))
	return sb.String()
}

func (g *GameScreen) renderFeedback(b *session.Battle, width, height int) string {
	q, ok := b.Question()
	if !ok {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(statusLine(b, width))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(g.choice.View(g.env.Text)))
	sb.WriteString("\n")

	var verdict string
	if b.LastCorrect() {
		verdict = theme.Correct.Render("⭕ 答對了！")
	} else {
		verdict = theme.Incorrect.Render("❌ 答錯了，失去一顆愛心")
		if opt, ok := q.Option(q.CorrectOptionID); ok {
			verdict += "\n" + theme.Body.Render("正確答案："+g.env.Text(opt.Text))
		}
	}
	sb.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(verdict))

	if q.Explanation != "" {
		expl := lipgloss.NewStyle().
			Width(width - 12).
			Foreground(theme.TextDim).
			Render("💡 " + g.env.Text(q.Explanation))
		sb.WriteString("\n\n")
		sb.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(expl))
	}

	next := "按 Enter 下一題"
	if b.Hearts() <= 0 || b.Index()+1 >= b.Total() {
		next = "按 Enter 看結果"
	}
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(theme.Hint.Render(next)))
	return sb.String()
}
