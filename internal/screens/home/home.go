package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wisdomquest/internal/curriculum"
	"github.com/abhisek/wisdomquest/internal/router"
	"github.com/abhisek/wisdomquest/internal/screen"
	"github.com/abhisek/wisdomquest/internal/screens/env"
	"github.com/abhisek/wisdomquest/internal/screens/levelmap"
	"github.com/abhisek/wisdomquest/internal/ui/components"
	"github.com/abhisek/wisdomquest/internal/ui/layout"
	"github.com/abhisek/wisdomquest/internal/ui/theme"
)

// HomeScreen lets the player pick a subject.
type HomeScreen struct {
	env      *env.Env
	subjects []curriculum.Subject
	menu     components.Menu // subjects, then the exit item
	// offline is set when no LLM provider is configured.
	offline bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen.
func New(e *env.Env, offline bool) *HomeScreen {
	h := &HomeScreen{
		env:      e,
		subjects: curriculum.AllSubjects(),
		offline:  offline,
	}

	items := make([]components.MenuItem, 0, len(h.subjects)+1)
	for _, s := range h.subjects {
		items = append(items, components.MenuItem{
			Label:  curriculum.Info(s).Name,
			Action: func() tea.Cmd { return h.open(s) },
		})
	}
	items = append(items, components.MenuItem{
		Label:  exitLabel,
		Action: func() tea.Cmd { return tea.Quit },
	})
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "選擇科目"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "選擇"},
		{Key: "Enter", Description: "出發"},
		{Key: "Q", Description: "離開"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return h, nil
	}

	if kmsg.String() == "q" {
		return h, tea.Quit
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(kmsg)
	return h, cmd
}

func (h *HomeScreen) open(s curriculum.Subject) tea.Cmd {
	if err := h.env.Session.SelectSubject(s); err != nil {
		return nil
	}
	next := levelmap.New(h.env)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (h *HomeScreen) stats() ([]subjectStat, int, int) {
	snap := h.env.Session.Snapshot()
	var total, cleared int
	out := make([]subjectStat, 0, len(h.subjects))
	for _, s := range h.subjects {
		st := subjectStat{
			Subject:  s,
			Stars:    snap.TotalStars(s),
			Unlocked: snap.Unlocked(s),
		}
		total += st.Stars
		for _, l := range snap.Levels(s) {
			if l.Stars > 0 {
				cleared++
			}
		}
		out = append(out, st)
	}
	return out, total, cleared
}

func mascotFor(stats []subjectStat, total int) MascotVariant {
	for _, st := range stats {
		if st.Stars > 0 && st.Unlocked == curriculum.LevelCount {
			return MascotCelebrating
		}
	}
	if total > 0 {
		return MascotHappy
	}
	return MascotIdle
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height+8)
	cw := components.ContentWidth(width)
	stats, total, cleared := h.stats()

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(RenderMascot(mascotFor(stats, total))))
	}
	sections = append(sections, renderStatsBar(total, cleared, cw))
	if h.offline {
		sections = append(sections, renderLLMBanner(cw))
	}
	sections = append(sections, h.renderMenu(stats, cw, compact))

	if h.menu.Selected < len(h.subjects) {
		info := curriculum.Info(h.subjects[h.menu.Selected])
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(cw).
			Align(lipgloss.Center).
			Render(info.Description))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}
