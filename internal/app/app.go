package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wisdomquest/internal/curriculum"
	"github.com/abhisek/wisdomquest/internal/router"
	"github.com/abhisek/wisdomquest/internal/screen"
	"github.com/abhisek/wisdomquest/internal/screens/env"
	"github.com/abhisek/wisdomquest/internal/screens/home"
	"github.com/abhisek/wisdomquest/internal/screens/welcome"
	"github.com/abhisek/wisdomquest/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Env *env.Env

	// Offline is set when no LLM provider could be built. Lessons then
	// fall back to the placeholder content.
	Offline bool

	// SkipWelcome starts on the subject screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	env    *env.Env
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the welcome screen.
func newAppModel(opts Options) AppModel {
	homeFn := func() screen.Screen { return home.New(opts.Env, opts.Offline) }

	var first screen.Screen
	if opts.SkipWelcome {
		first = homeFn()
	} else {
		first = welcome.New(homeFn)
	}
	return AppModel{
		router: router.New(first),
		env:    opts.Env,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc is left to the screens so they can leave through the
		// session controller.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// totalStars sums the stars across every subject.
func (m AppModel) totalStars() int {
	if m.env == nil || m.env.Session == nil {
		return 0
	}
	snap := m.env.Session.Snapshot()
	total := 0
	for _, s := range curriculum.AllSubjects() {
		total += snap.TotalStars(s)
	}
	return total
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "離開"})
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.totalStars(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Env == nil {
		return fmt.Errorf("app: missing environment")
	}
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
