package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkrishnan/storyfox/internal/profile"
	"github.com/mkrishnan/storyfox/internal/router"
	"github.com/mkrishnan/storyfox/internal/screen"
	"github.com/mkrishnan/storyfox/internal/screens/home"
	"github.com/mkrishnan/storyfox/internal/screens/read"
	"github.com/mkrishnan/storyfox/internal/screens/welcome"
	"github.com/mkrishnan/storyfox/internal/store"
	"github.com/mkrishnan/storyfox/internal/story"
	"github.com/mkrishnan/storyfox/internal/ui/layout"
)

// Options wires the application's dependencies into the TUI.
type Options struct {
	Stories       *story.Service
	Profiles      store.ProfileRepo
	Events        store.EventRepo
	ReadOptions   read.Options
	LLMConfigured bool
	ShowWelcome   bool
	StartReading  bool
	LatestVersion string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	profiles store.ProfileRepo
	state    profile.ProgressionState
	width    int
	height   int
}

// newAppModel creates a new AppModel with the welcome or home screen.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(home.Deps{
			Stories:       opts.Stories,
			Profiles:      opts.Profiles,
			Events:        opts.Events,
			Options:       opts.ReadOptions,
			LLMConfigured: opts.LLMConfigured,
			LatestVersion: opts.LatestVersion,
		})
	}

	var initial screen.Screen
	if opts.ShowWelcome {
		initial = welcome.New(homeFactory)
	} else {
		initial = homeFactory()
	}

	m := AppModel{
		router:   router.New(initial),
		profiles: opts.Profiles,
	}

	// Jump straight into a session, keeping home underneath so the
	// reader lands there when the story finishes.
	if opts.StartReading && !opts.ShowWelcome {
		m.router.Push(read.New(opts.Stories, opts.Profiles, opts.Events, opts.ReadOptions))
	}

	m.refreshState()
	return m
}

// refreshState reloads the header stats from the profile.
func (m *AppModel) refreshState() {
	if m.profiles == nil {
		m.state = profile.DefaultState()
		return
	}
	state, err := m.profiles.Load(context.Background())
	if err != nil {
		m.state = profile.DefaultState()
		return
	}
	m.state = state
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.PopScreenMsg:
		// The header stats may have moved while a screen was up.
		m.refreshState()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
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

	// The welcome splash renders without chrome.
	if title == "" {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(title, m.state.Level.Name(), m.state.CurrentStreak, m.width)

	var footerHints []layout.KeyHint
	if hinting, ok := active.(screen.KeyHintProvider); ok && hinting.KeyHints() != nil {
		footerHints = hinting.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

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
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
