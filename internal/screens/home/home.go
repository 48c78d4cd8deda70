package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkrishnan/storyfox/internal/profile"
	"github.com/mkrishnan/storyfox/internal/reading"
	"github.com/mkrishnan/storyfox/internal/router"
	"github.com/mkrishnan/storyfox/internal/screen"
	"github.com/mkrishnan/storyfox/internal/screens/history"
	"github.com/mkrishnan/storyfox/internal/screens/placeholder"
	"github.com/mkrishnan/storyfox/internal/screens/progress"
	"github.com/mkrishnan/storyfox/internal/screens/read"
	"github.com/mkrishnan/storyfox/internal/settings"
	"github.com/mkrishnan/storyfox/internal/store"
	"github.com/mkrishnan/storyfox/internal/story"
	"github.com/mkrishnan/storyfox/internal/ui/components"
)

// celebrationStreak is the streak length at which the home fox celebrates.
const celebrationStreak = 3

// Deps carries the home screen's injected dependencies.
type Deps struct {
	Stories       *story.Service
	Profiles      store.ProfileRepo
	Events        store.EventRepo
	Options       read.Options
	LLMConfigured bool
	LatestVersion string // non-empty when a newer release exists
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps       Deps
	menu       components.Menu
	menuLabels []string
	state      profile.ProgressionState
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	var state profile.ProgressionState
	if deps.Profiles != nil {
		state, _ = deps.Profiles.Load(context.Background())
	} else {
		state = profile.DefaultState()
	}

	menuLabels := []string{"READ A STORY", "MY PROGRESS", "HISTORY", "SETTINGS", "QUIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: read.New(deps.Stories, deps.Profiles, deps.Events, deps.Options),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progress.New(deps.Profiles, deps.Events)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Events)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: placeholder.New("Settings",
					"For now, edit "+settings.DefaultPath())}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps:       deps,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		state:      state,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		mood := reading.MoodHappy
		if h.state.CurrentStreak >= celebrationStreak {
			mood = reading.MoodCelebration
		}
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(components.Fox(mood)))
	}

	sections = append(sections, renderStatsBar(
		h.state.Level.Name(), h.state.CurrentStreak, h.state.TotalStoriesRead, cw, compact))

	if !h.deps.LLMConfigured {
		sections = append(sections, renderLLMBanner(cw))
	}

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw, nil))
	} else {
		sections = append(sections, renderMenuButtons(h.menuLabels, h.menu.Selected, cw, nil))
	}

	if h.deps.LatestVersion != "" {
		sections = append(sections, renderUpdateNote(h.deps.LatestVersion, cw))
	}

	content := strings.Join(sections, "\n\n")

	return renderFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
