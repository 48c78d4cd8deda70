package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkrishnan/storyfox/internal/router"
	"github.com/mkrishnan/storyfox/internal/screen"
	"github.com/mkrishnan/storyfox/internal/ui/layout"
	"github.com/mkrishnan/storyfox/internal/ui/theme"
)

// PlaceholderScreen is a generic "coming soon" screen. Note carries an
// optional extra line under the heading.
type PlaceholderScreen struct {
	title string
	note  string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)
var _ screen.KeyHintProvider = (*PlaceholderScreen)(nil)

// New creates a new PlaceholderScreen with the given title and note.
func New(title, note string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title, note: note}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter", "q":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	text := "╌╌ Coming Soon ╌╌\n\nThis feature is being built.\nCheck back later!"
	if p.note != "" {
		text += "\n\n" + p.note
	}
	content := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(text)

	return content
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}
