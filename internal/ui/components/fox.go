package components

import (
	"charm.land/lipgloss/v2"

	"github.com/mkrishnan/storyfox/internal/reading"
	"github.com/mkrishnan/storyfox/internal/ui/theme"
)

const foxHappy = ` /\_/\
( o.o )  ~
 > ^ <`

const foxThinking = ` /\_/\
( o.? )  …
 > ~ <`

const foxSuccess = ` /\_/\
( ^.^ )  !
 > v <`

const foxEncouraging = ` /\_/\
( o.o )  c'mon!
 > u <`

const foxCelebration = ` /\_/\   *
( ^o^ ) * *
 >\o/<   *`

// Fox renders the fox companion in the given mood.
func Fox(mood reading.Mood) string {
	var art string
	fg := theme.Accent

	switch mood {
	case reading.MoodThinking:
		art = foxThinking
		fg = theme.Secondary
	case reading.MoodSuccess:
		art = foxSuccess
		fg = theme.Success
	case reading.MoodEncouraging:
		art = foxEncouraging
		fg = theme.Primary
	case reading.MoodCelebration:
		art = foxCelebration
		fg = theme.Accent
	default:
		art = foxHappy
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
