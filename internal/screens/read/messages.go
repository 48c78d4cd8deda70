package read

import (
	"time"

	"github.com/mkrishnan/storyfox/internal/profile"
	"github.com/mkrishnan/storyfox/internal/story"
)

// storyReadyMsg is sent when the profile is loaded and a story is ready.
type storyReadyMsg struct {
	State  profile.ProgressionState
	Result *story.GenerateResult
	Err    error
}

// pacerTickMsg drives the auto-advance countdown. Gen pins the tick to
// the pacer generation it was scheduled for; the engine drops stale ones.
type pacerTickMsg struct {
	Gen  int
	Time time.Time
}

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct {
	Abandoned bool
}
