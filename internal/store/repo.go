package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mkrishnan/storyfox/internal/profile"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the full reader state at a point in time.
type SnapshotData struct {
	Version     int                      `json:"version"`
	Progression profile.ProgressionState `json:"progression"`
}

// Snapshot represents a point-in-time capture of reader state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages reader state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// ProfileRepo loads and saves the reader's progression state. State is
// persisted as snapshots; Load always returns a usable state, falling back
// to defaults when no snapshot exists.
type ProfileRepo interface {
	Load(ctx context.Context) (profile.ProgressionState, error)
	Save(ctx context.Context, state profile.ProgressionState) error
	Reset(ctx context.Context) error
}

// AnswerEventData captures the data for a single answered question.
type AnswerEventData struct {
	SessionID    string
	StoryID      string
	QuestionID   string
	Skill        string
	Difficulty   string
	ChosenIndex  int
	CorrectIndex int
	Correct      bool
	TimeMs       int
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID          string
	StoryID            string
	StoryTitle         string
	Action             string // start, end, or abandon
	Cached             bool
	QuestionsAttempted int
	QuestionsCorrect   int
	ReadingSecs        int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event with its row ID and timestamp.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates token usage per request purpose.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per model, for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// SessionSummary is a denormalized view of a finished session for the
// history screen and the stats command.
type SessionSummary struct {
	SessionID          string
	StoryTitle         string
	Action             string
	QuestionsAttempted int
	QuestionsCorrect   int
	ReadingSecs        int
	Timestamp          time.Time
}

// SkillStats aggregates answer outcomes for one skill.
type SkillStats struct {
	Attempted int
	Correct   int
}

// Accuracy returns the fraction of correct answers, or 0 when no questions
// were attempted.
func (s SkillStats) Accuracy() float64 {
	if s.Attempted == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempted)
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAnswerEvent records an answered question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendSessionEvent records a session start, end, or abandon.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// SessionSummaries returns finished sessions, most recent first.
	SessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummary, error)

	// SkillBreakdown aggregates answer events per skill tag.
	SkillBreakdown(ctx context.Context) (map[string]SkillStats, error)

	// ReadStoryIDs returns the IDs of stories that appear in session
	// events, most recent first, capped at limit.
	ReadStoryIDs(ctx context.Context, limit int) ([]string, error)

	// QueryLLMEvents returns LLM request events, most recent first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM event by row ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per request purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// StoryRecordData is a cached story row.
type StoryRecordData struct {
	StoryID   string
	Title     string
	Language  string
	Theme     string
	WordCount int
	Content   json.RawMessage
	CreatedAt time.Time
}

// StoryRepo caches generated stories for offline fallback.
type StoryRepo interface {
	// SaveStory caches a story. Saving an already-cached story ID is a no-op.
	SaveStory(ctx context.Context, data StoryRecordData) error

	// RecentStories returns cached stories, most recent first.
	RecentStories(ctx context.Context, limit int) ([]StoryRecordData, error)
}
