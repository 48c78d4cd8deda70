package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/mkrishnan/storyfox/internal/profile"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data:      SnapshotData{Version: 1},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Version != 1 {
		t.Errorf("data.version = %d, want 1", snap.Data.Version)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	// Count remaining snapshots.
	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// Save only 2 snapshots.
	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	// Check that the snapshots table exists.
	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}

func TestProfileRepoLoadDefault(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	state, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := profile.DefaultState()
	if state.Level != want.Level {
		t.Errorf("level = %v, want %v", state.Level, want.Level)
	}
	if state.LevelScore != want.LevelScore {
		t.Errorf("level score = %d, want %d", state.LevelScore, want.LevelScore)
	}
	if state.DifficultyMultiplier != want.DifficultyMultiplier {
		t.Errorf("multiplier = %v, want %v", state.DifficultyMultiplier, want.DifficultyMultiplier)
	}
}

func TestProfileRepoSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	state := profile.DefaultState()
	state.Level = profile.LevelExplorer
	state.LevelScore = 63
	state.DifficultyMultiplier = 1.15
	state.CurrentStreak = 4
	state.LongestStreak = 9
	state.LastActiveDate = "2026-03-10"
	state.Skills.Vocabulary = 72

	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Level != profile.LevelExplorer {
		t.Errorf("level = %v, want explorer", got.Level)
	}
	if got.LevelScore != 63 {
		t.Errorf("level score = %d, want 63", got.LevelScore)
	}
	if got.DifficultyMultiplier != 1.15 {
		t.Errorf("multiplier = %v, want 1.15", got.DifficultyMultiplier)
	}
	if got.CurrentStreak != 4 || got.LongestStreak != 9 {
		t.Errorf("streaks = %d/%d, want 4/9", got.CurrentStreak, got.LongestStreak)
	}
	if got.LastActiveDate != "2026-03-10" {
		t.Errorf("last active = %q, want 2026-03-10", got.LastActiveDate)
	}
	if got.Skills.Vocabulary != 72 {
		t.Errorf("vocabulary = %d, want 72", got.Skills.Vocabulary)
	}
}

func TestProfileRepoResetRestoresDefaults(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	state := profile.DefaultState()
	state.Level = profile.LevelVoyager
	state.LevelScore = 91
	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Level != profile.LevelSprout {
		t.Errorf("level after reset = %v, want sprout", got.Level)
	}
	if got.LevelScore != profile.DefaultState().LevelScore {
		t.Errorf("level score after reset = %d, want default", got.LevelScore)
	}
}

func TestEventRepoSessionSummaries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []SessionEventData{
		{SessionID: "s1", StoryID: "st1", StoryTitle: "The Brave Fox", Action: "start"},
		{SessionID: "s1", StoryID: "st1", StoryTitle: "The Brave Fox", Action: "end",
			QuestionsAttempted: 4, QuestionsCorrect: 3, ReadingSecs: 120},
		{SessionID: "s2", StoryID: "st2", StoryTitle: "Moon Garden", Action: "start"},
		{SessionID: "s2", StoryID: "st2", StoryTitle: "Moon Garden", Action: "abandon",
			QuestionsAttempted: 1, QuestionsCorrect: 0, ReadingSecs: 30},
	}
	for i, e := range events {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	summaries, err := repo.SessionSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2 (start events excluded)", len(summaries))
	}

	// Most recent first.
	if summaries[0].SessionID != "s2" || summaries[0].Action != "abandon" {
		t.Errorf("summaries[0] = %s/%s, want s2/abandon", summaries[0].SessionID, summaries[0].Action)
	}
	if summaries[1].SessionID != "s1" || summaries[1].QuestionsCorrect != 3 {
		t.Errorf("summaries[1] = %s correct=%d, want s1 correct=3",
			summaries[1].SessionID, summaries[1].QuestionsCorrect)
	}

	limited, err := repo.SessionSummaries(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("summaries limit: %v", err)
	}
	if len(limited) != 1 || limited[0].SessionID != "s2" {
		t.Errorf("limited = %v, want single s2 entry", limited)
	}
}

func TestEventRepoReadStoryIDs(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []SessionEventData{
		{SessionID: "s1", StoryID: "st1", Action: "start"},
		{SessionID: "s2", StoryID: "st2", Action: "start"},
		{SessionID: "s3", StoryID: "st1", Action: "start"}, // reread
		{SessionID: "s3", StoryID: "st1", Action: "end"},
	} {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	ids, err := repo.ReadStoryIDs(ctx, 10)
	if err != nil {
		t.Fatalf("read story ids: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("got %d ids, want 2 deduplicated", len(ids))
	}
	if ids[0] != "st1" || ids[1] != "st2" {
		t.Errorf("ids = %v, want [st1 st2]", ids)
	}
}

func TestEventRepoSkillBreakdown(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", StoryID: "st1", QuestionID: "q1", Skill: "comprehension",
			ChosenIndex: 1, CorrectIndex: 1, Correct: true, TimeMs: 4000},
		{SessionID: "s1", StoryID: "st1", QuestionID: "q2", Skill: "comprehension",
			ChosenIndex: 0, CorrectIndex: 2, Correct: false, TimeMs: 7000},
		{SessionID: "s1", StoryID: "st1", QuestionID: "q3", Skill: "inference",
			ChosenIndex: 3, CorrectIndex: 3, Correct: true, TimeMs: 9000},
	}
	for i, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.SkillBreakdown(ctx)
	if err != nil {
		t.Fatalf("skill breakdown: %v", err)
	}

	comp := stats["comprehension"]
	if comp.Attempted != 2 || comp.Correct != 1 {
		t.Errorf("comprehension = %d/%d, want 1/2", comp.Correct, comp.Attempted)
	}
	if got := comp.Accuracy(); got != 0.5 {
		t.Errorf("comprehension accuracy = %v, want 0.5", got)
	}
	inf := stats["inference"]
	if inf.Attempted != 1 || inf.Correct != 1 {
		t.Errorf("inference = %d/%d, want 1/1", inf.Correct, inf.Attempted)
	}
}

func TestStoryRepoSaveAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.StoryRepo()
	ctx := context.Background()

	content := json.RawMessage(`[{"type":"text","text":"Once upon a time."}]`)
	for i, data := range []StoryRecordData{
		{StoryID: "st1", Title: "The Brave Fox", Language: "en", Theme: "forest", WordCount: 120, Content: content},
		{StoryID: "st2", Title: "Moon Garden", Language: "en", Theme: "space", WordCount: 140, Content: content},
	} {
		if err := repo.SaveStory(ctx, data); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Duplicate save is a no-op, not an error.
	if err := repo.SaveStory(ctx, StoryRecordData{
		StoryID: "st1", Title: "Renamed", Content: content,
	}); err != nil {
		t.Fatalf("duplicate save: %v", err)
	}

	stories, err := repo.RecentStories(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(stories) != 2 {
		t.Fatalf("got %d stories, want 2", len(stories))
	}
	for _, st := range stories {
		if st.StoryID == "st1" && st.Title != "The Brave Fox" {
			t.Errorf("duplicate save overwrote title: %q", st.Title)
		}
	}

	limited, err := repo.RecentStories(ctx, 1)
	if err != nil {
		t.Fatalf("recent limit: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("got %d stories with limit 1", len(limited))
	}
}
