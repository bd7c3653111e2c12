package store

import (
	"context"
	"testing"
	"time"
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

func TestPrefsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.PrefsRepo()
	ctx := context.Background()

	// Missing key reads as empty.
	v, err := repo.GetPref(ctx, "identity.guest")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if v != "" {
		t.Errorf("missing key = %q, want empty", v)
	}

	if err := repo.SetPref(ctx, "identity.guest", "user-abc"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, err = repo.GetPref(ctx, "identity.guest")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v != "user-abc" {
		t.Errorf("value = %q, want user-abc", v)
	}

	// Overwrite.
	if err := repo.SetPref(ctx, "identity.guest", "user-def"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, _ = repo.GetPref(ctx, "identity.guest")
	if v != "user-def" {
		t.Errorf("value after overwrite = %q, want user-def", v)
	}
}

func TestProgressGetDefaultsToZero(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()

	p, err := repo.Get(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.UserID != "nobody" || p.XPTotal != 0 || p.Streak != 0 {
		t.Errorf("unexpected default progress: %+v", p)
	}
}

func TestProgressSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	state := &ProgressState{
		UserID:         "user-1",
		XPTotal:        47,
		Streak:         4,
		LastAnsweredOn: "2026-08-29",
		WeekIndex:      1,
		CompletedDays:  4,
		BadgeName:      "",
		LastFeedback:   "Nice depth.",
		PrimingSeenOn:  "2026-08-29",
	}
	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if *got != *state {
		t.Errorf("got %+v, want %+v", got, state)
	}

	// Update in place.
	state.XPTotal = 60
	state.Streak = 5
	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = repo.Get(ctx, "user-1")
	if got.XPTotal != 60 || got.Streak != 5 {
		t.Errorf("update lost: %+v", got)
	}

	count, err := s.Client().Progress.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("progress rows = %d, want 1", count)
	}
}

func TestProgressDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, &ProgressState{UserID: "user-1", XPTotal: 10}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Delete(ctx, "user-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	p, err := repo.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.XPTotal != 0 {
		t.Errorf("progress survived delete: %+v", p)
	}
}

func TestJournalAppendAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.JournalRepo()
	ctx := context.Background()

	days := []string{"2026-08-27", "2026-08-28", "2026-08-29"}
	for i, day := range days {
		err := repo.AppendReflection(ctx, ReflectionEventData{
			UserID:     "user-1",
			QuestionID: "week-1-day-" + day[len(day)-1:],
			Day:        day,
			Prompt:     "What mattered today?",
			Answer:     "Something that mattered.",
			XPAwarded:  5 + i,
			Streak:     i + 1,
			Difficulty: "primer",
			Multiplier: 1.0,
		})
		if err != nil {
			t.Fatalf("append %s: %v", day, err)
		}
	}
	// A different user's entry must not leak into the list.
	if err := repo.AppendReflection(ctx, ReflectionEventData{
		UserID: "user-2", QuestionID: "week-1-day-1", Day: "2026-08-29",
		Prompt: "p", Answer: "a", XPAwarded: 3, Streak: 1,
	}); err != nil {
		t.Fatalf("append other user: %v", err)
	}

	records, err := repo.ListReflections(ctx, "user-1", QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len = %d, want 3", len(records))
	}
	// Newest first.
	if records[0].Day != "2026-08-29" || records[2].Day != "2026-08-27" {
		t.Errorf("unexpected order: %s .. %s", records[0].Day, records[2].Day)
	}
	// Sequences strictly increasing in event order.
	if records[0].Sequence <= records[1].Sequence || records[1].Sequence <= records[2].Sequence {
		t.Errorf("sequence order broken: %d %d %d",
			records[0].Sequence, records[1].Sequence, records[2].Sequence)
	}

	limited, err := repo.ListReflections(ctx, "user-1", QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited len = %d, want 2", len(limited))
	}
}

func TestJournalHasAnsweredOn(t *testing.T) {
	s := openTestStore(t)
	repo := s.JournalRepo()
	ctx := context.Background()

	err := repo.AppendReflection(ctx, ReflectionEventData{
		UserID: "user-1", QuestionID: "week-1-day-1", Day: "2026-08-29",
		Prompt: "p", Answer: "a", XPAwarded: 5, Streak: 1,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.HasAnsweredOn(ctx, "user-1", "2026-08-29")
	if err != nil {
		t.Fatalf("has answered: %v", err)
	}
	if !got {
		t.Error("expected true for answered day")
	}

	got, err = repo.HasAnsweredOn(ctx, "user-1", "2026-08-30")
	if err != nil {
		t.Fatalf("has answered: %v", err)
	}
	if got {
		t.Error("expected false for tomorrow")
	}

	got, _ = repo.HasAnsweredOn(ctx, "user-2", "2026-08-29")
	if got {
		t.Error("expected false for a different user")
	}
}

func TestJournalCount(t *testing.T) {
	s := openTestStore(t)
	repo := s.JournalRepo()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		err := repo.AppendReflection(ctx, ReflectionEventData{
			UserID: "user-1", QuestionID: "q", Day: "2026-08-2" + string(rune('5'+i)),
			Prompt: "p", Answer: "a", XPAwarded: 1, Streak: 1,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	n, err := repo.CountReflections(ctx, "user-1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 4 {
		t.Errorf("count = %d, want 4", n)
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

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version:  1,
			Progress: &ProgressState{UserID: "user-1", XPTotal: 47, Streak: 4},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

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
	if snap.Data.Progress == nil || snap.Data.Progress.XPTotal != 47 {
		t.Errorf("progress payload lost: %+v", snap.Data)
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

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

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

func appendLLMEvent(t *testing.T, repo EventRepo, data LLMRequestEventData) {
	t.Helper()
	if err := repo.AppendLLMRequest(context.Background(), data); err != nil {
		t.Fatalf("append llm event: %v", err)
	}
}

func TestLLMEventsQueryAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendLLMEvent(t, repo, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "evaluation",
		InputTokens: 800, OutputTokens: 120, LatencyMs: 900, Success: true,
	})
	appendLLMEvent(t, repo, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "evaluation",
		InputTokens: 750, OutputTokens: 0, LatencyMs: 300, Success: false,
		ErrorMessage: "rate limited",
	})

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("expected newest first: %d then %d", events[0].Sequence, events[1].Sequence)
	}
	if events[0].ErrorMessage != "rate limited" {
		t.Errorf("newest error = %q, want rate limited", events[0].ErrorMessage)
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limited len = %d, want 1", len(limited))
	}

	got, err := repo.GetLLMEvent(ctx, events[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected event, got nil")
	}
	if got.Model != "gemini-2.5-flash" || got.InputTokens != 800 {
		t.Errorf("unexpected event: %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing id, got %+v", missing)
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendLLMEvent(t, repo, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "evaluation",
		InputTokens: 100, OutputTokens: 40, LatencyMs: 1000, Success: true,
	})
	appendLLMEvent(t, repo, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "evaluation",
		InputTokens: 300, OutputTokens: 60, LatencyMs: 2000, Success: true,
	})
	appendLLMEvent(t, repo, LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o-mini", Purpose: "priming",
		InputTokens: 50, OutputTokens: 10, LatencyMs: 500, Success: true,
	})

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	stats := make(map[string]LLMUsageStat)
	for _, st := range byPurpose {
		stats[st.Purpose] = st
	}
	eval := stats["evaluation"]
	if eval.Calls != 2 || eval.InputTokens != 400 || eval.OutputTokens != 100 {
		t.Errorf("evaluation stats = %+v", eval)
	}
	if eval.AvgLatencyMs != 1500 {
		t.Errorf("avg latency = %d, want 1500", eval.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	models := make(map[string]LLMModelUsage)
	for _, mu := range byModel {
		models[mu.Model] = mu
	}
	flash := models["gemini-2.5-flash"]
	if flash.Calls != 2 || flash.InputTokens != 400 || flash.OutputTokens != 100 {
		t.Errorf("flash usage = %+v", flash)
	}
	mini := models["gpt-4o-mini"]
	if mini.Calls != 1 || mini.InputTokens != 50 {
		t.Errorf("mini usage = %+v", mini)
	}
}
