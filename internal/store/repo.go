package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ProgressState is the per-user gamification state: XP, streak, and the
// rolling week tracker.
type ProgressState struct {
	UserID         string `json:"userId"`
	XPTotal        int    `json:"xpTotal"`
	Streak         int    `json:"streak"`
	LastAnsweredOn string `json:"lastAnsweredOn"`
	WeekIndex      int    `json:"weekIndex"`
	CompletedDays  int    `json:"completedDays"`
	BadgeEarned    bool   `json:"badgeEarned"`
	BadgeName      string `json:"badgeName"`
	LastFeedback   string `json:"lastFeedback"`
	PrimingSeenOn  string `json:"primingSeenOn"`
}

// ProgressRepo manages the single progress row per identity.
type ProgressRepo interface {
	// Get returns the progress for a user, or a zero-valued state when
	// the user has no history yet.
	Get(ctx context.Context, userID string) (*ProgressState, error)

	// Save upserts the progress for state.UserID.
	Save(ctx context.Context, state *ProgressState) error

	// Delete removes the progress row for a user.
	Delete(ctx context.Context, userID string) error
}

// PrefsRepo is a string key-value store for settings and identity keys.
// A missing key reads as an empty value.
type PrefsRepo interface {
	GetPref(ctx context.Context, key string) (string, error)
	SetPref(ctx context.Context, key, value string) error
}

// ReflectionEventData captures one completed daily reflection.
type ReflectionEventData struct {
	UserID          string
	QuestionID      string
	Day             string
	Theme           string
	Prompt          string
	Answer          string
	DurationSeconds int
	Feedback        string
	XPAwarded       int
	BaseXP          int
	BonusXP         int
	Streak          int
	Difficulty      string
	Multiplier      float64
}

// ReflectionRecord is a stored reflection with its event metadata.
type ReflectionRecord struct {
	Sequence  int64
	Timestamp time.Time
	ReflectionEventData
}

// JournalRepo provides append and query access to the reflection log.
type JournalRepo interface {
	// AppendReflection records a completed reflection.
	AppendReflection(ctx context.Context, data ReflectionEventData) error

	// ListReflections returns reflections for a user, newest first.
	ListReflections(ctx context.Context, userID string, opts QueryOpts) ([]ReflectionRecord, error)

	// HasAnsweredOn reports whether the user completed a reflection on
	// the given local day (YYYY-MM-DD).
	HasAnsweredOn(ctx context.Context, userID, day string) (bool, error)

	// CountReflections returns the total number of reflections for a user.
	CountReflections(ctx context.Context, userID string) (int, error)
}

// SnapshotData captures the full progress state at a point in time.
type SnapshotData struct {
	Version  int            `json:"version"`
	Progress *ProgressState `json:"progress,omitempty"`
}

// Snapshot represents a point-in-time capture of progress state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
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

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates token usage for one purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns a single event by id, or nil when absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
