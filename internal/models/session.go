package models

import "time"

type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
	SessionCancelled  SessionStatus = "cancelled"
)

// WorkoutSession is one attempt at executing a program.
// in_progress -> completed | cancelled, exactly once.
type WorkoutSession struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	ProgramID     string        `json:"program_id"`
	ProgramName   string        `json:"program_name"`
	StartedAt     time.Time     `json:"started_at"`
	CompletedAt   *time.Time    `json:"completed_at,omitempty"`
	TotalDuration float32       `json:"total_duration,omitempty"` // seconds
	Status        SessionStatus `json:"status"`
}

// SessionState is the scratch state kept between command invocations in
// ~/.config/trenlog/current_session.toml: which session is running, its
// exercise targets, and the ad-hoc extra/skipped set adjustments.
type SessionState struct {
	SessionID   string           `toml:"session_id"`
	UserID      string           `toml:"user_id"`
	ProgramID   string           `toml:"program_id"`
	ProgramName string           `toml:"program_name"`
	StartTime   time.Time        `toml:"start_time"`
	Exercises   []ExerciseTarget `toml:"exercises"`
	ExtraSets   map[string]int   `toml:"extra_sets"` // exercise id -> count
	SkippedSets []SkippedSet     `toml:"skipped_sets"`
}

type SkippedSet struct {
	ExerciseID string `toml:"exercise_id"`
	SetNumber  int    `toml:"set_number"`
}
