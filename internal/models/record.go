package models

import "time"

// PersonalRecord is the best known performance for a normalized exercise
// name. For reps-type exercises there is one record per rep count.
// Superseded records are never deleted: the flag flips to false and the
// replacement points back via PreviousRecordID.
type PersonalRecord struct {
	ID               string       `json:"id"`
	UserID           string       `json:"user_id"`
	ExerciseName     string       `json:"exercise_name"` // normalized
	ExerciseType     ExerciseType `json:"exercise_type"`
	AchievedAt       time.Time    `json:"achieved_at"`
	SessionID        string       `json:"session_id,omitempty"`
	LogID            string       `json:"log_id,omitempty"`
	IsCurrent        bool         `json:"is_current"`
	PreviousRecordID string       `json:"previous_record_id,omitempty"`
	Weight           float32      `json:"weight"`
	Reps             int          `json:"reps"`
	Estimated1RM     float32      `json:"estimated_1rm"`
	Duration         float32      `json:"duration"`
	Distance         float32      `json:"distance"`
}

// NewRecordSummary is what the detector reports for each freshly set record.
type NewRecordSummary struct {
	ExerciseName       string       `json:"exercise_name"`
	ExerciseType       ExerciseType `json:"exercise_type"`
	NewValue           string       `json:"new_value"`
	OldValue           string       `json:"old_value,omitempty"` // empty when this is the first record
	ImprovementPercent *float64     `json:"improvement_percent,omitempty"`
}
