package models

import "time"

// ExerciseType tells which magnitude of a set is the one that counts.
type ExerciseType string

const (
	ExerciseTypeReps     ExerciseType = "reps"
	ExerciseTypeTime     ExerciseType = "time"
	ExerciseTypeDistance ExerciseType = "distance"
)

// SetLogEntry is one recorded performance of a set. For a given exercise
// type only the relevant magnitude fields are non-zero; the others stay 0.
type SetLogEntry struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ProgramID    string    `json:"program_id,omitempty"`
	ExerciseID   string    `json:"exercise_id,omitempty"`
	SessionID    string    `json:"session_id,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	ExerciseName string    `json:"exercise_name"`
	SetNumber    int       `json:"set_number"` // 1-based within the session.
	Reps         int       `json:"reps"`
	Weight       float32   `json:"weight"`   // kg
	Duration     float32   `json:"duration"` // seconds
	Distance     float32   `json:"distance"` // meters
	Comment      string    `json:"comment,omitempty"`
}

// SetMagnitudes carries the correctable fields of a logged set.
// Identity and set number never change on edit.
type SetMagnitudes struct {
	Reps     int     `json:"reps"`
	Weight   float32 `json:"weight"`
	Duration float32 `json:"duration"`
	Distance float32 `json:"distance"`
}
