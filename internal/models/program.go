package models

// Program is the read-only target configuration a session executes.
// It is owned by the program-editing side; the logger only consumes it.
type Program struct {
	ID        string           `toml:"id" json:"id"`
	Name      string           `toml:"name" json:"name"`
	Exercises []ExerciseTarget `toml:"exercise" json:"exercises"`
}

// ExerciseTarget is the planned work for one exercise within a program.
type ExerciseTarget struct {
	ExerciseID string       `toml:"id" json:"exercise_id"`
	Name       string       `toml:"name" json:"name"`
	Type       ExerciseType `toml:"type" json:"type"`
	Sets       int          `toml:"sets" json:"sets"`
	Reps       int          `toml:"reps,omitempty" json:"reps,omitempty"`
	Weight     float32      `toml:"weight,omitempty" json:"weight,omitempty"`
	Duration   float32      `toml:"duration,omitempty" json:"duration,omitempty"`
	Distance   float32      `toml:"distance,omitempty" json:"distance,omitempty"`
	Notes      string       `toml:"notes,omitempty" json:"notes,omitempty"`
}
