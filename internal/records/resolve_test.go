package records

import (
	"testing"

	"github.com/trenlog/trenlog/internal/models"
)

func TestResolveTypeInference(t *testing.T) {
	tests := []struct {
		name string
		log  models.SetLogEntry
		want models.ExerciseType
	}{
		{"duration only", models.SetLogEntry{Duration: 60}, models.ExerciseTypeTime},
		{"distance only", models.SetLogEntry{Distance: 1000}, models.ExerciseTypeDistance},
		{"reps and weight", models.SetLogEntry{Reps: 5, Weight: 100}, models.ExerciseTypeReps},
		{"reps with duration", models.SetLogEntry{Reps: 8, Duration: 40}, models.ExerciseTypeReps},
		{"nothing set defaults to reps", models.SetLogEntry{}, models.ExerciseTypeReps},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveType(tt.log, nil); got != tt.want {
				t.Errorf("ResolveType = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveTypeLookupWins(t *testing.T) {
	lookup := func(name string) (models.ExerciseType, bool) {
		if name == "планка" {
			return models.ExerciseTypeTime, true
		}
		return "", false
	}

	// Looks like a reps log, but the configured type is authoritative.
	log := models.SetLogEntry{ExerciseName: " Планка ", Reps: 1, Duration: 60}
	if got := ResolveType(log, lookup); got != models.ExerciseTypeTime {
		t.Errorf("ResolveType with lookup = %v, want time", got)
	}
}

func TestGroup(t *testing.T) {
	logs := []models.SetLogEntry{
		{ExerciseName: "Bench Press", Reps: 5, Weight: 100},
		{ExerciseName: "Squat", Reps: 5, Weight: 140},
		{ExerciseName: " bench  press ", Reps: 5, Weight: 105},
		{ExerciseName: "BENCH PRESS", Reps: 8, Weight: 90},
	}

	groups := Group(logs, nil)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	// First occurrence order.
	if groups[0].Name != "bench press" || groups[1].Name != "squat" {
		t.Errorf("unexpected group order: %q, %q", groups[0].Name, groups[1].Name)
	}
	if len(groups[0].Logs) != 3 {
		t.Errorf("expected 3 bench press logs, got %d", len(groups[0].Logs))
	}
	// Input order preserved within the group.
	if groups[0].Logs[0].Weight != 100 || groups[0].Logs[1].Weight != 105 || groups[0].Logs[2].Weight != 90 {
		t.Errorf("group logs out of input order: %+v", groups[0].Logs)
	}
	if groups[0].Type != models.ExerciseTypeReps {
		t.Errorf("expected reps type, got %v", groups[0].Type)
	}
}

func TestGroupEmpty(t *testing.T) {
	if groups := Group(nil, nil); len(groups) != 0 {
		t.Errorf("expected no groups, got %d", len(groups))
	}
}
