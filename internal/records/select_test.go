package records

import (
	"testing"

	"github.com/trenlog/trenlog/internal/models"
)

func TestSelectBestRepsBuckets(t *testing.T) {
	g := ExerciseGroup{
		Name: "bench press",
		Type: models.ExerciseTypeReps,
		Logs: []models.SetLogEntry{
			{Reps: 5, Weight: 100},
			{Reps: 5, Weight: 110},
			{Reps: 10, Weight: 80},
		},
	}

	best := SelectBest(g)
	if len(best) != 2 {
		t.Fatalf("expected 2 bests (one per rep count), got %d", len(best))
	}
	if best[0].Reps != 5 || best[0].Weight != 110 {
		t.Errorf("rep-5 best = %v×%v, want 110×5", best[0].Weight, best[0].Reps)
	}
	if best[1].Reps != 10 || best[1].Weight != 80 {
		t.Errorf("rep-10 best = %v×%v, want 80×10", best[1].Weight, best[1].Reps)
	}
}

func TestSelectBestRepsEligibility(t *testing.T) {
	g := ExerciseGroup{
		Type: models.ExerciseTypeReps,
		Logs: []models.SetLogEntry{
			{Reps: 0, Weight: 100}, // no reps
			{Reps: 5, Weight: 0},   // no weight
		},
	}
	if best := SelectBest(g); len(best) != 0 {
		t.Errorf("expected no eligible bests, got %d", len(best))
	}
}

func TestSelectBestRepsTieKeepsFirst(t *testing.T) {
	first := models.SetLogEntry{ID: "a", Reps: 5, Weight: 100}
	second := models.SetLogEntry{ID: "b", Reps: 5, Weight: 100}
	g := ExerciseGroup{Type: models.ExerciseTypeReps, Logs: []models.SetLogEntry{first, second}}

	best := SelectBest(g)
	if len(best) != 1 || best[0].ID != "a" {
		t.Errorf("tie should keep first occurrence, got %+v", best)
	}
}

func TestSelectBestTime(t *testing.T) {
	g := ExerciseGroup{
		Type: models.ExerciseTypeTime,
		Logs: []models.SetLogEntry{
			{ID: "a", Duration: 60},
			{ID: "b", Duration: 90},
			{ID: "c", Duration: 90}, // tie loses to first occurrence
		},
	}

	best := SelectBest(g)
	if len(best) != 1 || best[0].ID != "b" {
		t.Errorf("expected single best b (90s), got %+v", best)
	}
}

func TestSelectBestDistance(t *testing.T) {
	g := ExerciseGroup{
		Type: models.ExerciseTypeDistance,
		Logs: []models.SetLogEntry{
			{ID: "a", Distance: 3000},
			{ID: "b", Distance: 5000},
		},
	}

	best := SelectBest(g)
	if len(best) != 1 || best[0].ID != "b" {
		t.Errorf("expected single best b (5000m), got %+v", best)
	}
}

func TestSelectBestEmptyGroup(t *testing.T) {
	g := ExerciseGroup{Type: models.ExerciseTypeTime}
	if best := SelectBest(g); len(best) != 0 {
		t.Errorf("expected empty result for empty group, got %d", len(best))
	}
}
