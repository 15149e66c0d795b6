package cmd

import (
	"testing"

	"github.com/trenlog/trenlog/internal/models"
)

func changedOnly(names ...string) func(string) bool {
	set := make(map[string]bool)
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}

func TestMergeSetMagnitudesKeepsUntouchedFields(t *testing.T) {
	existing := models.SetLogEntry{Reps: 5, Weight: 100, Comment: "heavy"}

	m := mergeSetMagnitudes(existing, models.SetMagnitudes{Weight: 105}, changedOnly("weight"))

	if m.Weight != 105 {
		t.Errorf("Weight = %v, want 105", m.Weight)
	}
	if m.Reps != 5 {
		t.Errorf("Reps = %v, want the stored 5 — an omitted flag must not zero the field", m.Reps)
	}
	if m.Duration != 0 || m.Distance != 0 {
		t.Errorf("unrelated magnitudes changed: %+v", m)
	}
}

func TestMergeSetMagnitudesAppliesAllChangedFlags(t *testing.T) {
	existing := models.SetLogEntry{Reps: 8, Weight: 60}

	edits := models.SetMagnitudes{Reps: 10, Weight: 55}
	m := mergeSetMagnitudes(existing, edits, changedOnly("reps", "weight"))

	if m.Reps != 10 || m.Weight != 55 {
		t.Errorf("merge = %+v, want reps 10 weight 55", m)
	}
}

func TestMergeSetMagnitudesCanZeroExplicitly(t *testing.T) {
	existing := models.SetLogEntry{Reps: 5, Weight: 100}

	m := mergeSetMagnitudes(existing, models.SetMagnitudes{Weight: 0}, changedOnly("weight"))
	if m.Weight != 0 {
		t.Errorf("an explicitly passed zero must stick, got %v", m.Weight)
	}
}

func TestValidateEditRejectsBadCorrection(t *testing.T) {
	repsSet := models.SetLogEntry{Reps: 5, Weight: 100}
	if err := validateEdit(repsSet, models.SetMagnitudes{Reps: 0, Weight: 100}); err == nil {
		t.Error("zeroing the reps of a weighted set must be rejected before the write")
	}
	if err := validateEdit(repsSet, models.SetMagnitudes{Reps: 6, Weight: 95}); err != nil {
		t.Errorf("valid correction rejected: %v", err)
	}

	timedSet := models.SetLogEntry{Duration: 60}
	if err := validateEdit(timedSet, models.SetMagnitudes{Duration: 0}); err == nil {
		t.Error("zeroing the duration of a timed set must be rejected before the write")
	}
	if err := validateEdit(timedSet, models.SetMagnitudes{Duration: 75}); err != nil {
		t.Errorf("valid timed correction rejected: %v", err)
	}
}
