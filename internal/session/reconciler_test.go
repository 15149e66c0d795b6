package session

import (
	"testing"

	"github.com/trenlog/trenlog/internal/models"
)

func targets() []models.ExerciseTarget {
	return []models.ExerciseTarget{
		{ExerciseID: "a", Name: "Squat", Sets: 3},
		{ExerciseID: "b", Name: "Bench Press", Sets: 3},
		{ExerciseID: "c", Name: "Row", Sets: 3},
	}
}

func logsFor(exerciseID string, n int) []models.SetLogEntry {
	var logs []models.SetLogEntry
	for i := 1; i <= n; i++ {
		logs = append(logs, models.SetLogEntry{ExerciseID: exerciseID, SetNumber: i})
	}
	return logs
}

func TestResumePositionEmptyHistory(t *testing.T) {
	pos := ResumePosition(targets(), nil, nil)
	if pos.ExerciseIndex != 0 || pos.SetNumber != 1 {
		t.Errorf("empty history should resume at the start, got %+v", pos)
	}
}

func TestResumePositionMidExercise(t *testing.T) {
	pos := ResumePosition(targets(), logsFor("b", 2), nil)
	if pos.ExerciseIndex != 1 || pos.SetNumber != 3 {
		t.Errorf("expected exercise 1 set 3, got %+v", pos)
	}
}

func TestResumePositionAdvancesToNextExercise(t *testing.T) {
	pos := ResumePosition(targets(), logsFor("b", 3), nil)
	if pos.ExerciseIndex != 2 || pos.SetNumber != 1 {
		t.Errorf("finished exercise should advance to the next, got %+v", pos)
	}
}

func TestResumePositionLastExerciseStays(t *testing.T) {
	pos := ResumePosition(targets(), logsFor("c", 3), nil)
	if pos.ExerciseIndex != 2 {
		t.Errorf("no next exercise exists, position must stay, got %+v", pos)
	}
	if pos.SetNumber != 4 {
		t.Errorf("set number should indicate completion (4 > target 3), got %d", pos.SetNumber)
	}
}

func TestResumePositionExtraSetsDelayAdvance(t *testing.T) {
	extra := map[string]int{"b": 1}
	pos := ResumePosition(targets(), logsFor("b", 3), extra)
	if pos.ExerciseIndex != 1 || pos.SetNumber != 4 {
		t.Errorf("extra set should keep position on b at set 4, got %+v", pos)
	}
}

func TestResumePositionUnknownExerciseFallsBack(t *testing.T) {
	logs := logsFor("deleted", 2)
	pos := ResumePosition(targets(), logs, nil)
	if pos.ExerciseIndex != 0 || pos.SetNumber != 1 {
		t.Errorf("edited-away exercise should fall back to the default, got %+v", pos)
	}
}

func TestStateSkippedAdvancesCounter(t *testing.T) {
	st := NewState()
	st.SkipSet("a", 1)

	// One skip and one completed set: the next set number is 3.
	if got := st.CurrentSetNumber("a", 1); got != 3 {
		t.Errorf("CurrentSetNumber = %d, want 3", got)
	}
}

func TestStateEffectiveTargetAndFinished(t *testing.T) {
	ex := models.ExerciseTarget{ExerciseID: "a", Sets: 3}
	st := NewState()

	if st.Finished(ex, 2) {
		t.Error("2 of 3 sets done, not finished")
	}
	if !st.Finished(ex, 3) {
		t.Error("3 of 3 sets done, should be finished")
	}

	st.AddExtraSet("a")
	if st.EffectiveTarget(ex) != 4 {
		t.Errorf("EffectiveTarget = %d, want 4", st.EffectiveTarget(ex))
	}
	if st.Finished(ex, 3) {
		t.Error("extra set re-opens the exercise")
	}

	// Skips count toward completion too.
	st.SkipSet("a", 4)
	if !st.Finished(ex, 3) {
		t.Error("3 completed + 1 skipped of 4 should be finished")
	}
}

func TestStateRestoreRoundTrip(t *testing.T) {
	st := NewState()
	st.AddExtraSet("a")
	st.SkipSet("b", 2)

	restored := Restore(st.ExtraSets, st.SkippedList())
	if restored.ExtraSets["a"] != 1 {
		t.Errorf("extra sets lost in round trip: %+v", restored.ExtraSets)
	}
	if restored.SkippedCount("b") != 1 {
		t.Errorf("skipped sets lost in round trip: %+v", restored.Skipped)
	}
}
