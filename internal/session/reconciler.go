package session

import "github.com/trenlog/trenlog/internal/models"

// Position is where logging resumes inside a program: which exercise and
// which set number within it (1-based).
type Position struct {
	ExerciseIndex int
	SetNumber     int
}

// ResumePosition rebuilds the resume point of a possibly-interrupted
// session from its persisted set logs. With no logs the session starts at
// the first exercise. Otherwise the last log anchors the position: when its
// exercise has reached the effective target (planned sets plus ad-hoc
// extras) and a next exercise exists, the position moves there fresh;
// otherwise it stays on the same exercise, continuing the set sequence.
// A last log whose exercise is no longer in the program (edited mid-session)
// falls back to the initial position instead of failing.
func ResumePosition(exercises []models.ExerciseTarget, persistedLogs []models.SetLogEntry, extraSets map[string]int) Position {
	pos := Position{ExerciseIndex: 0, SetNumber: 1}
	if len(persistedLogs) == 0 {
		return pos
	}

	last := persistedLogs[len(persistedLogs)-1]
	idx := -1
	for i := range exercises {
		if exercises[i].ExerciseID == last.ExerciseID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return pos
	}

	done := 0
	for _, l := range persistedLogs {
		if l.ExerciseID == last.ExerciseID {
			done++
		}
	}

	target := exercises[idx].Sets + extraSets[last.ExerciseID]
	if done >= target && idx+1 < len(exercises) {
		return Position{ExerciseIndex: idx + 1, SetNumber: 1}
	}

	return Position{ExerciseIndex: idx, SetNumber: done + 1}
}

// SetKey identifies one planned set of one exercise.
type SetKey struct {
	ExerciseID string
	SetNumber  int
}

// State holds the ad-hoc adjustments a user makes mid-session: extra sets
// beyond an exercise's target, and skipped sets that advance the set
// counter without producing a log entry. It is owned by the caller and
// passed around explicitly.
type State struct {
	ExtraSets map[string]int
	Skipped   map[SetKey]bool
}

func NewState() *State {
	return &State{
		ExtraSets: make(map[string]int),
		Skipped:   make(map[SetKey]bool),
	}
}

// Restore rebuilds a State from the persisted scratch form.
func Restore(extraSets map[string]int, skipped []models.SkippedSet) *State {
	st := NewState()
	for id, n := range extraSets {
		st.ExtraSets[id] = n
	}
	for _, sk := range skipped {
		st.Skipped[SetKey{ExerciseID: sk.ExerciseID, SetNumber: sk.SetNumber}] = true
	}
	return st
}

func (s *State) AddExtraSet(exerciseID string) {
	s.ExtraSets[exerciseID]++
}

func (s *State) SkipSet(exerciseID string, setNumber int) {
	s.Skipped[SetKey{ExerciseID: exerciseID, SetNumber: setNumber}] = true
}

func (s *State) SkippedCount(exerciseID string) int {
	n := 0
	for k := range s.Skipped {
		if k.ExerciseID == exerciseID {
			n++
		}
	}
	return n
}

// EffectiveTarget is the planned set count plus any extra sets added for
// this exercise during the session.
func (s *State) EffectiveTarget(ex models.ExerciseTarget) int {
	return ex.Sets + s.ExtraSets[ex.ExerciseID]
}

// CurrentSetNumber is the number the next set would carry: completed sets
// plus skipped sets plus one.
func (s *State) CurrentSetNumber(exerciseID string, completedSets int) int {
	return completedSets + s.SkippedCount(exerciseID) + 1
}

// Finished reports whether the exercise has no sets left: the next set
// number would exceed the effective target.
func (s *State) Finished(ex models.ExerciseTarget, completedSets int) bool {
	return s.CurrentSetNumber(ex.ExerciseID, completedSets) > s.EffectiveTarget(ex)
}

// SkippedList converts the skip set back to the persisted scratch form.
func (s *State) SkippedList() []models.SkippedSet {
	var out []models.SkippedSet
	for k := range s.Skipped {
		out = append(out, models.SkippedSet{ExerciseID: k.ExerciseID, SetNumber: k.SetNumber})
	}
	return out
}
