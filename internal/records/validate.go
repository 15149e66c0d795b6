package records

import (
	"fmt"

	"github.com/trenlog/trenlog/internal/models"
)

// ValidateSet rejects a set whose deciding magnitude is non-positive for
// its exercise type. Runs before any write so a bad set never reaches the
// store.
func ValidateSet(entry models.SetLogEntry, t models.ExerciseType) error {
	if entry.Weight < 0 {
		return fmt.Errorf("Weight cannot be negative")
	}

	switch t {
	case models.ExerciseTypeTime:
		if entry.Duration <= 0 {
			return fmt.Errorf("A timed set needs a positive duration")
		}
	case models.ExerciseTypeDistance:
		if entry.Distance <= 0 {
			return fmt.Errorf("A distance set needs a positive distance")
		}
	default:
		if entry.Reps <= 0 {
			return fmt.Errorf("A set needs at least one rep")
		}
	}

	return nil
}
