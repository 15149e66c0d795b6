package records

import "github.com/trenlog/trenlog/internal/models"

// ExerciseLookup resolves a normalized exercise name to its configured
// type. nil means no configuration is available and the type is inferred
// from the log's magnitudes.
type ExerciseLookup func(normalizedName string) (models.ExerciseType, bool)

// ResolveType returns the exercise type for a logged set. The configured
// type wins when present; the magnitude-based inference below only exists
// to classify logs that predate explicit typing.
func ResolveType(log models.SetLogEntry, lookup ExerciseLookup) models.ExerciseType {
	if lookup != nil {
		if t, ok := lookup(Normalize(log.ExerciseName)); ok {
			return t
		}
	}

	switch {
	case log.Duration > 0 && log.Reps == 0:
		return models.ExerciseTypeTime
	case log.Distance > 0 && log.Reps == 0:
		return models.ExerciseTypeDistance
	default:
		return models.ExerciseTypeReps
	}
}

// ExerciseGroup is a per-exercise slice of the log, keyed by normalized name.
type ExerciseGroup struct {
	Name string
	Type models.ExerciseType
	Logs []models.SetLogEntry
}

// Group partitions a flat log sequence into per-exercise groups. The key is
// the normalized name only, so renamed or re-created exercises with the same
// display text accumulate one continuous history. Group order follows first
// occurrence; order within a group preserves input order.
func Group(logs []models.SetLogEntry, lookup ExerciseLookup) []ExerciseGroup {
	var groups []ExerciseGroup
	index := make(map[string]int)

	for _, l := range logs {
		key := Normalize(l.ExerciseName)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, ExerciseGroup{
				Name: key,
				Type: ResolveType(l, lookup),
			})
		}
		groups[i].Logs = append(groups[i].Logs, l)
	}

	return groups
}
