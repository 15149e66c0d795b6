package records

import "github.com/trenlog/trenlog/internal/models"

// SelectBest finds the best performance(s) within a group. Timed and
// distance exercises yield a single best entry. Weighted exercises yield
// one best entry per distinct rep count, because a heavier single at 5
// reps and a heavier set at 10 reps are independent records. Ties keep
// the first occurrence.
func SelectBest(g ExerciseGroup) []models.SetLogEntry {
	switch g.Type {
	case models.ExerciseTypeTime:
		return bestSingle(g.Logs, func(l models.SetLogEntry) float32 { return l.Duration })
	case models.ExerciseTypeDistance:
		return bestSingle(g.Logs, func(l models.SetLogEntry) float32 { return l.Distance })
	}

	// reps: bucket by rep count, keep the heaviest set per bucket.
	var best []models.SetLogEntry
	index := make(map[int]int)
	for _, l := range g.Logs {
		if l.Reps <= 0 || l.Weight <= 0 {
			continue
		}
		i, ok := index[l.Reps]
		if !ok {
			index[l.Reps] = len(best)
			best = append(best, l)
			continue
		}
		if l.Weight > best[i].Weight {
			best[i] = l
		}
	}
	return best
}

func bestSingle(logs []models.SetLogEntry, value func(models.SetLogEntry) float32) []models.SetLogEntry {
	var best *models.SetLogEntry
	for i := range logs {
		if value(logs[i]) <= 0 {
			continue
		}
		if best == nil || value(logs[i]) > value(*best) {
			best = &logs[i]
		}
	}
	if best == nil {
		return nil
	}
	return []models.SetLogEntry{*best}
}
