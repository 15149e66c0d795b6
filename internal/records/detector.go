package records

import (
	"context"
	"fmt"
	"math"

	"github.com/trenlog/trenlog/internal/models"
)

// Store is the slice of the persistence contract the detector writes
// through. *storage.Storage satisfies it; tests plug in an in-memory fake.
type Store interface {
	SaveNewRecord(ctx context.Context, rec models.PersonalRecord) (models.PersonalRecord, error)
	DemoteRecord(ctx context.Context, recordID string) error
}

// Detector compares a session's best performances against the stored
// current records and persists the winners.
type Detector struct {
	store  Store
	lookup ExerciseLookup
}

func NewDetector(store Store, lookup ExerciseLookup) *Detector {
	return &Detector{store: store, lookup: lookup}
}

// Reconcile groups the session's logs, picks the best performance per
// exercise (per rep count for weighted exercises), and for each one that
// strictly beats the matching current record demotes the old record and
// inserts the new one. The demote and the insert are two sequential store
// calls, not a transaction: a failure mid-way leaves earlier exercises
// updated and later ones untouched, and the summaries written so far are
// returned alongside the error.
//
// There is no guard against running Reconcile twice for the same session;
// a second run over already-recorded bests will duplicate record rows.
func (d *Detector) Reconcile(ctx context.Context, sessionLogs []models.SetLogEntry, userID, sessionID string, currentRecords []models.PersonalRecord) ([]models.NewRecordSummary, error) {
	var summaries []models.NewRecordSummary

	for _, g := range Group(sessionLogs, d.lookup) {
		for _, best := range SelectBest(g) {
			prev := findCurrent(currentRecords, g.Name, g.Type, best.Reps)
			if prev != nil && magnitude(g.Type, best) <= recordMagnitude(*prev) {
				continue
			}

			if prev != nil {
				if err := d.store.DemoteRecord(ctx, prev.ID); err != nil {
					return summaries, fmt.Errorf("Failed to demote record for %s: %w", g.Name, err)
				}
			}

			rec := newRecord(g, best, userID, sessionID, prev)
			if _, err := d.store.SaveNewRecord(ctx, rec); err != nil {
				return summaries, fmt.Errorf("Failed to save record for %s: %w", g.Name, err)
			}

			summaries = append(summaries, summarize(g, best, prev))
		}
	}

	return summaries, nil
}

// findCurrent locates the current record for the group's key: normalized
// name plus type, and for weighted exercises the same rep count.
func findCurrent(recs []models.PersonalRecord, name string, t models.ExerciseType, reps int) *models.PersonalRecord {
	for i := range recs {
		r := &recs[i]
		if !r.IsCurrent || r.ExerciseName != name || r.ExerciseType != t {
			continue
		}
		if t == models.ExerciseTypeReps && r.Reps != reps {
			continue
		}
		return r
	}
	return nil
}

func magnitude(t models.ExerciseType, l models.SetLogEntry) float64 {
	switch t {
	case models.ExerciseTypeTime:
		return float64(l.Duration)
	case models.ExerciseTypeDistance:
		return float64(l.Distance)
	default:
		return float64(l.Weight)
	}
}

func recordMagnitude(r models.PersonalRecord) float64 {
	switch r.ExerciseType {
	case models.ExerciseTypeTime:
		return float64(r.Duration)
	case models.ExerciseTypeDistance:
		return float64(r.Distance)
	default:
		return float64(r.Weight)
	}
}

func newRecord(g ExerciseGroup, best models.SetLogEntry, userID, sessionID string, prev *models.PersonalRecord) models.PersonalRecord {
	rec := models.PersonalRecord{
		UserID:       userID,
		ExerciseName: g.Name,
		ExerciseType: g.Type,
		AchievedAt:   best.Timestamp,
		SessionID:    sessionID,
		LogID:        best.ID,
		IsCurrent:    true,
	}
	if prev != nil {
		rec.PreviousRecordID = prev.ID
	}

	switch g.Type {
	case models.ExerciseTypeTime:
		rec.Duration = best.Duration
	case models.ExerciseTypeDistance:
		rec.Distance = best.Distance
	default:
		rec.Weight = best.Weight
		rec.Reps = best.Reps
		rec.Estimated1RM = Estimate1RM(best.Weight, best.Reps)
	}

	return rec
}

func summarize(g ExerciseGroup, best models.SetLogEntry, prev *models.PersonalRecord) models.NewRecordSummary {
	sum := models.NewRecordSummary{
		ExerciseName: g.Name,
		ExerciseType: g.Type,
		NewValue:     FormatValue(g.Type, best.Weight, best.Reps, best.Duration, best.Distance),
	}

	if prev != nil {
		sum.OldValue = FormatRecord(*prev)
		if old := recordMagnitude(*prev); old > 0 {
			pct := math.Round((magnitude(g.Type, best)-old)/old*1000) / 10
			sum.ImprovementPercent = &pct
		}
	}

	return sum
}
