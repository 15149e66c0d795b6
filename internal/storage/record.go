package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/trenlog/trenlog/internal/models"
)

// GetPersonalRecords returns a user's records, newest first. With
// currentOnly the superseded history is filtered out.
func (s *Storage) GetPersonalRecords(ctx context.Context, userID string, currentOnly bool) ([]models.PersonalRecord, error) {
	query := `
        SELECT id, user_id, exercise_name, exercise_type, achieved_at,
               session_id, log_id, is_current, previous_record_id,
               weight, reps, estimated_1rm, duration, distance
        FROM personal_records
        WHERE user_id = ?`
	if currentOnly {
		query += ` AND is_current = 1`
	}
	query += ` ORDER BY achieved_at DESC`

	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("Failed to load personal records: %w", err)
	}
	defer rows.Close()

	var recs []models.PersonalRecord
	for rows.Next() {
		var r models.PersonalRecord
		var achievedAt string
		var isCurrent int
		var sessionID, logID, previousID sql.NullString

		if err := rows.Scan(
			&r.ID,
			&r.UserID,
			&r.ExerciseName,
			&r.ExerciseType,
			&achievedAt,
			&sessionID,
			&logID,
			&isCurrent,
			&previousID,
			&r.Weight,
			&r.Reps,
			&r.Estimated1RM,
			&r.Duration,
			&r.Distance,
		); err != nil {
			return nil, fmt.Errorf("Failed to scan personal record: %w", err)
		}

		r.AchievedAt, _ = time.Parse(time.RFC3339, achievedAt)
		r.IsCurrent = isCurrent != 0
		r.SessionID = sessionID.String
		r.LogID = logID.String
		r.PreviousRecordID = previousID.String
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

// SaveNewRecord inserts a freshly detected record, assigning its
// identifier when absent.
func (s *Storage) SaveNewRecord(ctx context.Context, rec models.PersonalRecord) (models.PersonalRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.AchievedAt.IsZero() {
		rec.AchievedAt = time.Now().UTC()
	}

	isCurrent := 0
	if rec.IsCurrent {
		isCurrent = 1
	}

	_, err := s.DB.ExecContext(ctx, `
        INSERT INTO personal_records
        (id, user_id, exercise_name, exercise_type, achieved_at, session_id,
         log_id, is_current, previous_record_id, weight, reps, estimated_1rm,
         duration, distance)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.UserID,
		rec.ExerciseName,
		rec.ExerciseType,
		rec.AchievedAt.Format(time.RFC3339),
		rec.SessionID,
		rec.LogID,
		isCurrent,
		rec.PreviousRecordID,
		rec.Weight,
		rec.Reps,
		rec.Estimated1RM,
		rec.Duration,
		rec.Distance,
	)
	if err != nil {
		return models.PersonalRecord{}, fmt.Errorf("Failed to save personal record: %w", err)
	}

	return rec, nil
}

// DemoteRecord flips a record out of current status. The row itself stays
// forever as history.
func (s *Storage) DemoteRecord(ctx context.Context, recordID string) error {
	_, err := s.DB.ExecContext(ctx,
		`UPDATE personal_records SET is_current = 0 WHERE id = ?`,
		recordID,
	)
	if err != nil {
		return fmt.Errorf("Failed to demote record: %w", err)
	}
	return nil
}
