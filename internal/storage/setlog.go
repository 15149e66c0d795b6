package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/trenlog/trenlog/internal/models"
)

// GetSessionLogs returns every set logged in a session, oldest first.
func (s *Storage) GetSessionLogs(ctx context.Context, sessionID string) ([]models.SetLogEntry, error) {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT id, user_id, program_id, exercise_id, session_id, timestamp,
               exercise_name, set_number, reps, weight, duration, distance, comment
        FROM set_logs
        WHERE session_id = ?
        ORDER BY timestamp ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("Failed to load session logs: %w", err)
	}
	defer rows.Close()

	var logs []models.SetLogEntry
	for rows.Next() {
		l, err := scanSetLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// GetSetLog returns one logged set by identifier.
func (s *Storage) GetSetLog(ctx context.Context, logID string) (models.SetLogEntry, error) {
	row := s.DB.QueryRowContext(ctx, `
        SELECT id, user_id, program_id, exercise_id, session_id, timestamp,
               exercise_name, set_number, reps, weight, duration, distance, comment
        FROM set_logs
        WHERE id = ?`,
		logID,
	)

	l, err := scanSetLog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SetLogEntry{}, fmt.Errorf("Set %s not found", logID)
		}
		return models.SetLogEntry{}, err
	}
	return l, nil
}

// SaveSetLog persists a completed set, assigning its identifier.
func (s *Storage) SaveSetLog(ctx context.Context, entry models.SetLogEntry) (models.SetLogEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	_, err := s.DB.ExecContext(ctx, `
        INSERT INTO set_logs
        (id, user_id, program_id, exercise_id, session_id, timestamp,
         exercise_name, set_number, reps, weight, duration, distance, comment)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.UserID,
		entry.ProgramID,
		entry.ExerciseID,
		entry.SessionID,
		entry.Timestamp.Format(time.RFC3339),
		entry.ExerciseName,
		entry.SetNumber,
		entry.Reps,
		entry.Weight,
		entry.Duration,
		entry.Distance,
		entry.Comment,
	)
	if err != nil {
		return models.SetLogEntry{}, fmt.Errorf("Failed to save set log: %w", err)
	}

	return entry, nil
}

// UpdateSetLog corrects a logged set's magnitudes in place. Identity and
// set number stay as they were.
func (s *Storage) UpdateSetLog(ctx context.Context, logID string, m models.SetMagnitudes) error {
	_, err := s.DB.ExecContext(ctx, `
        UPDATE set_logs
        SET reps = ?, weight = ?, duration = ?, distance = ?
        WHERE id = ?`,
		m.Reps, m.Weight, m.Duration, m.Distance, logID,
	)
	if err != nil {
		return fmt.Errorf("Failed to update set log: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSetLog(row rowScanner) (models.SetLogEntry, error) {
	var l models.SetLogEntry
	var rawTime string
	var programID, exerciseID, sessionID, comment sql.NullString

	err := row.Scan(
		&l.ID,
		&l.UserID,
		&programID,
		&exerciseID,
		&sessionID,
		&rawTime,
		&l.ExerciseName,
		&l.SetNumber,
		&l.Reps,
		&l.Weight,
		&l.Duration,
		&l.Distance,
		&comment,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SetLogEntry{}, err
		}
		return models.SetLogEntry{}, fmt.Errorf("Failed to scan set log: %w", err)
	}

	l.ProgramID = programID.String
	l.ExerciseID = exerciseID.String
	l.SessionID = sessionID.String
	l.Comment = comment.String
	l.Timestamp, _ = time.Parse(time.RFC3339, rawTime)
	return l, nil
}
