package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/trenlog/trenlog/internal/models"
)

// GetInProgressSession finds the open session for a (user, program) pair,
// or nil when there is none.
func (s *Storage) GetInProgressSession(ctx context.Context, userID, programID string) (*models.WorkoutSession, error) {
	row := s.DB.QueryRowContext(ctx, `
        SELECT id, user_id, program_id, program_name, started_at,
               completed_at, total_duration, status
        FROM workout_sessions
        WHERE user_id = ? AND program_id = ? AND status = ?
        ORDER BY started_at DESC
        LIMIT 1`,
		userID, programID, models.SessionInProgress,
	)

	ws, err := scanSession(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No open session is a normal answer.
		}
		return nil, fmt.Errorf("Failed to load in-progress session: %w", err)
	}
	return ws, nil
}

// CreateSession opens a new in-progress session.
func (s *Storage) CreateSession(ctx context.Context, userID, programID, programName string, startedAt time.Time) (*models.WorkoutSession, error) {
	ws := &models.WorkoutSession{
		ID:          uuid.New().String(),
		UserID:      userID,
		ProgramID:   programID,
		ProgramName: programName,
		StartedAt:   startedAt,
		Status:      models.SessionInProgress,
	}

	_, err := s.DB.ExecContext(ctx, `
        INSERT INTO workout_sessions
        (id, user_id, program_id, program_name, started_at, status)
        VALUES (?, ?, ?, ?, ?, ?)`,
		ws.ID,
		ws.UserID,
		ws.ProgramID,
		ws.ProgramName,
		ws.StartedAt.Format(time.RFC3339),
		ws.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("Failed to create session: %w", err)
	}

	return ws, nil
}

// UpdateSessionStatus moves a session into its terminal state.
func (s *Storage) UpdateSessionStatus(ctx context.Context, sessionID string, status models.SessionStatus, completedAt *time.Time, totalDuration float32) error {
	var completed any
	if completedAt != nil {
		completed = completedAt.Format(time.RFC3339)
	}

	_, err := s.DB.ExecContext(ctx, `
        UPDATE workout_sessions
        SET status = ?, completed_at = ?, total_duration = ?
        WHERE id = ?`,
		status, completed, totalDuration, sessionID,
	)
	if err != nil {
		return fmt.Errorf("Failed to update session status: %w", err)
	}
	return nil
}

func scanSession(row *sql.Row) (*models.WorkoutSession, error) {
	var ws models.WorkoutSession
	var startedAt string
	var completedAt sql.NullString
	var totalDuration sql.NullFloat64

	err := row.Scan(
		&ws.ID,
		&ws.UserID,
		&ws.ProgramID,
		&ws.ProgramName,
		&startedAt,
		&completedAt,
		&totalDuration,
		&ws.Status,
	)
	if err != nil {
		return nil, err
	}

	ws.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
	if completedAt.Valid {
		t, _ := time.Parse(time.RFC3339, completedAt.String)
		ws.CompletedAt = &t
	}
	if totalDuration.Valid {
		ws.TotalDuration = float32(totalDuration.Float64)
	}

	return &ws, nil
}
