package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/trenlog/trenlog/internal/models"
	"github.com/trenlog/trenlog/internal/records"
	"github.com/trenlog/trenlog/internal/session"
	"github.com/trenlog/trenlog/internal/storage"
	"github.com/trenlog/trenlog/internal/utils"
)

var (
	logSetReps     int
	logSetWeight   float32
	logSetDuration float32
	logSetDistance float32
	logSetComment  string
)

var logSetCmd = &cobra.Command{
	Use:   "log-set [exercise-index]",
	Short: "Log a completed set for an exercise in the current session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SessionExists() {
			return fmt.Errorf("No active session")
		}

		exIdx, err := strconv.Atoi(args[0])
		if err != nil || exIdx < 1 {
			return fmt.Errorf("Invalid exercise index. Must be a positive integer")
		}
		exIdx--

		state, err := utils.LoadSessionState()
		if err != nil {
			return fmt.Errorf("Failed to load session state: %w", err)
		}
		if exIdx >= len(state.Exercises) {
			return fmt.Errorf("Exercise index out of range")
		}
		target := state.Exercises[exIdx]

		entry := models.SetLogEntry{
			UserID:       state.UserID,
			ProgramID:    state.ProgramID,
			ExerciseID:   target.ExerciseID,
			SessionID:    state.SessionID,
			Timestamp:    time.Now().UTC(),
			ExerciseName: target.Name,
			Reps:         logSetReps,
			Weight:       logSetWeight,
			Duration:     logSetDuration,
			Distance:     logSetDistance,
			Comment:      logSetComment,
		}

		exType := target.Type
		if exType == "" {
			exType = records.ResolveType(entry, nil)
		}
		if err := records.ValidateSet(entry, exType); err != nil {
			return err
		}

		st := storage.NewStorage()
		ctx := cmd.Context()

		logs, err := st.GetSessionLogs(ctx, state.SessionID)
		if err != nil {
			return err
		}

		sess := session.Restore(state.ExtraSets, state.SkippedSets)
		entry.SetNumber = nextSetNumber(sess, logs, target.ExerciseID)

		if _, err := st.SaveSetLog(ctx, entry); err != nil {
			return err
		}

		fmt.Printf("✅ Logged set %d for '%s'\n", entry.SetNumber, target.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logSetCmd)

	logSetCmd.Flags().IntVarP(&logSetReps, "reps", "r", 0, "Reps performed")
	logSetCmd.Flags().Float32VarP(&logSetWeight, "weight", "w", 0, "Weight used in kg")
	logSetCmd.Flags().Float32VarP(&logSetDuration, "duration", "d", 0, "Duration in seconds (timed exercises)")
	logSetCmd.Flags().Float32VarP(&logSetDistance, "distance", "m", 0, "Distance in meters (distance exercises)")
	logSetCmd.Flags().StringVarP(&logSetComment, "comment", "c", "", "Optional comment")
}
