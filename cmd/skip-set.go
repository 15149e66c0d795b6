package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/trenlog/trenlog/internal/session"
	"github.com/trenlog/trenlog/internal/storage"
	"github.com/trenlog/trenlog/internal/utils"
)

var skipSetCmd = &cobra.Command{
	Use:   "skip-set [exercise-index]",
	Short: "Skip the current set of an exercise (advances the counter, logs nothing)",
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

		st := storage.NewStorage()
		logs, err := st.GetSessionLogs(cmd.Context(), state.SessionID)
		if err != nil {
			return err
		}

		sess := session.Restore(state.ExtraSets, state.SkippedSets)
		setNumber := nextSetNumber(sess, logs, target.ExerciseID)
		sess.SkipSet(target.ExerciseID, setNumber)

		state.SkippedSets = sess.SkippedList()
		if err := utils.SaveSessionState(state); err != nil {
			return fmt.Errorf("Failed to save session state: %w", err)
		}

		fmt.Printf("✅ Skipped set %d of '%s'\n", setNumber, target.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(skipSetCmd)
}
