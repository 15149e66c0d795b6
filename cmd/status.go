package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/trenlog/trenlog/internal/session"
	"github.com/trenlog/trenlog/internal/storage"
	"github.com/trenlog/trenlog/internal/utils"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session's progress and resume position",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SessionExists() {
			return fmt.Errorf("No active session")
		}

		state, err := utils.LoadSessionState()
		if err != nil {
			return fmt.Errorf("Failed to load session state: %w", err)
		}

		st := storage.NewStorage()
		logs, err := st.GetSessionLogs(cmd.Context(), state.SessionID)
		if err != nil {
			return err
		}

		sess := session.Restore(state.ExtraSets, state.SkippedSets)
		pos := session.ResumePosition(state.Exercises, logs, sess.ExtraSets)
		duration := time.Since(state.StartTime).Round(time.Second)

		// Define color functions.
		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()

		fmt.Printf("%s\n", green(state.ProgramName))
		fmt.Printf("%s %s\n\n", red("Duration:"), duration)

		for i, ex := range state.Exercises {
			done := completedSets(logs, ex.ExerciseID)
			skipped := sess.SkippedCount(ex.ExerciseID)
			target := sess.EffectiveTarget(ex)

			marker := "  "
			if i == pos.ExerciseIndex {
				marker = yellow("▶ ")
			}

			line := fmt.Sprintf("%s%s — %d/%d sets", marker, cyan(ex.Name), done, target)
			if skipped > 0 {
				line += fmt.Sprintf(", %d skipped", skipped)
			}
			if sess.Finished(ex, done) {
				line += " " + green("✓")
			}
			fmt.Println(line)
		}

		current := state.Exercises[pos.ExerciseIndex]
		fmt.Printf("\nNext up: %s, set %d\n", cyan(current.Name), nextSetNumber(sess, logs, current.ExerciseID))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
