package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/trenlog/trenlog/internal/models"
	"github.com/trenlog/trenlog/internal/records"
	"github.com/trenlog/trenlog/internal/storage"
	"github.com/trenlog/trenlog/internal/utils"
)

var endCmd = &cobra.Command{
	Use:   "end-session",
	Short: "Finish the current session and detect new personal records",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SessionExists() {
			return fmt.Errorf("No active session")
		}

		state, err := utils.LoadSessionState()
		if err != nil {
			return fmt.Errorf("Failed to load session state: %w", err)
		}

		st := storage.NewStorage()
		ctx := cmd.Context()

		logs, err := st.GetSessionLogs(ctx, state.SessionID)
		if err != nil {
			return err
		}

		current, err := st.GetPersonalRecords(ctx, state.UserID, true)
		if err != nil {
			return err
		}

		// The program config is authoritative for exercise types; magnitude
		// inference only kicks in for exercises not in the program.
		types := make(map[string]models.ExerciseType)
		for _, ex := range state.Exercises {
			if ex.Type != "" {
				types[records.Normalize(ex.Name)] = ex.Type
			}
		}
		lookup := func(name string) (models.ExerciseType, bool) {
			t, ok := types[name]
			return t, ok
		}

		detector := records.NewDetector(st, lookup)
		summaries, err := detector.Reconcile(ctx, logs, state.UserID, state.SessionID, current)
		if err != nil {
			// Writes already issued stay; the session stays open so the
			// user can retry.
			return err
		}

		if len(summaries) > 0 {
			green := color.New(color.FgGreen).SprintFunc()
			yellow := color.New(color.FgYellow).SprintFunc()

			fmt.Printf("%s\n", green("New personal records:"))
			for _, sum := range summaries {
				line := fmt.Sprintf("🏆 %s: %s", yellow(sum.ExerciseName), sum.NewValue)
				if sum.OldValue != "" {
					line += fmt.Sprintf(" (was %s", sum.OldValue)
					if sum.ImprovementPercent != nil {
						line += fmt.Sprintf(", +%g%%", *sum.ImprovementPercent)
					}
					line += ")"
				}
				fmt.Println(line)
			}
		}

		now := time.Now().UTC()
		total := float32(now.Sub(state.StartTime).Seconds())
		if err := st.UpdateSessionStatus(ctx, state.SessionID, models.SessionCompleted, &now, total); err != nil {
			return err
		}

		if err := utils.ClearSessionState(); err != nil {
			return fmt.Errorf("Failed to clear session state: %w", err)
		}

		fmt.Printf("✅ Session '%s' completed in %s\n",
			state.ProgramName, now.Sub(state.StartTime).Round(time.Second))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(endCmd)
}
