package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/trenlog/trenlog/internal/utils"
)

var addSetCmd = &cobra.Command{
	Use:   "add-set [exercise-index]",
	Short: "Add an extra set beyond an exercise's planned target",
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

		state.ExtraSets[target.ExerciseID]++
		if err := utils.SaveSessionState(state); err != nil {
			return fmt.Errorf("Failed to save session state: %w", err)
		}

		fmt.Printf("✅ Added an extra set to '%s' (target is now %d)\n",
			target.Name, target.Sets+state.ExtraSets[target.ExerciseID])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addSetCmd)
}
