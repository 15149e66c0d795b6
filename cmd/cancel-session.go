package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/trenlog/trenlog/internal/models"
	"github.com/trenlog/trenlog/internal/storage"
	"github.com/trenlog/trenlog/internal/utils"
)

var cancelCmd = &cobra.Command{
	Use:   "cancel-session",
	Short: "Cancel the current session without PR detection",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SessionExists() {
			return fmt.Errorf("No active session")
		}

		state, err := utils.LoadSessionState()
		if err != nil {
			return fmt.Errorf("Failed to load session state: %w", err)
		}

		st := storage.NewStorage()
		now := time.Now().UTC()
		if err := st.UpdateSessionStatus(cmd.Context(), state.SessionID, models.SessionCancelled, &now, 0); err != nil {
			return err
		}

		if err := utils.ClearSessionState(); err != nil {
			return fmt.Errorf("Failed to clear session state: %w", err)
		}

		fmt.Printf("✅ Cancelled session '%s'\n", state.ProgramName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cancelCmd)
}
