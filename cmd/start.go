package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/trenlog/trenlog/internal/models"
	"github.com/trenlog/trenlog/internal/session"
	"github.com/trenlog/trenlog/internal/storage"
	"github.com/trenlog/trenlog/internal/utils"
)

var programPath string

var startCmd = &cobra.Command{
	Use:   "start-session",
	Short: "Start a training session for a program, or resume the open one",
	RunE: func(cmd *cobra.Command, args []string) error {
		if utils.SessionExists() {
			return fmt.Errorf("A session is already active, end or cancel it first")
		}

		program, err := utils.ParseProgramFromTOML(programPath)
		if err != nil {
			return fmt.Errorf("Failed to read program file: %w", err)
		}
		if len(program.Exercises) == 0 {
			return fmt.Errorf("Program %q has no exercises", program.Name)
		}

		st := storage.NewStorage()
		ctx := cmd.Context()
		userID := currentUserID()

		ws, err := st.GetInProgressSession(ctx, userID, program.ID)
		if err != nil {
			return err
		}

		resumed := ws != nil
		if ws == nil {
			ws, err = st.CreateSession(ctx, userID, program.ID, program.Name, time.Now().UTC())
			if err != nil {
				return err
			}
		}

		state := &models.SessionState{
			SessionID:   ws.ID,
			UserID:      userID,
			ProgramID:   program.ID,
			ProgramName: program.Name,
			StartTime:   ws.StartedAt,
			Exercises:   program.Exercises,
			ExtraSets:   make(map[string]int),
		}
		if err := utils.SaveSessionState(state); err != nil {
			return fmt.Errorf("Failed to save session state: %w", err)
		}

		if resumed {
			logs, err := st.GetSessionLogs(ctx, ws.ID)
			if err != nil {
				return err
			}
			pos := session.ResumePosition(program.Exercises, logs, state.ExtraSets)
			ex := program.Exercises[pos.ExerciseIndex]
			fmt.Printf("✅ Resumed session for '%s' at exercise '%s', set %d\n",
				program.Name, ex.Name, pos.SetNumber)
			return nil
		}

		fmt.Printf("✅ Started session for '%s'\n", program.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().StringVarP(&programPath, "program", "p", "", "Path to the program TOML file")
	startCmd.MarkFlagRequired("program")
}
