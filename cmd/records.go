package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/trenlog/trenlog/internal/models"
	"github.com/trenlog/trenlog/internal/records"
	"github.com/trenlog/trenlog/internal/storage"
	"github.com/trenlog/trenlog/internal/utils"
)

var recordsAll bool

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show personal records",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		recs, err := st.GetPersonalRecords(cmd.Context(), currentUserID(), !recordsAll)
		if err != nil {
			return err
		}

		if len(recs) == 0 {
			fmt.Println("No records yet")
			return nil
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()

		for _, r := range recs {
			line := fmt.Sprintf("%s: %s", cyan(r.ExerciseName), records.FormatRecord(r))
			if r.ExerciseType == models.ExerciseTypeReps && r.Estimated1RM > 0 {
				line += fmt.Sprintf(" %s", yellow(fmt.Sprintf("(~%sкг 1RM)", records.FormatWeight(r.Estimated1RM))))
			}
			line += " " + faint(utils.FormatDate(r.AchievedAt))
			if recordsAll && !r.IsCurrent {
				line += " " + faint("(superseded)")
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recordsCmd)

	recordsCmd.Flags().BoolVarP(&recordsAll, "all", "a", false, "Include superseded record history")
}
