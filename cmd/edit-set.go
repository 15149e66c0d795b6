package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trenlog/trenlog/internal/models"
	"github.com/trenlog/trenlog/internal/records"
	"github.com/trenlog/trenlog/internal/storage"
)

var (
	editSetReps     int
	editSetWeight   float32
	editSetDuration float32
	editSetDistance float32
)

var editSetCmd = &cobra.Command{
	Use:   "edit-set [log-id]",
	Short: "Correct a logged set's magnitudes without changing its identity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()
		ctx := cmd.Context()

		existing, err := st.GetSetLog(ctx, args[0])
		if err != nil {
			return err
		}

		edits := models.SetMagnitudes{
			Reps:     editSetReps,
			Weight:   editSetWeight,
			Duration: editSetDuration,
			Distance: editSetDistance,
		}
		m := mergeSetMagnitudes(existing, edits, cmd.Flags().Changed)

		if err := validateEdit(existing, m); err != nil {
			return err
		}

		if err := st.UpdateSetLog(ctx, existing.ID, m); err != nil {
			return err
		}

		fmt.Printf("✅ Updated set %s\n", existing.ID)
		return nil
	},
}

// mergeSetMagnitudes overlays only the flags the user actually passed onto
// the stored values, so an omitted flag keeps the set's logged magnitude.
func mergeSetMagnitudes(existing models.SetLogEntry, edits models.SetMagnitudes, changed func(string) bool) models.SetMagnitudes {
	m := models.SetMagnitudes{
		Reps:     existing.Reps,
		Weight:   existing.Weight,
		Duration: existing.Duration,
		Distance: existing.Distance,
	}
	if changed("reps") {
		m.Reps = edits.Reps
	}
	if changed("weight") {
		m.Weight = edits.Weight
	}
	if changed("duration") {
		m.Duration = edits.Duration
	}
	if changed("distance") {
		m.Distance = edits.Distance
	}
	return m
}

// validateEdit checks the corrected set against its exercise type before
// anything is written. The type comes from the set as it was logged, not
// from the edit, so a correction cannot flip a set into another category.
func validateEdit(existing models.SetLogEntry, m models.SetMagnitudes) error {
	applied := existing
	applied.Reps = m.Reps
	applied.Weight = m.Weight
	applied.Duration = m.Duration
	applied.Distance = m.Distance
	return records.ValidateSet(applied, records.ResolveType(existing, nil))
}

func init() {
	rootCmd.AddCommand(editSetCmd)

	editSetCmd.Flags().IntVarP(&editSetReps, "reps", "r", 0, "Corrected reps")
	editSetCmd.Flags().Float32VarP(&editSetWeight, "weight", "w", 0, "Corrected weight in kg")
	editSetCmd.Flags().Float32VarP(&editSetDuration, "duration", "d", 0, "Corrected duration in seconds")
	editSetCmd.Flags().Float32VarP(&editSetDistance, "distance", "m", 0, "Corrected distance in meters")
}
