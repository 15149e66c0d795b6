package cmd

import (
	"github.com/spf13/cobra"
	"github.com/trenlog/trenlog/internal/config"
	"github.com/trenlog/trenlog/internal/models"
	"github.com/trenlog/trenlog/internal/session"
)

var rootCmd = &cobra.Command{
	Use:   "trenlog",
	Short: "Personal workout logger with PR tracking",
}

func Execute() error {
	return rootCmd.Execute()
}

func currentUserID() string {
	cfg, err := config.LoadConfig()
	if err != nil {
		return "local"
	}
	return cfg.User.ID
}

// completedSets counts persisted logs belonging to one exercise.
func completedSets(logs []models.SetLogEntry, exerciseID string) int {
	n := 0
	for _, l := range logs {
		if l.ExerciseID == exerciseID {
			n++
		}
	}
	return n
}

// nextSetNumber is the number the next logged set of an exercise will
// carry: completed plus skipped plus one. Every command that shows or
// assigns a set number goes through this so the views cannot drift.
func nextSetNumber(sess *session.State, logs []models.SetLogEntry, exerciseID string) int {
	return sess.CurrentSetNumber(exerciseID, completedSets(logs, exerciseID))
}
