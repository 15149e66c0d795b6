package records

import (
	"fmt"
	"strconv"

	"github.com/trenlog/trenlog/internal/models"
)

// FormatWeight prints a weight in kg without trailing zeros: "100", "102.5".
func FormatWeight(kg float32) string {
	return strconv.FormatFloat(float64(kg), 'f', -1, 32)
}

// FormatDuration prints seconds as m:ss, or h:mm:ss past an hour.
func FormatDuration(seconds float32) string {
	total := int(seconds + 0.5)
	h := total / 3600
	m := total % 3600 / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatDistance prints meters below a kilometer and kilometers above.
func FormatDistance(meters float32) string {
	if meters < 1000 {
		return strconv.FormatFloat(float64(meters), 'f', -1, 32) + " м"
	}
	return strconv.FormatFloat(float64(meters)/1000, 'f', -1, 32) + " км"
}

// FormatValue renders the magnitude that matters for the given type, in the
// register record summaries use: "100кг × 5", "1:30", "5 км".
func FormatValue(t models.ExerciseType, weight float32, reps int, duration, distance float32) string {
	switch t {
	case models.ExerciseTypeTime:
		return FormatDuration(duration)
	case models.ExerciseTypeDistance:
		return FormatDistance(distance)
	default:
		return fmt.Sprintf("%sкг × %d", FormatWeight(weight), reps)
	}
}

// FormatRecord renders a stored record's value.
func FormatRecord(rec models.PersonalRecord) string {
	return FormatValue(rec.ExerciseType, rec.Weight, rec.Reps, rec.Duration, rec.Distance)
}
