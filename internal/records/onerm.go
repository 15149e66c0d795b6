package records

import "math"

// Estimates above this rep count are unreliable, so reps get clamped.
const maxRepsForEstimate = 12

// Estimate1RM converts a weight/rep pair into an estimated single-rep max
// using the Brzycki formula, rounded to one decimal place. Display data
// only; record comparison never uses it.
func Estimate1RM(weight float32, reps int) float32 {
	if reps <= 0 || weight <= 0 {
		return 0
	}
	if reps == 1 {
		return weight
	}
	if reps > maxRepsForEstimate {
		reps = maxRepsForEstimate
	}

	est := float64(weight) * 36.0 / float64(37-reps)
	return float32(math.Round(est*10) / 10)
}
