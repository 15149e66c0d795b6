package records

import (
	"math"
	"testing"
)

func TestEstimate1RM(t *testing.T) {
	tests := []struct {
		name   string
		weight float32
		reps   int
		want   float32
	}{
		{"single rep is the weight itself", 100, 1, 100},
		{"100kg x 5", 100, 5, 112.5}, // 100 * 36 / 32
		{"80kg x 10", 80, 10, 106.7}, // 80 * 36 / 27 ≈ 106.666
		{"reps clamp at 12", 100, 15, 144},
		{"reps exactly 12", 100, 12, 144}, // 100 * 36 / 25
		{"zero weight", 0, 5, 0},
		{"zero reps", 100, 0, 0},
		{"negative reps", 100, -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate1RM(tt.weight, tt.reps)
			if math.Abs(float64(got-tt.want)) > 0.05 {
				t.Errorf("Estimate1RM(%v, %v) = %v, want %v", tt.weight, tt.reps, got, tt.want)
			}
		})
	}
}
