package records

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims and lowercases", " Bench  Press ", "bench press"},
		{"already canonical", "bench press", "bench press"},
		{"collapses inner whitespace", "bench\t \tpress", "bench press"},
		{"folds ё", "Жим лёжа", "жим лежа"},
		{"uppercase ё", "ЖИМ ЛЁЖА", "жим лежа"},
		{"empty", "", ""},
		{"only whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{" Bench  Press ", "Жим ЛЁЖА", "squat", "  "}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}
