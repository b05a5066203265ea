package goal

import (
	"errors"
	"testing"
)

func TestPercentOfGoal(t *testing.T) {
	tests := []struct {
		total, target float64
		want          int
	}{
		{1250, 2500, 50},
		{0, 2500, 0},
		{2500, 2500, 100},
		{3000, 2500, 120},
		{1, 3, 33}, // rounds, not truncates
		{2, 3, 67},
	}
	for _, tt := range tests {
		got, err := PercentOfGoal(tt.total, tt.target)
		if err != nil {
			t.Errorf("PercentOfGoal(%v, %v) error: %v", tt.total, tt.target, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PercentOfGoal(%v, %v) = %d, want %d", tt.total, tt.target, got, tt.want)
		}
	}
}

func TestPercentOfGoal_InvalidTarget(t *testing.T) {
	for _, target := range []float64{0, -100} {
		if _, err := PercentOfGoal(1000, target); !errors.Is(err, ErrInvalidGoal) {
			t.Errorf("PercentOfGoal(1000, %v) err = %v, want ErrInvalidGoal", target, err)
		}
	}
}

func TestRemaining(t *testing.T) {
	if got := Remaining(1000, 2500); got != 1500 {
		t.Errorf("Remaining(1000, 2500) = %v, want 1500", got)
	}
	// Never negative once the goal is exceeded.
	if got := Remaining(3000, 2500); got != 0 {
		t.Errorf("Remaining(3000, 2500) = %v, want 0", got)
	}
}
