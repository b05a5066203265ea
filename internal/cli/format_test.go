package cli

import "testing"

func TestFormatKcal(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{205.4, "205"},
		{204.5, "205"},
		{1234.4, "1,234"},
		{2500, "2,500"},
	}
	for _, tt := range tests {
		if got := FormatKcal(tt.in); got != tt.want {
			t.Errorf("FormatKcal(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatGrams(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0g"},
		{0.5, "0.5g"},
		{6.3, "6.3g"},
		{10.4, "10g"},
		{45.2, "45g"},
	}
	for _, tt := range tests {
		if got := FormatGrams(tt.in); got != tt.want {
			t.Errorf("FormatGrams(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatGoalPercent(t *testing.T) {
	if got := FormatGoalPercent(1250, 2500); got != "50%" {
		t.Errorf("FormatGoalPercent(1250, 2500) = %q, want 50%%", got)
	}
	if got := FormatGoalPercent(1250, 0); got != "—" {
		t.Errorf("FormatGoalPercent(1250, 0) = %q, want —", got)
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("0198c2a4-1234-7def-8000-abcdef012345"); got != "0198c2a4" {
		t.Errorf("ShortID = %q, want 0198c2a4", got)
	}
	if got := ShortID("short"); got != "short" {
		t.Errorf("ShortID = %q, want short", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("grilled chicken breast", 10); got != "grilled c…" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("rice", 10); got != "rice" {
		t.Errorf("Truncate = %q, want rice", got)
	}
}
