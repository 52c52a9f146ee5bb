package zodiac

import (
	"testing"
	"time"
)

func TestSignAnchors(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{1900, "Rat"},
		{1984, "Rat"},
		{1899, "Pig"},
		{1990, "Horse"},
		{2000, "Dragon"},
		{1947, "Pig"},
	}
	for _, tt := range tests {
		if got := Sign(tt.year); got != tt.want {
			t.Errorf("Sign(%d) = %q, want %q", tt.year, got, tt.want)
		}
	}
}

func TestSignCycleLength(t *testing.T) {
	for y := 1800; y < 2100; y++ {
		if Sign(y) != Sign(y+12) {
			t.Fatalf("Sign(%d) != Sign(%d)", y, y+12)
		}
	}
}

func TestSignAlwaysNamed(t *testing.T) {
	valid := make(map[string]bool, len(signs))
	for _, s := range signs {
		valid[s] = true
	}
	// Includes years before the 1900 anchor, where the naive modulo
	// would go negative.
	for y := 1850; y < 2050; y++ {
		if !valid[Sign(y)] {
			t.Errorf("Sign(%d) = %q, not one of the 12 signs", y, Sign(y))
		}
	}
}

func TestAge(t *testing.T) {
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name             string
		day, month, year int
		want             int
	}{
		{"birthday today", 15, 6, 1990, 34},
		{"birthday tomorrow", 16, 6, 1990, 33},
		{"birthday yesterday", 14, 6, 1990, 34},
		{"later month", 1, 7, 1990, 33},
		{"earlier month", 31, 5, 1990, 34},
		{"new year baby", 1, 1, 1990, 34},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Age(tt.day, tt.month, tt.year, today); got != tt.want {
				t.Errorf("Age(%d, %d, %d) = %d, want %d", tt.day, tt.month, tt.year, got, tt.want)
			}
		})
	}
}
