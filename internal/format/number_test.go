package format

import (
	"math"
	"testing"
)

// TestFormatRoot verifies representative renderings.
func TestFormatRoot(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want string
	}{
		{"small integer", 2, "2"},
		{"negative integer", -1, "-1"},
		{"zero", 0, "0"},
		{"negative zero", math.Copysign(0, -1), "-0"},
		{"fraction", 0.5, "0.5"},
		{"irrational", math.Sqrt2, "1.4142135623730951"},
		{"large magnitude", 1e21, "1e+21"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRoot(tt.x); got != tt.want {
				t.Errorf("FormatRoot(%v) = %q, want %q", tt.x, got, tt.want)
			}
		})
	}
}
