package screenspace

import "testing"

func TestNormalizeWheel(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
		unit  WheelUnit
		want  float64
	}{
		{"one notch away", 1, WheelNotches, 120},
		{"two notches toward", -2, WheelNotches, -240},
		{"fractional notch", 0.5, WheelNotches, 60},
		{"pixels toward", 53, WheelPixels, -53},
		{"pixels away", -120, WheelPixels, 120},
		{"lines", 3, WheelLines, -120},
		{"pages", -1, WheelPages, 300},
		{"detail", 1, WheelDetail, -120},
		{"zero", 0, WheelLines, 0},
		{"unknown unit", 5, WheelUnit(42), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeWheel(tt.delta, tt.unit); got != tt.want {
				t.Errorf("NormalizeWheel(%v, %d) = %v, want %v", tt.delta, tt.unit, got, tt.want)
			}
		})
	}
}
