package game

import (
	"testing"
	"time"
)

func TestPointerAngleAt(t *testing.T) {
	start := time.Unix(100, 0)
	cases := []struct {
		name    string
		elapsed time.Duration
		speed   float64
		want    float64
	}{
		{"at start", 0, 1, 0},
		{"half second", 500 * time.Millisecond, 1, 90},
		{"double speed", 500 * time.Millisecond, 2, 180},
		{"wraps", 2500 * time.Millisecond, 1, 90},
	}
	for _, tc := range cases {
		got := PointerAngleAt(start, start.Add(tc.elapsed), tc.speed)
		if !approxEqual(got, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestPointerAngleAtZeroStart(t *testing.T) {
	if got := PointerAngleAt(time.Time{}, time.Now(), 1); got != 0 {
		t.Fatalf("expected 0 before a round starts, got %v", got)
	}
}

func TestInHitZone(t *testing.T) {
	cases := []struct {
		angle, center, width float64
		want                 bool
	}{
		{180, 180, 120, true},
		{120, 180, 120, true},
		{240, 180, 120, true},
		{119.9, 180, 120, false},
		{240.1, 180, 120, false},
		{0, 180, 120, false},
		{355, 5, 20, true},
		{180, 180, 0, false},
	}
	for _, tc := range cases {
		if got := InHitZone(tc.angle, tc.center, tc.width); got != tc.want {
			t.Fatalf("InHitZone(%v, %v, %v) = %v, want %v", tc.angle, tc.center, tc.width, got, tc.want)
		}
	}
}
