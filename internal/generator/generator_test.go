package generator

import "testing"

func TestCenterStaysInOrbit(t *testing.T) {
	g := NewSeeded(42)
	for i := 0; i < 10000; i++ {
		c := g.Center()
		if c < OrbitMin || c >= OrbitMax {
			t.Fatalf("draw %d out of range: %v", i, c)
		}
	}
}

func TestCenterCoversOrbit(t *testing.T) {
	g := NewSeeded(7)
	var low, high bool
	for i := 0; i < 10000; i++ {
		c := g.Center()
		if c < OrbitMin+10 {
			low = true
		}
		if c > OrbitMax-10 {
			high = true
		}
	}
	if !low || !high {
		t.Fatalf("expected draws near both ends of the orbit (low=%v high=%v)", low, high)
	}
}

func TestSeededIsDeterministic(t *testing.T) {
	a := NewSeeded(1)
	b := NewSeeded(1)
	for i := 0; i < 5; i++ {
		if a.Center() != b.Center() {
			t.Fatalf("expected identical sequences for identical seeds")
		}
	}
}
