package game

import (
	"math"
	"testing"

	"github.com/verte-zerg/hitzone/internal/model"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestHitRangeStartsFull(t *testing.T) {
	for _, d := range []model.Difficulty{model.DifficultyNormal, model.DifficultyHard} {
		if got := HitRange(0, d); got != InitialHitRange {
			t.Fatalf("%s: expected %v at n=0, got %v", d, InitialHitRange, got)
		}
	}
}

func TestHitRangeFirstHit(t *testing.T) {
	cases := []struct {
		difficulty model.Difficulty
		want       float64
	}{
		{model.DifficultyNormal, 120 / 1.4},
		{model.DifficultyHard, 120 / 1.8},
	}
	for _, tc := range cases {
		if got := HitRange(1, tc.difficulty); !approxEqual(got, tc.want) {
			t.Fatalf("%s: expected %.3f, got %.3f", tc.difficulty, tc.want, got)
		}
	}
}

func TestHitRangeStrictlyDecreasing(t *testing.T) {
	for _, d := range []model.Difficulty{model.DifficultyNormal, model.DifficultyHard} {
		prev := HitRange(0, d)
		for n := 1; n <= 200; n++ {
			cur := HitRange(n, d)
			if cur >= prev {
				t.Fatalf("%s: range did not shrink at n=%d (%v >= %v)", d, n, cur, prev)
			}
			prev = cur
		}
	}
}

func TestHardShrinksFaster(t *testing.T) {
	for n := 1; n < 20; n++ {
		if HitRange(n, model.DifficultyHard) >= HitRange(n, model.DifficultyNormal) {
			t.Fatalf("expected hard range below normal at n=%d", n)
		}
	}
}

func TestCurveLength(t *testing.T) {
	c := Curve(6, model.DifficultyNormal)
	if len(c) != 7 {
		t.Fatalf("expected 7 points, got %d", len(c))
	}
	if !approxEqual(c[5], 40) {
		t.Fatalf("expected 40 at n=5, got %v", c[5])
	}
	if Curve(-1, model.DifficultyNormal) != nil {
		t.Fatalf("expected nil curve for negative hits")
	}
}
