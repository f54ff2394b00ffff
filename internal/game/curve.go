package game

import "github.com/verte-zerg/hitzone/internal/model"

// InitialHitRange is the hit-zone width in degrees before any hit.
const InitialHitRange = 120.0

const (
	normalShrink = 0.4
	hardShrink   = 0.8
)

// HitRange returns the hit-zone width after n successful hits.
// Any difficulty other than normal shrinks at the hard rate.
func HitRange(n int, difficulty model.Difficulty) float64 {
	shrink := hardShrink
	if difficulty == model.DifficultyNormal {
		shrink = normalShrink
	}
	return InitialHitRange / (1 + float64(n)*shrink)
}

// Curve returns HitRange for 0..hits inclusive.
func Curve(hits int, difficulty model.Difficulty) []float64 {
	if hits < 0 {
		return nil
	}
	out := make([]float64, hits+1)
	for n := range out {
		out[n] = HitRange(n, difficulty)
	}
	return out
}
