package game

import (
	"math"
	"time"
)

// DegreesPerSecond is the pointer's angular speed at speed multiplier 1.
const DegreesPerSecond = 180.0

// PointerAngleAt returns the pointer angle in [0, 360) for a round started at start.
func PointerAngleAt(start, now time.Time, speed float64) float64 {
	if start.IsZero() || !now.After(start) {
		return 0
	}
	travelled := now.Sub(start).Seconds() * DegreesPerSecond * speed
	return wrapDegrees(travelled)
}

// InHitZone reports whether angle lies within [center-width/2, center+width/2].
func InHitZone(angle, center, width float64) bool {
	if width <= 0 {
		return false
	}
	return math.Abs(signedDelta(angle, center)) <= width/2
}

func wrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// signedDelta returns angle-center folded into (-180, 180].
func signedDelta(angle, center float64) float64 {
	d := wrapDegrees(angle - center)
	if d > 180 {
		d -= 360
	}
	return d
}
