package gamemath

import "math"

// Clamp limits value to [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Lerp interpolates from a toward b by t in [0,1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// MoveToward steps value toward target by at most maxDelta.
func MoveToward(value, target, maxDelta float64) float64 {
	diff := target - value
	if math.Abs(diff) <= maxDelta {
		return target
	}
	if diff > 0 {
		return value + maxDelta
	}
	return value - maxDelta
}

// DampFactor converts a per-second rate into a blend factor for one step
// of length dt. The result is in [0,1) for any dt, so repeated blending
// behaves the same at any frame rate.
func DampFactor(rate, dt float64) float64 {
	return 1 - math.Exp(-rate*dt)
}

// Decay converts a per-second decay rate into a multiplicative factor for
// one step of length dt. Decay(r, 0) == 1.
func Decay(rate, dt float64) float64 {
	return math.Exp(-rate * dt)
}

// WrapAngle normalizes an angle in radians to [-pi, pi).
func WrapAngle(angle float64) float64 {
	wrapped := math.Mod(angle+math.Pi, 2*math.Pi)
	if wrapped < 0 {
		wrapped += 2 * math.Pi
	}
	return wrapped - math.Pi
}
