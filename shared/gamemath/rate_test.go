package gamemath

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min, max float64
		expected float64
	}{
		{name: "Below", value: -2, min: 0, max: 1, expected: 0},
		{name: "Above", value: 5, min: 0, max: 1, expected: 1},
		{name: "Inside", value: 0.25, min: 0, max: 1, expected: 0.25},
		{name: "At min", value: 0, min: 0, max: 1, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.value, tt.min, tt.max); got != tt.expected {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestMoveToward(t *testing.T) {
	tests := []struct {
		name          string
		value, target float64
		maxDelta      float64
		expected      float64
	}{
		{name: "Step up", value: 0, target: 10, maxDelta: 1, expected: 1},
		{name: "Step down", value: 10, target: 0, maxDelta: 3, expected: 7},
		{name: "Reaches target", value: 9.5, target: 10, maxDelta: 1, expected: 10},
		{name: "Already there", value: 10, target: 10, maxDelta: 1, expected: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoveToward(tt.value, tt.target, tt.maxDelta); !almostEqual(got, tt.expected) {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestDampFactor_FrameRateIndependent(t *testing.T) {
	// Two half-steps must blend the same as one full step.
	const rate = 3.0
	full := DampFactor(rate, 1.0/30)
	half := DampFactor(rate, 1.0/60)

	start, target := 10.0, 0.0
	oneStep := Lerp(start, target, full)
	twoSteps := Lerp(Lerp(start, target, half), target, half)

	if math.Abs(oneStep-twoSteps) > 1e-9 {
		t.Errorf("Expected identical blend, got %f vs %f", oneStep, twoSteps)
	}
}

func TestDampFactor_Bounds(t *testing.T) {
	if got := DampFactor(5, 0); got != 0 {
		t.Errorf("Expected 0 at dt=0, got %f", got)
	}
	if got := DampFactor(5, 1000); got >= 1.0 || got < 0.999 {
		t.Errorf("Expected factor approaching 1, got %f", got)
	}
	if DampFactor(5, 0.01) >= DampFactor(5, 0.02) {
		t.Error("Expected factor to grow with dt")
	}
}

func TestDecay_Identity(t *testing.T) {
	if got := Decay(13.4, 0); got != 1 {
		t.Errorf("Expected no decay at dt=0, got %f", got)
	}
	if got := Decay(0, 5); got != 1 {
		t.Errorf("Expected no decay at rate=0, got %f", got)
	}
	if got := Decay(13.4, 1.0/60); got <= 0 || got >= 1 {
		t.Errorf("Expected factor in (0,1), got %f", got)
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		name     string
		angle    float64
		expected float64
	}{
		{name: "Zero", angle: 0, expected: 0},
		{name: "Pi wraps negative", angle: math.Pi, expected: -math.Pi},
		{name: "Over pi", angle: 3 * math.Pi / 2, expected: -math.Pi / 2},
		{name: "Full turn", angle: 2 * math.Pi, expected: 0},
		{name: "Negative", angle: -3 * math.Pi, expected: -math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapAngle(tt.angle); !almostEqual(got, tt.expected) {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}
