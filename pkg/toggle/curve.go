// ABOUTME: Easing curves mapping linear time to eased progress, both ends pinned at 0 and 1
// ABOUTME: Named lookup for config files; SpringCurve samples a critically damped harmonica spring

package toggle

import (
	"fmt"
	"math"
	"sort"

	"github.com/charmbracelet/harmonica"
)

// Curve maps linear progress t ∈ [0,1] to eased progress. Curves must be
// monotonic with Curve(0) == 0 and Curve(1) == 1.
type Curve func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// EaseIn accelerates from zero.
func EaseIn(t float64) float64 { return t * t }

// EaseOut decelerates to zero.
func EaseOut(t float64) float64 { return t * (2 - t) }

// EaseInOut accelerates until halfway, then decelerates.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// EaseInCubic is t³.
func EaseInCubic(t float64) float64 { return t * t * t }

// EaseOutCubic is 1 - (1-t)³.
func EaseOutCubic(t float64) float64 { return 1 - math.Pow(1-t, 3) }

// EaseInOutCubic is the symmetric cubic ease.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutExpo starts fast and settles slowly. Pinned to 1 at t=1.
func EaseOutExpo(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// Smoothstep is the Hermite curve 3t² - 2t³.
func Smoothstep(t float64) float64 { return t * t * (3 - 2*t) }

const springSamples = 120

// SpringCurve returns a curve following a critically damped spring released
// from 0 toward 1. The spring is sampled once and normalised so the curve
// ends exactly at 1; values between samples are interpolated linearly.
func SpringCurve(angularFrequency float64) Curve {
	if angularFrequency <= 0 {
		angularFrequency = 6
	}
	s := harmonica.NewSpring(harmonica.FPS(springSamples), angularFrequency, 1.0)
	samples := make([]float64, springSamples+1)
	pos, vel := 0.0, 0.0
	for i := 1; i <= springSamples; i++ {
		pos, vel = s.Update(pos, vel, 1.0)
		// Critical damping never overshoots; guard float noise anyway.
		samples[i] = math.Max(samples[i-1], math.Min(pos, 1))
	}
	end := samples[springSamples]
	if end <= 0 {
		return Linear
	}
	for i := range samples {
		samples[i] /= end
	}
	samples[springSamples] = 1

	return func(t float64) float64 {
		t = clamp01(t)
		x := t * springSamples
		i := int(x)
		if i >= springSamples {
			return 1
		}
		frac := x - float64(i)
		return samples[i] + (samples[i+1]-samples[i])*frac
	}
}

var namedCurves = map[string]Curve{
	"linear":            Linear,
	"ease-in":           EaseIn,
	"ease-out":          EaseOut,
	"ease-in-out":       EaseInOut,
	"ease-in-cubic":     EaseInCubic,
	"ease-out-cubic":    EaseOutCubic,
	"ease-in-out-cubic": EaseInOutCubic,
	"ease-out-expo":     EaseOutExpo,
	"smoothstep":        Smoothstep,
	"spring":            SpringCurve(0),
}

// CurveByName looks up a named curve. The empty name is Linear.
func CurveByName(name string) (Curve, error) {
	if name == "" {
		return Linear, nil
	}
	c, ok := namedCurves[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
	return c, nil
}

// CurveNames returns the registered curve names in sorted order.
func CurveNames() []string {
	names := make([]string, 0, len(namedCurves))
	for name := range namedCurves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	case math.IsNaN(v):
		return 0
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
