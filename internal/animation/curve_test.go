package animation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/overpane/internal/animation"
)

func TestCubicBezier_Endpoints(t *testing.T) {
	curves := map[string]animation.CubicBezier{
		"fling": animation.FlingCurve,
		"tap":   animation.TapCurve,
	}

	for name, c := range curves {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 0.0, c.Ease(0))
			assert.Equal(t, 1.0, c.Ease(1))
			assert.Equal(t, 0.0, c.Ease(-0.5))
			assert.Equal(t, 1.0, c.Ease(1.5))
		})
	}
}

func TestCubicBezier_ControlPoints(t *testing.T) {
	x1, y1, x2, y2 := animation.FlingCurve.ControlPoints()
	assert.Equal(t, []float64{0, 0, 0.2, 1}, []float64{x1, y1, x2, y2})

	x1, y1, x2, y2 = animation.TapCurve.ControlPoints()
	assert.Equal(t, []float64{0.4, 0, 0.2, 1}, []float64{x1, y1, x2, y2})
}

func TestCubicBezier_Monotonic(t *testing.T) {
	for _, c := range []animation.CubicBezier{animation.FlingCurve, animation.TapCurve} {
		prev := 0.0
		for i := 1; i <= 100; i++ {
			v := c.Ease(float64(i) / 100)
			assert.GreaterOrEqual(t, v, prev-1e-9)
			prev = v
		}
	}
}

func TestCubicBezier_Profiles(t *testing.T) {
	// Fling moves fast from the start, tap holds before accelerating.
	assert.Greater(t, animation.FlingCurve.Ease(0.1), animation.TapCurve.Ease(0.1))
	assert.Greater(t, animation.FlingCurve.Ease(0.1), 0.1)
	assert.Less(t, animation.TapCurve.Ease(0.05), 0.05)
}

func TestCubicBezier_MatchesCSSEaseOut(t *testing.T) {
	// cubic-bezier(0,0,0.58,1) at x=0.5 is about 0.6847 per the CSS reference solver.
	c := animation.NewCubicBezier(0, 0, 0.58, 1)
	assert.InDelta(t, 0.6847, c.Ease(0.5), 1e-3)
}

func TestCubicBezier_LinearControlPoints(t *testing.T) {
	c := animation.NewCubicBezier(0.25, 0.25, 0.75, 0.75)
	for _, x := range []float64{0.1, 0.33, 0.5, 0.9} {
		assert.InDelta(t, x, c.Ease(x), 1e-6)
	}
}

func TestLinear(t *testing.T) {
	assert.Equal(t, 0.25, animation.Linear.Ease(0.25))
	assert.Equal(t, 1.0, animation.Linear.Ease(2))
}
