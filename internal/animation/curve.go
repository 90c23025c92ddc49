// Package animation drives a single scalar over time along an easing curve.
// Frames are delivered by a FrameSource, so the same driver runs on a GTK
// frame clock, a terminal tick loop, or a manual clock in tests.
package animation

import "math"

// Curve maps linear progress in [0, 1] to eased progress.
type Curve interface {
	Ease(progress float64) float64
}

const (
	newtonIterations = 8
	newtonEpsilon    = 1e-7
	bisectIterations = 40
)

// CubicBezier is a unit cubic Bézier easing from (0,0) to (1,1) with two
// control points, the same model CSS cubic-bezier() uses.
type CubicBezier struct {
	x1, y1, x2, y2 float64

	// polynomial coefficients
	ax, bx, cx float64
	ay, by, cy float64
}

// NewCubicBezier builds a curve with control points (x1,y1) and (x2,y2).
// x1 and x2 are clamped to [0, 1] so the curve stays a function of time.
func NewCubicBezier(x1, y1, x2, y2 float64) CubicBezier {
	x1 = clampUnit(x1)
	x2 = clampUnit(x2)

	c := CubicBezier{x1: x1, y1: y1, x2: x2, y2: y2}
	c.cx = 3 * x1
	c.bx = 3*(x2-x1) - c.cx
	c.ax = 1 - c.cx - c.bx
	c.cy = 3 * y1
	c.by = 3*(y2-y1) - c.cy
	c.ay = 1 - c.cy - c.by
	return c
}

// Fling and tap profiles used to settle the center pane.
var (
	// FlingCurve starts fast and finishes slowly, carrying released momentum.
	FlingCurve = NewCubicBezier(0.0, 0.0, 0.2, 1.0)
	// TapCurve holds briefly before accelerating.
	TapCurve = NewCubicBezier(0.4, 0.0, 0.2, 1.0)
	// Linear is the identity curve.
	Linear Curve = linear{}
)

// ControlPoints returns the two control points of the curve.
func (c CubicBezier) ControlPoints() (x1, y1, x2, y2 float64) {
	return c.x1, c.y1, c.x2, c.y2
}

// Ease returns the curve's y value at the given x (progress).
func (c CubicBezier) Ease(progress float64) float64 {
	if progress <= 0 {
		return 0
	}
	if progress >= 1 {
		return 1
	}
	return c.sampleY(c.solveT(progress))
}

func (c CubicBezier) sampleX(t float64) float64 {
	return ((c.ax*t+c.bx)*t + c.cx) * t
}

func (c CubicBezier) sampleY(t float64) float64 {
	return ((c.ay*t+c.by)*t + c.cy) * t
}

func (c CubicBezier) sampleDerivativeX(t float64) float64 {
	return (3*c.ax*t+2*c.bx)*t + c.cx
}

// solveT finds t such that x(t) == x. Newton-Raphson converges quickly where
// the slope is usable; bisection covers flat regions such as the start of
// FlingCurve where dx/dt is zero.
func (c CubicBezier) solveT(x float64) float64 {
	t := x
	for range newtonIterations {
		err := c.sampleX(t) - x
		if math.Abs(err) < newtonEpsilon {
			return t
		}
		d := c.sampleDerivativeX(t)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= err / d
		if t < 0 || t > 1 {
			break
		}
	}

	lo, hi := 0.0, 1.0
	t = x
	for range bisectIterations {
		v := c.sampleX(t)
		if math.Abs(v-x) < newtonEpsilon {
			return t
		}
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}

type linear struct{}

func (linear) Ease(progress float64) float64 { return clampUnit(progress) }

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
