package canvas

import (
	"math"

	"github.com/rileyhilliard/orbit/internal/paint"
)

// Angles are in degrees. 0 points right and angles grow clockwise, because
// the y axis grows downward on every surface in this package.

// Point is a position in surface units (braille dots for Canvas).
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned region in surface units.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// LineCap is the shape drawn at the open ends of a stroked arc.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
)

// Arc is a stroke along a circle, starting at Start and sweeping clockwise.
type Arc struct {
	Center Point
	Radius float64
	Start  float64
	Sweep  float64
	Width  float64
	Color  paint.Color
	Cap    LineCap
}

// End returns the angle the arc stops at.
func (a Arc) End() float64 {
	return a.Start + a.Sweep
}

// Full reports whether the arc closes on itself.
func (a Arc) Full() bool {
	return a.Sweep >= 360
}

// PointAt returns the point on the arc's centerline at the given angle.
func (a Arc) PointAt(deg float64) Point {
	rad := deg * math.Pi / 180
	return Point{
		X: a.Center.X + a.Radius*math.Cos(rad),
		Y: a.Center.Y + a.Radius*math.Sin(rad),
	}
}

// Covers reports whether p lies inside the stroked arc, caps included.
func (a Arc) Covers(p Point) bool {
	if a.Sweep <= 0 || a.Width <= 0 {
		return false
	}
	half := a.Width / 2

	dist := distance(a.Center, p)
	if math.Abs(dist-a.Radius) <= half && a.withinSweep(AngleOf(a.Center, p)) {
		return true
	}

	if a.Cap == CapRound && !a.Full() {
		if distance(a.PointAt(a.Start), p) <= half || distance(a.PointAt(a.End()), p) <= half {
			return true
		}
	}
	return false
}

func (a Arc) withinSweep(deg float64) bool {
	if a.Full() {
		return true
	}
	return NormalizeAngle(deg-a.Start) <= a.Sweep
}

// AngleOf returns the angle of p as seen from center.
func AngleOf(center, p Point) float64 {
	return math.Atan2(p.Y-center.Y, p.X-center.X) * 180 / math.Pi
}

// NormalizeAngle maps deg into [0, 360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
