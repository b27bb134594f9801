package ring

import (
	"math"

	"github.com/rileyhilliard/orbit/internal/canvas"
)

// OriginAngle is where the fill arc starts: the top of the ring.
const OriginAngle = -90.0

// Clamp limits v to [0, 1]. NaN becomes 0.
func Clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SweepAngle returns the fill arc's sweep in degrees for a progress value.
func SweepAngle(progress float64) float64 {
	return Clamp(progress) * 360
}

// Geometry is the circle a ring draws on.
type Geometry struct {
	Center canvas.Point
	Radius float64
}

// Layout fits a ring into bounds. The radius is inset by half the stroke
// width so the stroke stays inside the region; it never goes negative.
func Layout(bounds canvas.Rect, strokeWidth float64) Geometry {
	radius := math.Min(bounds.W/2, bounds.H/2) - strokeWidth/2
	if radius < 0 {
		radius = 0
	}
	return Geometry{
		Center: bounds.Center(),
		Radius: radius,
	}
}
