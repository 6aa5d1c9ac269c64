package world

import "math"

// Vector2 is a position or velocity in pixel space
type Vector2 struct {
	X float64
	Y float64
}

// Vec returns a Vector2 with the given components
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v
func (v Vector2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between v and o
func (v Vector2) Dist(o Vector2) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// Angle returns the heading of v in radians
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// FromAngle returns a vector of the given length pointing along angle (radians)
func FromAngle(angle, length float64) Vector2 {
	return Vector2{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// Clamp returns v constrained to the rectangle [minX,maxX]×[minY,maxY]
func (v Vector2) Clamp(minX, minY, maxX, maxY float64) Vector2 {
	return Vector2{
		X: math.Max(minX, math.Min(maxX, v.X)),
		Y: math.Max(minY, math.Min(maxY, v.Y)),
	}
}
