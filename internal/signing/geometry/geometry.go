// Package geometry holds the pure coordinate math shared by the placement
// engine and the flattening pipeline. Pixel space uses a top-left origin,
// like every rendering surface; the output document format uses a
// bottom-left origin, hence the Y flip at burn-in time. Percent space keeps
// field positions invariant under zoom and across rendering clients.
package geometry

// Point is a position in pixel space.
type Point struct {
	X float64
	Y float64
}

// Size is the pixel dimensions of a rendering surface or page.
type Size struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned rectangle in pixel space, top-left origin.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// PercentRect is a rectangle expressed as percentages (0-100) of a surface.
type PercentRect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// BoundingBox returns the normalized rectangle spanned by two points, so the
// result always has non-negative width and height regardless of drag
// direction.
func BoundingBox(a, b Point) Rect {
	return Rect{
		X:      min(a.X, b.X),
		Y:      min(a.Y, b.Y),
		Width:  abs(b.X - a.X),
		Height: abs(b.Y - a.Y),
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
