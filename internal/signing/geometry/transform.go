package geometry

// PixelsToPercent converts a pixel rectangle into percentages of the given
// surface, each axis independently. Surface dimensions must be positive.
func PixelsToPercent(surface Size, r Rect) PercentRect {
	return PercentRect{
		X:      r.X / surface.Width * 100,
		Y:      r.Y / surface.Height * 100,
		Width:  r.Width / surface.Width * 100,
		Height: r.Height / surface.Height * 100,
	}
}

// PercentToPixels is the inverse of PixelsToPercent. For any positive surface
// the round trip is the identity within floating point tolerance.
func PercentToPixels(surface Size, r PercentRect) Rect {
	return Rect{
		X:      r.X * surface.Width / 100,
		Y:      r.Y * surface.Height / 100,
		Width:  r.Width * surface.Width / 100,
		Height: r.Height * surface.Height / 100,
	}
}

// FlipYForBurnIn translates a top-left-origin Y coordinate into the
// bottom-left-origin coordinate system of the output document. Applying it
// twice with the same page and element height returns the original value.
func FlipYForBurnIn(pageHeight, topY, elementHeight float64) float64 {
	return pageHeight - topY - elementHeight
}

// Scale grows or shrinks a rectangle around its top-left corner. The corner
// stays the geometric anchor so percentage-based left/top positioning is
// preserved when a zoom factor is applied.
func Scale(r Rect, factor float64) Rect {
	return Rect{
		X:      r.X * factor,
		Y:      r.Y * factor,
		Width:  r.Width * factor,
		Height: r.Height * factor,
	}
}

// ClampToSurface translates the rectangle so it lies fully inside the
// surface. The rectangle is moved, never shrunk; a rectangle larger than the
// surface ends up anchored at the origin.
func ClampToSurface(r Rect, surface Size) Rect {
	if r.X < 0 {
		r.X = 0
	}
	if r.Y < 0 {
		r.Y = 0
	}
	if r.X+r.Width > surface.Width {
		r.X = max(surface.Width-r.Width, 0)
	}
	if r.Y+r.Height > surface.Height {
		r.Y = max(surface.Height-r.Height, 0)
	}
	return r
}

// ClampPercent translates a percent rectangle so that x+width <= 100 and
// y+height <= 100, keeping the field fully inside page bounds.
func ClampPercent(r PercentRect) PercentRect {
	if r.X < 0 {
		r.X = 0
	}
	if r.Y < 0 {
		r.Y = 0
	}
	if r.X+r.Width > 100 {
		r.X = max(100-r.Width, 0)
	}
	if r.Y+r.Height > 100 {
		r.Y = max(100-r.Height, 0)
	}
	return r
}
