package common

// Rect is an axis-aligned box in screen pixels, anchored at its top-left corner.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// RectFromCenter builds a Rect of the given size centred on (cx, cy).
func RectFromCenter(cx, cy, w, h float32) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}

func (r Rect) Left() float32 { return r.X }
func (r Rect) Right() float32 { return r.X + r.Width }
func (r Rect) Top() float32 { return r.Y }
func (r Rect) Bottom() float32 { return r.Y + r.Height }

// Intersects reports whether r and other overlap. Rects that only share an
// edge do not intersect.
func (r *Rect) Intersects(other *Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// OverlapsX reports whether the horizontal extents of r and other overlap.
func (r *Rect) OverlapsX(other *Rect) bool {
	return r.X < other.X+other.Width && r.X+r.Width > other.X
}
