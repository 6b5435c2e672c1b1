package physics

// Rect is an axis-aligned box in simulation pixels, Y grows downward
type Rect struct {
	X, Y, W, H float64
}

// Right returns the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// MidY returns the vertical center
func (r Rect) MidY() float64 { return r.Y + r.H/2 }

// CenterX returns the horizontal center
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// Overlaps reports strict AABB intersection; touching edges do not overlap
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// ClearedFrom reports whether r's bottom is above o's vertical midpoint,
// the test that turns an overlap into a jump-over rather than a hit
func (r Rect) ClearedFrom(o Rect) bool {
	return r.Bottom() < o.MidY()
}

// InDirectionalRange reports whether x lies strictly between origin and
// origin + dir*reach. dir is +1 or -1; zero never matches
func InDirectionalRange(origin, x, dir, reach float64) bool {
	switch {
	case dir > 0:
		return x > origin && x < origin+reach
	case dir < 0:
		return x < origin && x > origin-reach
	default:
		return false
	}
}
