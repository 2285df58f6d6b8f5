package reveal

// Rect is an axis-aligned rectangle in CSS pixels, as reported by
// getBoundingClientRect in the browser.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Area returns width times height, or zero for degenerate rectangles.
func (r Rect) Area() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// Intersect returns the overlap of r and other. The result has zero width
// or height when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := max(r.X, other.X)
	top := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	if right < left {
		right = left
	}
	if bottom < top {
		bottom = top
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Contains reports whether the point lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Root returns the viewport shrunk (or grown) by the bottom root margin.
func (o Options) Root(viewport Rect) Rect {
	root := viewport
	root.Height += o.RootMarginBottom
	if root.Height < 0 {
		root.Height = 0
	}
	return root
}

// Ratio returns the fraction of el that lies inside the margin-adjusted
// viewport.
func (o Options) Ratio(el, viewport Rect) float64 {
	root := o.Root(viewport)
	area := el.Area()
	if area == 0 {
		if root.Contains(el.X, el.Y) {
			return 1
		}
		return 0
	}
	return el.Intersect(root).Area() / area
}

// Intersecting reports whether el counts as visible: at least Threshold of
// its area inside the margin-adjusted viewport.
func (o Options) Intersecting(el, viewport Rect) bool {
	ratio := o.Ratio(el, viewport)
	return ratio > 0 && ratio >= o.Threshold
}
