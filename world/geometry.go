package world

// Rectangle is half-open: it contains the pixels with Min.X <= x < Max.X and
// Min.Y <= y < Max.Y. Two rectangles that only share an edge do not intersect,
// which is what lets an entity stand flush against a wall.
type Rectangle struct {
	Min Pt
	Max Pt
}

func NewRectangle(x1, y1, x2, y2 int64) Rectangle {
	return Rectangle{Pt{min(x1, x2), min(y1, y2)}, Pt{max(x1, x2), max(y1, y2)}}
}

// RectAt returns the rectangle whose top-left corner is pos.
func RectAt(pos Pt, size Pt) Rectangle {
	return Rectangle{pos, pos.Plus(size)}
}

func Abs(x int64) int64 {
	if x < 0 {
		return -x
	} else {
		return x
	}
}

func Sign(x int64) int64 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// FloorDiv divides and rounds towards negative infinity. Pixel coordinates can
// be negative (a glitch can throw the player outside the grid) and plain
// integer division would map pixel -5 to cell 0 instead of cell -1.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func (r Rectangle) Width() int64 {
	return r.Max.X - r.Min.X
}

func (r Rectangle) Height() int64 {
	return r.Max.Y - r.Min.Y
}

func (r Rectangle) Size() Pt {
	return Pt{r.Width(), r.Height()}
}

func (r Rectangle) Center() Pt {
	return Pt{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

func (r Rectangle) Translate(d Pt) Rectangle {
	return Rectangle{r.Min.Plus(d), r.Max.Plus(d)}
}

func (r Rectangle) MoveTo(pos Pt) Rectangle {
	return RectAt(pos, r.Size())
}

// Intersects checks if r and other share at least one pixel. An empty
// rectangle has no pixels so it intersects nothing.
func (r Rectangle) Intersects(other Rectangle) bool {
	if r.Width() <= 0 || r.Height() <= 0 ||
		other.Width() <= 0 || other.Height() <= 0 {
		return false
	}
	return r.Min.X < other.Max.X && r.Max.X > other.Min.X &&
		r.Min.Y < other.Max.Y && r.Max.Y > other.Min.Y
}

// ContainsRect checks if other lies completely inside r.
func (r Rectangle) ContainsRect(other Rectangle) bool {
	return other.Min.X >= r.Min.X && other.Max.X <= r.Max.X &&
		other.Min.Y >= r.Min.Y && other.Max.Y <= r.Max.Y
}

// Corners returns the four pixels at the corners of r. Max is exclusive so the
// right and bottom corners are one pixel inside of it.
func (r Rectangle) Corners() [4]Pt {
	return [4]Pt{
		{r.Min.X, r.Min.Y},
		{r.Max.X - 1, r.Min.Y},
		{r.Min.X, r.Max.Y - 1},
		{r.Max.X - 1, r.Max.Y - 1},
	}
}

// RectIntersectsRects is a utility function that checks if a rectangle
// intersects any of a list of rectangles.
func RectIntersectsRects(r Rectangle, rects []Rectangle) bool {
	for _, r2 := range rects {
		if r.Intersects(r2) {
			return true
		}
	}
	return false
}
