package greeter

// Point is a position in display coordinates.
type Point struct {
	X, Y int
}

// Size is a width and height in pixels.
type Size struct {
	Width, Height int
}

// Rect is a rectangle in display coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// CenterIn returns the position that centers a window of size s in area.
// Halves are truncated to whole pixels.
func CenterIn(area Rect, s Size) Point {
	return Point{
		X: area.X + area.Width/2 - s.Width/2,
		Y: area.Y + area.Height/2 - s.Height/2,
	}
}
