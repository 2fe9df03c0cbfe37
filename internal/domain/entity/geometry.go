package entity

import "fmt"

// Bounds is a rectangle in window content coordinates.
type Bounds struct {
	X, Y          int
	Width, Height int
}

// IsEmpty reports whether the rectangle has no area.
func (b Bounds) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// ContentBounds returns the bounds a surface takes when it fills a content
// area of the given size.
func ContentBounds(width, height int) Bounds {
	return Bounds{X: 0, Y: 0, Width: width, Height: height}
}

func (b Bounds) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", b.Width, b.Height, b.X, b.Y)
}
