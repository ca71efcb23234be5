// Package invalid tracks the screen region that must be repainted on the
// next frame. Damage notifications accumulate into a single bounding
// rectangle which is clipped to the visible viewport and handed to the
// paint step, which consumes and resets it.
package invalid

import (
	"errors"
	"fmt"
	"math"
)

// ErrOffsetOverflow indicates a rectangle offset whose coordinate
// arithmetic would overflow.
var ErrOffsetOverflow = errors.New("rectangle offset overflows")

// Rect is a cell-coordinate rectangle. Left and Top are inclusive, Right
// and Bottom exclusive, so width is Right-Left and an empty rectangle has
// Right <= Left or Bottom <= Top.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// NewRect creates a rectangle, swapping inverted bounds.
func NewRect(left, top, right, bottom int) Rect {
	if right < left {
		left, right = right, left
	}
	if bottom < top {
		top, bottom = bottom, top
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// FromCell creates a rectangle covering the single cell at (x, y).
func FromCell(x, y int) Rect {
	return Rect{Left: x, Top: y, Right: x + 1, Bottom: y + 1}
}

// FromSize creates an origin-anchored rectangle of the given dimensions.
func FromSize(width, height int) Rect {
	return Rect{Right: width, Bottom: height}
}

// IsEmpty returns true if the rectangle covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Width returns the number of columns covered.
func (r Rect) Width() int {
	if r.Right <= r.Left {
		return 0
	}
	return r.Right - r.Left
}

// Height returns the number of rows covered.
func (r Rect) Height() int {
	if r.Bottom <= r.Top {
		return 0
	}
	return r.Bottom - r.Top
}

// Contains returns true if the cell at (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Union returns the smallest rectangle covering both operands. An empty
// operand contributes nothing.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rect{
		Left:   minInt(r.Left, other.Left),
		Top:    minInt(r.Top, other.Top),
		Right:  maxInt(r.Right, other.Right),
		Bottom: maxInt(r.Bottom, other.Bottom),
	}
}

// Intersect returns the overlap of the two rectangles, or an empty
// rectangle if they are disjoint.
func (r Rect) Intersect(other Rect) Rect {
	result := Rect{
		Left:   maxInt(r.Left, other.Left),
		Top:    maxInt(r.Top, other.Top),
		Right:  minInt(r.Right, other.Right),
		Bottom: minInt(r.Bottom, other.Bottom),
	}
	if result.IsEmpty() {
		return Rect{}
	}
	return result
}

// Offset returns the rectangle slid by (dx, dy). Coordinate overflow is
// detected before any bound is moved.
func (r Rect) Offset(dx, dy int) (Rect, error) {
	if addOverflows(r.Left, dx) || addOverflows(r.Right, dx) ||
		addOverflows(r.Top, dy) || addOverflows(r.Bottom, dy) {
		return Rect{}, fmt.Errorf("offset by (%d,%d): %w", dx, dy, ErrOffsetOverflow)
	}
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}, nil
}

// ToOrigin returns the rectangle translated so its top-left corner sits at
// the origin.
func (r Rect) ToOrigin() Rect {
	return Rect{Right: r.Width(), Bottom: r.Height()}
}

// Equals returns true if the rectangles have identical bounds.
func (r Rect) Equals(other Rect) bool {
	return r == other
}

// String returns a compact representation for logs and test failures.
func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d)x[%d,%d)", r.Left, r.Right, r.Top, r.Bottom)
}

// addOverflows reports whether a+b wraps.
func addOverflows(a, b int) bool {
	if b > 0 {
		return a > math.MaxInt-b
	}
	return a < math.MinInt-b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
