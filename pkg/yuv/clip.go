package yuv

import (
	"fmt"
	"image"
)

// Clip is a rectangle in pixel coordinates. Left and Top are inclusive,
// Right and Bottom exclusive.
type Clip struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// NewClip validates and returns a clip rectangle.
func NewClip(left, top, right, bottom int) (Clip, error) {
	c := Clip{Left: left, Top: top, Right: right, Bottom: bottom}
	if err := c.Validate(); err != nil {
		return Clip{}, err
	}
	return c, nil
}

// ClipFromRectangle converts r into a validated Clip.
func ClipFromRectangle(r image.Rectangle) (Clip, error) {
	return NewClip(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

// Validate returns a *ValidationError if c has no area or a negative edge.
func (c Clip) Validate() error {
	switch {
	case c.Left < 0 || c.Top < 0 || c.Right < 0 || c.Bottom < 0:
		return &ValidationError{Clip: c, Reason: "negative coordinate"}
	case c.Left >= c.Right:
		return &ValidationError{Clip: c, Reason: "left must be less than right"}
	case c.Top >= c.Bottom:
		return &ValidationError{Clip: c, Reason: "top must be less than bottom"}
	}
	return nil
}

func (c Clip) Width() int {
	return c.Right - c.Left
}

func (c Clip) Height() int {
	return c.Bottom - c.Top
}

// Scale multiplies every edge by k.
func (c Clip) Scale(k int) (Clip, error) {
	return NewClip(c.Left*k, c.Top*k, c.Right*k, c.Bottom*k)
}

// Unscale divides every edge by k. Projecting a grid-aligned luma clip
// with k=2 yields the matching chroma clip of a planar 4:2:0 image.
func (c Clip) Unscale(k int) (Clip, error) {
	if k <= 0 {
		return Clip{}, &ValidationError{Clip: c, Reason: fmt.Sprintf("invalid divisor %d", k)}
	}
	return NewClip(c.Left/k, c.Top/k, c.Right/k, c.Bottom/k)
}

// UnscaleRows divides only the vertical edges by k. Semi-planar chroma keeps
// the luma row width, so only rows are halved.
func (c Clip) UnscaleRows(k int) (Clip, error) {
	if k <= 0 {
		return Clip{}, &ValidationError{Clip: c, Reason: fmt.Sprintf("invalid divisor %d", k)}
	}
	return NewClip(c.Left, c.Top/k, c.Right, c.Bottom/k)
}

// AdjustToGrid grows c so that every edge lies on the 2x2 chroma grid: odd
// left and top move down by one, odd right and bottom move up by one.
func (c Clip) AdjustToGrid() Clip {
	return Clip{
		Left:   c.Left &^ 1,
		Top:    c.Top &^ 1,
		Right:  c.Right + c.Right&1,
		Bottom: c.Bottom + c.Bottom&1,
	}
}

// InGrid reports whether all edges are even.
func (c Clip) InGrid() bool {
	return (c.Left|c.Top|c.Right|c.Bottom)&1 == 0
}

// Within returns an *OutOfBoundsError if c doesn't fit in a width x height
// image.
func (c Clip) Within(width, height int) error {
	if c.Right > width || c.Bottom > height {
		return &OutOfBoundsError{Clip: c, Width: width, Height: height}
	}
	return nil
}

// Rectangle returns c as an image.Rectangle.
func (c Clip) Rectangle() image.Rectangle {
	return image.Rect(c.Left, c.Top, c.Right, c.Bottom)
}

func (c Clip) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", c.Left, c.Top, c.Right, c.Bottom)
}
