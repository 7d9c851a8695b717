package frame

import (
	"fmt"
)

// Plane is a single channel of a frame as the capture hardware laid it out.
// PixelStride is the byte distance between two samples of a row, RowStride
// the byte distance between the starts of two rows.
type Plane struct {
	Data        []byte
	PixelStride int
	RowStride   int
}

// IsCompact reports whether the plane stores cols samples per row with
// neither gaps between samples nor padding after a row.
func (p Plane) IsCompact(cols int) bool {
	return p.PixelStride == 1 && p.RowStride == cols
}

func (p Plane) String() string {
	return fmt.Sprintf("{len=%d pixelStride=%d rowStride=%d}", len(p.Data), p.PixelStride, p.RowStride)
}

// Frame is a YUV 4:2:0 frame made of a luma plane and two chroma planes
// subsampled on a 2x2 grid.
type Frame struct {
	Width  int
	Height int
	Y      Plane
	U      Plane
	V      Plane

	releaser *Releaser
}

// Option configures a Frame built by New or Decode.
type Option func(*Frame)

// WithRelease makes the frame own a capture resource which is released by
// calling fn the first time the frame is closed.
func WithRelease(fn func()) Option {
	return func(f *Frame) {
		f.releaser = NewReleaser(fn)
	}
}

// WithReleaser hands an existing ownership token to the frame.
func WithReleaser(r *Releaser) Option {
	return func(f *Frame) {
		f.releaser = r
	}
}

// New builds a frame from its planes. Width and height must be positive and
// even, and every plane's strides must leave room for its samples.
func New(width, height int, y, u, v Plane, opts ...Option) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	if width%2 != 0 || height%2 != 0 {
		return nil, fmt.Errorf("frame size %dx%d is not aligned to the 4:2:0 grid", width, height)
	}

	if err := checkStrides("y", y, width); err != nil {
		return nil, err
	}
	if err := checkStrides("u", u, width/2); err != nil {
		return nil, err
	}
	if err := checkStrides("v", v, width/2); err != nil {
		return nil, err
	}

	f := &Frame{
		Width:  width,
		Height: height,
		Y:      y,
		U:      u,
		V:      v,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

func checkStrides(name string, p Plane, cols int) error {
	if p.PixelStride < 1 {
		return fmt.Errorf("%s plane: pixel stride (%d) must be positive", name, p.PixelStride)
	}
	if p.RowStride < (cols-1)*p.PixelStride+1 {
		return fmt.Errorf("%s plane: row stride (%d) too small for %d samples with pixel stride %d",
			name, p.RowStride, cols, p.PixelStride)
	}
	return nil
}

// ChromaWidth is the number of chroma samples per row.
func (f *Frame) ChromaWidth() int {
	return f.Width / 2
}

// ChromaHeight is the number of chroma rows.
func (f *Frame) ChromaHeight() int {
	return f.Height / 2
}

// WithChroma returns a shallow copy of f whose chroma planes are replaced by
// u and v. The copy shares the luma plane and the ownership token of f.
func (f *Frame) WithChroma(u, v Plane) *Frame {
	clone := *f
	clone.U = u
	clone.V = v
	return &clone
}

// Releaser returns the ownership token of the frame, nil if the frame
// doesn't own a resource.
func (f *Frame) Releaser() *Releaser {
	return f.releaser
}

// Close releases the owned capture resource. Views into the frame's buffers
// must not be used afterwards. Closing twice is a no-op.
func (f *Frame) Close() error {
	if f == nil {
		return nil
	}
	f.releaser.Release()
	return nil
}

func (f *Frame) String() string {
	return fmt.Sprintf("%dx%d y=%v u=%v v=%v", f.Width, f.Height, f.Y, f.U, f.V)
}
