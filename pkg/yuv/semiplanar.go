package yuv

import (
	"github.com/pion/yuvclip/pkg/frame"
)

// SemiPlanar is a frame whose chroma samples are interleaved in one region
// following the luma plane:
//
//	y y y y y y
//	y y y y y y
//	y y y y y y
//	y y y y y y
//	u v u v u v
//	u v u v u v
//
// Capture hardware reporting a pixel stride of 2 on both chroma planes
// exposes the same interleaved region through U and V, so the U region
// alone carries every chroma sample. The V plane is never read.
//
// See https://www.fourcc.org/pixel-format/yuv-nv12/
type SemiPlanar struct {
	f  *frame.Frame
	y  []byte
	uv []byte
}

// NewSemiPlanar wraps a semi-planar frame. Use Detect for frames in other
// layouts.
func NewSemiPlanar(f *frame.Frame) (*SemiPlanar, error) {
	if !isSemiPlanar(f) {
		return nil, newUnsupportedFormatError(f)
	}
	return newSemiPlanar(f)
}

func newSemiPlanar(f *frame.Frame) (*SemiPlanar, error) {
	y, err := checkLength("y plane", f.Y.Data, f.Width*f.Height)
	if err != nil {
		return nil, err
	}
	uv, err := checkLength("uv plane", f.U.Data, f.Width*f.ChromaHeight())
	if err != nil {
		return nil, err
	}

	return &SemiPlanar{f: f, y: y, uv: uv}, nil
}

func (s *SemiPlanar) Width() int {
	return s.f.Width
}

func (s *SemiPlanar) Height() int {
	return s.f.Height
}

func (s *SemiPlanar) Format() frame.Format {
	return frame.FormatSemiPlanar420
}

func (s *SemiPlanar) Frame() *frame.Frame {
	return s.f
}

// Clip extracts c, grown to the chroma grid, into new compact planes. The
// interleaved chroma rows keep the luma column range; only rows are halved.
// The clipped image has an empty V plane.
func (s *SemiPlanar) Clip(c Clip) (Image, error) {
	if err := validateClip(c, s.f.Width, s.f.Height); err != nil {
		return nil, err
	}

	yClip := c.AdjustToGrid()
	// Even left and right keep every (u, v) pair whole.
	uvClip, err := yClip.UnscaleRows(2)
	if err != nil {
		return nil, err
	}

	yMatrix, err := NewPlaneMatrix(s.y, s.f.Width, s.f.Height)
	if err != nil {
		return nil, err
	}
	uvMatrix, err := NewPlaneMatrix(s.uv, s.f.Width, s.f.ChromaHeight())
	if err != nil {
		return nil, err
	}

	y, err := yMatrix.Extract(yClip)
	if err != nil {
		return nil, err
	}
	uv, err := uvMatrix.Extract(uvClip)
	if err != nil {
		return nil, err
	}

	width := yClip.Width()
	clipped, err := frame.New(width, yClip.Height(),
		frame.Plane{Data: y, PixelStride: 1, RowStride: width},
		frame.Plane{Data: uv, PixelStride: 2, RowStride: width},
		frame.Plane{PixelStride: 2, RowStride: width},
		frame.WithReleaser(s.f.Releaser().Derive(nil)),
	)
	if err != nil {
		return nil, err
	}
	return newSemiPlanar(clipped)
}

// Serialize returns Y followed by the interleaved chroma, tagged
// FormatSemiPlanar420.
func (s *SemiPlanar) Serialize() frame.Packed {
	data := make([]byte, 0, len(s.y)+len(s.uv))
	data = append(data, s.y...)
	data = append(data, s.uv...)

	return frame.Packed{
		Data:   data,
		Width:  s.f.Width,
		Height: s.f.Height,
		Format: frame.FormatSemiPlanar420,
	}
}

func (s *SemiPlanar) Close() error {
	return s.f.Close()
}
