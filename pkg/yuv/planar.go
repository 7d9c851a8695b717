package yuv

import (
	"github.com/pion/yuvclip/pkg/frame"
)

// Planar is a frame whose Y, U and V planes are separate and compact:
//
//	y y y y y y
//	y y y y y y
//	y y y y y y
//	y y y y y y
//	u u u u u u
//	v v v v v v
//
// See https://www.fourcc.org/pixel-format/yuv-i420/
type Planar struct {
	f *frame.Frame
	y []byte
	u []byte
	v []byte
}

// NewPlanar wraps a compact planar frame. Use Detect for frames in other
// layouts.
func NewPlanar(f *frame.Frame) (*Planar, error) {
	if !isPlanar(f) {
		return nil, newUnsupportedFormatError(f)
	}
	return newPlanar(f)
}

func newPlanar(f *frame.Frame) (*Planar, error) {
	y, err := checkLength("y plane", f.Y.Data, f.Width*f.Height)
	if err != nil {
		return nil, err
	}
	chroma := f.ChromaWidth() * f.ChromaHeight()
	u, err := checkLength("u plane", f.U.Data, chroma)
	if err != nil {
		return nil, err
	}
	v, err := checkLength("v plane", f.V.Data, chroma)
	if err != nil {
		return nil, err
	}

	return &Planar{f: f, y: y, u: u, v: v}, nil
}

func (p *Planar) Width() int {
	return p.f.Width
}

func (p *Planar) Height() int {
	return p.f.Height
}

func (p *Planar) Format() frame.Format {
	return frame.FormatPlanar420
}

func (p *Planar) Frame() *frame.Frame {
	return p.f
}

// Clip extracts c, grown to the chroma grid, into new compact planes. The
// chroma planes are clipped with c halved.
func (p *Planar) Clip(c Clip) (Image, error) {
	if err := validateClip(c, p.f.Width, p.f.Height); err != nil {
		return nil, err
	}

	yClip := c.AdjustToGrid()
	cClip, err := yClip.Unscale(2)
	if err != nil {
		return nil, err
	}

	yMatrix, err := NewPlaneMatrix(p.y, p.f.Width, p.f.Height)
	if err != nil {
		return nil, err
	}
	uMatrix, err := NewPlaneMatrix(p.u, p.f.ChromaWidth(), p.f.ChromaHeight())
	if err != nil {
		return nil, err
	}
	vMatrix, err := NewPlaneMatrix(p.v, p.f.ChromaWidth(), p.f.ChromaHeight())
	if err != nil {
		return nil, err
	}

	y, err := yMatrix.Extract(yClip)
	if err != nil {
		return nil, err
	}
	u, err := uMatrix.Extract(cClip)
	if err != nil {
		return nil, err
	}
	v, err := vMatrix.Extract(cClip)
	if err != nil {
		return nil, err
	}

	width := yClip.Width()
	clipped, err := frame.New(width, yClip.Height(),
		frame.Plane{Data: y, PixelStride: 1, RowStride: width},
		frame.Plane{Data: u, PixelStride: 1, RowStride: width / 2},
		frame.Plane{Data: v, PixelStride: 1, RowStride: width / 2},
		frame.WithReleaser(p.f.Releaser().Derive(nil)),
	)
	if err != nil {
		return nil, err
	}
	return newPlanar(clipped)
}

// Serialize returns Y, U and V back to back, tagged FormatPlanar420.
func (p *Planar) Serialize() frame.Packed {
	data := make([]byte, 0, len(p.y)+len(p.u)+len(p.v))
	data = append(data, p.y...)
	data = append(data, p.u...)
	data = append(data, p.v...)

	return frame.Packed{
		Data:   data,
		Width:  p.f.Width,
		Height: p.f.Height,
		Format: frame.FormatPlanar420,
	}
}

func (p *Planar) Close() error {
	return p.f.Close()
}
