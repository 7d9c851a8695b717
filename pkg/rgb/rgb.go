// Package rgb turns packed YUV 4:2:0 buffers into RGB pixels.
package rgb

import (
	"fmt"
	"image"

	"github.com/pion/yuvclip/pkg/frame"
	"golang.org/x/image/draw"
)

// Engine converts a packed frame into width*height*3 bytes of row-major RGB
// with no padding.
type Engine interface {
	ConvertToRGB(p frame.Packed) ([]byte, error)
}

// EngineFunc is a proxy type for Engine
type EngineFunc func(p frame.Packed) ([]byte, error)

func (f EngineFunc) ConvertToRGB(p frame.Packed) ([]byte, error) {
	return f(p)
}

// Default returns the pure Go engine. It uses the JFIF full range
// coefficients of image/color.
func Default() Engine {
	return EngineFunc(convert)
}

func convert(p frame.Packed) ([]byte, error) {
	src, err := ToYCbCr(p)
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(src.Rect)
	draw.Draw(dst, dst.Bounds(), src, src.Rect.Min, draw.Src)
	return FromRGBA(dst), nil
}

// ToYCbCr views p as an *image.YCbCr. Planar buffers are shared, semi-planar
// chroma is deinterleaved into new slices.
func ToYCbCr(p frame.Packed) (*image.YCbCr, error) {
	if p.Width <= 0 || p.Height <= 0 || p.Width%2 != 0 || p.Height%2 != 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", p.Width, p.Height)
	}

	switch p.Format {
	case frame.FormatPlanar420:
		return planarToYCbCr(p)
	case frame.FormatSemiPlanar420:
		return semiPlanarToYCbCr(p)
	}
	return nil, fmt.Errorf("%s is not supported", p.Format)
}

func planarToYCbCr(p frame.Packed) (*image.YCbCr, error) {
	yi := p.Width * p.Height
	cbi := yi + yi/4
	cri := cbi + yi/4

	if cri > len(p.Data) {
		return nil, fmt.Errorf("frame length (%d) less than expected (%d)", len(p.Data), cri)
	}

	return &image.YCbCr{
		Y:              p.Data[:yi:yi],
		YStride:        p.Width,
		Cb:             p.Data[yi:cbi:cbi],
		Cr:             p.Data[cbi:cri:cri],
		CStride:        p.Width / 2,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, p.Width, p.Height),
	}, nil
}

func semiPlanarToYCbCr(p frame.Packed) (*image.YCbCr, error) {
	yi := p.Width * p.Height
	ci := yi + yi/2

	if ci > len(p.Data) {
		return nil, fmt.Errorf("frame length (%d) less than expected (%d)", len(p.Data), ci)
	}

	cb := make([]byte, yi/4)
	cr := make([]byte, yi/4)
	for i, j := yi, 0; i < ci; i, j = i+2, j+1 {
		cb[j] = p.Data[i]
		cr[j] = p.Data[i+1]
	}

	return &image.YCbCr{
		Y:              p.Data[:yi:yi],
		YStride:        p.Width,
		Cb:             cb,
		Cr:             cr,
		CStride:        p.Width / 2,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, p.Width, p.Height),
	}, nil
}

// FromRGBA drops the alpha channel of img.
func FromRGBA(img *image.RGBA) []byte {
	bounds := img.Bounds()
	dx, dy := bounds.Dx(), bounds.Dy()

	out := make([]byte, 3*dx*dy)
	i := 0
	for y := 0; y < dy; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+4*dx]
		for x := 0; x < len(row); x += 4 {
			out[i+0] = row[x+0]
			out[i+1] = row[x+1]
			out[i+2] = row[x+2]
			i += 3
		}
	}
	return out
}

// ToRGBA wraps packed RGB pixels into an opaque *image.RGBA.
func ToRGBA(pix []byte, width, height int) (*image.RGBA, error) {
	size := 3 * width * height
	if size > len(pix) {
		return nil, fmt.Errorf("frame length (%d) less than expected (%d)", len(pix), size)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, j := 0, 0; i < size; i, j = i+3, j+4 {
		img.Pix[j+0] = pix[i+0]
		img.Pix[j+1] = pix[i+1]
		img.Pix[j+2] = pix[i+2]
		img.Pix[j+3] = 0xFF
	}
	return img, nil
}
