// Package yuvtest synthesizes frames in every supported plane layout for
// tests.
package yuvtest

import (
	"image/color"
	"math"
	"testing"

	"github.com/pion/yuvclip/pkg/frame"
)

// Gradient returns width x height packed RGB pixels with red following the
// row, green following the column and blue their mix.
func Gradient(width, height int) []byte {
	pix := make([]byte, 3*width*height)
	i := 0
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			pix[i+0] = uint8(row)
			pix[i+1] = uint8(col)
			pix[i+2] = uint8(row + col/2)
			i += 3
		}
	}
	return pix
}

// ToI420 converts packed RGB pixels into compact Y, U and V planes. Each
// chroma sample is computed from the mean colour of its 2x2 block.
func ToI420(pix []byte, width, height int) (y, u, v []byte) {
	y = make([]byte, width*height)
	u = make([]byte, width*height/4)
	v = make([]byte, width*height/4)

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			i := 3 * (row*width + col)
			y[row*width+col], _, _ = color.RGBToYCbCr(pix[i], pix[i+1], pix[i+2])
		}
	}

	cw := width / 2
	for row := 0; row < height/2; row++ {
		for col := 0; col < cw; col++ {
			var r, g, b float64
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					i := 3 * ((2*row+dy)*width + 2*col + dx)
					r += float64(pix[i+0])
					g += float64(pix[i+1])
					b += float64(pix[i+2])
				}
			}
			r, g, b = r/4, g/4, b/4
			u[row*cw+col] = clamp(128 - 0.168736*r - 0.331264*g + 0.5*b)
			v[row*cw+col] = clamp(128 + 0.5*r - 0.418688*g - 0.081312*b)
		}
	}
	return y, u, v
}

func clamp(x float64) uint8 {
	x = math.Round(x)
	switch {
	case x < 0:
		return 0
	case x > 255:
		return 255
	}
	return uint8(x)
}

// Interleave returns the semi-planar chroma region u0 v0 u1 v1 ...
func Interleave(u, v []byte) []byte {
	uv := make([]byte, 2*len(u))
	for i := range u {
		uv[2*i] = u[i]
		uv[2*i+1] = v[i]
	}
	return uv
}

// Planar builds a compact planar frame.
func Planar(t testing.TB, y, u, v []byte, width, height int, opts ...frame.Option) *frame.Frame {
	t.Helper()
	f, err := frame.New(width, height,
		frame.Plane{Data: y, PixelStride: 1, RowStride: width},
		frame.Plane{Data: u, PixelStride: 1, RowStride: width / 2},
		frame.Plane{Data: v, PixelStride: 1, RowStride: width / 2},
		opts...,
	)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

// SemiPlanar builds a semi-planar frame. The U plane holds u0 v0 u1 v1 ...
// and the V plane v0 u0 v1 u1 ... like a camera exposing both orders.
func SemiPlanar(t testing.TB, y, u, v []byte, width, height int, opts ...frame.Option) *frame.Frame {
	t.Helper()
	f, err := frame.New(width, height,
		frame.Plane{Data: y, PixelStride: 1, RowStride: width},
		frame.Plane{Data: Interleave(u, v), PixelStride: 2, RowStride: width},
		frame.Plane{Data: Interleave(v, u), PixelStride: 2, RowStride: width},
		opts...,
	)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

// Spread lays out a compact rows x cols plane with the given strides. Gaps
// and padding are filled with 0xEE. The last row carries no padding.
func Spread(src []byte, rows, cols, pixelStride, rowStride int) frame.Plane {
	size := (rows-1)*rowStride + (cols-1)*pixelStride + 1
	data := make([]byte, size)
	for i := range data {
		data[i] = 0xEE
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			data[row*rowStride+col*pixelStride] = src[row*cols+col]
		}
	}
	return frame.Plane{Data: data, PixelStride: pixelStride, RowStride: rowStride}
}

// Strided builds a frame whose chroma planes have the given pixel stride and
// pad bytes of padding after each row.
func Strided(t testing.TB, y, u, v []byte, width, height, pixelStride, pad int, opts ...frame.Option) *frame.Frame {
	t.Helper()
	rows, cols := height/2, width/2
	rowStride := cols*pixelStride + pad
	f, err := frame.New(width, height,
		frame.Plane{Data: y, PixelStride: 1, RowStride: width},
		Spread(u, rows, cols, pixelStride, rowStride),
		Spread(v, rows, cols, pixelStride, rowStride),
		opts...,
	)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

// SubImage returns the packed RGB pixels of the rectangle
// [top,bottom) x [left,right).
func SubImage(pix []byte, width, left, top, right, bottom int) []byte {
	out := make([]byte, 0, 3*(right-left)*(bottom-top))
	for row := top; row < bottom; row++ {
		out = append(out, pix[3*(row*width+left):3*(row*width+right)]...)
	}
	return out
}

// MaxDiff returns the largest per-channel absolute difference between a and
// b, or -1 if their lengths differ.
func MaxDiff(a, b []byte) int {
	if len(a) != len(b) {
		return -1
	}
	diff := 0
	for i := range a {
		d := int(a[i]) - int(b[i])
		if d < 0 {
			d = -d
		}
		if d > diff {
			diff = d
		}
	}
	return diff
}
