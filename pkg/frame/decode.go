package frame

import (
	"fmt"
)

type decodeFunc func(buf []byte, width, height int) (y, u, v Plane, err error)

// Decode wraps a contiguous capture buffer in f's layout into a Frame. The
// planes are slices of buf, nothing is copied, so buf must outlive the frame.
func Decode(f Format, buf []byte, width, height int, opts ...Option) (*Frame, error) {
	var decode decodeFunc

	switch f {
	case FormatI420, FormatPlanar420:
		decode = decodeI420
	case FormatYV12:
		decode = decodeYV12
	case FormatNV12, FormatSemiPlanar420:
		decode = decodeNV12
	default:
		return nil, fmt.Errorf("%s is not supported", f)
	}

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}

	y, u, v, err := decode(buf, width, height)
	if err != nil {
		return nil, err
	}

	return New(width, height, y, u, v, opts...)
}

func splitPlanar(buf []byte, width, height int) (y, first, second []byte, err error) {
	yi := width * height
	ci := yi + width*height/4
	fi := ci + width*height/4

	if fi > len(buf) {
		return nil, nil, nil, fmt.Errorf("frame length (%d) less than expected (%d)", len(buf), fi)
	}

	return buf[:yi:yi], buf[yi:ci:ci], buf[ci:fi:fi], nil
}

func decodeI420(buf []byte, width, height int) (Plane, Plane, Plane, error) {
	y, u, v, err := splitPlanar(buf, width, height)
	if err != nil {
		return Plane{}, Plane{}, Plane{}, err
	}

	return Plane{Data: y, PixelStride: 1, RowStride: width},
		Plane{Data: u, PixelStride: 1, RowStride: width / 2},
		Plane{Data: v, PixelStride: 1, RowStride: width / 2},
		nil
}

// YV12 stores V before U.
func decodeYV12(buf []byte, width, height int) (Plane, Plane, Plane, error) {
	y, v, u, err := splitPlanar(buf, width, height)
	if err != nil {
		return Plane{}, Plane{}, Plane{}, err
	}

	return Plane{Data: y, PixelStride: 1, RowStride: width},
		Plane{Data: u, PixelStride: 1, RowStride: width / 2},
		Plane{Data: v, PixelStride: 1, RowStride: width / 2},
		nil
}

// In NV12 the U plane is the interleaved region itself and the V plane is
// the same region shifted by one byte, the way camera HALs report it.
func decodeNV12(buf []byte, width, height int) (Plane, Plane, Plane, error) {
	yi := width * height
	ci := yi + width*height/2

	if ci > len(buf) {
		return Plane{}, Plane{}, Plane{}, fmt.Errorf("frame length (%d) less than expected (%d)", len(buf), ci)
	}

	return Plane{Data: buf[:yi:yi], PixelStride: 1, RowStride: width},
		Plane{Data: buf[yi:ci:ci], PixelStride: 2, RowStride: width},
		Plane{Data: buf[yi+1 : ci : ci], PixelStride: 2, RowStride: width},
		nil
}
