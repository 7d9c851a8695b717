package yuv

import (
	"fmt"
	"time"

	"github.com/pion/yuvclip/pkg/frame"
)

// Defragment compacts a rows x cols plane into a dense buffer with pixel
// stride 1 and row stride cols. A plane that is already compact is returned
// unchanged; otherwise the result never aliases p.
func Defragment(rows, cols int, p frame.Plane) (frame.Plane, error) {
	return DefragmentWith(rows, cols, p, nil)
}

// DefragmentWith is Defragment reporting to observe.
func DefragmentWith(rows, cols int, p frame.Plane, observe Observer) (frame.Plane, error) {
	if rows <= 0 || cols <= 0 {
		return frame.Plane{}, fmt.Errorf("invalid plane size %dx%d", cols, rows)
	}

	start := time.Now()
	if p.IsCompact(cols) {
		observe.observe(DefragStats{Rows: rows, Cols: cols, Path: DefragNone})
		return p, nil
	}

	if err := checkPlane(rows, cols, p); err != nil {
		return frame.Plane{}, err
	}

	var (
		data []byte
		path DefragPath
	)
	if p.PixelStride == 1 {
		data, path = defragmentPadding(rows, cols, p), DefragPadding
	} else {
		data, path = defragmentGather(rows, cols, p), DefragGather
	}

	observe.observe(DefragStats{
		Rows:    rows,
		Cols:    cols,
		Path:    path,
		Bytes:   len(data),
		Elapsed: time.Since(start),
	})

	return frame.Plane{
		Data:        data,
		PixelStride: 1,
		RowStride:   cols,
	}, nil
}

// checkPlane makes sure the last sample of the plane is addressable. The
// last row doesn't need to carry its padding.
func checkPlane(rows, cols int, p frame.Plane) error {
	if p.PixelStride < 1 || p.RowStride < (cols-1)*p.PixelStride+1 {
		return fmt.Errorf("invalid strides for %d samples per row: %v", cols, p)
	}

	required := (rows-1)*p.RowStride + (cols-1)*p.PixelStride + 1
	if len(p.Data) < required {
		return &ConfigurationError{
			What:     "strided plane",
			Expected: required,
			Actual:   len(p.Data),
		}
	}
	return nil
}

// Only the row padding has to go, copy whole rows.
func defragmentPadding(rows, cols int, p frame.Plane) []byte {
	dst := make([]byte, rows*cols)
	for row := 0; row < rows; row++ {
		src := row * p.RowStride
		copy(dst[row*cols:(row+1)*cols], p.Data[src:src+cols])
	}
	return dst
}

func defragmentGather(rows, cols int, p frame.Plane) []byte {
	dst := make([]byte, rows*cols)
	i := 0
	for row := 0; row < rows; row++ {
		src := row * p.RowStride
		for col := 0; col < cols; col++ {
			dst[i] = p.Data[src]
			src += p.PixelStride
			i++
		}
	}
	return dst
}

// defragmentChroma returns f with both chroma planes compacted. The luma
// plane is shared, it is never defragmented.
func defragmentChroma(f *frame.Frame, observe Observer) (*frame.Frame, error) {
	rows, cols := f.ChromaHeight(), f.ChromaWidth()

	u, err := DefragmentWith(rows, cols, f.U, observe)
	if err != nil {
		return nil, fmt.Errorf("u plane: %w", err)
	}
	v, err := DefragmentWith(rows, cols, f.V, observe)
	if err != nil {
		return nil, fmt.Errorf("v plane: %w", err)
	}

	return f.WithChroma(u, v), nil
}
