// Package video chains clipping and conversion over a stream of frames.
package video

import (
	"image"

	"github.com/pion/yuvclip/pkg/frame"
)

// Reader produces frames. release hands the frame back to its source; the
// frame's buffers must not be used after calling it.
type Reader interface {
	Read() (f *frame.Frame, release func(), err error)
}

type ReaderFunc func() (f *frame.Frame, release func(), err error)

func (rf ReaderFunc) Read() (f *frame.Frame, release func(), err error) {
	f, release, err = rf()
	return
}

// TransformFunc produces a new Reader that will produce transformed frames
type TransformFunc func(r Reader) Reader

// Merge merges transforms and produces a new TransformFunc that will execute
// transforms in order
func Merge(transforms ...TransformFunc) TransformFunc {
	return func(r Reader) Reader {
		for _, transform := range transforms {
			if transform == nil {
				continue
			}

			r = transform(r)
		}

		return r
	}
}

// ImageReader produces decoded images.
type ImageReader interface {
	Read() (img image.Image, release func(), err error)
}

type ImageReaderFunc func() (img image.Image, release func(), err error)

func (rf ImageReaderFunc) Read() (img image.Image, release func(), err error) {
	img, release, err = rf()
	return
}

func noop() {}
