package yuv

import (
	"errors"

	"github.com/pion/logging"
	"github.com/pion/yuvclip/pkg/frame"

	ilogging "github.com/pion/yuvclip/internal/logging"
)

var logger = ilogging.NewLogger("yuv")

type options struct {
	observer Observer
	logger   logging.LeveledLogger
}

// Option configures Detect.
type Option func(*options)

// WithObserver reports chroma defragmentations to o.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		opts.observer = o
	}
}

// WithLogger replaces the package logger.
func WithLogger(l logging.LeveledLogger) Option {
	return func(opts *options) {
		opts.logger = l
	}
}

func newOptions(opts []Option) options {
	o := options{logger: logger}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Detect classifies f, trying in order:
//
//  1. semi-planar, U and V interleaved in one region
//  2. compact planar
//  3. planar after defragmenting the U and V planes
//
// The luma plane must already be compact; it is never defragmented. When no
// layout matches an *UnsupportedFormatError is returned. The returned image
// takes over the ownership of f.
func Detect(f *frame.Frame, opts ...Option) (Image, error) {
	if f == nil {
		return nil, errors.New("nil frame")
	}
	o := newOptions(opts)

	if !f.Y.IsCompact(f.Width) {
		return nil, o.unsupported(f)
	}

	if img, ok, err := recognizeSemiPlanar(f); ok || err != nil {
		return o.recognized(img, err)
	}
	if img, ok, err := recognizePlanar(f); ok || err != nil {
		return o.recognized(img, err)
	}

	defragmented, err := defragmentChroma(f, o.observer)
	if err != nil {
		return nil, err
	}
	if img, ok, err := recognizePlanar(defragmented); ok || err != nil {
		return o.recognized(img, err)
	}

	return nil, o.unsupported(f)
}

func (o options) recognized(img Image, err error) (Image, error) {
	if err != nil {
		return nil, err
	}
	o.logger.Debugf("detected %s %dx%d", img.Format(), img.Width(), img.Height())
	return img, nil
}

func (o options) unsupported(f *frame.Frame) error {
	err := newUnsupportedFormatError(f)
	o.logger.Warn(err.Error())
	return err
}

func isSemiPlanar(f *frame.Frame) bool {
	return f.Y.IsCompact(f.Width) &&
		f.U.PixelStride == 2 && f.U.RowStride == f.Width &&
		f.V.PixelStride == 2 && f.V.RowStride == f.Width
}

func isPlanar(f *frame.Frame) bool {
	return f.Y.IsCompact(f.Width) &&
		f.U.IsCompact(f.ChromaWidth()) &&
		f.V.IsCompact(f.ChromaWidth())
}

func recognizeSemiPlanar(f *frame.Frame) (Image, bool, error) {
	if !isSemiPlanar(f) {
		return nil, false, nil
	}
	img, err := newSemiPlanar(f)
	if err != nil {
		return nil, false, err
	}
	return img, true, nil
}

func recognizePlanar(f *frame.Frame) (Image, bool, error) {
	if !isPlanar(f) {
		return nil, false, nil
	}
	img, err := newPlanar(f)
	if err != nil {
		return nil, false, err
	}
	return img, true, nil
}
