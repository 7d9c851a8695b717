// Package yuvclip clips YUV 4:2:0 camera frames and converts them to RGB.
//
// It is a thin layer over pkg/yuv and pkg/rgb: a frame is detected, clipped
// when a clip is given, serialized and handed to a conversion engine. The
// frame is released on every path, including failures.
package yuvclip

import (
	"github.com/pion/logging"
	"github.com/pion/yuvclip/pkg/frame"
	"github.com/pion/yuvclip/pkg/rgb"
	"github.com/pion/yuvclip/pkg/yuv"
)

// Converter turns frames into packed RGB pixels.
type Converter struct {
	engine     rgb.Engine
	detectOpts []yuv.Option
}

// Option configures a Converter.
type Option func(*Converter)

// WithEngine replaces the default conversion engine.
func WithEngine(e rgb.Engine) Option {
	return func(c *Converter) {
		c.engine = e
	}
}

// WithObserver reports the chroma defragmentations done while detecting.
func WithObserver(o yuv.Observer) Option {
	return func(c *Converter) {
		c.detectOpts = append(c.detectOpts, yuv.WithObserver(o))
	}
}

// WithLogger sets the logger used while detecting frame layouts.
func WithLogger(l logging.LeveledLogger) Option {
	return func(c *Converter) {
		c.detectOpts = append(c.detectOpts, yuv.WithLogger(l))
	}
}

func NewConverter(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	if c.engine == nil {
		c.engine = rgb.Default()
	}
	return c
}

// Convert returns width*height*3 bytes of RGB for f, or for the region clip
// of f grown to the 2x2 chroma grid when clip is not nil. f is closed before
// Convert returns.
func (c *Converter) Convert(f *frame.Frame, clip *yuv.Clip) ([]byte, error) {
	if f == nil {
		return nil, errNilFrame
	}
	defer f.Close()

	img, err := yuv.Detect(f, c.detectOpts...)
	if err != nil {
		return nil, err
	}
	defer img.Close()

	if clip != nil {
		clipped, err := img.Clip(*clip)
		if err != nil {
			return nil, err
		}
		defer clipped.Close()
		img = clipped
	}

	return ToRGB(img, c.engine)
}

// ToRGB serializes img and converts it with e, rgb.Default() if nil.
func ToRGB(img yuv.Image, e rgb.Engine) ([]byte, error) {
	if e == nil {
		e = rgb.Default()
	}
	return e.ConvertToRGB(img.Serialize())
}

var defaultConverter = NewConverter()

// Convert converts f with the default engine. See Converter.Convert.
func Convert(f *frame.Frame, clip *yuv.Clip) ([]byte, error) {
	return defaultConverter.Convert(f, clip)
}
