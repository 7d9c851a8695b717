// Package yuv clips YUV 4:2:0 frames and normalizes their plane layouts
// into packed buffers for a colour conversion engine.
//
// A frame is classified with Detect into one of two variants, Planar or
// SemiPlanar. Both are immutable: Clip returns a new image, and closing any
// image derived from a frame releases the frame's capture resource once.
package yuv

import (
	"github.com/pion/yuvclip/pkg/frame"
)

// Image is a frame in a layout the conversion engine understands.
type Image interface {
	Width() int
	Height() int
	// Format is the tag Serialize attaches to the packed buffer.
	Format() frame.Format
	// Frame returns the underlying frame. Its buffers must not be modified.
	Frame() *frame.Frame
	// Clip returns the sub-image covering c aligned to the 2x2 chroma grid.
	// The result owns compact buffers sized to the clip.
	Clip(c Clip) (Image, error)
	// Serialize concatenates the planes into one buffer.
	Serialize() frame.Packed
	// Close releases the capture resource the image descends from.
	Close() error
}

// checkLength returns a view of exactly n bytes of data.
func checkLength(what string, data []byte, n int) ([]byte, error) {
	if len(data) < n {
		return nil, &ConfigurationError{What: what, Expected: n, Actual: len(data)}
	}
	return data[:n:n], nil
}

func validateClip(c Clip, width, height int) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return c.Within(width, height)
}
