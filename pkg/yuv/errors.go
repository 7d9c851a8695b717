package yuv

import (
	"errors"
	"fmt"

	"github.com/pion/yuvclip/pkg/frame"
)

// ValidationError reports a malformed clip rectangle: an empty extent or a
// negative coordinate.
type ValidationError struct {
	Clip   Clip
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid clip %v: %s", e.Clip, e.Reason)
}

// ConfigurationError tells the caller that a buffer doesn't match the
// geometry it was declared with.
type ConfigurationError struct {
	What     string
	Expected int
	Actual   int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: buffer length (%d) doesn't match the expected length (%d)", e.What, e.Actual, e.Expected)
}

// Layout is the stride pair of a plane, as reported in errors.
type Layout struct {
	PixelStride int
	RowStride   int
}

func layoutOf(p frame.Plane) Layout {
	return Layout{PixelStride: p.PixelStride, RowStride: p.RowStride}
}

// UnsupportedFormatError is returned by Detect when no known layout matches
// the frame. Compliant capture hardware is not expected to produce it, so it
// is worth reporting to telemetry.
type UnsupportedFormatError struct {
	Width, Height int
	Y, U, V       Layout
}

func newUnsupportedFormatError(f *frame.Frame) *UnsupportedFormatError {
	return &UnsupportedFormatError{
		Width:  f.Width,
		Height: f.Height,
		Y:      layoutOf(f.Y),
		U:      layoutOf(f.U),
		V:      layoutOf(f.V),
	}
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("yuv layout is not supported: %dx%d y=%+v u=%+v v=%+v", e.Width, e.Height, e.Y, e.U, e.V)
}

// OutOfBoundsError reports a clip rectangle reaching outside the image.
type OutOfBoundsError struct {
	Clip          Clip
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("clip %v exceeds image bounds %dx%d", e.Clip, e.Width, e.Height)
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsConfigurationError reports whether err is or wraps a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// IsUnsupportedFormatError reports whether err is or wraps an *UnsupportedFormatError.
func IsUnsupportedFormatError(err error) bool {
	var target *UnsupportedFormatError
	return errors.As(err, &target)
}

// IsOutOfBoundsError reports whether err is or wraps an *OutOfBoundsError.
func IsOutOfBoundsError(err error) bool {
	var target *OutOfBoundsError
	return errors.As(err, &target)
}
