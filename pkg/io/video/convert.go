package video

import (
	"image"

	"github.com/pion/yuvclip/pkg/rgb"
	"github.com/pion/yuvclip/pkg/yuv"
)

// ToRGBA converts r to a reader of *image.RGBA using engine, rgb.Default()
// if nil. Source frames are released as soon as they are converted.
func ToRGBA(r Reader, engine rgb.Engine, opts ...yuv.Option) ImageReader {
	if engine == nil {
		engine = rgb.Default()
	}

	return ImageReaderFunc(func() (image.Image, func(), error) {
		f, release, err := r.Read()
		if err != nil {
			return nil, noop, err
		}
		if release != nil {
			defer release()
		}

		img, err := yuv.Detect(f, opts...)
		if err != nil {
			f.Close()
			return nil, noop, err
		}
		defer img.Close()

		pix, err := engine.ConvertToRGB(img.Serialize())
		if err != nil {
			return nil, noop, err
		}

		dst, err := rgb.ToRGBA(pix, img.Width(), img.Height())
		if err != nil {
			return nil, noop, err
		}
		return dst, noop, nil
	})
}
