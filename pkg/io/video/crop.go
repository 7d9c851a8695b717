package video

import (
	"github.com/pion/yuvclip/pkg/frame"
	"github.com/pion/yuvclip/pkg/yuv"
)

// Crop returns a transform clipping every frame to c, grown to the 4:2:0
// grid. Produced frames are compact and own their buffers; releasing one
// also releases the source frame.
func Crop(c yuv.Clip, opts ...yuv.Option) TransformFunc {
	return func(r Reader) Reader {
		return ReaderFunc(func() (*frame.Frame, func(), error) {
			f, release, err := r.Read()
			if err != nil {
				return nil, noop, err
			}
			if release == nil {
				release = noop
			}

			img, err := yuv.Detect(f, opts...)
			if err != nil {
				f.Close()
				release()
				return nil, noop, err
			}

			clipped, err := img.Clip(c)
			if err != nil {
				img.Close()
				release()
				return nil, noop, err
			}

			return clipped.Frame(), func() {
				clipped.Close()
				release()
			}, nil
		})
	}
}
