package yuv

import (
	"testing"

	"github.com/pion/yuvclip/internal/yuvtest"
	"github.com/pion/yuvclip/pkg/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemiPlanarClipLayout(t *testing.T) {
	const (
		width  = 4
		height = 4
	)
	y := []byte{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	}
	u := []byte{
		20, 21,
		22, 23,
	}
	v := []byte{
		30, 31,
		32, 33,
	}

	img, err := Detect(yuvtest.SemiPlanar(t, y, u, v, width, height))
	require.NoError(t, err)
	require.IsType(t, &SemiPlanar{}, img)

	clipped, err := img.Clip(Clip{Left: 3, Top: 1, Right: 4, Bottom: 2})
	require.NoError(t, err)

	f := clipped.Frame()
	assert.Equal(t, 2, f.Width)
	assert.Equal(t, 2, f.Height)
	assert.Equal(t, frame.Plane{Data: []byte{2, 3, 6, 7}, PixelStride: 1, RowStride: 2}, f.Y)
	// One (u, v) pair, never split.
	assert.Equal(t, frame.Plane{Data: []byte{21, 31}, PixelStride: 2, RowStride: 2}, f.U)
	assert.Empty(t, f.V.Data, "the v plane is not carried over")
}

func TestSemiPlanarClipEvenChromaRows(t *testing.T) {
	_, y, u, v := testPlanes()

	img, err := Detect(yuvtest.SemiPlanar(t, y, u, v, testWidth, testHeight))
	require.NoError(t, err)

	for _, c := range []Clip{
		{Left: 1, Top: 1, Right: 2, Bottom: 2},
		{Left: 7, Top: 3, Right: 30, Bottom: 9},
		{Left: 0, Top: 0, Right: 99, Bottom: 99},
	} {
		clipped, err := img.Clip(c)
		require.NoError(t, err)

		f := clipped.Frame()
		assert.Zero(t, f.U.RowStride%2, "%v", c)
		assert.Equal(t, f.Width*f.Height/2, len(f.U.Data), "%v", c)
	}
}

func TestSemiPlanarSerialize(t *testing.T) {
	_, y, u, v := testPlanes()

	img, err := Detect(yuvtest.SemiPlanar(t, y, u, v, testWidth, testHeight))
	require.NoError(t, err)

	packed := img.Serialize()
	assert.Equal(t, frame.FormatSemiPlanar420, packed.Format)
	assert.Equal(t, testWidth, packed.Width)
	assert.Equal(t, testHeight, packed.Height)
	assert.Equal(t, testWidth*testHeight*3/2, len(packed.Data))
	assert.Equal(t, y, packed.Data[:len(y)])
	assert.Equal(t, yuvtest.Interleave(u, v), packed.Data[len(y):])
}

func TestSemiPlanarClipRedetect(t *testing.T) {
	_, y, u, v := testPlanes()

	img, err := Detect(yuvtest.SemiPlanar(t, y, u, v, testWidth, testHeight))
	require.NoError(t, err)
	clipped, err := img.Clip(Clip{Left: 20, Top: 20, Right: 50, Bottom: 50})
	require.NoError(t, err)

	again, err := Detect(clipped.Frame())
	require.NoError(t, err)
	assert.Equal(t, frame.FormatSemiPlanar420, again.Format())
	assert.Equal(t, clipped.Serialize(), again.Serialize())
}
