package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compactPlanes(width, height int) (Plane, Plane, Plane) {
	return Plane{Data: make([]byte, width*height), PixelStride: 1, RowStride: width},
		Plane{Data: make([]byte, width*height/4), PixelStride: 1, RowStride: width / 2},
		Plane{Data: make([]byte, width*height/4), PixelStride: 1, RowStride: width / 2}
}

func TestNew(t *testing.T) {
	y, u, v := compactPlanes(4, 4)

	f, err := New(4, 4, y, u, v)
	require.NoError(t, err)
	assert.Equal(t, 2, f.ChromaWidth())
	assert.Equal(t, 2, f.ChromaHeight())
	assert.Nil(t, f.Releaser())
	assert.NoError(t, f.Close())
}

func TestNewErrors(t *testing.T) {
	y, u, v := compactPlanes(4, 4)

	cases := map[string]struct {
		width, height int
		y, u, v       Plane
	}{
		"OddWidth":        {width: 3, height: 4, y: y, u: u, v: v},
		"OddHeight":       {width: 4, height: 5, y: y, u: u, v: v},
		"Negative":        {width: -4, height: 4, y: y, u: u, v: v},
		"ZeroPixelStride": {width: 4, height: 4, y: y, u: Plane{RowStride: 2}, v: v},
		"OverlappingRows": {width: 4, height: 4, y: Plane{PixelStride: 1, RowStride: 3}, u: u, v: v},
		"StridedChroma":   {width: 4, height: 4, y: y, u: u, v: Plane{PixelStride: 2, RowStride: 2}},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			_, err := New(c.width, c.height, c.y, c.u, c.v)
			assert.Error(t, err)
		})
	}
}

func TestPlaneIsCompact(t *testing.T) {
	assert.True(t, Plane{PixelStride: 1, RowStride: 8}.IsCompact(8))
	assert.False(t, Plane{PixelStride: 1, RowStride: 10}.IsCompact(8))
	assert.False(t, Plane{PixelStride: 2, RowStride: 8}.IsCompact(8))
}

func TestWithChroma(t *testing.T) {
	var released int
	y, u, v := compactPlanes(4, 4)
	f, err := New(4, 4, y, Plane{Data: make([]byte, 8), PixelStride: 2, RowStride: 4}, v,
		WithRelease(func() { released++ }))
	require.NoError(t, err)

	g := f.WithChroma(u, v)
	assert.Equal(t, u, g.U)
	assert.Equal(t, 2, f.U.PixelStride, "source frame must not change")
	assert.Same(t, f.Releaser(), g.Releaser())

	require.NoError(t, g.Close())
	require.NoError(t, f.Close())
	assert.Equal(t, 1, released)
}
