package yuv

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClip(t *testing.T) {
	c, err := NewClip(2, 4, 10, 12)
	require.NoError(t, err)
	assert.Equal(t, 8, c.Width())
	assert.Equal(t, 8, c.Height())
	assert.Equal(t, image.Rect(2, 4, 10, 12), c.Rectangle())
}

func TestNewClipValidation(t *testing.T) {
	cases := map[string][4]int{
		"LeftEqualsRight": {10, 0, 10, 10},
		"TopEqualsBottom": {0, 5, 10, 5},
		"LeftAfterRight":  {11, 0, 10, 10},
		"TopAfterBottom":  {0, 11, 10, 10},
		"NegativeLeft":    {-2, 0, 10, 10},
		"NegativeTop":     {0, -1, 10, 10},
		"AllNegative":     {-4, -4, -2, -2},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			_, err := NewClip(c[0], c[1], c[2], c[3])
			require.Error(t, err)
			assert.True(t, IsValidationError(err), "expected a validation error, got %v", err)
		})
	}
}

func TestClipFromRectangle(t *testing.T) {
	c, err := ClipFromRectangle(image.Rect(1, 2, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, Clip{Left: 1, Top: 2, Right: 3, Bottom: 4}, c)

	_, err = ClipFromRectangle(image.Rectangle{})
	assert.True(t, IsValidationError(err))
}

func TestClipScale(t *testing.T) {
	c := Clip{Left: 2, Top: 4, Right: 6, Bottom: 10}

	scaled, err := c.Scale(2)
	require.NoError(t, err)
	assert.Equal(t, Clip{Left: 4, Top: 8, Right: 12, Bottom: 20}, scaled)

	unscaled, err := scaled.Unscale(2)
	require.NoError(t, err)
	assert.Equal(t, c, unscaled)

	rows, err := c.UnscaleRows(2)
	require.NoError(t, err)
	assert.Equal(t, Clip{Left: 2, Top: 2, Right: 6, Bottom: 5}, rows)

	_, err = c.Scale(0)
	assert.True(t, IsValidationError(err))
	_, err = c.Unscale(0)
	assert.True(t, IsValidationError(err))
	_, err = Clip{Left: 0, Top: 0, Right: 1, Bottom: 1}.Unscale(2)
	assert.True(t, IsValidationError(err), "collapsing to an empty clip must fail")
}

func TestClipAdjustToGrid(t *testing.T) {
	cases := map[string]struct {
		clip     Clip
		expected Clip
	}{
		"Even": {
			clip:     Clip{Left: 2, Top: 4, Right: 6, Bottom: 8},
			expected: Clip{Left: 2, Top: 4, Right: 6, Bottom: 8},
		},
		"Odd": {
			clip:     Clip{Left: 1, Top: 3, Right: 5, Bottom: 7},
			expected: Clip{Left: 0, Top: 2, Right: 6, Bottom: 8},
		},
		"Mixed": {
			clip:     Clip{Left: 20, Top: 21, Right: 49, Bottom: 50},
			expected: Clip{Left: 20, Top: 20, Right: 50, Bottom: 50},
		},
		"SinglePixel": {
			clip:     Clip{Left: 3, Top: 3, Right: 4, Bottom: 4},
			expected: Clip{Left: 2, Top: 2, Right: 4, Bottom: 4},
		},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.expected, c.clip.AdjustToGrid())
		})
	}
}

func TestClipAdjustToGridProperties(t *testing.T) {
	for left := 0; left < 6; left++ {
		for top := 0; top < 6; top++ {
			for right := left + 1; right < 9; right++ {
				for bottom := top + 1; bottom < 9; bottom++ {
					c := Clip{Left: left, Top: top, Right: right, Bottom: bottom}
					adjusted := c.AdjustToGrid()

					require.True(t, adjusted.InGrid(), "%v adjusted to %v", c, adjusted)
					require.NoError(t, adjusted.Validate())
					require.True(t, c.Rectangle().In(adjusted.Rectangle()), "%v is not a superset of %v", adjusted, c)
					require.Equal(t, adjusted, adjusted.AdjustToGrid(), "not idempotent for %v", c)
				}
			}
		}
	}
}

func TestClipWithin(t *testing.T) {
	c := Clip{Left: 0, Top: 0, Right: 100, Bottom: 100}
	assert.NoError(t, c.Within(100, 100))

	err := c.Within(98, 100)
	assert.True(t, IsOutOfBoundsError(err))
	err = c.Within(100, 50)
	assert.True(t, IsOutOfBoundsError(err))
}
