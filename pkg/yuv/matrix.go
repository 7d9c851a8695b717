package yuv

// PlaneMatrix is a row-major view over a dense plane buffer. It never owns
// the buffer; views it returns share storage with it.
type PlaneMatrix struct {
	data   []byte
	width  int
	height int
}

// NewPlaneMatrix wraps data as a width x height matrix. width is the row
// stride in bytes and width*height must equal len(data).
func NewPlaneMatrix(data []byte, width, height int) (*PlaneMatrix, error) {
	if width <= 0 || height <= 0 || width*height != len(data) {
		return nil, &ConfigurationError{
			What:     "plane matrix",
			Expected: width * height,
			Actual:   len(data),
		}
	}

	return &PlaneMatrix{
		data:   data,
		width:  width,
		height: height,
	}, nil
}

func (m *PlaneMatrix) Width() int {
	return m.width
}

func (m *PlaneMatrix) Height() int {
	return m.height
}

// Row returns the bytes of row between columns from (inclusive) and to
// (exclusive) without copying. The capacity is capped so appends to the view
// can't overwrite the following bytes.
func (m *PlaneMatrix) Row(row, from, to int) []byte {
	first := m.width * row
	return m.data[first+from : first+to : first+to]
}

// At returns a one byte view of the sample at row and col.
func (m *PlaneMatrix) At(row, col int) []byte {
	i := m.width*row + col
	return m.data[i : i+1 : i+1]
}

// Extract copies the region c into a freshly allocated buffer of
// c.Width()*c.Height() bytes. The cost is proportional to the area of c.
func (m *PlaneMatrix) Extract(c Clip) ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.Within(m.width, m.height); err != nil {
		return nil, err
	}

	clipped := make([]byte, 0, c.Width()*c.Height())
	for row := c.Top; row < c.Bottom; row++ {
		clipped = append(clipped, m.Row(row, c.Left, c.Right)...)
	}
	return clipped, nil
}
