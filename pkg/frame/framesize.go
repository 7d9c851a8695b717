package frame

import "fmt"

var frameSizeMap = map[Format]frameSizeFunc{
	FormatI420:          frameSizePlanar,
	FormatYV12:          frameSizePlanar,
	FormatPlanar420:     frameSizePlanar,
	FormatNV12:          frameSizeSemiPlanar,
	FormatSemiPlanar420: frameSizeSemiPlanar,
}

type frameSizeFunc func(width, height int) int

func frameSizePlanar(width, height int) int {
	yi := width * height
	return yi + 2*(yi/4)
}

func frameSizeSemiPlanar(width, height int) int {
	yi := width * height
	return yi + yi/2
}

// Size returns the number of bytes a width x height frame occupies in the
// packed format f.
func Size(f Format, width, height int) (int, error) {
	size, ok := frameSizeMap[f]
	if !ok {
		return 0, fmt.Errorf("%s is not supported", f)
	}
	return size(width, height), nil
}
