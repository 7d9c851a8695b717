package frame

type Format string

const (
	// Serialized formats understood by a conversion engine

	// FormatPlanar420 is Y followed by all U then all V samples, no gaps.
	FormatPlanar420 Format = "planar-4:2:0"
	// FormatSemiPlanar420 is Y followed by interleaved U/V sample pairs.
	FormatSemiPlanar420 Format = "semiplanar-4:2:0"

	// Packed capture formats accepted by Decode

	// FormatI420 https://www.fourcc.org/pixel-format/yuv-i420/
	FormatI420 Format = "I420"
	// FormatYV12 https://www.fourcc.org/pixel-format/yuv-yv12/
	FormatYV12 Format = "YV12"
	// FormatNV12 https://www.fourcc.org/pixel-format/yuv-nv12/
	FormatNV12 Format = "NV12"
)

// YUV aliases

// FormatIYUV is an alias of FormatI420
const FormatIYUV = FormatI420
