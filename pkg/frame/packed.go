package frame

// Packed is a frame serialized into one contiguous buffer, the input of a
// colour conversion engine.
type Packed struct {
	Data   []byte
	Width  int
	Height int
	Format Format
}
