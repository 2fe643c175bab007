package dither

// Colour conversion
const (
	channelMax8  = 255    // 8-bit channel maximum
	channelMax16 = 0xffff // 16-bit channel maximum, as returned by color.Color.RGBA
	rgbChannels  = 3
)

// Parallel decomposition
const (
	minRowsPerWorker = 8 // Bands smaller than this are not worth a goroutine
)

// Palette file limits
const (
	minPaletteColors = 2
	maxPaletteColors = 256 // image.Paletted indices are bytes
)
