package editor

import (
	"image/color"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Board and menu colors.
var (
	ColorEmpty   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorBarrier = color.RGBA{A: 255}
	ColorStart   = color.RGBA{R: 255, G: 165, A: 255}
	ColorEnd     = color.RGBA{R: 64, G: 224, B: 208, A: 255}
	ColorOpen    = color.RGBA{G: 255, A: 255}
	ColorClosed  = color.RGBA{R: 255, A: 255}
	ColorPath    = color.RGBA{R: 128, B: 128, A: 255}
	ColorGrid    = color.RGBA{R: 128, G: 128, B: 128, A: 255}

	menuColors = [...]color.RGBA{
		{R: 173, G: 216, B: 230, A: 255}, // light blue
		{R: 144, G: 238, B: 144, A: 255}, // light green
		{R: 255, G: 255, B: 102, A: 255}, // light yellow
	}
)

func stateColor(s gridgraph.State) color.RGBA {
	switch s {
	case gridgraph.Barrier:
		return ColorBarrier
	case gridgraph.Start:
		return ColorStart
	case gridgraph.End:
		return ColorEnd
	case gridgraph.Open:
		return ColorOpen
	case gridgraph.Closed:
		return ColorClosed
	case gridgraph.Path:
		return ColorPath
	}
	return ColorEmpty
}

// lerp blends a toward b by t in [0, 1].
func lerp(a, b color.RGBA, t float32) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 { return uint8(float32(x) + (float32(y)-float32(x))*t) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
