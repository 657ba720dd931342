package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Board colors, one per cell state.
var (
	colorEmpty   = tcell.NewRGBColor(255, 255, 255)
	colorBarrier = tcell.NewRGBColor(0, 0, 0)
	colorStart   = tcell.NewRGBColor(255, 165, 0)
	colorEnd     = tcell.NewRGBColor(64, 224, 208)
	colorOpen    = tcell.NewRGBColor(0, 255, 0)
	colorClosed  = tcell.NewRGBColor(255, 0, 0)
	colorPath    = tcell.NewRGBColor(128, 0, 128)
)

var (
	headerStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(173, 216, 230))
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(128, 128, 128))
)

// cellColor maps a state to its board color.
func cellColor(s gridgraph.State) tcell.Color {
	switch s {
	case gridgraph.Barrier:
		return colorBarrier
	case gridgraph.Start:
		return colorStart
	case gridgraph.End:
		return colorEnd
	case gridgraph.Open:
		return colorOpen
	case gridgraph.Closed:
		return colorClosed
	case gridgraph.Path:
		return colorPath
	}
	return colorEmpty
}

// cellStyle paints the cell as a solid block.
func cellStyle(s gridgraph.State) tcell.Style {
	return tcell.StyleDefault.Background(cellColor(s))
}
