package gridgraph

import (
	"fmt"
	"strings"
)

// Glyphs used by String and FromStrings.
const (
	GlyphEmpty   = '.'
	GlyphStart   = 'S'
	GlyphEnd     = 'E'
	GlyphBarrier = '#'
	GlyphOpen    = 'o'
	GlyphClosed  = 'x'
	GlyphPath    = '*'
)

var stateGlyphs = [...]rune{
	Empty:   GlyphEmpty,
	Start:   GlyphStart,
	End:     GlyphEnd,
	Barrier: GlyphBarrier,
	Open:    GlyphOpen,
	Closed:  GlyphClosed,
	Path:    GlyphPath,
}

// Glyph returns the ASCII character String uses for s.
func (s State) Glyph() rune {
	if int(s) < len(stateGlyphs) {
		return stateGlyphs[s]
	}
	return '?'
}

// String renders the grid one row per line using the Glyph* characters.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.size * (g.size + 1))
	for r, row := range g.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteRune(c.state.Glyph())
		}
	}
	return sb.String()
}

// FromStrings builds a grid from ASCII rows, one string per row, using the
// Glyph* characters. Rows must form a square. At most one S and one E are
// kept; a later one moves the endpoint.
//
//	g, _ := gridgraph.FromStrings([]string{
//	    "S..",
//	    "##.",
//	    "E..",
//	})
func FromStrings(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	g, err := NewGrid(len(rows))
	if err != nil {
		return nil, err
	}
	for r, line := range rows {
		runes := []rune(line)
		if len(runes) != len(rows) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, r, len(runes), len(rows))
		}
		for c, ch := range runes {
			s, ok := glyphState(ch)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadGlyph, ch, r, c)
			}
			if err = g.set(Pos{Row: r, Col: c}, s); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

func glyphState(ch rune) (State, bool) {
	for s, gl := range stateGlyphs {
		if gl == ch {
			return State(s), true
		}
	}
	return Empty, false
}
