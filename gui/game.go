// Package gui is the window visualizer. It adapts ebiten's game loop to the
// editor model: input is translated to editor actions in Update, and Draw
// paints whatever the editor currently shows.
package gui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/katalvlaran/gridpath/gui/editor"
)

// binding ties a key to an editor action.
type binding struct {
	key    ebiten.Key
	action editor.Action
}

// keyBindings lists the keys in the order their actions are applied when
// several are pressed in the same frame.
var keyBindings = []binding{
	{ebiten.KeySpace, editor.ActRun},
	{ebiten.KeyC, editor.ActClear},
	{ebiten.KeyX, editor.ActReset},
	{ebiten.Key1, editor.ActAStar},
	{ebiten.KeyA, editor.ActAStar},
	{ebiten.Key2, editor.ActDijkstra},
	{ebiten.KeyD, editor.ActDijkstra},
	{ebiten.Key3, editor.ActBruteForce},
	{ebiten.KeyB, editor.ActBruteForce},
	{ebiten.KeyM, editor.ActMaze},
	{ebiten.KeyR, editor.ActScatter},
	{ebiten.KeyW, editor.ActWalls},
	{ebiten.KeyEscape, editor.ActCancel},
	{ebiten.KeyTab, editor.ActMenu},
	{ebiten.KeyQ, editor.ActQuit},
}

// Game implements ebiten.Game.
type Game struct {
	ed *editor.Editor
}

// New wraps ed for ebiten.RunGame.
func New(ed *editor.Editor) *Game {
	return &Game{ed: ed}
}

// Run opens the window and blocks until it is closed or the editor's
// context ends.
func Run(ed *editor.Editor, title string) error {
	w, h := ed.Bounds()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowClosingHandled(true)

	err := ebiten.RunGame(New(ed))
	ed.Close()
	return err
}

// Update handles input and advances the search one frame.
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.ed.Close()
		return ebiten.Termination
	}
	if g.ed.Done() {
		return ebiten.Termination
	}

	var pressed []editor.Action
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			pressed = append(pressed, b.action)
		}
	}
	if g.ed.PressAll(pressed...) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	switch {
	case g.ed.Screen() == editor.ScreenMenu:
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.ed.Click(x, y, editor.Primary)
		}
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.ed.Click(x, y, editor.Primary)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		g.ed.Click(x, y, editor.Secondary)
	}

	g.ed.Tick(float32(1 / float64(ebiten.TPS())))
	return nil
}

// Draw paints the menu or the board.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(editor.ColorEmpty)
	if g.ed.Screen() == editor.ScreenMenu {
		g.drawMenu(screen)
		return
	}
	g.drawBoard(screen)
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	w, _ := g.ed.Bounds()
	ebitenutil.DebugPrintAt(screen, "Select Algorithm:", w/2-50, 50)
	for _, b := range g.ed.MenuButtons() {
		fillRect(screen, b.Rect, b.Color)
		ebitenutil.DebugPrintAt(screen, b.Alg.Title(), b.Rect.Min.X+60, b.Rect.Min.Y+18)
	}
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	size := g.ed.CellSize()
	grid := g.ed.Grid()
	for _, c := range grid.Cells() {
		x, y := c.Col()*size, c.Row()*size
		fillRect(screen, image.Rect(x, y, x+size, y+size), g.ed.CellColor(c))
	}

	// Grid lines.
	span := grid.Size() * size
	if size > 2 {
		for i := 0; i <= grid.Size(); i++ {
			fillRect(screen, image.Rect(0, i*size, span, i*size+1), editor.ColorGrid)
			fillRect(screen, image.Rect(i*size, 0, i*size+1, span), editor.ColorGrid)
		}
	}

	w, h := g.ed.Bounds()
	fillRect(screen, image.Rect(0, h-editor.StatusHeight, w, h), editor.ColorGrid)
	ebitenutil.DebugPrintAt(screen, g.ed.Status(), 4, h-editor.StatusHeight+2)
}

// Layout keeps the logical screen at the configured size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.ed.Bounds()
}

// fillRect fills r on dst, clipped to dst's bounds.
func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	dst.SubImage(r).(*ebiten.Image).Fill(c)
}
