// Package editor is the display-independent model behind the window
// visualizer: the algorithm menu, mouse editing, a search that advances a
// few steps per frame, and the fade that reveals a found path.
package editor

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/layout"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/session"
)

// StatusHeight is the pixel height of the status bar under the board.
const StatusHeight = 20

// fadeSeconds is how long a found path takes to blend from empty to path.
const fadeSeconds = 0.6

// Screen is the visible page.
type Screen int

const (
	// ScreenMenu shows the algorithm buttons.
	ScreenMenu Screen = iota
	// ScreenBoard shows the editable board.
	ScreenBoard
)

// Action is a keyboard command.
type Action int

const (
	ActRun Action = iota
	ActClear
	ActReset
	ActAStar
	ActDijkstra
	ActBruteForce
	ActMaze
	ActScatter
	ActWalls
	ActCancel
	ActMenu
	ActQuit
)

// Button is a mouse button.
type Button int

const (
	Primary Button = iota
	Secondary
)

// MenuButton is one algorithm choice on the menu page.
type MenuButton struct {
	Rect  image.Rectangle
	Alg   search.Algorithm
	Color color.RGBA
}

// Options tune the editor.
type Options struct {
	Width        int // window side in pixels
	StepsPerTick int // search steps per frame; < 1 means 1
	Timed        bool
	Log          *logrus.Entry
	Ctx          context.Context // cancels a running search and ends the editor
}

// Editor holds the window state.
type Editor struct {
	sess *session.Session
	opts Options

	screen  Screen
	buttons []MenuButton
	status  string

	run        *stepper
	cancelReq  bool
	lastStep   search.Step
	fade       *gween.Tween
	fadeAmount float32
}

// New creates an editor on the menu page.
func New(sess *session.Session, opts Options) *Editor {
	if opts.StepsPerTick < 1 {
		opts.StepsPerTick = 1
	}
	if opts.Ctx == nil {
		opts.Ctx = context.Background()
	}
	if opts.Log == nil {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		opts.Log = logrus.NewEntry(quiet)
	}

	e := &Editor{sess: sess, opts: opts, fadeAmount: 1}
	for i, alg := range search.Algorithms {
		y := 150 + 100*i
		e.buttons = append(e.buttons, MenuButton{
			Rect:  image.Rect(100, y, 300, y+50),
			Alg:   alg,
			Color: menuColors[i%len(menuColors)],
		})
	}
	return e
}

// Screen returns the visible page.
func (e *Editor) Screen() Screen { return e.screen }

// MenuButtons returns the algorithm buttons.
func (e *Editor) MenuButtons() []MenuButton { return e.buttons }

// Status returns the status bar text.
func (e *Editor) Status() string { return e.status }

// Running reports whether a search is animating.
func (e *Editor) Running() bool { return e.run != nil }

// Grid returns the board being edited.
func (e *Editor) Grid() *gridgraph.Grid { return e.sess.Grid() }

// Algorithm returns the selected algorithm.
func (e *Editor) Algorithm() search.Algorithm { return e.sess.Algorithm() }

// CellSize is the side of one cell in pixels.
func (e *Editor) CellSize() int {
	if n := e.sess.Grid().Size(); n > 0 && e.opts.Width >= n {
		return e.opts.Width / n
	}
	return 1
}

// Bounds returns the logical window size.
func (e *Editor) Bounds() (int, int) { return e.opts.Width, e.opts.Width + StatusHeight }

// CellColor returns the display color of c. Path cells stay at the empty
// color while the route is being marked and blend to the path color once
// the search has finished.
func (e *Editor) CellColor(c *gridgraph.Cell) color.RGBA {
	if c.IsPath() {
		return lerp(ColorEmpty, ColorPath, e.fadeAmount)
	}
	return stateColor(c.State())
}

// Click handles a mouse press at window coordinates.
func (e *Editor) Click(x, y int, b Button) {
	if e.screen == ScreenMenu {
		if b != Primary {
			return
		}
		pt := image.Pt(x, y)
		for _, btn := range e.buttons {
			if pt.In(btn.Rect) {
				e.enterBoard(btn.Alg)
				return
			}
		}
		return
	}
	if e.Running() {
		return
	}

	size := e.CellSize()
	if x < 0 || y < 0 {
		return
	}
	p := gridgraph.Pos{Row: y / size, Col: x / size}
	if !e.sess.Grid().InBounds(p) {
		return
	}
	var err error
	if b == Primary {
		err = e.sess.Paint(p)
	} else {
		err = e.sess.Erase(p)
	}
	if err != nil {
		e.opts.Log.WithError(err).WithField("cell", p).Debug("edit rejected")
	}
}

// enterBoard shows the current board with alg selected. The board keeps
// whatever was painted before, including a layout applied at startup.
func (e *Editor) enterBoard(alg search.Algorithm) {
	e.report(e.sess.SetAlgorithm(alg), alg.Title()+": left click start, end, walls; right click erase; space run")
	e.screen = ScreenBoard
}

// PressAll applies actions in order and stops at the first one that closes
// the window.
func (e *Editor) PressAll(actions ...Action) (quit bool) {
	for _, a := range actions {
		if e.Press(a) {
			return true
		}
	}
	return false
}

// Done reports whether the editor's context has ended. The first time it
// does, any running search is stopped.
func (e *Editor) Done() bool {
	select {
	case <-e.opts.Ctx.Done():
		e.Close()
		return true
	default:
		return false
	}
}

// Press applies a keyboard action and reports whether the window should close.
func (e *Editor) Press(a Action) (quit bool) {
	if a == ActQuit {
		e.Close()
		return true
	}
	if e.Running() {
		if a == ActCancel {
			e.cancelReq = true
		}
		return false
	}
	if e.screen == ScreenMenu {
		return false
	}

	switch a {
	case ActRun:
		e.start()
	case ActClear:
		e.report(e.sess.ClearAll(), "board cleared")
	case ActReset:
		e.report(e.sess.ResetMarks(), "search marks cleared")
	case ActAStar:
		e.selectAlgorithm(search.AlgAStar)
	case ActDijkstra:
		e.selectAlgorithm(search.AlgDijkstra)
	case ActBruteForce:
		e.selectAlgorithm(search.AlgBruteForce)
	case ActMaze:
		e.applyLayout(layout.Maze)
	case ActScatter:
		e.applyLayout(layout.Scatter)
	case ActWalls:
		e.applyLayout(layout.Walls)
	case ActMenu, ActCancel:
		e.screen = ScreenMenu
	}
	return false
}

func (e *Editor) report(err error, ok string) {
	if err != nil {
		e.status = err.Error()
		return
	}
	if ok != "" {
		e.status = ok
	}
}

func (e *Editor) selectAlgorithm(alg search.Algorithm) {
	e.report(e.sess.SetAlgorithm(alg), alg.Title()+" selected")
}

func (e *Editor) applyLayout(k layout.Kind) {
	n, err := e.sess.ApplyLayout(k)
	e.report(err, fmt.Sprintf("%s layout: %d barriers", k, n))
}

// start launches the search; it first runs on the next Tick.
func (e *Editor) start() {
	g := e.sess.Grid()
	if g.Start() == nil || g.End() == nil {
		e.status = session.ErrNotReady.Error()
		return
	}
	e.cancelReq = false
	e.lastStep = search.Step{}
	e.fade, e.fadeAmount = nil, 0
	e.status = e.Algorithm().Title() + ": searching"
	e.run = newStepper(func(step search.StepFunc, interrupt func() bool) (search.Result, error) {
		return e.sess.Run(e.opts.Ctx, search.WithStep(step), search.WithInterrupt(interrupt))
	})
}

// Tick advances the search by up to StepsPerTick steps and the path fade by
// dt seconds.
func (e *Editor) Tick(dt float32) {
	if e.fade != nil {
		v, done := e.fade.Update(dt)
		e.fadeAmount = v
		if done {
			e.fade = nil
		}
	}
	if e.run == nil {
		return
	}

	for i := 0; i < e.opts.StepsPerTick; i++ {
		st, out := e.run.advance(e.cancelReq)
		if out != nil {
			e.finish(*out)
			return
		}
		e.lastStep = *st
	}
	if e.opts.Timed {
		e.status = fmt.Sprintf("%s: searching  %.2fs", e.Algorithm().Title(), e.lastStep.Elapsed.Seconds())
	}
}

// finish records a completed search.
func (e *Editor) finish(out outcome) {
	e.run = nil
	res := out.res
	switch {
	case out.err != nil:
		e.status = out.err.Error()
		return
	case res.Cancelled:
		e.status = e.Algorithm().Title() + ": cancelled"
		return
	case res.Found:
		e.status = fmt.Sprintf("%s: path found: %d steps, %d cells expanded", e.Algorithm().Title(), res.Steps(), res.Expanded)
		e.fade = gween.New(0, 1, fadeSeconds, ease.OutQuad)
		e.fadeAmount = 0
	default:
		e.status = fmt.Sprintf("%s: no path: %d cells expanded", e.Algorithm().Title(), res.Expanded)
	}
	if e.opts.Timed {
		e.status += fmt.Sprintf("  %.2fs", res.Elapsed.Seconds())
	}
}

// Close stops a running search and waits for it to return.
func (e *Editor) Close() {
	if e.run != nil {
		e.finish(e.run.finish())
	}
}
