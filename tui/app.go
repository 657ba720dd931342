// Package tui is the terminal visualizer: a tcell screen showing the board
// as two-column blocks, edited with the mouse and driven by single keys.
//
// Keys: space run, c clear, 1/2/3 or a/d/b pick the algorithm, m/r/w paint
// a maze, random scatter or walls, x wipe search marks, q/Esc quit. While a
// search is animating, Esc or q cancels it and Ctrl-C cancels and quits.
package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/layout"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/session"
)

const (
	cellWidth = 2 // terminal columns per board cell
	boardTop  = 1 // first screen row of the board; row 0 is the header
	helpText  = "space run  c clear  1/2/3 algorithm  m/r/w layout  x reset  q quit"
)

// Options tune the terminal driver.
type Options struct {
	FrameDelay time.Duration
	Timed      bool
	Chime      *Chime
	Log        *logrus.Entry
}

// App binds a screen to a session.
type App struct {
	screen tcell.Screen
	sess   *session.Session
	opts   Options
	ctx    context.Context

	events chan tcell.Event
	done   chan struct{}

	status    string
	cancelled bool
	quitting  bool
}

// New wires an initialized screen to sess.
func New(screen tcell.Screen, sess *session.Session, opts Options) *App {
	if opts.Log == nil {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		opts.Log = logrus.NewEntry(quiet)
	}
	return &App{
		screen: screen,
		sess:   sess,
		opts:   opts,
		ctx:    context.Background(),
		events: make(chan tcell.Event, 64),
		done:   make(chan struct{}),
		status: "left click: start, end, walls   right click: erase",
	}
}

// Run pumps screen events until the user quits or ctx is done. The caller
// owns screen.Init and screen.Fini.
func (a *App) Run(ctx context.Context) error {
	a.ctx = ctx
	a.screen.EnableMouse()
	defer close(a.done)

	go a.poll()

	for {
		a.draw()
		select {
		case <-ctx.Done():
			return nil
		case ev := <-a.events:
			if !a.handle(ev) {
				return nil
			}
		}
	}
}

// poll forwards screen events until the screen is finalized or Run returns.
func (a *App) poll() {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-a.done:
			return
		}
	}
}

// handle applies one idle-time event and reports whether to keep running.
func (a *App) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return true
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	p, ok := a.cellAt(ev.Position())
	if !ok {
		return
	}
	var err error
	switch {
	case ev.Buttons()&tcell.Button1 != 0:
		err = a.sess.Paint(p)
	case ev.Buttons()&tcell.Button2 != 0:
		err = a.sess.Erase(p)
	}
	if err != nil {
		a.opts.Log.WithError(err).WithField("cell", p).Debug("edit rejected")
	}
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case ' ':
		a.runSearch()
		return !a.quitting
	case 'c':
		a.report(a.sess.ClearAll(), "board cleared")
	case 'x':
		a.report(a.sess.ResetMarks(), "search marks cleared")
	case '1', 'a':
		a.selectAlgorithm(search.AlgAStar)
	case '2', 'd':
		a.selectAlgorithm(search.AlgDijkstra)
	case '3', 'b':
		a.selectAlgorithm(search.AlgBruteForce)
	case 'm':
		a.applyLayout(layout.Maze)
	case 'r':
		a.applyLayout(layout.Scatter)
	case 'w':
		a.applyLayout(layout.Walls)
	}
	return true
}

func (a *App) report(err error, ok string) {
	if err != nil {
		a.status = err.Error()
		return
	}
	a.status = ok
}

func (a *App) selectAlgorithm(alg search.Algorithm) {
	a.report(a.sess.SetAlgorithm(alg), alg.Title()+" selected")
}

func (a *App) applyLayout(k layout.Kind) {
	n, err := a.sess.ApplyLayout(k)
	a.report(err, fmt.Sprintf("%s layout: %d barriers", k, n))
}

// runSearch animates one search. Input is only read between steps.
func (a *App) runSearch() {
	a.cancelled = false
	a.status = a.sess.Algorithm().Title() + ": searching"

	res, err := a.sess.Run(a.ctx,
		search.WithStep(a.onStep),
		search.WithInterrupt(func() bool { return a.cancelled }),
	)
	a.status = statusLine(a.sess.Algorithm(), res, err, a.opts.Timed)
	if err == nil && !res.Cancelled {
		a.opts.Chime.Play(res.Found)
	}
}

// onStep repaints, waits one frame and drains pending input.
func (a *App) onStep(st search.Step) {
	if a.opts.Timed {
		a.status = fmt.Sprintf("%s: searching  %.2fs", a.sess.Algorithm().Title(), st.Elapsed.Seconds())
	}
	a.draw()
	if a.opts.FrameDelay > 0 {
		time.Sleep(a.opts.FrameDelay)
	}
	for {
		select {
		case ev := <-a.events:
			a.handleBusy(ev)
		default:
			return
		}
	}
}

// handleBusy reacts to input that arrives mid-search.
func (a *App) handleBusy(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyCtrlC:
			a.cancelled, a.quitting = true, true
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			a.cancelled = true
		}
	}
}

// cellAt converts screen coordinates to a board position.
func (a *App) cellAt(x, y int) (gridgraph.Pos, bool) {
	p := gridgraph.Pos{Row: y - boardTop, Col: x / cellWidth}
	if x < 0 || !a.sess.Grid().InBounds(p) {
		return gridgraph.Pos{}, false
	}
	return p, true
}

// draw renders header, board and status line.
func (a *App) draw() {
	a.screen.Clear()
	w, _ := a.screen.Size()

	g := a.sess.Grid()
	drawText(a.screen, 0, 0, w, " "+a.sess.Algorithm().Title()+"  |  "+helpText, headerStyle)
	for _, c := range g.Cells() {
		st := cellStyle(c.State())
		x, y := c.Col()*cellWidth, c.Row()+boardTop
		for dx := 0; dx < cellWidth; dx++ {
			a.screen.SetContent(x+dx, y, ' ', nil, st)
		}
	}
	drawText(a.screen, 0, boardTop+g.Size(), w, " "+a.status, statusStyle)
	a.screen.Show()
}

// drawText writes s at (x, y) and pads the row to width w with style.
func drawText(s tcell.Screen, x, y, w int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		s.SetContent(col, y, r, nil, style)
		col++
	}
	for ; col < w; col++ {
		s.SetContent(col, y, ' ', nil, style)
	}
}

// statusLine summarizes a finished run.
func statusLine(alg search.Algorithm, res search.Result, err error, timed bool) string {
	var msg string
	switch {
	case err != nil:
		msg = err.Error()
	case res.Cancelled:
		msg = "cancelled"
	case res.Found:
		msg = fmt.Sprintf("path found: %d steps, %d cells expanded", res.Steps(), res.Expanded)
	default:
		msg = fmt.Sprintf("no path: %d cells expanded", res.Expanded)
	}
	if timed && err == nil {
		msg += fmt.Sprintf("  %.2fs", res.Elapsed.Seconds())
	}
	return alg.Title() + ": " + msg
}
