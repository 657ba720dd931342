// Command pathviz-gui animates grid path searches in a window. It opens on
// the algorithm menu; pick one, place start, end and walls with the mouse,
// then press space.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/gui"
	"github.com/katalvlaran/gridpath/gui/editor"
	"github.com/katalvlaran/gridpath/layout"
	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/session"
)

// frame is the duration of one ebiten tick at the default 60 TPS.
const frame = time.Second / 60

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "pathviz-gui:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg := config.Default()
	fs := flag.NewFlagSet("pathviz-gui", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer closer.Close()
	log := logger.WithField("app", "pathviz-gui")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rec := metrics.NewRecorder()
	go func() {
		if err := rec.Serve(ctx, cfg.MetricsAddr, log); err != nil {
			log.WithError(err).Error("metrics endpoint stopped")
		}
	}()

	sess, err := session.New(cfg.Rows,
		session.WithAlgorithm(cfg.SearchAlgorithm()),
		session.WithLogger(log),
		session.WithRecorder(rec),
		session.WithLayoutSeed(cfg.LayoutSeed()),
		session.WithDensity(cfg.Density),
	)
	if err != nil {
		return err
	}
	if k := cfg.LayoutKind(); k != layout.None {
		if _, err := sess.ApplyLayout(k); err != nil {
			return err
		}
	}

	ed := editor.New(sess, editor.Options{
		Width:        cfg.Width,
		StepsPerTick: stepsPerTick(cfg.FrameDelay),
		Timed:        cfg.Timed,
		Log:          log,
		Ctx:          ctx,
	})

	log.WithFields(logrus.Fields{
		"rows":  cfg.Rows,
		"width": cfg.Width,
	}).Info("pathviz-gui started")
	return gui.Run(ed, "Path Finding Visualizer")
}

// stepsPerTick converts a per-step delay into search steps per frame.
func stepsPerTick(delay time.Duration) int {
	if delay <= 0 {
		return 64
	}
	if n := int(frame / delay); n > 1 {
		return n
	}
	return 1
}
