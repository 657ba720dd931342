// Command pathviz animates grid path searches in the terminal.
//
// Usage:
//
//	pathviz [-rows 30] [-algorithm astar] [-layout maze] [-delay 10ms] [-sound]
//
// The terminal is owned by the board, so logs go to -log-file
// (pathviz.log by default).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/layout"
	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/session"
	"github.com/katalvlaran/gridpath/tui"
)

const defaultLogFile = "pathviz.log"

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "pathviz:", err)
		os.Exit(1)
	}
}

// parse reads and validates the command line.
func parse(args []string) (config.Config, error) {
	cfg := config.Default()
	cfg.Rows = 30
	cfg.LogFile = defaultLogFile

	fs := flag.NewFlagSet("pathviz", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func run(args []string) error {
	cfg, err := parse(args)
	if err != nil {
		return err
	}

	logger, closer, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer closer.Close()
	log := logger.WithField("app", "pathviz")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rec := metrics.NewRecorder()
	go func() {
		if err := rec.Serve(ctx, cfg.MetricsAddr, log); err != nil {
			log.WithError(err).Error("metrics endpoint stopped")
		}
	}()

	sess, err := newSession(cfg, log, rec)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	var chime *tui.Chime
	if cfg.Sound {
		if chime, err = tui.NewChime(); err != nil {
			log.WithError(err).Warn("audio unavailable, continuing without sound")
		}
		defer chime.Close()
	}

	log.WithFields(logrus.Fields{
		"rows":      cfg.Rows,
		"algorithm": cfg.Algorithm,
		"layout":    cfg.Layout,
	}).Info("pathviz started")

	app := tui.New(screen, sess, tui.Options{
		FrameDelay: cfg.FrameDelay,
		Timed:      cfg.Timed,
		Chime:      chime,
		Log:        log,
	})
	return app.Run(ctx)
}

// newSession builds the board and paints the initial layout.
func newSession(cfg config.Config, log *logrus.Entry, rec *metrics.Recorder) (*session.Session, error) {
	sess, err := session.New(cfg.Rows,
		session.WithAlgorithm(cfg.SearchAlgorithm()),
		session.WithLogger(log),
		session.WithRecorder(rec),
		session.WithLayoutSeed(cfg.LayoutSeed()),
		session.WithDensity(cfg.Density),
	)
	if err != nil {
		return nil, err
	}
	if k := cfg.LayoutKind(); k != layout.None {
		if _, err := sess.ApplyLayout(k); err != nil {
			return nil, err
		}
	}
	return sess, nil
}
