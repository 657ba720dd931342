package config

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// parseLevel accepts logrus level names.
func parseLevel(s string) (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(s)
	if err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}

// NewLogger builds the application logger. With LogFile set the file is
// opened for append and returned as the closer; otherwise logs go to stderr
// and the closer is a no-op. The terminal visualizer must log to a file
// because the screen is owned by the renderer.
func (c Config) NewLogger() (*logrus.Logger, io.Closer, error) {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	log := logrus.New()
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if c.LogFile == "" {
		log.SetOutput(os.Stderr)
		return log, nopCloser{}, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("config: open log file: %w", err)
	}
	log.SetOutput(f)
	return log, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
