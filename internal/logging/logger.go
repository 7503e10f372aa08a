package logging

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// LevelEnv selects the log level when --verbose is not given
const LevelEnv = "JESTPATH_LOG_LEVEL"

var (
	base     *logrus.Logger
	baseOnce sync.Once
	loggers  = make(map[string]*logrus.Entry)
	mu       sync.Mutex
)

func root() *logrus.Logger {
	baseOnce.Do(func() {
		base = logrus.New()
		base.SetOutput(os.Stderr)
		base.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})

		base.SetLevel(envLevel())
	})
	return base
}

// envLevel is the level selected by LevelEnv, warn when unset or invalid
func envLevel() logrus.Level {
	level, err := logrus.ParseLevel(os.Getenv(LevelEnv))
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}

// NewLogger returns the logger for component, creating it on first use
func NewLogger(component string) *logrus.Entry {
	mu.Lock()
	defer mu.Unlock()

	if logger, ok := loggers[component]; ok {
		return logger
	}
	logger := root().WithField("component", component)
	loggers[component] = logger
	return logger
}

// SetVerbose switches every component logger to debug level, or back to
// the level selected by the environment
func SetVerbose(verbose bool) {
	if verbose {
		root().SetLevel(logrus.DebugLevel)
		return
	}
	root().SetLevel(envLevel())
}

// SetOutput redirects every component logger
func SetOutput(w io.Writer) {
	root().SetOutput(w)
}

// SetJSON switches to logrus' JSON formatter, for callers that parse stderr
func SetJSON() {
	root().SetFormatter(&logrus.JSONFormatter{})
}
