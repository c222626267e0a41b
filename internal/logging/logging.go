// internal/logging/logging.go
package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. Initialized with defaults so that
// packages can log before Init runs (e.g. in tests).
var Log = NewLogger("info")

// Init replaces the package-level logger with one at the given level.
func Init(level string) {
	Log = NewLogger(level)
}

// NewLogger creates a logger with a specific level.
func NewLogger(level string) *logrus.Logger {

	var log = logrus.New()

	// Using JSON format for structured logging.
	log.SetFormatter(&logrus.JSONFormatter{})

	log.SetOutput(os.Stdout)

	switch strings.ToLower(level) {
	case "trace":
		log.SetLevel(logrus.TraceLevel)
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "info":
		log.SetLevel(logrus.InfoLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
