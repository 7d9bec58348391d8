// Package log is a thin wrapper around zerolog.
//
// The root logger (used by package-level log.Info, log.Warn etc.)
// falls back to the global zerolog.Logger until ConfigureLogger is
// called. Child loggers created with NewLogger lazily bind to the
// root on first use, so they must not be called before configuration.
package log

import (
	"io"
	"os"
	"strings"
	"sync"

	// needed for async file logging
	_ "code.cloudfoundry.org/go-diodes"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
	zl "github.com/rs/zerolog/log"
)

var (
	root        = zl.Logger
	rootMu      sync.Mutex
	customOut   io.WriteCloser
	customOutMu sync.Mutex
)

// Fielder is implemented by types able to describe themselves as a
// set of structured log fields.
type Fielder interface {
	MarshalZerologObject(e *zerolog.Event)
}

// ConfigureLogger initializes the root logger and, transitively,
// every child logger. output is "stderr", "stdout" or a file path
// (file output is buffered through a diode writer). MUST be called
// before any child logger call.
func ConfigureLogger(output, level string, formatted, colored bool) error {
	var w io.Writer
	switch strings.ToLower(output) {
	case "stderr", "":
		w = os.Stderr
	case "stdout":
		w = os.Stdout
	default:
		f, err := os.OpenFile(output, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o600)
		if err != nil {
			return err
		}
		customOutMu.Lock()
		customOut = diode.NewWriter(f, 1000, 0, func(missed int) {
			zl.Warn().Int("count", missed).Msg("Logger dropped messages")
		})
		w = customOut
		customOutMu.Unlock()
	}
	if formatted {
		w = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    !colored,
			TimeFormat: "2006-01-02 15:04:05.999",
		}
	}
	lvl := zerolog.WarnLevel
	if len(level) > 0 {
		var err error
		if lvl, err = zerolog.ParseLevel(strings.ToLower(level)); err != nil {
			return err
		}
	}
	rootMu.Lock()
	defer rootMu.Unlock()
	root = zerolog.New(w).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(lvl)
	return nil
}

// Close closes the custom output writer if one was configured.
func Close() {
	customOutMu.Lock()
	defer customOutMu.Unlock()
	if customOut != nil {
		_ = customOut.Close()
		customOut = nil
	}
}

// Logger is a component-scoped child of the root logger, bound to the
// root lazily so the output format stays consistent.
type Logger struct {
	comp   string
	zlOnce sync.Once
	zerolog.Logger
}

// NewLogger creates a child logger with the specified component name.
// NOTE: the root logger MUST be configured before any call on the
// returned logger.
func NewLogger(component string) *Logger {
	return &Logger{comp: component}
}

func (l *Logger) init() {
	l.zlOnce.Do(func() {
		l.Logger = root.With().Str("component", l.comp).Logger()
	})
}

// Trace starts a new message with trace level.
func (l *Logger) Trace() *zerolog.Event {
	l.init()
	return l.Logger.Trace()
}

// Debug starts a new message with debug level.
func (l *Logger) Debug() *zerolog.Event {
	l.init()
	return l.Logger.Debug()
}

// Info starts a new message with info level.
func (l *Logger) Info() *zerolog.Event {
	l.init()
	return l.Logger.Info()
}

// Warn starts a new message with warn level.
func (l *Logger) Warn() *zerolog.Event {
	l.init()
	return l.Logger.Warn()
}

// Error starts a new message with error level.
func (l *Logger) Error() *zerolog.Event {
	l.init()
	return l.Logger.Error()
}

// Err starts a new message with error level with err as a field if
// not nil, or with info level otherwise.
func (l *Logger) Err(err error) *zerolog.Event {
	l.init()
	return l.Logger.Err(err)
}

// Fatal starts a new message with fatal level; Msg on the returned
// event terminates the program.
func (l *Logger) Fatal() *zerolog.Event {
	l.init()
	return l.Logger.Fatal()
}

// Trace starts a new root message with trace level.
func Trace() *zerolog.Event { return root.Trace() }

// Debug starts a new root message with debug level.
func Debug() *zerolog.Event { return root.Debug() }

// Info starts a new root message with info level.
func Info() *zerolog.Event { return root.Info() }

// Warn starts a new root message with warn level.
func Warn() *zerolog.Event { return root.Warn() }

// Error starts a new root message with error level.
func Error() *zerolog.Event { return root.Error() }

// Err starts a new root message with error level with err as a field
// if not nil, or with info level otherwise.
func Err(err error) *zerolog.Event { return root.Err(err) }

// Fatal starts a new root message with fatal level; Msg on the
// returned event terminates the program.
func Fatal() *zerolog.Event { return root.Fatal() }
