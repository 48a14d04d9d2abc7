package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	charmLog "github.com/charmbracelet/log"
)

const (
	appName        = "servarr-dash"
	defaultLogFile = "servarr-dash.log"
)

var (
	traceMu      sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile

	loggerMu sync.RWMutex
	logger   = newLogger(io.Discard, charmLog.InfoLevel)
)

// Options configures the runtime log file and trace stream.
type Options struct {
	Path  string
	Level string
	Trace bool
}

func newLogger(w io.Writer, level charmLog.Level) *charmLog.Logger {
	return charmLog.NewWithOptions(w, charmLog.Options{
		Level:           level,
		Prefix:          appName,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       charmLog.LogfmtFormatter,
	})
}

// Setup points the runtime logger and the trace stream at the configured
// file. The terminal belongs to the UI, so nothing is written to stderr. The
// returned func closes the log file.
func Setup(opts Options) (func() error, error) {
	level := charmLog.InfoLevel
	if strings.TrimSpace(opts.Level) != "" {
		parsed, err := charmLog.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("parse logging level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	Configure(opts.Path)
	SetTraceEnabled(opts.Trace)

	traceMu.Lock()
	path := logPath
	traceMu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	loggerMu.Lock()
	logger = newLogger(f, level)
	loggerMu.Unlock()

	return func() error {
		loggerMu.Lock()
		logger = newLogger(io.Discard, level)
		loggerMu.Unlock()
		return f.Close()
	}, nil
}

// Logger returns the process logger. It discards output until Setup runs.
func Logger() *charmLog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// Error records err on the runtime log.
func Error(err error) {
	if err == nil {
		return
	}
	Logger().Error("error", "err", err)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	traceMu.Lock()
	traceEnabled = enabled
	traceMu.Unlock()
}

// TraceEnabled reports whether trace entries are being written.
func TraceEnabled() bool {
	traceMu.Lock()
	defer traceMu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload any) {
	traceMu.Lock()
	enabled := traceEnabled
	path := logPath
	traceMu.Unlock()
	if !enabled {
		return
	}

	entry := struct {
		Time    time.Time `json:"time"`
		Event   string    `json:"event"`
		Payload any       `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Event:   event,
		Payload: payload,
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		Logger().Warn("trace logging failed", "err", err)
		return
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	if err := enc.Encode(entry); err != nil {
		Logger().Warn("trace encoding failed", "err", err)
	}
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	traceMu.Lock()
	defer traceMu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}
