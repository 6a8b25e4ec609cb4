package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFileName is the relative location of the log file under the XDG state
// directory.
const LogFileName = "xpath/xpath.log"

// Options controls Setup.
type Options struct {
	// Verbosity is the -v count: 0 warn, 1 info, 2 debug, 3+ trace.
	Verbosity int
	// File is the log file. Empty selects the XDG state location.
	File string
	// Console receives human readable output. Nil means stderr.
	Console io.Writer
	// NoColor disables ANSI colors on the console writer.
	NoColor bool
}

// Setup configures the global logger. Every event goes to the console and
// to the log file; a log file that cannot be opened only costs the file.
func Setup(opts Options) {
	zerolog.SetGlobalLevel(LevelFor(opts.Verbosity))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor || os.Getenv("NO_COLOR") != "",
	}}

	logFile := opts.File
	if logFile == "" {
		logFile = getLogFilePath()
	}
	fh, err := openLogFile(logFile)
	if err == nil {
		writers = append(writers, fh)
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if opts.Verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if err != nil {
		log.Warn().Err(err).Str("path", logFile).Msg("Failed to create log file, logging to console only")
	}
	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", logFile).Msg("Logger initialized")
}

// SetupLogger configures the global logger for a verbosity level, with the
// default log file.
func SetupLogger(verbosity int) {
	Setup(Options{Verbosity: verbosity})
}

// LevelFor maps a -v count to a level.
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// ForPath returns the component logger with the path and its platform
// attached, for code that logs several events about one path.
func ForPath(component, path, platform string) zerolog.Logger {
	return log.With().
		Str("component", component).
		Str("path", path).
		Str("platform", platform).
		Logger()
}

// getLogFilePath returns the log file under XDG_STATE_HOME
// (~/.local/state by default). xdg creates the parent directory.
func getLogFilePath() string {
	p, err := xdg.StateFile(LogFileName)
	if err != nil {
		return filepath.Base(LogFileName)
	}
	return p
}

func openLogFile(logPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// LogCommand logs a command execution with its arguments
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation at trace level and
// returns a function that logs its completion with the elapsed time.
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Trace().Str("operation", operation).Msg("Operation started")

	return func() {
		logger.Trace().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
