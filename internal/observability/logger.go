// Package observability builds the application's zap logger and a matching
// logger for the actor system, both writing to the same sinks.
package observability

import (
	"fmt"
	"io"
	"os"
	"strings"

	golog "github.com/tochemey/goakt/v3/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lao-tseu-is-alive/go-snowfield/internal/config"
)

// Logging bundles the loggers of one process.
type Logging struct {
	Logger *zap.Logger
	Level  zap.AtomicLevel

	// sink receives the actor system's output.
	sink   io.Writer
	closer io.Closer
}

// New builds the loggers. console receives human or JSON output depending
// on cfg.Format; pass nil to log only to cfg.LogFile (the terminal host owns
// stdout). With neither, everything is discarded.
func New(cfg config.LoggerConfig, console zapcore.WriteSyncer) *Logging {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	var (
		cores   []zapcore.Core
		writers []io.Writer
		closer  io.Closer
	)
	if console != nil {
		cores = append(cores, zapcore.NewCore(getEncoder(cfg.Format), console, level))
		writers = append(writers, console)
	}
	if cfg.LogFile != "" {
		// lumberjack handles file rotation and thread-safe writes.
		file := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		// File encoder is always JSON for structured logging.
		cores = append(cores, zapcore.NewCore(getEncoder("json"), zapcore.AddSync(file), level))
		writers = append(writers, file)
		closer = file
	}

	l := &Logging{Level: level, closer: closer}
	if len(cores) == 0 {
		l.Logger = zap.NewNop()
		l.sink = io.Discard
		return l
	}

	options := []zap.Option{zap.AddStacktrace(zap.ErrorLevel)}
	if cfg.AddSource {
		options = append(options, zap.AddCaller())
	}
	name := cfg.ServiceName
	if name == "" {
		name = "snowfield"
	}
	l.Logger = zap.New(zapcore.NewTee(cores...), options...).Named(name)
	l.sink = io.MultiWriter(writers...)
	return l
}

// NewConsole is New writing to a locked stderr.
func NewConsole(cfg config.LoggerConfig) *Logging {
	return New(cfg, zapcore.Lock(os.Stderr))
}

// ActorLogger returns a goakt logger at the same level, writing to the same
// sinks as Logger.
func (l *Logging) ActorLogger() golog.Logger {
	if l.sink == io.Discard {
		return golog.DiscardLogger
	}
	return golog.New(actorLevel(l.Level.Level()), l.sink)
}

func actorLevel(level zapcore.Level) golog.Level {
	switch {
	case level <= zapcore.DebugLevel:
		return golog.DebugLevel
	case level == zapcore.InfoLevel:
		return golog.InfoLevel
	case level == zapcore.WarnLevel:
		return golog.WarningLevel
	default:
		return golog.ErrorLevel
	}
}

// Close flushes buffered entries and closes the log file, if any.
func (l *Logging) Close() error {
	err := l.Logger.Sync()
	if err != nil && isHarmlessSyncError(err) {
		err = nil
	}
	if l.closer != nil {
		if cerr := l.closer.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if err != nil {
		return fmt.Errorf("failed to sync logger: %w", err)
	}
	return nil
}

// isHarmlessSyncError matches the errors returned when syncing a terminal.
func isHarmlessSyncError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "sync /dev/stdout") ||
		strings.Contains(msg, "sync /dev/stderr") ||
		strings.Contains(msg, "invalid argument") ||
		strings.Contains(msg, "inappropriate ioctl") ||
		strings.Contains(msg, "operation not supported")
}

// getEncoder returns a colourised single-line console encoder, or JSON.
func getEncoder(format string) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	// Use a more human-readable time format.
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")

	if format == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderConfig.EncodeName = func(loggerName string, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(loggerName + ".")
		}
		return zapcore.NewConsoleEncoder(encoderConfig)
	}

	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder // e.g., "INFO", "ERROR"
	return zapcore.NewJSONEncoder(encoderConfig)
}
