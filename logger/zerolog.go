package logger

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// ZerologLogger adapts a zerolog.Logger to the Logger interface.
type ZerologLogger struct {
	logger zerolog.Logger
	level  *atomic.Int32
}

var _ Logger = (*ZerologLogger)(nil)

// NewZerolog creates a Logger backed by zerolog writing to stderr.
func NewZerolog(level Level) Logger {
	return WrapZerolog(zerolog.New(os.Stderr).With().Timestamp().Logger(), level)
}

// WrapZerolog adapts an existing zerolog.Logger, so an application already
// configured around zerolog can feed go-mesh logs into its own sinks.
func WrapZerolog(zl zerolog.Logger, level Level) Logger {
	l := &ZerologLogger{level: &atomic.Int32{}}
	l.level.Store(int32(level))
	l.logger = zl.Level(toZerologLevel(level))
	return l
}

func (l *ZerologLogger) Debug(msg string, keysAndValues ...any) {
	l.emit(l.logger.Debug(), msg, keysAndValues)
}

func (l *ZerologLogger) Info(msg string, keysAndValues ...any) {
	l.emit(l.logger.Info(), msg, keysAndValues)
}

func (l *ZerologLogger) Warn(msg string, keysAndValues ...any) {
	l.emit(l.logger.Warn(), msg, keysAndValues)
}

func (l *ZerologLogger) Error(msg string, keysAndValues ...any) {
	l.emit(l.logger.Error(), msg, keysAndValues)
}

func (l *ZerologLogger) Fatal(msg string, keysAndValues ...any) {
	l.emit(l.logger.Fatal(), msg, keysAndValues)
}

func (l *ZerologLogger) With(keyValues ...any) Logger {
	ctx := l.logger.With()
	for i := 0; i+1 < len(keyValues); i += 2 {
		ctx = ctx.Interface(fmt.Sprint(keyValues[i]), keyValues[i+1])
	}
	return &ZerologLogger{logger: ctx.Logger(), level: l.level}
}

func (l *ZerologLogger) Level() Level {
	return Level(l.level.Load())
}

func (l *ZerologLogger) SetLevel(level Level) {
	l.level.Store(int32(level))
	l.logger = l.logger.Level(toZerologLevel(level))
}

// emit attaches the key-value pairs to the event. A trailing key without a
// value is logged under the "arg" key rather than dropped.
func (l *ZerologLogger) emit(ev *zerolog.Event, msg string, keysAndValues []any) {
	if ev == nil {
		return
	}
	i := 0
	for ; i+1 < len(keysAndValues); i += 2 {
		ev = ev.Interface(fmt.Sprint(keysAndValues[i]), keysAndValues[i+1])
	}
	if i < len(keysAndValues) {
		ev = ev.Interface("arg", keysAndValues[i])
	}
	ev.Msg(msg)
}

func toZerologLevel(level Level) zerolog.Level {
	switch level {
	case DebugLevel:
		return zerolog.DebugLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	case FatalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}
