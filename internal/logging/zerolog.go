package logging

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// ZerologLogger adapts a zerolog.Logger to the Logger interface.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger wraps the given zerolog.Logger.
func NewZerologLogger(logger zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{logger: logger}
}

func (l *ZerologLogger) Info(ctx context.Context, msg string, args ...any) {
	withFields(l.logger.Info(), args).Msg(msg)
}

func (l *ZerologLogger) Warn(ctx context.Context, msg string, args ...any) {
	withFields(l.logger.Warn(), args).Msg(msg)
}

func (l *ZerologLogger) Error(ctx context.Context, msg string, args ...any) {
	withFields(l.logger.Error(), args).Msg(msg)
}

func (l *ZerologLogger) With(args ...any) Logger {
	ctx := l.logger.With()
	for i := 0; i+1 < len(args); i += 2 {
		ctx = ctx.Interface(key(args[i]), args[i+1])
	}
	return &ZerologLogger{logger: ctx.Logger()}
}

// withFields attaches key-value pairs to the event. An odd trailing argument
// is attached under the key "arg".
func withFields(e *zerolog.Event, args []any) *zerolog.Event {
	i := 0
	for ; i+1 < len(args); i += 2 {
		e = e.Interface(key(args[i]), args[i+1])
	}
	if i < len(args) {
		e = e.Interface("arg", args[i])
	}
	return e
}

func key(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
