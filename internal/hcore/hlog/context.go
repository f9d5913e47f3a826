package hlog

import (
	"context"
	"io"
	"log/slog"
)

type loggerCtxKey struct{}

var nop = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

// From returns the logger attached to ctx, or a logger that discards everything.
func From(ctx context.Context) Logger {
	l, ok := ctx.Value(loggerCtxKey{}).(Logger)
	if !ok {
		return nop
	}
	return l
}

func ContextWithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, l)
}

// ContextWith attaches attributes to the logger carried by ctx.
func ContextWith(ctx context.Context, args ...any) context.Context {
	return ContextWithLogger(ctx, From(ctx).With(args...))
}
