package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

var (
	once   sync.Once
	global *zap.SugaredLogger
)

func get() *zap.SugaredLogger {
	once.Do(func() {
		l, err := zap.NewProduction(zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
		global = l.Sugar()
	})
	return global
}

// ctx is accepted on every call so request-scoped fields can be attached
// later without touching call sites.

func Info(_ context.Context, args ...interface{}) {
	get().Info(args...)
}

func Infof(_ context.Context, format string, args ...interface{}) {
	get().Infof(format, args...)
}

func Warnf(_ context.Context, format string, args ...interface{}) {
	get().Warnf(format, args...)
}

func Error(_ context.Context, args ...interface{}) {
	get().Error(args...)
}

func Errorf(_ context.Context, format string, args ...interface{}) {
	get().Errorf(format, args...)
}

func Fatal(_ context.Context, args ...interface{}) {
	get().Fatal(args...)
}
