package log

import "context"

// Logger is the context-aware levelled logger used across the service.
type Logger interface {
	Debug(ctx context.Context, arg ...any)
	Debugf(ctx context.Context, template string, arg ...any)
	Info(ctx context.Context, arg ...any)
	Infof(ctx context.Context, template string, arg ...any)
	Warn(ctx context.Context, arg ...any)
	Warnf(ctx context.Context, template string, arg ...any)
	Error(ctx context.Context, arg ...any)
	Errorf(ctx context.Context, template string, arg ...any)
	Fatal(ctx context.Context, arg ...any)
	Fatalf(ctx context.Context, template string, arg ...any)
	DPanic(ctx context.Context, arg ...any)
	DPanicf(ctx context.Context, template string, arg ...any)
	Panic(ctx context.Context, arg ...any)
	Panicf(ctx context.Context, template string, arg ...any)
}

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // debug or production
	Encoding     string // console or json
	ColorEnabled bool
}

// Init builds the zap-backed Logger from config.
func Init(cfg ZapConfig) Logger {
	return newZapLogger(cfg)
}
