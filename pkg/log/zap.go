package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

func newZapLogger(cfg ZapConfig) *zapLogger {
	level := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(cfg.Level); err == nil {
		level = parsed
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	if cfg.Mode == "debug" {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	}
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding != "json" {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == "json" {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)

	opts := []zap.Option{zap.AddCallerSkip(1)}
	if cfg.Mode == "debug" {
		opts = append(opts, zap.Development())
	}

	return &zapLogger{sugar: zap.New(core, opts...).Sugar()}
}

func (l *zapLogger) Debug(ctx context.Context, arg ...any) { l.sugar.Debug(arg...) }
func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.sugar.Debugf(template, arg...)
}
func (l *zapLogger) Info(ctx context.Context, arg ...any) { l.sugar.Info(arg...) }
func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.sugar.Infof(template, arg...)
}
func (l *zapLogger) Warn(ctx context.Context, arg ...any) { l.sugar.Warn(arg...) }
func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.sugar.Warnf(template, arg...)
}
func (l *zapLogger) Error(ctx context.Context, arg ...any) { l.sugar.Error(arg...) }
func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.sugar.Errorf(template, arg...)
}
func (l *zapLogger) Fatal(ctx context.Context, arg ...any) { l.sugar.Fatal(arg...) }
func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.sugar.Fatalf(template, arg...)
}
func (l *zapLogger) DPanic(ctx context.Context, arg ...any) { l.sugar.DPanic(arg...) }
func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.sugar.DPanicf(template, arg...)
}
func (l *zapLogger) Panic(ctx context.Context, arg ...any) { l.sugar.Panic(arg...) }
func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.sugar.Panicf(template, arg...)
}
