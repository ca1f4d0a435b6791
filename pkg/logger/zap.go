package logger

import (
	"context"

	"go.uber.org/zap"
)

// ZapLogger — обёртка над zap, реализующая ports.Logger.
// Контекст в методах сейчас не используется, но остаётся в сигнатуре
// для единообразия с портом.
type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

// NewZapLogger — production- или development-конфигурация zap.
// Вторым значением возвращается cleanup (Sync) для defer в main.
func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	build := zap.NewDevelopment
	if isProd {
		build = zap.NewProduction
	}

	base, err := build()
	if err != nil {
		return nil, nil, err
	}

	z := &ZapLogger{
		base:   base,
		sugar:  base.Sugar(),
		isProd: isProd,
	}
	return z, z.base.Sync, nil
}

func (z *ZapLogger) Infof(_ context.Context, format string, args ...any) {
	z.sugar.Infof(format, args...)
}

func (z *ZapLogger) Warnf(_ context.Context, format string, args ...any) {
	z.sugar.Warnf(format, args...)
}

func (z *ZapLogger) Errorf(_ context.Context, format string, args ...any) {
	z.sugar.Errorf(format, args...)
}

// Base / Sugared — доступ к нижележащему zap там, где нужен он сам.
func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }
