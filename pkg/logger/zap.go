// Package logger - реализация ports.Logger поверх zap.
package logger

import (
	"context"

	"go.uber.org/zap"

	"github.com/Gunvolt24/restaurant_svc/internal/ports"
	"github.com/Gunvolt24/restaurant_svc/pkg/ctxmeta"
)

var _ ports.Logger = (*ZapLogger)(nil)

// ZapLogger - каждая запись дополняется request_id/trace_id/span_id из контекста.
type ZapLogger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

// NewZapLogger - production-конфиг (JSON) при isProd, иначе development (консоль).
func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if isProd {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, nil, err
	}

	l := New(logger.Named("restaurant_svc"))
	cleanup := func() error { return l.base.Sync() }
	return l, cleanup, nil
}

// New - обертка над готовым *zap.Logger (используется в тестах с observer).
func New(base *zap.Logger) *ZapLogger {
	return &ZapLogger{base: base, sugar: base.Sugar()}
}

func (z *ZapLogger) with(ctx context.Context) *zap.SugaredLogger {
	fields := ctxmeta.Fields(ctx)
	if len(fields) == 0 {
		return z.sugar
	}
	return z.sugar.With(fields...)
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.with(ctx).Infof(format, args...)
}

func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Warnf(format, args...)
}

func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Errorf(format, args...)
}

func (z *ZapLogger) Base() *zap.Logger { return z.base }
