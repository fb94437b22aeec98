package log

import (
	"context"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

var global Logger

// Logger is the leveled logger handed to usecases and repositories.
type Logger interface {
	Info(ctx context.Context, message string, args ...interface{})
	Error(ctx context.Context, message string, args ...interface{})
}

type logger struct {
	z *otelzap.Logger
}

// Setup builds the underlying otelzap logger used directly by handlers.
func Setup() *otelzap.Logger {
	z, _ := zap.NewProduction()
	return otelzap.New(z, otelzap.WithMinLevel(zap.InfoLevel))
}

// SetupLogger is an alias kept for wiring symmetry in cmd/main.go.
func SetupLogger() *otelzap.Logger {
	return Setup()
}

func Init(z *otelzap.Logger) {
	global = &logger{z: z}
}

func GetLogger() Logger {
	return global
}

func (l *logger) Info(ctx context.Context, message string, args ...interface{}) {
	if len(args) > 0 {
		l.z.Ctx(ctx).Info(message, zap.Any("details", args))
		return
	}
	l.z.Ctx(ctx).Info(message)
}

func (l *logger) Error(ctx context.Context, message string, args ...interface{}) {
	if len(args) > 0 {
		l.z.Ctx(ctx).Error(message, zap.Any("details", args))
		return
	}
	l.z.Ctx(ctx).Error(message)
}
