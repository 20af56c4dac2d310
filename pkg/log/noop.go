package log

import "context"

type noopLogger struct{}

// NewNoop returns a logger that discards everything. Used in tests.
func NewNoop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (noopLogger) Info(ctx context.Context, args ...interface{})                   {}
func (noopLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (noopLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (noopLogger) Error(ctx context.Context, args ...interface{})                  {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (noopLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}
