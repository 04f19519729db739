package log

var _ Logger = NoopLogger{}

// NoopLogger discards all log messages. Useful for tests or when logging
// needs to be disabled entirely.
type NoopLogger struct{}

// NewNoopLogger creates a new NoopLogger instance.
func NewNoopLogger() Logger {
	return NoopLogger{}
}

func (n NoopLogger) Debug(msg string, keysAndValues ...any) {}
func (n NoopLogger) Info(msg string, keysAndValues ...any)  {}
func (n NoopLogger) Warn(msg string, keysAndValues ...any)  {}
func (n NoopLogger) Error(msg string, keysAndValues ...any) {}
func (n NoopLogger) Fatal(msg string, keysAndValues ...any) {}
func (n NoopLogger) With(key string, value any) Logger      { return n }
func (n NoopLogger) NewSystem(name string) Logger           { return n }
