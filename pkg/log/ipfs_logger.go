package log

import (
	ipfslog "github.com/ipfs/go-log/v2"
	"go.uber.org/zap"
)

var _ Logger = (*IPFSLogger)(nil)

// IPFSLogger is a Logger backed by ipfs/go-log. It exists so the client can
// share log level configuration with libp2p-based tooling that already uses
// go-log's per-subsystem registry.
type IPFSLogger struct {
	lg                  *zap.SugaredLogger
	commonKeysAndValues []any
}

// NewIPFSLogger creates a logger registered under the given subsystem name in
// the go-log registry.
func NewIPFSLogger(name string) Logger {
	return &IPFSLogger{
		lg:                  ipfslog.Logger(name).SugaredLogger.Desugar().WithOptions(zap.AddCallerSkip(1)).Sugar(),
		commonKeysAndValues: []any{},
	}
}

func (l *IPFSLogger) Debug(msg string, keysAndValues ...any) {
	l.lg.Debugw(msg, keysAndValues...)
}

func (l *IPFSLogger) Info(msg string, keysAndValues ...any) {
	l.lg.Infow(msg, keysAndValues...)
}

func (l *IPFSLogger) Warn(msg string, keysAndValues ...any) {
	l.lg.Warnw(msg, keysAndValues...)
}

func (l *IPFSLogger) Error(msg string, keysAndValues ...any) {
	l.lg.Errorw(msg, keysAndValues...)
}

func (l *IPFSLogger) Fatal(msg string, keysAndValues ...any) {
	l.lg.Fatalw(msg, keysAndValues...)
}

func (l *IPFSLogger) With(key string, value any) Logger {
	return &IPFSLogger{
		lg:                  l.lg.With(key, value),
		commonKeysAndValues: append(l.commonKeysAndValues, key, value),
	}
}

func (l *IPFSLogger) NewSystem(name string) Logger {
	lg := ipfslog.Logger(name)
	return &IPFSLogger{
		lg:                  lg.SugaredLogger.Desugar().WithOptions(zap.AddCallerSkip(1)).Sugar().With(l.commonKeysAndValues...),
		commonKeysAndValues: []any{},
	}
}
