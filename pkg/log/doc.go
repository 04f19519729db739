// Package log provides structured logging for the protocol core.
//
// The package centers on the Logger interface, which every component of the
// client accepts explicitly instead of reaching for global state:
//
//	logger := log.NewZapLogger(log.Config{Format: "logfmt", Level: log.LevelInfo})
//	logger = logger.NewSystem("dh-fill-pool")
//	logger.Info("pool replenished", "blockchain", "neo", "count", 100)
//
// Two production backends are provided: ZapLogger, built directly on Uber's
// zap, and IPFSLogger, which routes through ipfs/go-log so the client can share
// log configuration with libp2p-based tooling. NoopLogger discards everything
// and is intended for tests.
//
// Loggers can be attached to a context with SetContextLogger and recovered
// with FromContext, which falls back to a noop logger when none is present.
package log
