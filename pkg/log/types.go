package log

// Logger is the structured logging interface shared by every component of the
// protocol core. keysAndValues are treated as alternating key-value pairs
// (e.g., "blockchain", chain, "count", n).
type Logger interface {
	// Debug logs low-level information useful during development.
	Debug(msg string, keysAndValues ...any)
	// Info logs routine events and state changes.
	Info(msg string, keysAndValues ...any)
	// Warn logs unexpected situations the client can recover from.
	Warn(msg string, keysAndValues ...any)
	// Error logs failures that prevent an operation from completing.
	Error(msg string, keysAndValues ...any)
	// Fatal logs an unrecoverable failure and may terminate the program.
	Fatal(msg string, keysAndValues ...any)
	// With returns a logger that attaches the key-value pair to all future logs.
	With(key string, value any) Logger
	// NewSystem returns a named child logger identifying a subsystem.
	NewSystem(name string) Logger
}

// Level represents the severity level of a log message.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)

// Config configures a logger backend. Fields carry env tags so the
// configuration can be read straight from the environment with cleanenv.
type Config struct {
	Format string `env:"LOG_FORMAT" env-default:"console"` // console, logfmt or json
	Level  Level  `env:"LOG_LEVEL" env-default:"info"`     // debug, info, warn, error, fatal
	Output string `env:"LOG_OUTPUT" env-default:"stderr"`  // stderr, stdout or file path
}
