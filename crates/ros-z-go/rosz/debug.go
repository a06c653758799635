package rosz

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
)

// logLevel and logger are built once; SetLogLevel only moves the level, so
// the logger can be used from any goroutine.
// Set ROSZ_LOG=DEBUG|INFO|WARN|ERROR to control verbosity at runtime.
// Default is WARN so production binaries are silent.
var (
	logLevel = newLevelVar(os.Getenv("ROSZ_LOG"))
	logger   = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
)

func parseLevel(name string) slog.Level {
	lvl := slog.LevelWarn
	if name != "" {
		_ = lvl.UnmarshalText([]byte(name))
	}
	return lvl
}

func newLevelVar(name string) *slog.LevelVar {
	v := new(slog.LevelVar)
	v.Set(parseLevel(name))
	return v
}

// Logger returns the runtime logger so that command-line tools share its
// handler and level.
func Logger() *slog.Logger {
	return logger
}

// SetLogLevel sets the runtime log level by name. Unknown names select the
// WARN default. It is safe to call while other goroutines log.
func SetLogLevel(level string) {
	logLevel.Set(parseLevel(level))
}

// safeCall runs a type-support callback and recovers any panic, returning it
// as an error. Callbacks come from generated code or plugins and a nil
// message pointer must not take the process down.
func safeCall(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic in type-support callback",
				"recover", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()))
			err = fmt.Errorf("panic in callback: %v", r)
		}
	}()
	return fn()
}
