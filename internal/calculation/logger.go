package calculation

// Logger receives diagnostic output from projection runs: run
// parameters, trial counts, nothing per-year. The engine never prints
// directly.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger is the default Logger; it discards every message, so
// library callers pay nothing unless they opt in via SetLogger.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}
