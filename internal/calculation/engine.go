package calculation

// Engine is the entry point for projection runs. It owns no
// simulation state; each run is a pure function of its config.
type Engine struct {
	Logger Logger

	// OnTrialDone, if set, is invoked after each completed Monte
	// Carlo trial with (completed, total). It may be called from
	// multiple goroutines and must be safe for concurrent use.
	OnTrialDone func(completed, total int)
}

// NewEngine creates a new engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a
// no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}
