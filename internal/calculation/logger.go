package calculation

// Logger is the narrow logging surface the simulator needs. The engine stays
// agnostic of any logging library; callers plug in whatever backs their
// binary (the CLI uses logrus) or leave the silent default.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything. It is the default so a bare NewSimulator
// never emits output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}
