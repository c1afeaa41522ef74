package events

type Logger interface {
	Info(message string, module string)
	Error(string)
}

// Logging is optional; the default discards everything so the library can
// be used without wiring a logger first.
var logger Logger = noopLogger{}

type noopLogger struct{}

func (noopLogger) Info(string, string) {}
func (noopLogger) Error(string)        {}

func SetLogger(l Logger) {
	logger = l
}
