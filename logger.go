package brcache

// Fields carries structured context for log events.
type Fields map[string]any

// Logger is the leveled surface the store logs through; adapters for zap,
// slog, logrus and zerolog live under log/. The store only logs cold-path
// events (provider pressure rejections) at Debug. Per-payload signals go
// to Hooks instead, where they can be sampled.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

// NopLogger discards everything. Used when Options.Logger is nil.
type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}
