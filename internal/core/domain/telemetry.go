package domain

// CyclePhase names a stage of finalizing a request cycle. Each phase is recorded as a
// telemetry vertex.
type CyclePhase string

const (
	// PhaseLegacy expands legacy bundle names into raw scripts.
	PhaseLegacy CyclePhase = "legacy"
	// PhaseResolve resolves the requested library ids into an ordered library list.
	PhaseResolve CyclePhase = "resolve"
	// PhaseEmit hands the resolved libraries to the emitter.
	PhaseEmit CyclePhase = "emit"
)

// Phases returns the cycle phases in execution order.
func Phases() []CyclePhase {
	return []CyclePhase{PhaseLegacy, PhaseResolve, PhaseEmit}
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
