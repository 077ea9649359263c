package domain

// Outcome is what happened to a single loadout entry during a run.
type Outcome string

const (
	// OutcomeLoaded means the entry's geometry was loaded and attached.
	OutcomeLoaded Outcome = "loaded"
	// OutcomeLinked means a cached root was attached as a linked duplicate.
	OutcomeLinked Outcome = "linked"
	// OutcomeGrouped means the entry had no geometry but its nested loadout was resolved.
	OutcomeGrouped Outcome = "grouped"
	// OutcomeFiltered means the top-level inclusion filter excluded the entry.
	OutcomeFiltered Outcome = "filtered"
	// OutcomeSkipped means the entry was dropped (no slot, unresolved reference, no geometry).
	OutcomeSkipped Outcome = "skipped"
	// OutcomeMissing means an asset file the entry needs is not in the extraction root.
	OutcomeMissing Outcome = "missing"
	// OutcomeFailed means an unexpected error was caught while processing the entry.
	OutcomeFailed Outcome = "failed"
)

// Attached reports whether the outcome put content into the scene.
func (o Outcome) Attached() bool {
	return o == OutcomeLoaded || o == OutcomeLinked
}

// EntryResult records the outcome of one entry.
type EntryResult struct {
	Depth      int
	Port       string
	Slot       string
	Identifier Identifier
	Outcome    Outcome
	Reason     string
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
