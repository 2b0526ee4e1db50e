package index

// Reporter is the build routine's progress-reporting collaborator
// (spec.md §6, "Reporter interface (collaborator)... instrument_start,
// instrument_progress, instrument_end"), grounded on the OnProgress
// callback field of pkg/ingest's Ingester: a thin callback surface the
// caller wires to a progress bar, a log line, or nothing at all.
type Reporter interface {
	// InstrumentStart announces the start of one named phase of work.
	// total is -1 when the phase's size is not known in advance.
	InstrumentStart(module, message string, total int)
	// InstrumentProgress reports delta additional units of work done
	// since the last call.
	InstrumentProgress(delta int)
	// InstrumentEnd announces the phase is complete, with the final
	// count of units processed.
	InstrumentEnd(final int)
}

// NoopReporter discards every call; the zero value is ready to use.
type NoopReporter struct{}

func (NoopReporter) InstrumentStart(string, string, int) {}
func (NoopReporter) InstrumentProgress(int)              {}
func (NoopReporter) InstrumentEnd(int)                   {}
