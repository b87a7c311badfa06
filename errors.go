package mdpreview

import "errors"

// Sentinel errors for structural anomalies in the event stream. Both are
// absorbed by the renderer, which degrades to plain text instead of
// failing the run; they are exported so callers can classify anomalies
// reported through diagnostics hooks or tests.
var (
	// ErrNoTable indicates a table cell or row event arrived while no
	// table was open.
	ErrNoTable = errors.New("table cell outside an open table")

	// ErrRaggedRow indicates a table body row whose cell count differs
	// from the header row.
	ErrRaggedRow = errors.New("table row does not match header cell count")
)
