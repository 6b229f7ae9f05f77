// Package errors provides structured error types for the bindings library.
//
// Every error carries a Phase (where in the pipeline it occurred) and a
// Kind (what went wrong), so callers can match on error classes with
// errors.Is without string inspection:
//
//	if errors.Is(err, &binderrors.Error{Phase: binderrors.PhaseLoad, Kind: binderrors.KindBadSymbol}) {
//	    // missing export symbol
//	}
//
// SearchExhaustedError is the one aggregate type: it records every path
// the locator probed, in order, when no candidate resolved.
package errors
