package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by the orchestrator when no event survived
// ingestion and validation. It is the only failure surfaced to the caller;
// everything below it degrades locally.
var ErrEmptyInput = errors.New("no events survived ingestion")

// MalformedInputError reports a raw input missing a required field. The
// record is dropped; the run continues.
type MalformedInputError struct {
	Field string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input: missing required field %q", e.Field)
}

// SourceIngestionError reports that one source's ingestion task failed.
// It is non-fatal: other sources still complete and the run proceeds with
// their events.
type SourceIngestionError struct {
	Source string
	Err    error
}

func (e *SourceIngestionError) Error() string {
	return fmt.Sprintf("ingest source %q: %v", e.Source, e.Err)
}

func (e *SourceIngestionError) Unwrap() error { return e.Err }

// InvalidTimestampError reports an event time that could not be parsed as a
// UTC timestamp. The event is skipped at scoring time, not the run.
type InvalidTimestampError struct {
	Value string
	Err   error
}

func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("invalid timestamp %q: %v", e.Value, e.Err)
}

func (e *InvalidTimestampError) Unwrap() error { return e.Err }
