package construct

import "errors"

var (
	// ErrConstructionExhausted is returned when no acceptable automaton was
	// found within the retry budget. It wraps the last rejection.
	ErrConstructionExhausted = errors.New("construct: retry budget exhausted")

	// ErrPersistence wraps a failed save. It is reported in Result.SaveErr and
	// never fails the construction.
	ErrPersistence = errors.New("construct: persistence failure")

	// ErrNotDiagnosable marks a fault placement rejected by the verifier.
	ErrNotDiagnosable = errors.New("construct: automaton not diagnosable")

	// ErrNoStore is wrapped into Result.SaveErr when saving without a store.
	ErrNoStore = errors.New("construct: no store configured")
)
