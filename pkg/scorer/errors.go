package scorer

import "errors"

// Sentinel errors returned (wrapped) by the pipeline stages. Match them with errors.Is.
var (
	// ErrNotFound reports an unknown term, threat level or scenario identifier.
	ErrNotFound = errors.New("not found")

	// ErrDegenerateInput reports input that would divide by zero, such as
	// all-zero weights or a fully certain criterion under the pessimistic scenario.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrLengthMismatch reports fuzzified values and weights of different lengths.
	ErrLengthMismatch = errors.New("length mismatch")
)
