package domain

import "errors"

// Error kinds surfaced by the pipeline. Stages wrap these with
// fmt.Errorf("...: %w", ...) so callers can classify a failure with errors.Is
// while the message keeps the stage, row, and column context.
//
// All three are fatal: the pipeline is a one-shot batch job over a static
// file, and skipping a malformed row would silently bias the ranking.
var (
	// ErrIO means the source file could not be opened or decompressed.
	ErrIO = errors.New("source unreadable")

	// ErrParse means a row, field, or date did not match the expected form.
	ErrParse = errors.New("malformed input")

	// ErrSchema means a required column is missing from the source header.
	ErrSchema = errors.New("schema mismatch")
)
