package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. Expected "no good
// match" conditions are NOT errors: the ask pipeline models those as
// lower-quality answers and never fails for them.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNoDocument indicates no document has been ingested yet.
	ErrNoDocument = errors.New("no document ingested")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates no extractor handles the file.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrEmptyDocument indicates extraction produced no page text.
	ErrEmptyDocument = errors.New("document contains no extractable text")

	// ErrResponderUnavailable indicates the external AI responder is
	// not configured. The ask and summary paths degrade to the
	// deterministic pipeline.
	ErrResponderUnavailable = errors.New("AI responder unavailable")
)
