package service

import "errors"

// Structural generation failures surfaced to the caller. Per-item problems
// (unknown size, unreachable image) are absorbed during layout and never
// reach these.
var (
	// ErrEmptyCatalog rejects an export request with zero items before any
	// layout work begins.
	ErrEmptyCatalog = errors.New("catalog has no items")

	// ErrSerialization signals that the document could not be finalized; no
	// partial artifact accompanies it.
	ErrSerialization = errors.New("failed to serialize catalog document")
)
