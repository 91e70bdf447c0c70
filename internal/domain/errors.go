package domain

import "errors"

var (
	// ErrCollectionNotFound is returned when a collection is not in the store
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrNoUnrevealedItems is returned when a reveal is requested for a
	// collection whose metadata pool is exhausted. Not retryable.
	ErrNoUnrevealedItems = errors.New("no unrevealed items left")

	// ErrRevealTimeout is returned when a synchronous reveal wait expires
	// before the queued reveal lands.
	ErrRevealTimeout = errors.New("timed out waiting for reveal")

	// ErrIndexerLagging is returned when the indexer does not reach the
	// requested ledger version within the bounded wait.
	ErrIndexerLagging = errors.New("indexer did not catch up in time")
)
