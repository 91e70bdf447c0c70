package indexer

import (
	"context"
	"time"
)

// CollectionMetadata is what the indexer knows about a collection. The
// indexer lags the chain, so these fields are advisory and never override
// chain-authoritative state.
type CollectionMetadata struct {
	CollectionName string
	CreatorAddress string
	Description    string
	URI            string
	// LastTransactionTime approximates the collection creation time for
	// freshly discovered collections, nil when the indexer has no record
	LastTransactionTime *time.Time
}

// Indexer reads derived chain state from the GraphQL indexer.
//
//go:generate mockgen -source=indexer.go -destination=../mocks/indexer.go -package=mocks -mock_names=Indexer=MockIndexer
type Indexer interface {
	// GetCollectionMetadata returns indexer metadata for a collection,
	// nil when the indexer has not seen it yet
	GetCollectionMetadata(ctx context.Context, collectionID string) (*CollectionMetadata, error)
	// GetOwnerCount returns the distinct-owner count for a collection
	GetOwnerCount(ctx context.Context, collectionID string) (uint64, error)
	// GetTokenOwner returns the canonical owner address of a token, nil
	// when the indexer has not caught up with the mint
	GetTokenOwner(ctx context.Context, nftTokenID string) (*string, error)
	// GetLastVersion returns the last transaction version the indexer
	// has processed
	GetLastVersion(ctx context.Context) (uint64, error)
	// WaitForVersion polls until the indexer has processed the given
	// version. Returns ErrIndexerLagging when the bounded wait elapses
	// first; callers proceed with degraded data rather than block.
	WaitForVersion(ctx context.Context, version uint64) error
}
