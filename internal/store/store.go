package store

import (
	"context"
	"time"

	"github.com/movemint/launchpad-sync/internal/store/schema"
)

// SupplySnapshot is the frequently-changing quadruple observed by the
// supply sync. The write is suppressed when nothing differs from the
// cached row.
type SupplySnapshot struct {
	CurrentSupply       uint64
	OwnerCount          *uint64
	SaleCompleted       bool
	TotalFundsCollected uint64
}

// RefundSnapshot carries the post-refund state. Unlike SupplySnapshot it is
// written unconditionally: a refund is a rare, caller-confirmed event that
// must not be second-guessed by a diff check.
type RefundSnapshot struct {
	CurrentSupply     uint64
	OwnerCount        *uint64
	RefundNFTsBurned  uint64
	RefundTotalAmount float64
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// ListCollections retrieves every cached collection, for sync passes
	ListCollections(ctx context.Context) ([]schema.Collection, error)
	// GetCollection retrieves a collection by canonical address, nil when absent
	GetCollection(ctx context.Context, collectionID string) (*schema.Collection, error)
	// ListMintingCollections retrieves mint-enabled collections, newest first
	ListMintingCollections(ctx context.Context) ([]schema.Collection, error)
	// UpsertCollection creates the collection if absent, otherwise patches
	// its slow-path fields. Supply-sync-owned fields and CreatedAt are
	// preserved on update, and the write is suppressed when nothing
	// changed. Returns whether a row was created and whether one was written.
	UpsertCollection(ctx context.Context, desired *schema.Collection) (created bool, updated bool, err error)
	// UpdateCollectionSupply patches the supply quadruple, suppressing the
	// write when the cached row already matches. Returns whether a write happened.
	UpdateCollectionSupply(ctx context.Context, collectionID string, snap SupplySnapshot) (bool, error)
	// OverwriteCollectionRefund unconditionally writes post-refund state
	OverwriteCollectionRefund(ctx context.Context, collectionID string, snap RefundSnapshot) error

	// GetMintStages retrieves a collection's stages in insertion order
	GetMintStages(ctx context.Context, collectionID string) ([]schema.MintStage, error)
	// ReplaceMintStages swaps a collection's stage set for the given one.
	// A no-op when the stored set already matches; an empty set still
	// clears previously stored stages.
	ReplaceMintStages(ctx context.Context, collectionID string, stages []schema.MintStage) error

	// InsertRevealItems inserts a batch of unrevealed items
	InsertRevealItems(ctx context.Context, items []schema.RevealItem) error
	// CountRevealItems counts all reveal items for a collection
	CountRevealItems(ctx context.Context, collectionID string) (int64, error)
	// GetRandomUnrevealedItem picks one unrevealed item uniformly at
	// random, nil when the pool is exhausted
	GetRandomUnrevealedItem(ctx context.Context, collectionID string) (*schema.RevealItem, error)
	// MarkItemRevealed binds an item to a token and records owner and time
	MarkItemRevealed(ctx context.Context, itemID int64, nftTokenID string, ownerAddress *string, mintedAt time.Time) error
	// GetRevealedItemByTokenID retrieves the revealed item bound to a token, nil when none
	GetRevealedItemByTokenID(ctx context.Context, nftTokenID string) (*schema.RevealItem, error)
}
