package actions

import (
	"context"

	"go.uber.org/zap"

	"github.com/movemint/launchpad-sync/internal/adapter"
	"github.com/movemint/launchpad-sync/internal/chain"
	"github.com/movemint/launchpad-sync/internal/domain"
	"github.com/movemint/launchpad-sync/internal/indexer"
	"github.com/movemint/launchpad-sync/internal/logger"
	"github.com/movemint/launchpad-sync/internal/reveal"
	"github.com/movemint/launchpad-sync/internal/store"
	"github.com/movemint/launchpad-sync/internal/store/schema"
)

// Syncer is the slice of the reconciler the actions facade drives
//
//go:generate mockgen -source=actions.go -destination=../mocks/actions.go -package=mocks -mock_names=Syncer=MockSyncer,Revealer=MockRevealer
type Syncer interface {
	// SyncFull runs one full reconciliation pass
	SyncFull(ctx context.Context) error
	// SyncCollectionSupply runs the supply sync for one collection
	SyncCollectionSupply(ctx context.Context, collectionID string) error
	// ReconcileCollection runs a full-field reconciliation for one collection
	ReconcileCollection(ctx context.Context, collectionID string) error
}

// Revealer is the slice of the reveal serializer the actions facade drives
type Revealer interface {
	// RevealNFT queues a reveal and waits for it to land
	RevealNFT(ctx context.Context, collectionID, nftTokenID string) reveal.Result
}

// Config holds actions facade settings
type Config struct {
	// UploadBatchSize bounds one reveal-item insert batch
	UploadBatchSize int
}

// Actions is the facade behind the HTTP surface. Every method converts
// internal failures into a Success=false result instead of failing the
// request: the callers are UI flows that must degrade, not crash.
type Actions struct {
	store    store.Store
	gateway  chain.Gateway
	indexer  indexer.Indexer
	syncer   Syncer
	revealer Revealer
	clock    adapter.Clock
	cfg      Config
}

// NewActions creates the actions facade
func NewActions(
	st store.Store,
	gateway chain.Gateway,
	idx indexer.Indexer,
	syncer Syncer,
	revealer Revealer,
	clock adapter.Clock,
	cfg Config,
) *Actions {
	if cfg.UploadBatchSize <= 0 {
		cfg.UploadBatchSize = 100
	}
	return &Actions{
		store:    st,
		gateway:  gateway,
		indexer:  idx,
		syncer:   syncer,
		revealer: revealer,
		clock:    clock,
		cfg:      cfg,
	}
}

// RevealItemInput is one metadata item in an upload
type RevealItemInput struct {
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	URI         string         `json:"uri" binding:"required"`
	Traits      []schema.Trait `json:"traits"`
}

// UploadResult is the outcome of UploadRevealData
type UploadResult struct {
	Success     bool   `json:"success"`
	Inserted    int    `json:"inserted"`
	TotalItems  int64  `json:"total_items"`
	MintEnabled bool   `json:"mint_enabled"`
	Error       string `json:"error,omitempty"`
}

// UploadRevealData stores pre-reveal metadata items for a collection in
// batches. Once the stored item count exactly matches the collection's max
// supply, minting is enabled on chain: a short pool would strand the last
// mints without metadata, a long one would leave items unrevealable.
func (a *Actions) UploadRevealData(ctx context.Context, collectionID string, items []RevealItemInput) UploadResult {
	canonical, err := domain.NormalizeAddress(collectionID)
	if err != nil {
		return UploadResult{Success: false, Error: err.Error()}
	}

	now := a.clock.Now().UTC()
	inserted := 0
	for start := 0; start < len(items); start += a.cfg.UploadBatchSize {
		end := start + a.cfg.UploadBatchSize
		if end > len(items) {
			end = len(items)
		}

		batch := make([]schema.RevealItem, 0, end-start)
		for _, item := range items[start:end] {
			batch = append(batch, schema.RevealItem{
				CollectionID: canonical,
				Name:         item.Name,
				Description:  item.Description,
				URI:          item.URI,
				Traits:       item.Traits,
				CreatedAt:    now,
			})
		}
		if err := a.store.InsertRevealItems(ctx, batch); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("collection_id", canonical))
			return UploadResult{Success: false, Inserted: inserted, Error: "failed to store reveal items"}
		}
		inserted += len(batch)
	}

	// The collection may not be cached yet when items are uploaded right
	// after creation; a full pass discovers it.
	if err := a.syncer.SyncFull(ctx); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("collection_id", canonical))
	}

	count, err := a.store.CountRevealItems(ctx, canonical)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("collection_id", canonical))
		return UploadResult{Success: false, Inserted: inserted, Error: "failed to count reveal items"}
	}

	collection, err := a.store.GetCollection(ctx, canonical)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("collection_id", canonical))
		return UploadResult{Success: false, Inserted: inserted, TotalItems: count, Error: "failed to load collection"}
	}

	result := UploadResult{Success: true, Inserted: inserted, TotalItems: count}
	if collection == nil {
		logger.WarnCtx(ctx, "collection not cached after full sync, skipping mint enablement",
			zap.String("collection_id", canonical))
		return result
	}

	if uint64(count) == collection.MaxSupply && collection.MaxSupply > 0 {
		if _, err := a.gateway.UpdateMintEnabled(ctx, canonical, true); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("collection_id", canonical))
			result.Error = "failed to enable minting"
			return result
		}
		logger.InfoCtx(ctx, "enabled minting",
			zap.String("collection_id", canonical),
			zap.Int64("items", count))

		// Follow-up reconciliation persists the flag without waiting for
		// the next slow tick.
		if err := a.syncer.ReconcileCollection(ctx, canonical); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("collection_id", canonical))
		}
		result.MintEnabled = true
	}
	return result
}

// TokenReveal is the per-token outcome of AfterMint
type TokenReveal struct {
	NFTTokenID string `json:"nft_token_id"`
	Success    bool   `json:"success"`
	Name       string `json:"name,omitempty"`
	URI        string `json:"uri,omitempty"`
}

// AfterMintResult is the outcome of AfterMint
type AfterMintResult struct {
	Success bool          `json:"success"`
	Reveals []TokenReveal `json:"reveals"`
	Error   string        `json:"error,omitempty"`
}

// AfterMint reconciles supply after a mint and reveals each minted token.
// A token whose reveal fails gets Success=false in its entry; the call as a
// whole still succeeds so the UI can report per-token outcomes.
func (a *Actions) AfterMint(ctx context.Context, collectionID string, nftTokenIDs []string) AfterMintResult {
	canonical, err := domain.NormalizeAddress(collectionID)
	if err != nil {
		return AfterMintResult{Success: false, Error: err.Error()}
	}

	if err := a.syncer.SyncCollectionSupply(ctx, canonical); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("collection_id", canonical))
	}

	reveals := make([]TokenReveal, 0, len(nftTokenIDs))
	for _, tokenID := range nftTokenIDs {
		res := a.revealer.RevealNFT(ctx, canonical, tokenID)
		reveals = append(reveals, TokenReveal{
			NFTTokenID: tokenID,
			Success:    res.Success,
			Name:       res.Name,
			URI:        res.URI,
		})
	}
	return AfterMintResult{Success: true, Reveals: reveals}
}

// RefundResult is the outcome of AfterRefund
type RefundResult struct {
	Success           bool    `json:"success"`
	CurrentSupply     uint64  `json:"current_supply"`
	OwnerCount        *uint64 `json:"owner_count,omitempty"`
	RefundNFTsBurned  uint64  `json:"refund_nfts_burned"`
	RefundTotalAmount float64 `json:"refund_total_amount"`
	Error             string  `json:"error,omitempty"`
}

// AfterRefund re-reads supply and refund counters after a refund burn and
// writes them unconditionally. A refund is a rare, caller-confirmed event;
// unlike the periodic supply sync it is not second-guessed by a diff check.
func (a *Actions) AfterRefund(ctx context.Context, collectionID string) RefundResult {
	canonical, err := domain.NormalizeAddress(collectionID)
	if err != nil {
		return RefundResult{Success: false, Error: err.Error()}
	}

	view, err := a.gateway.GetCollectionView(ctx, canonical)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("collection_id", canonical))
		return RefundResult{Success: false, Error: "failed to read collection view"}
	}

	var ownerCount *uint64
	if count, err := a.indexer.GetOwnerCount(ctx, canonical); err != nil {
		logger.WarnCtx(ctx, "owner count lookup failed during refund, keeping cached value",
			zap.String("collection_id", canonical),
			zap.Error(err))
		if existing, err := a.store.GetCollection(ctx, canonical); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("collection_id", canonical))
		} else if existing != nil {
			ownerCount = existing.OwnerCount
		}
	} else {
		ownerCount = &count
	}

	snap := store.RefundSnapshot{
		CurrentSupply: view.CurrentSupply,
		OwnerCount:    ownerCount,
	}
	if view.RefundNFTsBurned != nil {
		snap.RefundNFTsBurned = *view.RefundNFTsBurned
	}
	if view.RefundTotalAmount != nil {
		snap.RefundTotalAmount = *view.RefundTotalAmount
	}

	if err := a.store.OverwriteCollectionRefund(ctx, canonical, snap); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("collection_id", canonical))
		return RefundResult{Success: false, Error: "failed to store refund state"}
	}

	logger.InfoCtx(ctx, "recorded refund state",
		zap.String("collection_id", canonical),
		zap.Uint64("current_supply", view.CurrentSupply),
		zap.Uint64("nfts_burned", snap.RefundNFTsBurned))

	return RefundResult{
		Success:           true,
		CurrentSupply:     view.CurrentSupply,
		OwnerCount:        ownerCount,
		RefundNFTsBurned:  snap.RefundNFTsBurned,
		RefundTotalAmount: snap.RefundTotalAmount,
	}
}
