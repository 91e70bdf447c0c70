package sync

import (
	"context"
	"fmt"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/movemint/launchpad-sync/internal/adapter"
	"github.com/movemint/launchpad-sync/internal/chain"
	"github.com/movemint/launchpad-sync/internal/domain"
	"github.com/movemint/launchpad-sync/internal/indexer"
	"github.com/movemint/launchpad-sync/internal/logger"
	"github.com/movemint/launchpad-sync/internal/messaging"
	"github.com/movemint/launchpad-sync/internal/store"
	"github.com/movemint/launchpad-sync/internal/store/schema"
)

// Config holds reconciliation settings
type Config struct {
	// Parallelism bounds concurrent per-collection work within one pass
	Parallelism int
}

// Reconciler converges the cached collection state with the chain. The chain
// is the source of truth; the indexer supplies derived data (owner counts,
// metadata) that may lag and never overrides chain-authoritative fields.
type Reconciler struct {
	store       store.Store
	gateway     chain.Gateway
	indexer     indexer.Indexer
	publisher   messaging.Publisher
	clock       adapter.Clock
	parallelism int
}

// NewReconciler creates a reconciler. publisher may be nil, in which case no
// events are emitted.
func NewReconciler(
	st store.Store,
	gateway chain.Gateway,
	idx indexer.Indexer,
	publisher messaging.Publisher,
	clock adapter.Clock,
	cfg Config,
) *Reconciler {
	parallelism := cfg.Parallelism
	if parallelism <= 0 {
		parallelism = 1
	}
	return &Reconciler{
		store:       st,
		gateway:     gateway,
		indexer:     idx,
		publisher:   publisher,
		clock:       clock,
		parallelism: parallelism,
	}
}

// SyncSupply runs one supply pass over every cached collection. A failing
// collection is logged and skipped; it never aborts the pass.
func (r *Reconciler) SyncSupply(ctx context.Context) error {
	collections, err := r.store.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("failed to list collections for supply sync: %w", err)
	}

	pool := pond.NewPool(r.parallelism, pond.WithContext(ctx))
	for i := range collections {
		collection := collections[i]
		pool.Submit(func() {
			if err := r.syncCollectionSupply(ctx, &collection); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("collection_id", collection.CollectionID))
			}
		})
	}
	pool.StopAndWait()
	return nil
}

// SyncCollectionSupply runs the supply sync for a single collection
func (r *Reconciler) SyncCollectionSupply(ctx context.Context, collectionID string) error {
	canonical, err := domain.NormalizeAddress(collectionID)
	if err != nil {
		return fmt.Errorf("invalid collection id: %w", err)
	}

	collection, err := r.store.GetCollection(ctx, canonical)
	if err != nil {
		return err
	}
	if collection == nil {
		return fmt.Errorf("collection %s: %w", canonical, domain.ErrCollectionNotFound)
	}
	return r.syncCollectionSupply(ctx, collection)
}

// syncCollectionSupply reconciles the fast-changing quadruple for one
// collection and reacts to a sale-completion transition.
func (r *Reconciler) syncCollectionSupply(ctx context.Context, collection *schema.Collection) error {
	// Supply and funds come from the chain view, not the indexer: the
	// indexer lags and a mint-out decision cannot run on stale numbers.
	view, err := r.gateway.GetCollectionView(ctx, collection.CollectionID)
	if err != nil {
		return err
	}

	ownerCount := collection.OwnerCount
	if count, err := r.indexer.GetOwnerCount(ctx, collection.CollectionID); err != nil {
		logger.WarnCtx(ctx, "owner count lookup failed, keeping cached value",
			zap.String("collection_id", collection.CollectionID),
			zap.Error(err))
	} else {
		ownerCount = &count
	}

	saleCompleted, err := r.gateway.IsSaleCompleted(ctx, collection.CollectionID)
	if err != nil {
		return err
	}

	if view.CurrentSupply == view.MaxSupply && view.MaxSupply > 0 && !saleCompleted {
		saleCompleted = r.tryCompleteSale(ctx, collection.CollectionID, saleCompleted)
	}

	snap := store.SupplySnapshot{
		CurrentSupply:       view.CurrentSupply,
		OwnerCount:          ownerCount,
		SaleCompleted:       saleCompleted,
		TotalFundsCollected: view.TotalFundsCollected,
	}
	updated, err := r.store.UpdateCollectionSupply(ctx, collection.CollectionID, snap)
	if err != nil {
		return err
	}
	if updated {
		logger.InfoCtx(ctx, "updated collection supply",
			zap.String("collection_id", collection.CollectionID),
			zap.Uint64("current_supply", view.CurrentSupply),
			zap.Bool("sale_completed", saleCompleted))
	}

	if saleCompleted && !collection.SaleCompleted {
		r.onSaleCompleted(ctx, collection.CollectionID)
	}
	return nil
}

// tryCompleteSale asks the chain to finalize a minted-out sale. The chain
// enforces its own completion rules and may reject the call (a competing
// caller may have completed it first, or the threshold check may differ);
// rejection is not an error for the sync.
func (r *Reconciler) tryCompleteSale(ctx context.Context, collectionID string, saleCompleted bool) bool {
	logger.InfoCtx(ctx, "collection minted out, triggering sale completion",
		zap.String("collection_id", collectionID))

	if _, err := r.gateway.CheckAndCompleteSale(ctx, collectionID); err != nil {
		logger.WarnCtx(ctx, "sale completion call rejected",
			zap.String("collection_id", collectionID),
			zap.Error(err))
		return saleCompleted
	}

	completed, err := r.gateway.IsSaleCompleted(ctx, collectionID)
	if err != nil {
		logger.WarnCtx(ctx, "failed to re-read sale status after completion",
			zap.String("collection_id", collectionID),
			zap.Error(err))
		return saleCompleted
	}
	return completed
}

// onSaleCompleted reacts to the false-to-true sale transition: it publishes
// the event and eagerly runs a full reconciliation so vesting and FA
// distribution fields appear without waiting for the next slow tick.
func (r *Reconciler) onSaleCompleted(ctx context.Context, collectionID string) {
	logger.InfoCtx(ctx, "sale completed", zap.String("collection_id", collectionID))

	r.publishEvent(ctx, &domain.LaunchpadEvent{
		EventType:    domain.EventSaleCompleted,
		CollectionID: collectionID,
		Timestamp:    r.clock.Now().Unix(),
	})

	if err := r.ReconcileCollection(ctx, collectionID); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("eager reconciliation after sale completion failed: %w", err),
			zap.String("collection_id", collectionID))
	}
}

// SyncFull runs one full pass: registry discovery plus a full-field
// reconciliation of every known collection.
func (r *Reconciler) SyncFull(ctx context.Context) error {
	registry, err := r.gateway.GetRegistry(ctx)
	if err != nil {
		return fmt.Errorf("failed to read registry: %w", err)
	}
	registrySet := make(map[string]struct{}, len(registry))
	for _, id := range registry {
		registrySet[id] = struct{}{}
	}

	collections, err := r.store.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("failed to list collections for full sync: %w", err)
	}
	known := make(map[string]struct{}, len(collections))
	for i := range collections {
		known[collections[i].CollectionID] = struct{}{}
	}

	pool := pond.NewPool(r.parallelism, pond.WithContext(ctx))
	for i := range collections {
		collection := collections[i]
		_, isActive := registrySet[collection.CollectionID]
		pool.Submit(func() {
			if err := r.reconcileCollection(ctx, collection.CollectionID, isActive); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("collection_id", collection.CollectionID))
			}
		})
	}

	// Registry entries the store has never seen are created on the spot.
	for _, id := range registry {
		if _, ok := known[id]; ok {
			continue
		}
		collectionID := id
		pool.Submit(func() {
			if err := r.reconcileCollection(ctx, collectionID, true); err != nil {
				logger.ErrorCtx(ctx, fmt.Errorf("failed to reconcile discovered collection: %w", err),
					zap.String("collection_id", collectionID))
				return
			}
			logger.InfoCtx(ctx, "discovered collection", zap.String("collection_id", collectionID))
			r.publishEvent(ctx, &domain.LaunchpadEvent{
				EventType:    domain.EventCollectionDiscovered,
				CollectionID: collectionID,
				Timestamp:    r.clock.Now().Unix(),
			})
		})
	}

	pool.StopAndWait()
	return nil
}

// ReconcileCollection runs a full-field reconciliation for one collection,
// reading the registry to settle its mint flag.
func (r *Reconciler) ReconcileCollection(ctx context.Context, collectionID string) error {
	canonical, err := domain.NormalizeAddress(collectionID)
	if err != nil {
		return fmt.Errorf("invalid collection id: %w", err)
	}

	registry, err := r.gateway.GetRegistry(ctx)
	if err != nil {
		return fmt.Errorf("failed to read registry: %w", err)
	}

	isActive := false
	for _, id := range registry {
		if id == canonical {
			isActive = true
			break
		}
	}
	return r.reconcileCollection(ctx, canonical, isActive)
}

// reconcileCollection converges every slow-path field of one collection.
// Chain reads of core state are mandatory; indexer metadata, mint stages
// and vesting views are each independently best-effort.
func (r *Reconciler) reconcileCollection(ctx context.Context, collectionID string, isActive bool) error {
	view, err := r.gateway.GetCollectionView(ctx, collectionID)
	if err != nil {
		return err
	}

	creator, err := r.gateway.GetCollectionCreator(ctx, collectionID)
	if err != nil {
		return err
	}

	collectedFunds, err := r.gateway.GetCollectedFunds(ctx, collectionID)
	if err != nil {
		return err
	}

	saleDeadline, err := r.gateway.GetSaleDeadline(ctx, collectionID)
	if err != nil {
		return err
	}

	desired := &schema.Collection{
		CollectionID:        collectionID,
		CollectionName:      view.CollectionName,
		Description:         view.Description,
		URI:                 view.URI,
		PlaceholderURI:      view.PlaceholderURI,
		CreatorAddress:      creator,
		RoyaltyPercentage:   view.RoyaltyPercentage,
		MaxSupply:           view.MaxSupply,
		CurrentSupply:       view.CurrentSupply,
		SaleDeadline:        saleDeadline,
		SaleCompleted:       view.SaleCompleted,
		TotalFundsCollected: collectedFunds,
		DevWalletAddress:    view.DevWalletAddress,
		FASymbol:            view.FASymbol,
		FAName:              view.FAName,
		FAIconURI:           view.FAIconURI,
		FAProjectURI:        view.FAProjectURI,
		RefundNFTsBurned:    view.RefundNFTsBurned,
		RefundTotalAmount:   view.RefundTotalAmount,
		// Mint is on only while the registry lists the collection AND the
		// collection's own flag is set.
		MintEnabled: isActive && view.MintEnabled,
	}
	if view.RoyaltyAddress != nil {
		desired.RoyaltyAddress = *view.RoyaltyAddress
	}

	// Indexer metadata approximates the creation time; fall back to now
	// for collections the indexer has not seen.
	createdAt := r.clock.Now().UTC()
	if meta, err := r.indexer.GetCollectionMetadata(ctx, collectionID); err != nil {
		logger.WarnCtx(ctx, "indexer metadata lookup failed",
			zap.String("collection_id", collectionID),
			zap.Error(err))
	} else if meta != nil && meta.LastTransactionTime != nil {
		createdAt = *meta.LastTransactionTime
	}
	desired.CreatedAt = createdAt

	// Vesting and FA distribution only exist after completion.
	if view.SaleCompleted {
		existing, err := r.store.GetCollection(ctx, collectionID)
		if err != nil {
			return err
		}
		r.applyPostCompletionState(ctx, collectionID, view, desired, existing)
	}

	stages, err := r.gateway.GetMintStages(ctx, collectionID)
	if err != nil {
		logger.WarnCtx(ctx, "mint stage fetch failed, clearing stored stages",
			zap.String("collection_id", collectionID),
			zap.Error(err))
		stages = nil
	}

	created, updated, err := r.store.UpsertCollection(ctx, desired)
	if err != nil {
		return err
	}
	if created {
		logger.InfoCtx(ctx, "created collection", zap.String("collection_id", collectionID))
	} else if updated {
		logger.InfoCtx(ctx, "updated collection", zap.String("collection_id", collectionID))
	}

	return r.store.ReplaceMintStages(ctx, collectionID, stagesToSchema(collectionID, stages))
}

// applyPostCompletionState copies vesting and FA-distribution state onto the
// desired row. Each source is independently best-effort: a failed lookup
// keeps the values the existing row already holds instead of writing them
// back to null.
func (r *Reconciler) applyPostCompletionState(ctx context.Context, collectionID string, view *chain.CollectionView, desired, existing *schema.Collection) {
	desired.VestingCliff = view.VestingCliff
	desired.VestingDuration = view.VestingDuration
	desired.CreatorVestingCliff = view.CreatorVestingCliff
	desired.CreatorVestingDuration = view.CreatorVestingDuration

	if dist := view.FADistribution; dist != nil {
		desired.FAMetadataAddress = &dist.MetadataAddress
		desired.FATotalMinted = &dist.TotalMinted
		desired.FALpAmount = &dist.LpAmount
		desired.FAVestingAmount = &dist.VestingAmount
		desired.FADevWalletAmount = &dist.DevWalletAmount
		desired.FACreatorVestingAmount = &dist.CreatorVestingAmount
	} else if existing != nil {
		desired.FAMetadataAddress = existing.FAMetadataAddress
		desired.FATotalMinted = existing.FATotalMinted
		desired.FALpAmount = existing.FALpAmount
		desired.FAVestingAmount = existing.FAVestingAmount
		desired.FADevWalletAmount = existing.FADevWalletAmount
		desired.FACreatorVestingAmount = existing.FACreatorVestingAmount
	}

	if cfg, err := r.gateway.GetHolderVestingConfig(ctx, collectionID); err != nil {
		logger.WarnCtx(ctx, "holder vesting lookup failed, keeping stored values",
			zap.String("collection_id", collectionID),
			zap.Error(err))
		if existing != nil {
			desired.VestingStartTime = existing.VestingStartTime
			desired.VestingTotalPool = existing.VestingTotalPool
			desired.VestingAmountPerNFT = existing.VestingAmountPerNFT
		}
	} else if cfg != nil {
		desired.VestingStartTime = &cfg.StartTime
		desired.VestingTotalPool = &cfg.TotalPool
		desired.VestingAmountPerNFT = &cfg.AmountPerNFT
	}

	if cfg, err := r.gateway.GetCreatorVestingConfig(ctx, collectionID); err != nil {
		logger.WarnCtx(ctx, "creator vesting lookup failed, keeping stored values",
			zap.String("collection_id", collectionID),
			zap.Error(err))
		if existing != nil {
			desired.CreatorVestingWalletAddress = existing.CreatorVestingWalletAddress
			desired.CreatorVestingStartTime = existing.CreatorVestingStartTime
			desired.CreatorVestingTotalPool = existing.CreatorVestingTotalPool
		}
	} else if cfg != nil {
		desired.CreatorVestingWalletAddress = &cfg.WalletAddress
		desired.CreatorVestingStartTime = &cfg.StartTime
		desired.CreatorVestingTotalPool = &cfg.TotalPool
	}
}

func (r *Reconciler) publishEvent(ctx context.Context, event *domain.LaunchpadEvent) {
	if r.publisher == nil {
		return
	}
	if err := r.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "failed to publish event",
			zap.String("event_type", event.EventType),
			zap.String("collection_id", event.CollectionID),
			zap.Error(err))
	}
}

func stagesToSchema(collectionID string, stages []chain.MintStageInfo) []schema.MintStage {
	out := make([]schema.MintStage, 0, len(stages))
	for _, stage := range stages {
		out = append(out, schema.MintStage{
			CollectionID:     collectionID,
			Name:             stage.Name,
			MintFee:          stage.MintFee,
			StartTime:        stage.StartTime,
			EndTime:          stage.EndTime,
			StageType:        stage.StageType,
			MintLimitPerAddr: stage.MintLimitPerAddr,
		})
	}
	return out
}
