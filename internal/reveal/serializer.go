package reveal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/movemint/launchpad-sync/internal/adapter"
	"github.com/movemint/launchpad-sync/internal/chain"
	"github.com/movemint/launchpad-sync/internal/domain"
	"github.com/movemint/launchpad-sync/internal/indexer"
	"github.com/movemint/launchpad-sync/internal/logger"
	"github.com/movemint/launchpad-sync/internal/messaging"
	"github.com/movemint/launchpad-sync/internal/store"
)

// Config holds reveal serializer settings
type Config struct {
	// MaxAttempts bounds retries of a single reveal job
	MaxAttempts int
	// InitialBackoff is the first retry delay; it doubles per attempt
	InitialBackoff time.Duration
	// QueueSize bounds the number of queued reveal jobs
	QueueSize int
	// WaitMax bounds the synchronous RevealNFT wait
	WaitMax time.Duration
	// WaitPollInterval is the RevealNFT store polling period
	WaitPollInterval time.Duration
}

// Result is the outcome of a synchronous reveal
type Result struct {
	Success bool   `json:"success"`
	Name    string `json:"name,omitempty"`
	URI     string `json:"uri,omitempty"`
}

// Serializer funnels all reveal transactions through a single worker so no
// two ever overlap. The signing account has one sequence number; concurrent
// submissions would race it and the chain would reject all but one.
type Serializer struct {
	store     store.Store
	gateway   chain.Gateway
	indexer   indexer.Indexer
	publisher messaging.Publisher
	clock     adapter.Clock
	cfg       Config
	pool      pond.Pool
}

// NewSerializer creates a reveal serializer with a single-worker queue.
// publisher may be nil, in which case no events are emitted.
func NewSerializer(
	st store.Store,
	gateway chain.Gateway,
	idx indexer.Indexer,
	publisher messaging.Publisher,
	clock adapter.Clock,
	cfg Config,
) *Serializer {
	return &Serializer{
		store:     st,
		gateway:   gateway,
		indexer:   idx,
		publisher: publisher,
		clock:     clock,
		cfg:       cfg,
		// Pool size 1 serializes every reveal transaction.
		pool: pond.NewPool(1, pond.WithQueueSize(cfg.QueueSize)),
	}
}

// QueueReveal enqueues a reveal for a freshly minted token and returns
// without waiting for it to land.
func (s *Serializer) QueueReveal(ctx context.Context, collectionID, nftTokenID string) error {
	canonical, err := domain.NormalizeAddress(collectionID)
	if err != nil {
		return fmt.Errorf("invalid collection id: %w", err)
	}

	jobID := ulid.Make().String()
	s.pool.Submit(func() {
		// The request context ends with the HTTP call; the queued job
		// must not be canceled with it.
		s.runReveal(context.Background(), jobID, canonical, nftTokenID)
	})

	logger.InfoCtx(ctx, "queued reveal",
		zap.String("job_id", jobID),
		zap.String("collection_id", canonical),
		zap.String("nft_token_id", nftTokenID))
	return nil
}

// RevealNFT enqueues a reveal and waits for the store to record it, polling
// until WaitMax elapses. A timeout yields Success=false; the queued job
// keeps running and the caller can query the item later.
func (s *Serializer) RevealNFT(ctx context.Context, collectionID, nftTokenID string) Result {
	if err := s.QueueReveal(ctx, collectionID, nftTokenID); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("nft_token_id", nftTokenID))
		return Result{Success: false}
	}

	deadline := s.clock.Now().Add(s.cfg.WaitMax)
	for {
		item, err := s.store.GetRevealedItemByTokenID(ctx, nftTokenID)
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.String("nft_token_id", nftTokenID))
		} else if item != nil {
			return Result{Success: true, Name: item.Name, URI: item.URI}
		}

		if !s.clock.Now().Add(s.cfg.WaitPollInterval).Before(deadline) {
			logger.WarnCtx(ctx, "timed out waiting for reveal",
				zap.String("nft_token_id", nftTokenID),
				zap.Duration("waited", s.cfg.WaitMax))
			return Result{Success: false}
		}

		select {
		case <-ctx.Done():
			return Result{Success: false}
		case <-s.clock.After(s.cfg.WaitPollInterval):
		}
	}
}

// Close drains the queue and stops the worker
func (s *Serializer) Close() {
	s.pool.StopAndWait()
}

// runReveal executes one reveal job with retries. Each attempt re-selects an
// item, so a retry after a partially applied attempt cannot double-consume.
func (s *Serializer) runReveal(ctx context.Context, jobID, collectionID, nftTokenID string) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.cfg.InitialBackoff
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0

	attempts := uint64(0)
	if s.cfg.MaxAttempts > 1 {
		attempts = uint64(s.cfg.MaxAttempts - 1)
	}

	operation := func() error {
		return s.revealOnce(ctx, collectionID, nftTokenID)
	}
	notify := func(err error, wait time.Duration) {
		logger.WarnCtx(ctx, "reveal attempt failed, retrying",
			zap.String("job_id", jobID),
			zap.String("nft_token_id", nftTokenID),
			zap.Duration("retry_in", wait),
			zap.Error(err))
	}

	if err := backoff.RetryNotify(operation, backoff.WithMaxRetries(b, attempts), notify); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("reveal failed for token %s: %w", nftTokenID, err),
			zap.String("job_id", jobID),
			zap.String("collection_id", collectionID))
	}
}

func (s *Serializer) revealOnce(ctx context.Context, collectionID, nftTokenID string) error {
	item, err := s.store.GetRandomUnrevealedItem(ctx, collectionID)
	if err != nil {
		return err
	}
	if item == nil {
		// Nothing left to bind; retrying cannot help.
		return backoff.Permanent(fmt.Errorf("collection %s: %w", collectionID, domain.ErrNoUnrevealedItems))
	}

	traitNames := make([]string, 0, len(item.Traits))
	traitValues := make([]string, 0, len(item.Traits))
	for _, trait := range item.Traits {
		traitNames = append(traitNames, trait.TraitType)
		traitValues = append(traitValues, trait.Value)
	}

	tx, err := s.gateway.RevealNFT(ctx, collectionID, nftTokenID,
		item.Name, item.Description, item.URI, traitNames, traitValues)
	if err != nil {
		return fmt.Errorf("reveal transaction failed: %w", err)
	}

	// Give the indexer a bounded chance to see the reveal so the owner
	// lookup below has data. Proceed either way.
	if err := s.indexer.WaitForVersion(ctx, tx.Version); err != nil {
		if errors.Is(err, domain.ErrIndexerLagging) {
			logger.WarnCtx(ctx, "indexer behind reveal transaction, proceeding without owner",
				zap.String("nft_token_id", nftTokenID),
				zap.Uint64("version", tx.Version))
		} else {
			logger.ErrorCtx(ctx, err, zap.String("nft_token_id", nftTokenID))
		}
	}

	owner, err := s.indexer.GetTokenOwner(ctx, nftTokenID)
	if err != nil {
		logger.WarnCtx(ctx, "owner lookup failed, recording reveal without owner",
			zap.String("nft_token_id", nftTokenID),
			zap.Error(err))
		owner = nil
	}

	if err := s.store.MarkItemRevealed(ctx, item.ID, nftTokenID, owner, s.clock.Now()); err != nil {
		// The chain transaction already landed; failing here would retry
		// the whole job and burn a second item on the same token.
		return backoff.Permanent(fmt.Errorf("failed to record reveal: %w", err))
	}

	logger.InfoCtx(ctx, "revealed NFT",
		zap.String("collection_id", collectionID),
		zap.String("nft_token_id", nftTokenID),
		zap.String("name", item.Name),
		zap.String("tx_hash", tx.Hash))

	s.publish(ctx, nftTokenID, collectionID, owner)
	return nil
}

func (s *Serializer) publish(ctx context.Context, nftTokenID, collectionID string, owner *string) {
	if s.publisher == nil {
		return
	}

	event := &domain.LaunchpadEvent{
		EventType:    domain.EventNFTRevealed,
		CollectionID: collectionID,
		NFTTokenID:   nftTokenID,
		Timestamp:    s.clock.Now().Unix(),
	}
	if owner != nil {
		event.OwnerAddress = *owner
	}
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "failed to publish reveal event",
			zap.String("nft_token_id", nftTokenID),
			zap.Error(err))
	}
}
