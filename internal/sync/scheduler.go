package sync

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/movemint/launchpad-sync/internal/adapter"
	"github.com/movemint/launchpad-sync/internal/logger"
)

// SchedulerConfig holds the two reconciliation intervals
type SchedulerConfig struct {
	// SupplyInterval is the fast-loop period
	SupplyInterval time.Duration
	// FullInterval is the slow-loop period
	FullInterval time.Duration
}

// Scheduler drives the reconciler on two independent schedules: a fast
// supply loop and a slow full loop. The loops share one goroutine; a pass
// that overruns its interval delays the next tick instead of stacking
// concurrent passes over the same rows.
type Scheduler struct {
	reconciler *Reconciler
	clock      adapter.Clock
	cfg        SchedulerConfig

	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewScheduler creates a scheduler for the given reconciler
func NewScheduler(reconciler *Reconciler, clock adapter.Clock, cfg SchedulerConfig) *Scheduler {
	return &Scheduler{
		reconciler: reconciler,
		clock:      clock,
		cfg:        cfg,
		stopChan:   make(chan struct{}),
		stoppedCh:  make(chan struct{}),
	}
}

// Start runs the reconciliation loops until the context is canceled or Stop
// is called. It blocks; run it in its own goroutine.
func (s *Scheduler) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("scheduler already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "starting sync scheduler",
		zap.Duration("supply_interval", s.cfg.SupplyInterval),
		zap.Duration("full_interval", s.cfg.FullInterval))

	// An immediate full pass discovers registry entries at startup instead
	// of waiting out the first slow interval.
	s.runFull(ctx)

	supplyCh := s.clock.After(s.cfg.SupplyInterval)
	fullCh := s.clock.After(s.cfg.FullInterval)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "sync scheduler stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "sync scheduler stop requested")
			return nil
		case <-supplyCh:
			s.runSupply(ctx)
			supplyCh = s.clock.After(s.cfg.SupplyInterval)
		case <-fullCh:
			s.runFull(ctx)
			fullCh = s.clock.After(s.cfg.FullInterval)
		}
	}
}

// Stop gracefully stops the scheduler, waiting for the running pass
func (s *Scheduler) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "sync scheduler stopped")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "sync scheduler stop interrupted by context timeout")
		return ctx.Err()
	}
}

func (s *Scheduler) runSupply(ctx context.Context) {
	if err := s.reconciler.SyncSupply(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.ErrorCtx(ctx, fmt.Errorf("supply sync pass failed: %w", err))
	}
}

func (s *Scheduler) runFull(ctx context.Context) {
	if err := s.reconciler.SyncFull(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.ErrorCtx(ctx, fmt.Errorf("full sync pass failed: %w", err))
	}
}
