package sync_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movemint/launchpad-sync/internal/sync"
)

func TestScheduler_RunsImmediateFullPassAndStops(t *testing.T) {
	tm := setupTestReconciler(t)
	defer tearDownTestReconciler(tm)

	// The startup full pass reads the registry; the registry failure is
	// logged and the loop keeps running.
	tm.gateway.EXPECT().
		GetRegistry(gomock.Any()).
		Return(nil, errors.New("rpc timeout")).
		MinTimes(1)

	// Long intervals keep the timers from firing during the test.
	tm.clock.EXPECT().
		After(gomock.Any()).
		DoAndReturn(func(time.Duration) <-chan time.Time {
			return make(chan time.Time)
		}).
		AnyTimes()

	scheduler := sync.NewScheduler(tm.reconciler, tm.clock, sync.SchedulerConfig{
		SupplyInterval: time.Hour,
		FullInterval:   time.Hour,
	})

	done := make(chan error, 1)
	go func() {
		done <- scheduler.Start(context.Background())
	}()

	// Give the startup pass a moment, then stop.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, scheduler.Stop(context.Background()))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_RejectsDoubleStart(t *testing.T) {
	tm := setupTestReconciler(t)
	defer tearDownTestReconciler(tm)

	tm.gateway.EXPECT().
		GetRegistry(gomock.Any()).
		Return(nil, errors.New("rpc timeout")).
		AnyTimes()
	tm.clock.EXPECT().
		After(gomock.Any()).
		DoAndReturn(func(time.Duration) <-chan time.Time {
			return make(chan time.Time)
		}).
		AnyTimes()

	scheduler := sync.NewScheduler(tm.reconciler, tm.clock, sync.SchedulerConfig{
		SupplyInterval: time.Hour,
		FullInterval:   time.Hour,
	})

	go func() {
		_ = scheduler.Start(context.Background())
	}()
	time.Sleep(50 * time.Millisecond)

	err := scheduler.Start(context.Background())
	assert.Error(t, err)

	require.NoError(t, scheduler.Stop(context.Background()))
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	tm := setupTestReconciler(t)
	defer tearDownTestReconciler(tm)

	tm.gateway.EXPECT().
		GetRegistry(gomock.Any()).
		Return(nil, errors.New("rpc timeout")).
		AnyTimes()
	tm.clock.EXPECT().
		After(gomock.Any()).
		DoAndReturn(func(time.Duration) <-chan time.Time {
			return make(chan time.Time)
		}).
		AnyTimes()

	scheduler := sync.NewScheduler(tm.reconciler, tm.clock, sync.SchedulerConfig{
		SupplyInterval: time.Hour,
		FullInterval:   time.Hour,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- scheduler.Start(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancellation")
	}
}
