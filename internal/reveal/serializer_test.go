package reveal_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movemint/launchpad-sync/internal/adapter"
	"github.com/movemint/launchpad-sync/internal/chain"
	"github.com/movemint/launchpad-sync/internal/domain"
	"github.com/movemint/launchpad-sync/internal/logger"
	"github.com/movemint/launchpad-sync/internal/mocks"
	"github.com/movemint/launchpad-sync/internal/reveal"
	"github.com/movemint/launchpad-sync/internal/store/schema"
)

// testAddr builds a canonical collection address ending in the given suffix
func testAddr(suffix string) string {
	return strings.Repeat("0", 64-len(suffix)) + suffix
}

type testSerializerMocks struct {
	ctrl       *gomock.Controller
	store      *mocks.MockStore
	gateway    *mocks.MockGateway
	indexer    *mocks.MockIndexer
	publisher  *mocks.MockPublisher
	serializer *reveal.Serializer
}

// setupTestSerializer wires a serializer with a real clock and a short
// backoff so retries resolve within the test.
func setupTestSerializer(t *testing.T, cfg reveal.Config) *testSerializerMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testSerializerMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		gateway:   mocks.NewMockGateway(ctrl),
		indexer:   mocks.NewMockIndexer(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
	}

	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.InitialBackoff == 0 {
		cfg.InitialBackoff = time.Millisecond
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 16
	}
	if cfg.WaitMax == 0 {
		cfg.WaitMax = 500 * time.Millisecond
	}
	if cfg.WaitPollInterval == 0 {
		cfg.WaitPollInterval = 10 * time.Millisecond
	}

	tm.serializer = reveal.NewSerializer(
		tm.store,
		tm.gateway,
		tm.indexer,
		tm.publisher,
		adapter.NewClock(),
		cfg,
	)

	return tm
}

func tearDownTestSerializer(tm *testSerializerMocks) {
	tm.ctrl.Finish()
}

func TestQueueReveal_Success(t *testing.T) {
	tm := setupTestSerializer(t, reveal.Config{})
	defer tearDownTestSerializer(tm)

	collectionID := testAddr("a1")
	tokenID := "0xtoken1"
	owner := testAddr("b1")

	item := &schema.RevealItem{
		ID:          7,
		Name:        "Ape #42",
		Description: "rare",
		URI:         "ipfs://42",
		Traits: schema.Traits{
			{TraitType: "fur", Value: "gold"},
			{TraitType: "eyes", Value: "laser"},
		},
	}

	tm.store.EXPECT().
		GetRandomUnrevealedItem(gomock.Any(), collectionID).
		Return(item, nil)

	// Trait lists stay parallel and ordered.
	tm.gateway.EXPECT().
		RevealNFT(gomock.Any(), collectionID, tokenID,
			"Ape #42", "rare", "ipfs://42",
			[]string{"fur", "eyes"}, []string{"gold", "laser"}).
		Return(&chain.TxResult{Hash: "0xhash", Version: 99}, nil)

	tm.indexer.EXPECT().
		WaitForVersion(gomock.Any(), uint64(99)).
		Return(nil)

	tm.indexer.EXPECT().
		GetTokenOwner(gomock.Any(), tokenID).
		Return(&owner, nil)

	tm.store.EXPECT().
		MarkItemRevealed(gomock.Any(), int64(7), tokenID, &owner, gomock.Any()).
		Return(nil)

	tm.publisher.EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.LaunchpadEvent) error {
			assert.Equal(t, domain.EventNFTRevealed, event.EventType)
			assert.Equal(t, tokenID, event.NFTTokenID)
			assert.Equal(t, owner, event.OwnerAddress)
			return nil
		})

	err := tm.serializer.QueueReveal(context.Background(), "0xA1", tokenID)
	require.NoError(t, err)

	tm.serializer.Close()
}

func TestQueueReveal_InvalidCollectionID(t *testing.T) {
	tm := setupTestSerializer(t, reveal.Config{})
	defer tearDownTestSerializer(tm)
	defer tm.serializer.Close()

	err := tm.serializer.QueueReveal(context.Background(), "not-hex", "0xtoken")
	require.Error(t, err)
}

func TestQueueReveal_RetriesTransientFailure(t *testing.T) {
	tm := setupTestSerializer(t, reveal.Config{})
	defer tearDownTestSerializer(tm)

	collectionID := testAddr("a2")
	tokenID := "0xtoken2"
	item := &schema.RevealItem{ID: 3, Name: "Ape #7", URI: "ipfs://7"}

	// First attempt fails at the transaction; the retry re-selects an item
	// and succeeds.
	tm.store.EXPECT().
		GetRandomUnrevealedItem(gomock.Any(), collectionID).
		Return(item, nil).
		Times(2)

	tm.gateway.EXPECT().
		RevealNFT(gomock.Any(), collectionID, tokenID,
			"Ape #7", "", "ipfs://7", []string{}, []string{}).
		Return(nil, errors.New("SEQUENCE_NUMBER_TOO_OLD"))

	tm.gateway.EXPECT().
		RevealNFT(gomock.Any(), collectionID, tokenID,
			"Ape #7", "", "ipfs://7", []string{}, []string{}).
		Return(&chain.TxResult{Hash: "0xhash", Version: 10}, nil)

	tm.indexer.EXPECT().
		WaitForVersion(gomock.Any(), uint64(10)).
		Return(domain.ErrIndexerLagging)

	// Owner lookup failure downgrades to a nil owner.
	tm.indexer.EXPECT().
		GetTokenOwner(gomock.Any(), tokenID).
		Return(nil, errors.New("indexer down"))

	tm.store.EXPECT().
		MarkItemRevealed(gomock.Any(), int64(3), tokenID, gomock.Nil(), gomock.Any()).
		Return(nil)

	tm.publisher.EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		Return(nil)

	err := tm.serializer.QueueReveal(context.Background(), collectionID, tokenID)
	require.NoError(t, err)

	tm.serializer.Close()
}

func TestQueueReveal_ExhaustedPoolStopsImmediately(t *testing.T) {
	tm := setupTestSerializer(t, reveal.Config{MaxAttempts: 5})
	defer tearDownTestSerializer(tm)

	collectionID := testAddr("a3")

	// An empty pool is permanent: one selection attempt, no transaction.
	tm.store.EXPECT().
		GetRandomUnrevealedItem(gomock.Any(), collectionID).
		Return(nil, nil).
		Times(1)

	err := tm.serializer.QueueReveal(context.Background(), collectionID, "0xtoken3")
	require.NoError(t, err)

	tm.serializer.Close()
}

func TestQueueReveal_RecordFailureDoesNotBurnSecondItem(t *testing.T) {
	tm := setupTestSerializer(t, reveal.Config{MaxAttempts: 5})
	defer tearDownTestSerializer(tm)

	collectionID := testAddr("a4")
	tokenID := "0xtoken4"
	item := &schema.RevealItem{ID: 9, Name: "Ape #9", URI: "ipfs://9"}

	tm.store.EXPECT().
		GetRandomUnrevealedItem(gomock.Any(), collectionID).
		Return(item, nil).
		Times(1)

	// The transaction lands exactly once.
	tm.gateway.EXPECT().
		RevealNFT(gomock.Any(), collectionID, tokenID,
			"Ape #9", "", "ipfs://9", []string{}, []string{}).
		Return(&chain.TxResult{Hash: "0xhash", Version: 11}, nil).
		Times(1)

	tm.indexer.EXPECT().
		WaitForVersion(gomock.Any(), uint64(11)).
		Return(nil)
	tm.indexer.EXPECT().
		GetTokenOwner(gomock.Any(), tokenID).
		Return(nil, nil)

	// Recording fails after the transaction landed; retrying would consume
	// a second item for the same token, so the job stops.
	tm.store.EXPECT().
		MarkItemRevealed(gomock.Any(), int64(9), tokenID, gomock.Nil(), gomock.Any()).
		Return(errors.New("db down")).
		Times(1)

	err := tm.serializer.QueueReveal(context.Background(), collectionID, tokenID)
	require.NoError(t, err)

	tm.serializer.Close()
}

func TestQueueReveal_ConcurrentRevealsStaySerialized(t *testing.T) {
	tm := setupTestSerializer(t, reveal.Config{})
	defer tearDownTestSerializer(tm)

	collectionID := testAddr("a7")
	const jobs = 5

	var mu sync.Mutex
	unrevealed := make(map[int64]*schema.RevealItem, jobs)
	for i := int64(1); i <= jobs; i++ {
		unrevealed[i] = &schema.RevealItem{
			ID:   i,
			Name: fmt.Sprintf("Ape #%d", i),
			URI:  fmt.Sprintf("ipfs://%d", i),
		}
	}
	assigned := make(map[int64]string, jobs)

	tm.store.EXPECT().
		GetRandomUnrevealedItem(gomock.Any(), collectionID).
		DoAndReturn(func(_ context.Context, _ string) (*schema.RevealItem, error) {
			mu.Lock()
			defer mu.Unlock()
			for _, item := range unrevealed {
				return item, nil
			}
			return nil, nil
		}).
		Times(jobs)

	// At most one transaction may be in flight for the signing account; the
	// sleep widens the window an overlapping submission would fall into.
	var inFlight int32
	tm.gateway.EXPECT().
		RevealNFT(gomock.Any(), collectionID, gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _, _, _ string, _, _ []string) (*chain.TxResult, error) {
			current := atomic.AddInt32(&inFlight, 1)
			defer atomic.AddInt32(&inFlight, -1)
			assert.LessOrEqual(t, current, int32(1), "overlapping reveal submissions")
			time.Sleep(5 * time.Millisecond)
			return &chain.TxResult{Hash: "0xhash", Version: 20}, nil
		}).
		Times(jobs)

	tm.indexer.EXPECT().
		WaitForVersion(gomock.Any(), uint64(20)).
		Return(nil).
		Times(jobs)
	tm.indexer.EXPECT().
		GetTokenOwner(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(jobs)

	tm.store.EXPECT().
		MarkItemRevealed(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, itemID int64, tokenID string, _ *string, _ time.Time) error {
			mu.Lock()
			defer mu.Unlock()
			_, ok := unrevealed[itemID]
			assert.True(t, ok, "item %d assigned twice", itemID)
			delete(unrevealed, itemID)
			assigned[itemID] = tokenID
			return nil
		}).
		Times(jobs)

	tm.publisher.EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(jobs)

	var wg sync.WaitGroup
	for i := 0; i < jobs; i++ {
		wg.Add(1)
		tokenID := fmt.Sprintf("0xtok%d", i)
		go func() {
			defer wg.Done()
			assert.NoError(t, tm.serializer.QueueReveal(context.Background(), collectionID, tokenID))
		}()
	}
	wg.Wait()
	tm.serializer.Close()

	// Every item was consumed exactly once, every token got its own item.
	assert.Len(t, assigned, jobs)
	assert.Empty(t, unrevealed)
	seenTokens := make(map[string]struct{}, jobs)
	for _, tokenID := range assigned {
		seenTokens[tokenID] = struct{}{}
	}
	assert.Len(t, seenTokens, jobs)
}

func TestRevealNFT_ReturnsRevealedItem(t *testing.T) {
	tm := setupTestSerializer(t, reveal.Config{})
	defer tearDownTestSerializer(tm)

	collectionID := testAddr("a5")
	tokenID := "0xtoken5"
	item := &schema.RevealItem{ID: 2, Name: "Ape #2", URI: "ipfs://2"}
	bound := tokenID
	revealed := &schema.RevealItem{ID: 2, Name: "Ape #2", URI: "ipfs://2", Revealed: true, NFTTokenID: &bound}

	tm.store.EXPECT().
		GetRandomUnrevealedItem(gomock.Any(), collectionID).
		Return(item, nil)
	tm.gateway.EXPECT().
		RevealNFT(gomock.Any(), collectionID, tokenID,
			"Ape #2", "", "ipfs://2", []string{}, []string{}).
		Return(&chain.TxResult{Hash: "0xhash", Version: 12}, nil)
	tm.indexer.EXPECT().
		WaitForVersion(gomock.Any(), uint64(12)).
		Return(nil)
	tm.indexer.EXPECT().
		GetTokenOwner(gomock.Any(), tokenID).
		Return(nil, nil)
	tm.store.EXPECT().
		MarkItemRevealed(gomock.Any(), int64(2), tokenID, gomock.Nil(), gomock.Any()).
		Return(nil)
	tm.publisher.EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		Return(nil)

	// The wait loop polls until the store reports the bound item.
	tm.store.EXPECT().
		GetRevealedItemByTokenID(gomock.Any(), tokenID).
		Return(revealed, nil).
		AnyTimes()

	result := tm.serializer.RevealNFT(context.Background(), collectionID, tokenID)
	assert.True(t, result.Success)
	assert.Equal(t, "Ape #2", result.Name)
	assert.Equal(t, "ipfs://2", result.URI)

	tm.serializer.Close()
}

func TestRevealNFT_TimesOut(t *testing.T) {
	tm := setupTestSerializer(t, reveal.Config{
		MaxAttempts:      1,
		WaitMax:          50 * time.Millisecond,
		WaitPollInterval: 10 * time.Millisecond,
	})
	defer tearDownTestSerializer(tm)

	collectionID := testAddr("a6")
	tokenID := "0xtoken6"

	// The job dies on an exhausted pool; the store never records a reveal.
	tm.store.EXPECT().
		GetRandomUnrevealedItem(gomock.Any(), collectionID).
		Return(nil, nil)
	tm.store.EXPECT().
		GetRevealedItemByTokenID(gomock.Any(), tokenID).
		Return(nil, nil).
		AnyTimes()

	result := tm.serializer.RevealNFT(context.Background(), collectionID, tokenID)
	assert.False(t, result.Success)

	tm.serializer.Close()
}
