package sync_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movemint/launchpad-sync/internal/chain"
	"github.com/movemint/launchpad-sync/internal/domain"
	"github.com/movemint/launchpad-sync/internal/indexer"
	"github.com/movemint/launchpad-sync/internal/logger"
	"github.com/movemint/launchpad-sync/internal/mocks"
	"github.com/movemint/launchpad-sync/internal/store"
	"github.com/movemint/launchpad-sync/internal/store/schema"
	"github.com/movemint/launchpad-sync/internal/sync"
)

// testAddr builds a canonical collection address ending in the given suffix
func testAddr(suffix string) string {
	return strings.Repeat("0", 64-len(suffix)) + suffix
}

type testReconcilerMocks struct {
	ctrl       *gomock.Controller
	store      *mocks.MockStore
	gateway    *mocks.MockGateway
	indexer    *mocks.MockIndexer
	publisher  *mocks.MockPublisher
	clock      *mocks.MockClock
	reconciler *sync.Reconciler
}

func setupTestReconciler(t *testing.T) *testReconcilerMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testReconcilerMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		gateway:   mocks.NewMockGateway(ctrl),
		indexer:   mocks.NewMockIndexer(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}

	tm.clock.EXPECT().Now().Return(time.Unix(1_700_000_000, 0)).AnyTimes()

	tm.reconciler = sync.NewReconciler(
		tm.store,
		tm.gateway,
		tm.indexer,
		tm.publisher,
		tm.clock,
		sync.Config{Parallelism: 1},
	)

	return tm
}

func tearDownTestReconciler(tm *testReconcilerMocks) {
	tm.ctrl.Finish()
}

func TestSyncCollectionSupply_NoChange(t *testing.T) {
	tm := setupTestReconciler(t)
	defer tearDownTestReconciler(tm)

	ctx := context.Background()
	collectionID := testAddr("a1")
	ownerCount := uint64(40)

	tm.store.EXPECT().
		GetCollection(gomock.Any(), collectionID).
		Return(&schema.Collection{CollectionID: collectionID, MaxSupply: 5000, CurrentSupply: 100}, nil)

	tm.gateway.EXPECT().
		GetCollectionView(gomock.Any(), collectionID).
		Return(&chain.CollectionView{MaxSupply: 5000, CurrentSupply: 100, TotalFundsCollected: 777}, nil)

	tm.indexer.EXPECT().
		GetOwnerCount(gomock.Any(), collectionID).
		Return(ownerCount, nil)

	tm.gateway.EXPECT().
		IsSaleCompleted(gomock.Any(), collectionID).
		Return(false, nil)

	tm.store.EXPECT().
		UpdateCollectionSupply(gomock.Any(), collectionID, store.SupplySnapshot{
			CurrentSupply:       100,
			OwnerCount:          &ownerCount,
			SaleCompleted:       false,
			TotalFundsCollected: 777,
		}).
		Return(false, nil)

	err := tm.reconciler.SyncCollectionSupply(ctx, "0xA1")
	require.NoError(t, err)
}

func TestSyncCollectionSupply_OwnerCountFailureKeepsCachedValue(t *testing.T) {
	tm := setupTestReconciler(t)
	defer tearDownTestReconciler(tm)

	ctx := context.Background()
	collectionID := testAddr("a2")
	cached := uint64(12)

	tm.store.EXPECT().
		GetCollection(gomock.Any(), collectionID).
		Return(&schema.Collection{CollectionID: collectionID, OwnerCount: &cached}, nil)

	tm.gateway.EXPECT().
		GetCollectionView(gomock.Any(), collectionID).
		Return(&chain.CollectionView{MaxSupply: 100, CurrentSupply: 50}, nil)

	tm.indexer.EXPECT().
		GetOwnerCount(gomock.Any(), collectionID).
		Return(uint64(0), errors.New("indexer down"))

	tm.gateway.EXPECT().
		IsSaleCompleted(gomock.Any(), collectionID).
		Return(false, nil)

	tm.store.EXPECT().
		UpdateCollectionSupply(gomock.Any(), collectionID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, snap store.SupplySnapshot) (bool, error) {
			require.NotNil(t, snap.OwnerCount)
			assert.Equal(t, cached, *snap.OwnerCount)
			return true, nil
		})

	err := tm.reconciler.SyncCollectionSupply(ctx, collectionID)
	require.NoError(t, err)
}

func TestSyncCollectionSupply_CompletionRejectionTolerated(t *testing.T) {
	tm := setupTestReconciler(t)
	defer tearDownTestReconciler(tm)

	ctx := context.Background()
	collectionID := testAddr("a3")

	tm.store.EXPECT().
		GetCollection(gomock.Any(), collectionID).
		Return(&schema.Collection{CollectionID: collectionID, MaxSupply: 100}, nil)

	// Minted out but the chain rejects the completion call.
	tm.gateway.EXPECT().
		GetCollectionView(gomock.Any(), collectionID).
		Return(&chain.CollectionView{MaxSupply: 100, CurrentSupply: 100}, nil)

	tm.indexer.EXPECT().
		GetOwnerCount(gomock.Any(), collectionID).
		Return(uint64(90), nil)

	tm.gateway.EXPECT().
		IsSaleCompleted(gomock.Any(), collectionID).
		Return(false, nil)

	tm.gateway.EXPECT().
		CheckAndCompleteSale(gomock.Any(), collectionID).
		Return(nil, errors.New("EALREADY_COMPLETING"))

	// No event, no eager reconcile; the snapshot is written with the
	// completion flag still false.
	tm.store.EXPECT().
		UpdateCollectionSupply(gomock.Any(), collectionID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, snap store.SupplySnapshot) (bool, error) {
			assert.False(t, snap.SaleCompleted)
			return true, nil
		})

	err := tm.reconciler.SyncCollectionSupply(ctx, collectionID)
	require.NoError(t, err)
}

func TestSyncCollectionSupply_MintOutCompletesSale(t *testing.T) {
	tm := setupTestReconciler(t)
	defer tearDownTestReconciler(tm)

	ctx := context.Background()
	collectionID := testAddr("b1")
	creator := testAddr("c1")

	tm.store.EXPECT().
		GetCollection(gomock.Any(), collectionID).
		Return(&schema.Collection{CollectionID: collectionID, MaxSupply: 100, SaleCompleted: false}, nil)

	tm.gateway.EXPECT().
		GetCollectionView(gomock.Any(), collectionID).
		Return(&chain.CollectionView{MaxSupply: 100, CurrentSupply: 100, MintEnabled: true}, nil)

	tm.indexer.EXPECT().
		GetOwnerCount(gomock.Any(), collectionID).
		Return(uint64(95), nil)

	tm.gateway.EXPECT().
		IsSaleCompleted(gomock.Any(), collectionID).
		Return(false, nil)

	tm.gateway.EXPECT().
		CheckAndCompleteSale(gomock.Any(), collectionID).
		Return(&chain.TxResult{Hash: "0xtx", Version: 42}, nil)

	// Post-completion re-read confirms the flip.
	tm.gateway.EXPECT().
		IsSaleCompleted(gomock.Any(), collectionID).
		Return(true, nil)

	tm.store.EXPECT().
		UpdateCollectionSupply(gomock.Any(), collectionID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, snap store.SupplySnapshot) (bool, error) {
			assert.True(t, snap.SaleCompleted)
			return true, nil
		})

	tm.publisher.EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.LaunchpadEvent) error {
			assert.Equal(t, domain.EventSaleCompleted, event.EventType)
			assert.Equal(t, collectionID, event.CollectionID)
			return nil
		})

	// The completion edge triggers an eager full reconciliation.
	tm.gateway.EXPECT().
		GetRegistry(gomock.Any()).
		Return([]string{collectionID}, nil)
	tm.gateway.EXPECT().
		GetCollectionView(gomock.Any(), collectionID).
		Return(&chain.CollectionView{
			CollectionName: "Sold Out",
			MaxSupply:      100,
			CurrentSupply:  100,
			SaleCompleted:  true,
			MintEnabled:    true,
		}, nil)
	tm.gateway.EXPECT().
		GetCollectionCreator(gomock.Any(), collectionID).
		Return(creator, nil)
	tm.gateway.EXPECT().
		GetCollectedFunds(gomock.Any(), collectionID).
		Return(uint64(123456), nil)
	tm.gateway.EXPECT().
		GetSaleDeadline(gomock.Any(), collectionID).
		Return(uint64(1_800_000_000), nil)
	tm.store.EXPECT().
		GetCollection(gomock.Any(), collectionID).
		Return(&schema.Collection{CollectionID: collectionID, MaxSupply: 100, SaleCompleted: false}, nil)
	tm.indexer.EXPECT().
		GetCollectionMetadata(gomock.Any(), collectionID).
		Return(&indexer.CollectionMetadata{CollectionName: "Sold Out"}, nil)
	tm.gateway.EXPECT().
		GetHolderVestingConfig(gomock.Any(), collectionID).
		Return(&chain.HolderVestingConfig{StartTime: 1_700_000_100, TotalPool: 500, AmountPerNFT: 5}, nil)
	tm.gateway.EXPECT().
		GetCreatorVestingConfig(gomock.Any(), collectionID).
		Return(nil, nil)
	tm.gateway.EXPECT().
		GetMintStages(gomock.Any(), collectionID).
		Return(nil, nil)
	tm.store.EXPECT().
		UpsertCollection(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, desired *schema.Collection) (bool, bool, error) {
			assert.True(t, desired.SaleCompleted)
			require.NotNil(t, desired.VestingStartTime)
			assert.Equal(t, uint64(1_700_000_100), *desired.VestingStartTime)
			assert.Nil(t, desired.CreatorVestingStartTime)
			return false, true, nil
		})
	tm.store.EXPECT().
		ReplaceMintStages(gomock.Any(), collectionID, gomock.Len(0)).
		Return(nil)

	err := tm.reconciler.SyncCollectionSupply(ctx, collectionID)
	require.NoError(t, err)
}

func TestSyncCollectionSupply_UnknownCollection(t *testing.T) {
	tm := setupTestReconciler(t)
	defer tearDownTestReconciler(tm)

	collectionID := testAddr("ff")
	tm.store.EXPECT().
		GetCollection(gomock.Any(), collectionID).
		Return(nil, nil)

	err := tm.reconciler.SyncCollectionSupply(context.Background(), collectionID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
}

func TestSyncSupply_FaultIsolation(t *testing.T) {
	tm := setupTestReconciler(t)
	defer tearDownTestReconciler(tm)

	ctx := context.Background()
	failing := testAddr("d1")
	healthy := testAddr("d2")
	ownerCount := uint64(3)

	tm.store.EXPECT().
		ListCollections(gomock.Any()).
		Return([]schema.Collection{
			{CollectionID: failing, MaxSupply: 10},
			{CollectionID: healthy, MaxSupply: 10},
		}, nil)

	// The first collection's view read fails; the second still syncs.
	tm.gateway.EXPECT().
		GetCollectionView(gomock.Any(), failing).
		Return(nil, errors.New("rpc timeout"))

	tm.gateway.EXPECT().
		GetCollectionView(gomock.Any(), healthy).
		Return(&chain.CollectionView{MaxSupply: 10, CurrentSupply: 4}, nil)
	tm.indexer.EXPECT().
		GetOwnerCount(gomock.Any(), healthy).
		Return(ownerCount, nil)
	tm.gateway.EXPECT().
		IsSaleCompleted(gomock.Any(), healthy).
		Return(false, nil)
	tm.store.EXPECT().
		UpdateCollectionSupply(gomock.Any(), healthy, gomock.Any()).
		Return(true, nil)

	err := tm.reconciler.SyncSupply(ctx)
	require.NoError(t, err)
}

func TestSyncFull_DiscoversRegistryCollections(t *testing.T) {
	tm := setupTestReconciler(t)
	defer tearDownTestReconciler(tm)

	ctx := context.Background()
	discovered := testAddr("e1")
	creator := testAddr("e2")

	tm.gateway.EXPECT().
		GetRegistry(gomock.Any()).
		Return([]string{discovered}, nil)

	tm.store.EXPECT().
		ListCollections(gomock.Any()).
		Return(nil, nil)

	tm.gateway.EXPECT().
		GetCollectionView(gomock.Any(), discovered).
		Return(&chain.CollectionView{
			CollectionName: "Fresh Drop",
			MaxSupply:      1000,
			MintEnabled:    true,
		}, nil)
	tm.gateway.EXPECT().
		GetCollectionCreator(gomock.Any(), discovered).
		Return(creator, nil)
	tm.gateway.EXPECT().
		GetCollectedFunds(gomock.Any(), discovered).
		Return(uint64(0), nil)
	tm.gateway.EXPECT().
		GetSaleDeadline(gomock.Any(), discovered).
		Return(uint64(1_800_000_000), nil)

	// The indexer has not seen the collection; creation time falls back to
	// the clock.
	tm.indexer.EXPECT().
		GetCollectionMetadata(gomock.Any(), discovered).
		Return(nil, errors.New("indexer down"))

	tm.gateway.EXPECT().
		GetMintStages(gomock.Any(), discovered).
		Return([]chain.MintStageInfo{
			{Name: "Public", MintFee: 100, StartTime: 1, EndTime: 2, StageType: domain.StageTypePublic},
		}, nil)

	tm.store.EXPECT().
		UpsertCollection(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, desired *schema.Collection) (bool, bool, error) {
			assert.Equal(t, discovered, desired.CollectionID)
			assert.True(t, desired.MintEnabled)
			assert.Equal(t, time.Unix(1_700_000_000, 0).UTC(), desired.CreatedAt)
			return true, true, nil
		})

	tm.store.EXPECT().
		ReplaceMintStages(gomock.Any(), discovered, gomock.Len(1)).
		Return(nil)

	tm.publisher.EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.LaunchpadEvent) error {
			assert.Equal(t, domain.EventCollectionDiscovered, event.EventType)
			assert.Equal(t, discovered, event.CollectionID)
			return nil
		})

	err := tm.reconciler.SyncFull(ctx)
	require.NoError(t, err)
}

func TestSyncFull_RegistryFailureAbortsPass(t *testing.T) {
	tm := setupTestReconciler(t)
	defer tearDownTestReconciler(tm)

	tm.gateway.EXPECT().
		GetRegistry(gomock.Any()).
		Return(nil, errors.New("rpc timeout"))

	err := tm.reconciler.SyncFull(context.Background())
	require.Error(t, err)
}

func TestReconcileCollection_DelistedCollectionDisablesMint(t *testing.T) {
	tm := setupTestReconciler(t)
	defer tearDownTestReconciler(tm)

	ctx := context.Background()
	collectionID := testAddr("f1")
	creator := testAddr("f2")

	// The registry no longer lists the collection even though its own flag
	// is still on.
	tm.gateway.EXPECT().
		GetRegistry(gomock.Any()).
		Return([]string{testAddr("99")}, nil)

	tm.gateway.EXPECT().
		GetCollectionView(gomock.Any(), collectionID).
		Return(&chain.CollectionView{CollectionName: "Delisted", MaxSupply: 10, MintEnabled: true}, nil)
	tm.gateway.EXPECT().
		GetCollectionCreator(gomock.Any(), collectionID).
		Return(creator, nil)
	tm.gateway.EXPECT().
		GetCollectedFunds(gomock.Any(), collectionID).
		Return(uint64(0), nil)
	tm.gateway.EXPECT().
		GetSaleDeadline(gomock.Any(), collectionID).
		Return(uint64(0), nil)
	tm.indexer.EXPECT().
		GetCollectionMetadata(gomock.Any(), collectionID).
		Return(nil, nil)
	tm.gateway.EXPECT().
		GetMintStages(gomock.Any(), collectionID).
		Return(nil, nil)

	tm.store.EXPECT().
		UpsertCollection(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, desired *schema.Collection) (bool, bool, error) {
			assert.False(t, desired.MintEnabled)
			return false, true, nil
		})
	tm.store.EXPECT().
		ReplaceMintStages(gomock.Any(), collectionID, gomock.Len(0)).
		Return(nil)

	err := tm.reconciler.ReconcileCollection(ctx, collectionID)
	require.NoError(t, err)
}

func TestReconcileCollection_VestingLookupFailureKeepsStoredValues(t *testing.T) {
	tm := setupTestReconciler(t)
	defer tearDownTestReconciler(tm)

	ctx := context.Background()
	collectionID := testAddr("f5")
	creator := testAddr("f6")

	vestingStart := uint64(1_700_000_100)
	vestingPool := float64(500)
	perNFT := float64(5)
	creatorWallet := testAddr("f7")
	creatorPool := float64(250)
	faMetadata := testAddr("f8")
	faMinted := float64(1_000_000)

	existing := &schema.Collection{
		CollectionID:                collectionID,
		MaxSupply:                   100,
		SaleCompleted:               true,
		VestingStartTime:            &vestingStart,
		VestingTotalPool:            &vestingPool,
		VestingAmountPerNFT:         &perNFT,
		CreatorVestingWalletAddress: &creatorWallet,
		CreatorVestingTotalPool:     &creatorPool,
		FAMetadataAddress:           &faMetadata,
		FATotalMinted:               &faMinted,
	}

	tm.gateway.EXPECT().
		GetRegistry(gomock.Any()).
		Return([]string{collectionID}, nil)
	tm.gateway.EXPECT().
		GetCollectionView(gomock.Any(), collectionID).
		Return(&chain.CollectionView{MaxSupply: 100, CurrentSupply: 100, SaleCompleted: true}, nil)
	tm.gateway.EXPECT().
		GetCollectionCreator(gomock.Any(), collectionID).
		Return(creator, nil)
	tm.gateway.EXPECT().
		GetCollectedFunds(gomock.Any(), collectionID).
		Return(uint64(123456), nil)
	tm.gateway.EXPECT().
		GetSaleDeadline(gomock.Any(), collectionID).
		Return(uint64(1_800_000_000), nil)
	tm.store.EXPECT().
		GetCollection(gomock.Any(), collectionID).
		Return(existing, nil)
	tm.indexer.EXPECT().
		GetCollectionMetadata(gomock.Any(), collectionID).
		Return(nil, nil)

	// Both vesting views fail transiently; the stored values must survive
	// the write instead of being nulled.
	tm.gateway.EXPECT().
		GetHolderVestingConfig(gomock.Any(), collectionID).
		Return(nil, errors.New("rpc timeout"))
	tm.gateway.EXPECT().
		GetCreatorVestingConfig(gomock.Any(), collectionID).
		Return(nil, errors.New("rpc timeout"))

	tm.gateway.EXPECT().
		GetMintStages(gomock.Any(), collectionID).
		Return(nil, nil)

	tm.store.EXPECT().
		UpsertCollection(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, desired *schema.Collection) (bool, bool, error) {
			require.NotNil(t, desired.VestingStartTime)
			assert.Equal(t, vestingStart, *desired.VestingStartTime)
			require.NotNil(t, desired.VestingTotalPool)
			assert.Equal(t, vestingPool, *desired.VestingTotalPool)
			require.NotNil(t, desired.VestingAmountPerNFT)
			assert.Equal(t, perNFT, *desired.VestingAmountPerNFT)
			require.NotNil(t, desired.CreatorVestingWalletAddress)
			assert.Equal(t, creatorWallet, *desired.CreatorVestingWalletAddress)
			require.NotNil(t, desired.CreatorVestingTotalPool)
			assert.Equal(t, creatorPool, *desired.CreatorVestingTotalPool)
			require.NotNil(t, desired.FAMetadataAddress)
			assert.Equal(t, faMetadata, *desired.FAMetadataAddress)
			require.NotNil(t, desired.FATotalMinted)
			assert.Equal(t, faMinted, *desired.FATotalMinted)
			return false, true, nil
		})
	tm.store.EXPECT().
		ReplaceMintStages(gomock.Any(), collectionID, gomock.Len(0)).
		Return(nil)

	err := tm.reconciler.ReconcileCollection(ctx, collectionID)
	require.NoError(t, err)
}

func TestReconcileCollection_StageFetchFailureClearsStages(t *testing.T) {
	tm := setupTestReconciler(t)
	defer tearDownTestReconciler(tm)

	ctx := context.Background()
	collectionID := testAddr("f3")
	creator := testAddr("f4")

	tm.gateway.EXPECT().
		GetRegistry(gomock.Any()).
		Return([]string{collectionID}, nil)
	tm.gateway.EXPECT().
		GetCollectionView(gomock.Any(), collectionID).
		Return(&chain.CollectionView{MaxSupply: 10}, nil)
	tm.gateway.EXPECT().
		GetCollectionCreator(gomock.Any(), collectionID).
		Return(creator, nil)
	tm.gateway.EXPECT().
		GetCollectedFunds(gomock.Any(), collectionID).
		Return(uint64(0), nil)
	tm.gateway.EXPECT().
		GetSaleDeadline(gomock.Any(), collectionID).
		Return(uint64(0), nil)
	tm.indexer.EXPECT().
		GetCollectionMetadata(gomock.Any(), collectionID).
		Return(nil, nil)

	tm.gateway.EXPECT().
		GetMintStages(gomock.Any(), collectionID).
		Return(nil, errors.New("view aborted"))

	tm.store.EXPECT().
		UpsertCollection(gomock.Any(), gomock.Any()).
		Return(false, false, nil)

	// A failed stage fetch still clears stored stages.
	tm.store.EXPECT().
		ReplaceMintStages(gomock.Any(), collectionID, gomock.Len(0)).
		Return(nil)

	err := tm.reconciler.ReconcileCollection(ctx, collectionID)
	require.NoError(t, err)
}
