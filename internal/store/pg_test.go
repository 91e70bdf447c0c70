package store

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/movemint/launchpad-sync/internal/adapter"
	"github.com/movemint/launchpad-sync/internal/store/schema"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	// Check if we should use an external database (for CI or local development)
	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbUser := os.Getenv("TEST_DB_USER")
	dbPassword := os.Getenv("TEST_DB_PASSWORD")
	dbName := os.Getenv("TEST_DB_NAME")

	var dsn string
	var err error

	if dbHost != "" {
		// Use external database
		if dbPort == "" {
			dbPort = "5432"
		}
		if dbUser == "" {
			dbUser = "postgres"
		}
		if dbPassword == "" {
			dbPassword = "postgres"
		}
		if dbName == "" {
			dbName = "test_db"
		}

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName)

		fmt.Printf("Using external database: %s:%s/%s\n", dbHost, dbPort, dbName)
	} else {
		// Start a PostgreSQL container for testing
		pgContainer, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			fmt.Printf("Failed to start PostgreSQL container: %v\n", err)
			os.Exit(1)
		}

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Printf("Failed to get connection string: %v\n", err)
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Printf("Started PostgreSQL container\n")
	}

	// Connect to the database
	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	// Initialize the database schema
	if err := AutoMigrate(testDB); err != nil {
		fmt.Printf("Failed to migrate database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	// Run tests
	code := m.Run()

	// Cleanup
	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}

	os.Exit(code)
}

func newTestStore() Store {
	return NewPGStore(testDB, adapter.NewClock())
}

// testAddr builds a canonical collection address ending in the given suffix
func testAddr(suffix string) string {
	return strings.Repeat("0", 64-len(suffix)) + suffix
}

func testCollection(collectionID string) *schema.Collection {
	return &schema.Collection{
		CollectionID:   collectionID,
		CollectionName: "Test Collection",
		Description:    "a collection",
		URI:            "ipfs://collection",
		PlaceholderURI: "ipfs://hidden",
		CreatorAddress: testAddr("cc"),
		MaxSupply:      100,
		SaleDeadline:   1_800_000_000,
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestUpsertCollection_CreateThenSuppress(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	collectionID := testAddr("10")

	created, updated, err := s.UpsertCollection(ctx, testCollection(collectionID))
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, updated)

	first, err := s.GetCollection(ctx, collectionID)
	require.NoError(t, err)
	require.NotNil(t, first)

	// Re-upserting identical desired state is a no-op and leaves UpdatedAt
	// untouched.
	created, updated, err = s.UpsertCollection(ctx, testCollection(collectionID))
	require.NoError(t, err)
	assert.False(t, created)
	assert.False(t, updated)

	second, err := s.GetCollection(ctx, collectionID)
	require.NoError(t, err)
	assert.Equal(t, first.UpdatedAt, second.UpdatedAt)

	// A real change writes and bumps UpdatedAt.
	changed := testCollection(collectionID)
	changed.Description = "renamed"
	created, updated, err = s.UpsertCollection(ctx, changed)
	require.NoError(t, err)
	assert.False(t, created)
	assert.True(t, updated)

	third, err := s.GetCollection(ctx, collectionID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", third.Description)
	assert.True(t, third.UpdatedAt.After(second.UpdatedAt))
}

func TestUpsertCollection_PreservesSupplyOwnedFields(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	collectionID := testAddr("11")

	_, _, err := s.UpsertCollection(ctx, testCollection(collectionID))
	require.NoError(t, err)

	owners := uint64(42)
	written, err := s.UpdateCollectionSupply(ctx, collectionID, SupplySnapshot{
		CurrentSupply:       60,
		OwnerCount:          &owners,
		SaleCompleted:       true,
		TotalFundsCollected: 6_000_000_000,
	})
	require.NoError(t, err)
	assert.True(t, written)

	// A slow-path upsert carrying stale supply numbers must not clobber
	// the supply sync's writes, and must not reset completion.
	stale := testCollection(collectionID)
	stale.Description = "patched by full sync"
	stale.CurrentSupply = 1
	stale.SaleCompleted = false
	_, _, err = s.UpsertCollection(ctx, stale)
	require.NoError(t, err)

	got, err := s.GetCollection(ctx, collectionID)
	require.NoError(t, err)
	assert.Equal(t, "patched by full sync", got.Description)
	assert.Equal(t, uint64(60), got.CurrentSupply)
	require.NotNil(t, got.OwnerCount)
	assert.Equal(t, owners, *got.OwnerCount)
	assert.True(t, got.SaleCompleted)
}

func TestUpdateCollectionSupply_SuppressionAndMonotonicCompletion(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	collectionID := testAddr("12")

	_, _, err := s.UpsertCollection(ctx, testCollection(collectionID))
	require.NoError(t, err)

	owners := uint64(5)
	snap := SupplySnapshot{
		CurrentSupply:       10,
		OwnerCount:          &owners,
		SaleCompleted:       true,
		TotalFundsCollected: 1000,
	}
	written, err := s.UpdateCollectionSupply(ctx, collectionID, snap)
	require.NoError(t, err)
	assert.True(t, written)

	// Identical snapshot suppresses the write.
	written, err = s.UpdateCollectionSupply(ctx, collectionID, snap)
	require.NoError(t, err)
	assert.False(t, written)

	// A later snapshot reporting completion false is overridden: completion
	// never flips back, and since nothing else changed the write is
	// suppressed entirely.
	snap.SaleCompleted = false
	written, err = s.UpdateCollectionSupply(ctx, collectionID, snap)
	require.NoError(t, err)
	assert.False(t, written)

	got, err := s.GetCollection(ctx, collectionID)
	require.NoError(t, err)
	assert.True(t, got.SaleCompleted)
}

func TestUpdateCollectionSupply_UnknownCollection(t *testing.T) {
	s := newTestStore()

	_, err := s.UpdateCollectionSupply(context.Background(), testAddr("13"), SupplySnapshot{})
	require.Error(t, err)
}

func TestOverwriteCollectionRefund(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	collectionID := testAddr("14")

	_, _, err := s.UpsertCollection(ctx, testCollection(collectionID))
	require.NoError(t, err)

	owners := uint64(42)
	_, err = s.UpdateCollectionSupply(ctx, collectionID, SupplySnapshot{
		CurrentSupply: 100,
		OwnerCount:    &owners,
	})
	require.NoError(t, err)

	// The refund write is unconditional, including clearing the owner count.
	err = s.OverwriteCollectionRefund(ctx, collectionID, RefundSnapshot{
		CurrentSupply:     80,
		OwnerCount:        nil,
		RefundNFTsBurned:  20,
		RefundTotalAmount: 2_000_000_000,
	})
	require.NoError(t, err)

	got, err := s.GetCollection(ctx, collectionID)
	require.NoError(t, err)
	assert.Equal(t, uint64(80), got.CurrentSupply)
	assert.Nil(t, got.OwnerCount)
	require.NotNil(t, got.RefundNFTsBurned)
	assert.Equal(t, uint64(20), *got.RefundNFTsBurned)
	require.NotNil(t, got.RefundTotalAmount)
	assert.Equal(t, float64(2_000_000_000), *got.RefundTotalAmount)
}

func TestListMintingCollections(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	older := testCollection(testAddr("15"))
	older.MintEnabled = true
	older.CreatedAt = time.Now().UTC().Add(-time.Hour).Truncate(time.Microsecond)
	_, _, err := s.UpsertCollection(ctx, older)
	require.NoError(t, err)

	newer := testCollection(testAddr("16"))
	newer.MintEnabled = true
	newer.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	_, _, err = s.UpsertCollection(ctx, newer)
	require.NoError(t, err)

	disabled := testCollection(testAddr("17"))
	_, _, err = s.UpsertCollection(ctx, disabled)
	require.NoError(t, err)

	minting, err := s.ListMintingCollections(ctx)
	require.NoError(t, err)

	ids := make([]string, 0, len(minting))
	for _, c := range minting {
		ids = append(ids, c.CollectionID)
	}
	assert.NotContains(t, ids, disabled.CollectionID)

	// Newest first.
	newerIdx, olderIdx := -1, -1
	for i, id := range ids {
		switch id {
		case newer.CollectionID:
			newerIdx = i
		case older.CollectionID:
			olderIdx = i
		}
	}
	require.GreaterOrEqual(t, newerIdx, 0)
	require.GreaterOrEqual(t, olderIdx, 0)
	assert.Less(t, newerIdx, olderIdx)
}

func TestReplaceMintStages(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	collectionID := testAddr("18")

	limit := uint64(3)
	stages := []schema.MintStage{
		{Name: "Allowlist", MintFee: 50, StartTime: 1, EndTime: 2, StageType: 1, MintLimitPerAddr: &limit},
		{Name: "Public", MintFee: 100, StartTime: 2, EndTime: 3, StageType: 2},
	}
	err := s.ReplaceMintStages(ctx, collectionID, stages)
	require.NoError(t, err)

	got, err := s.GetMintStages(ctx, collectionID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Allowlist", got[0].Name)
	assert.Equal(t, "Public", got[1].Name)

	// Replacing with an identical set leaves the rows untouched.
	sameStages := []schema.MintStage{
		{Name: "Allowlist", MintFee: 50, StartTime: 1, EndTime: 2, StageType: 1, MintLimitPerAddr: &limit},
		{Name: "Public", MintFee: 100, StartTime: 2, EndTime: 3, StageType: 2},
	}
	err = s.ReplaceMintStages(ctx, collectionID, sameStages)
	require.NoError(t, err)

	unchanged, err := s.GetMintStages(ctx, collectionID)
	require.NoError(t, err)
	require.Len(t, unchanged, 2)
	assert.Equal(t, got[0].ID, unchanged[0].ID)
	assert.Equal(t, got[0].UpdatedAt, unchanged[0].UpdatedAt)

	// A shrunk set replaces wholesale.
	err = s.ReplaceMintStages(ctx, collectionID, []schema.MintStage{
		{Name: "Public", MintFee: 120, StartTime: 2, EndTime: 4, StageType: 2},
	})
	require.NoError(t, err)

	got, err = s.GetMintStages(ctx, collectionID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint64(120), got[0].MintFee)

	// An empty set still clears previously stored stages.
	err = s.ReplaceMintStages(ctx, collectionID, nil)
	require.NoError(t, err)

	got, err = s.GetMintStages(ctx, collectionID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRevealItemLifecycle(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	collectionID := testAddr("19")

	items := []schema.RevealItem{
		{CollectionID: collectionID, Name: "Ape #1", URI: "ipfs://1", Traits: schema.Traits{{TraitType: "fur", Value: "gold"}}},
		{CollectionID: collectionID, Name: "Ape #2", URI: "ipfs://2"},
	}
	err := s.InsertRevealItems(ctx, items)
	require.NoError(t, err)

	count, err := s.CountRevealItems(ctx, collectionID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Consume the pool one item at a time.
	first, err := s.GetRandomUnrevealedItem(ctx, collectionID)
	require.NoError(t, err)
	require.NotNil(t, first)

	owner := testAddr("0d")
	mintedAt := time.Now().UTC().Truncate(time.Microsecond)
	err = s.MarkItemRevealed(ctx, first.ID, "0xtoken-19-1", &owner, mintedAt)
	require.NoError(t, err)

	second, err := s.GetRandomUnrevealedItem(ctx, collectionID)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.NotEqual(t, first.ID, second.ID)

	err = s.MarkItemRevealed(ctx, second.ID, "0xtoken-19-2", nil, mintedAt)
	require.NoError(t, err)

	// Pool exhausted.
	third, err := s.GetRandomUnrevealedItem(ctx, collectionID)
	require.NoError(t, err)
	assert.Nil(t, third)

	// The total count is unaffected by reveals.
	count, err = s.CountRevealItems(ctx, collectionID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Lookup by token returns the bound item with its metadata intact.
	got, err := s.GetRevealedItemByTokenID(ctx, "0xtoken-19-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)
	assert.True(t, got.Revealed)
	require.NotNil(t, got.OwnerAddress)
	assert.Equal(t, owner, *got.OwnerAddress)
	require.NotNil(t, got.MintedAt)
	assert.Equal(t, first.Name, got.Name)
	assert.Equal(t, first.Traits, got.Traits)

	missing, err := s.GetRevealedItemByTokenID(ctx, "0xtoken-19-none")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetCollection_Unknown(t *testing.T) {
	s := newTestStore()

	got, err := s.GetCollection(context.Background(), testAddr("1a"))
	require.NoError(t, err)
	assert.Nil(t, got)
}
