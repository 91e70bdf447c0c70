package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"gorm.io/gorm"

	"github.com/movemint/launchpad-sync/internal/adapter"
	"github.com/movemint/launchpad-sync/internal/store/schema"
)

type pgStore struct {
	db    *gorm.DB
	clock adapter.Clock
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB, clock adapter.Clock) Store {
	return &pgStore{db: db, clock: clock}
}

// AutoMigrate creates or updates the launchpad tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.Collection{},
		&schema.MintStage{},
		&schema.RevealItem{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a
// GORM database connection, applying defaults for zero values.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// ListCollections retrieves every cached collection
func (s *pgStore) ListCollections(ctx context.Context) ([]schema.Collection, error) {
	var collections []schema.Collection
	if err := s.db.WithContext(ctx).Order("id").Find(&collections).Error; err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return collections, nil
}

// GetCollection retrieves a collection by canonical address
func (s *pgStore) GetCollection(ctx context.Context, collectionID string) (*schema.Collection, error) {
	var collection schema.Collection
	err := s.db.WithContext(ctx).Where("collection_id = ?", collectionID).First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return &collection, nil
}

// ListMintingCollections retrieves mint-enabled collections, newest first
func (s *pgStore) ListMintingCollections(ctx context.Context) ([]schema.Collection, error) {
	var collections []schema.Collection
	err := s.db.WithContext(ctx).
		Where("mint_enabled = ?", true).
		Order("created_at DESC").
		Find(&collections).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list minting collections: %w", err)
	}
	return collections, nil
}

// UpsertCollection creates the collection if absent, otherwise patches its
// slow-path fields with write suppression.
func (s *pgStore) UpsertCollection(ctx context.Context, desired *schema.Collection) (bool, bool, error) {
	existing, err := s.GetCollection(ctx, desired.CollectionID)
	if err != nil {
		return false, false, err
	}

	now := s.clock.Now().UTC().Truncate(time.Microsecond)

	if existing == nil {
		if desired.CreatedAt.IsZero() {
			desired.CreatedAt = now
		}
		desired.UpdatedAt = now
		if err := s.db.WithContext(ctx).Create(desired).Error; err != nil {
			return false, false, fmt.Errorf("failed to create collection: %w", err)
		}
		return true, true, nil
	}

	// Supply-sync-owned fields and identity are preserved on update.
	desired.ID = existing.ID
	desired.CreatedAt = existing.CreatedAt
	desired.CurrentSupply = existing.CurrentSupply
	desired.OwnerCount = existing.OwnerCount
	// Completion is monotonic.
	desired.SaleCompleted = existing.SaleCompleted || desired.SaleCompleted

	// Suppress the write when nothing else changed.
	desired.UpdatedAt = existing.UpdatedAt
	if reflect.DeepEqual(existing, desired) {
		return false, false, nil
	}

	desired.UpdatedAt = now
	if err := s.db.WithContext(ctx).Save(desired).Error; err != nil {
		return false, false, fmt.Errorf("failed to update collection: %w", err)
	}
	return false, true, nil
}

// UpdateCollectionSupply patches the supply quadruple with write suppression
func (s *pgStore) UpdateCollectionSupply(ctx context.Context, collectionID string, snap SupplySnapshot) (bool, error) {
	existing, err := s.GetCollection(ctx, collectionID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, fmt.Errorf("collection %s: %w", collectionID, gorm.ErrRecordNotFound)
	}

	// Completion is monotonic: never flip a completed sale back.
	saleCompleted := existing.SaleCompleted || snap.SaleCompleted

	if existing.CurrentSupply == snap.CurrentSupply &&
		uint64PtrEqual(existing.OwnerCount, snap.OwnerCount) &&
		existing.SaleCompleted == saleCompleted &&
		existing.TotalFundsCollected == snap.TotalFundsCollected {
		return false, nil
	}

	updates := map[string]interface{}{
		"current_supply":        snap.CurrentSupply,
		"owner_count":           snap.OwnerCount,
		"sale_completed":        saleCompleted,
		"total_funds_collected": snap.TotalFundsCollected,
		"updated_at":            s.clock.Now().UTC(),
	}
	err = s.db.WithContext(ctx).
		Model(&schema.Collection{}).
		Where("collection_id = ?", collectionID).
		Updates(updates).Error
	if err != nil {
		return false, fmt.Errorf("failed to update collection supply: %w", err)
	}
	return true, nil
}

// OverwriteCollectionRefund unconditionally writes post-refund state
func (s *pgStore) OverwriteCollectionRefund(ctx context.Context, collectionID string, snap RefundSnapshot) error {
	updates := map[string]interface{}{
		"current_supply":      snap.CurrentSupply,
		"owner_count":         snap.OwnerCount,
		"refund_nfts_burned":  snap.RefundNFTsBurned,
		"refund_total_amount": snap.RefundTotalAmount,
		"updated_at":          s.clock.Now().UTC(),
	}
	err := s.db.WithContext(ctx).
		Model(&schema.Collection{}).
		Where("collection_id = ?", collectionID).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to overwrite refund state: %w", err)
	}
	return nil
}

// GetMintStages retrieves a collection's stages in insertion order
func (s *pgStore) GetMintStages(ctx context.Context, collectionID string) ([]schema.MintStage, error) {
	var stages []schema.MintStage
	err := s.db.WithContext(ctx).
		Where("collection_id = ?", collectionID).
		Order("id").
		Find(&stages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get mint stages: %w", err)
	}
	return stages, nil
}

// ReplaceMintStages swaps a collection's stage set for the given one.
// Skipped entirely when the stored set already matches, so repeated syncs
// leave rows untouched.
func (s *pgStore) ReplaceMintStages(ctx context.Context, collectionID string, stages []schema.MintStage) error {
	existing, err := s.GetMintStages(ctx, collectionID)
	if err != nil {
		return err
	}
	if stageSetsEqual(existing, stages) {
		return nil
	}

	now := s.clock.Now().UTC()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id = ?", collectionID).Delete(&schema.MintStage{}).Error; err != nil {
			return fmt.Errorf("failed to delete stale mint stages: %w", err)
		}
		if len(stages) == 0 {
			return nil
		}
		for i := range stages {
			stages[i].ID = 0
			stages[i].CollectionID = collectionID
			stages[i].UpdatedAt = now
		}
		if err := tx.Create(&stages).Error; err != nil {
			return fmt.Errorf("failed to insert mint stages: %w", err)
		}
		return nil
	})
}

// InsertRevealItems inserts a batch of unrevealed items
func (s *pgStore) InsertRevealItems(ctx context.Context, items []schema.RevealItem) error {
	if len(items) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(&items).Error; err != nil {
		return fmt.Errorf("failed to insert reveal items: %w", err)
	}
	return nil
}

// CountRevealItems counts all reveal items for a collection
func (s *pgStore) CountRevealItems(ctx context.Context, collectionID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.RevealItem{}).
		Where("collection_id = ?", collectionID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count reveal items: %w", err)
	}
	return count, nil
}

// GetRandomUnrevealedItem picks one unrevealed item uniformly at random.
// Random selection is intentional: reveal order must not leak mint order,
// and a retried reveal after a partial failure must not deterministically
// re-select a consumed item.
func (s *pgStore) GetRandomUnrevealedItem(ctx context.Context, collectionID string) (*schema.RevealItem, error) {
	var item schema.RevealItem
	err := s.db.WithContext(ctx).
		Where("collection_id = ? AND revealed = ?", collectionID, false).
		Order("RANDOM()").
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to pick unrevealed item: %w", err)
	}
	return &item, nil
}

// MarkItemRevealed binds an item to a token and records owner and time
func (s *pgStore) MarkItemRevealed(ctx context.Context, itemID int64, nftTokenID string, ownerAddress *string, mintedAt time.Time) error {
	updates := map[string]interface{}{
		"revealed":      true,
		"nft_token_id":  nftTokenID,
		"owner_address": ownerAddress,
		"minted_at":     mintedAt.UTC(),
	}
	err := s.db.WithContext(ctx).
		Model(&schema.RevealItem{}).
		Where("id = ?", itemID).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to mark item revealed: %w", err)
	}
	return nil
}

// GetRevealedItemByTokenID retrieves the revealed item bound to a token
func (s *pgStore) GetRevealedItemByTokenID(ctx context.Context, nftTokenID string) (*schema.RevealItem, error) {
	var item schema.RevealItem
	err := s.db.WithContext(ctx).
		Where("nft_token_id = ? AND revealed = ?", nftTokenID, true).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get revealed item: %w", err)
	}
	return &item, nil
}

func uint64PtrEqual(a, b *uint64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func stageSetsEqual(a, b []schema.MintStage) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name ||
			a[i].MintFee != b[i].MintFee ||
			a[i].StartTime != b[i].StartTime ||
			a[i].EndTime != b[i].EndTime ||
			a[i].StageType != b[i].StageType ||
			!uint64PtrEqual(a[i].MintLimitPerAddr, b[i].MintLimitPerAddr) {
			return false
		}
	}
	return true
}
