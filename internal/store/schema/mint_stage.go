package schema

import (
	"time"

	"github.com/movemint/launchpad-sync/internal/domain"
)

// MintStage represents the mint_stages table - a time-boxed sub-phase of a
// collection sale with its own fee and stage type.
//
// The full stage set for a collection is replaced wholesale on every full
// sync: stale stages must not survive a sync where the chain reports fewer
// or renamed stages.
type MintStage struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CollectionID references the owning collection by canonical address (string match, no FK)
	CollectionID string `gorm:"column:collection_id;not null;type:text;uniqueIndex:idx_mint_stages_collection_name,priority:1"`
	// Name is the stage name, unique within a collection
	Name string `gorm:"column:name;not null;type:text;uniqueIndex:idx_mint_stages_collection_name,priority:2"`
	// MintFee is the base fee per NFT in the smallest unit
	MintFee uint64 `gorm:"column:mint_fee;not null"`
	// StartTime is the stage opening, unix seconds
	StartTime uint64 `gorm:"column:start_time;not null"`
	// EndTime is the stage close, unix seconds
	EndTime uint64 `gorm:"column:end_time;not null"`
	// StageType is 1 for allowlist, 2 for public
	StageType domain.StageType `gorm:"column:stage_type;not null"`
	// MintLimitPerAddr caps mints per address for this stage, when set
	MintLimitPerAddr *uint64 `gorm:"column:mint_limit_per_addr"`
	// UpdatedAt is the last sync write
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime:false"`
}

// TableName specifies the table name for the MintStage model
func (MintStage) TableName() string {
	return "mint_stages"
}
