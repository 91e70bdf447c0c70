package schema

import (
	"time"
)

// Collection represents the collections table - one row per on-chain
// launchpad collection object, cached from the chain and indexer.
//
// CurrentSupply, OwnerCount, SaleCompleted and TotalFundsCollected are
// owned by the supply sync; everything else by the full sync. Refund
// counters are written unconditionally by the refund action.
type Collection struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CollectionID is the canonical collection object address: lowercase, no 0x, zero-padded to 64 hex digits
	CollectionID string `gorm:"column:collection_id;not null;uniqueIndex;type:text"`
	// CollectionName is the display name reported by the chain
	CollectionName string `gorm:"column:collection_name;not null;type:text"`
	// Description is the collection description
	Description string `gorm:"column:description;not null;default:'';type:text"`
	// URI is the revealed collection image/metadata URI
	URI string `gorm:"column:uri;not null;default:'';type:text"`
	// PlaceholderURI is shown for tokens that have not been revealed yet
	PlaceholderURI string `gorm:"column:placeholder_uri;not null;default:'';type:text"`
	// CreatorAddress is the canonical address of the collection creator
	CreatorAddress string `gorm:"column:creator_address;not null;type:text;index"`
	// RoyaltyAddress receives secondary-sale royalties
	RoyaltyAddress string `gorm:"column:royalty_address;not null;default:'';type:text"`
	// RoyaltyPercentage is the royalty share in percent
	RoyaltyPercentage *float64 `gorm:"column:royalty_percentage"`

	// MaxSupply is the immutable sale cap
	MaxSupply uint64 `gorm:"column:max_supply;not null"`
	// CurrentSupply is the number of tokens minted so far (never exceeds MaxSupply)
	CurrentSupply uint64 `gorm:"column:current_supply;not null;default:0"`
	// OwnerCount is the advisory distinct-owner count from the indexer
	OwnerCount *uint64 `gorm:"column:owner_count"`
	// MintEnabled reflects registry membership AND the collection's own on-chain mint flag
	MintEnabled bool `gorm:"column:mint_enabled;not null;default:false;index:idx_collections_state,priority:2"`

	// SaleDeadline is the sale cutoff in unix seconds
	SaleDeadline uint64 `gorm:"column:sale_deadline;not null;default:0"`
	// SaleCompleted is monotonic: once true it is never reset
	SaleCompleted bool `gorm:"column:sale_completed;not null;default:false;index:idx_collections_state,priority:1"`
	// TotalFundsCollected is the sale proceeds in the smallest fungible unit
	TotalFundsCollected uint64 `gorm:"column:total_funds_collected;not null;default:0"`
	// DevWalletAddress receives the dev share of the fungible asset
	DevWalletAddress *string `gorm:"column:dev_wallet_address;type:text"`

	// Fungible asset naming, fixed at collection creation
	FASymbol     string `gorm:"column:fa_symbol;not null;default:'';type:text"`
	FAName       string `gorm:"column:fa_name;not null;default:'';type:text"`
	FAIconURI    string `gorm:"column:fa_icon_uri;not null;default:'';type:text"`
	FAProjectURI string `gorm:"column:fa_project_uri;not null;default:'';type:text"`

	// Fungible asset distribution, populated once the sale completes.
	// Amounts are u128 on chain and stored as float64; the cached values
	// are advisory and the float precision ceiling is accepted.
	FAMetadataAddress      *string  `gorm:"column:fa_metadata_address;type:text"`
	FATotalMinted          *float64 `gorm:"column:fa_total_minted"`
	FALpAmount             *float64 `gorm:"column:fa_lp_amount"`
	FAVestingAmount        *float64 `gorm:"column:fa_vesting_amount"`
	FADevWalletAmount      *float64 `gorm:"column:fa_dev_wallet_amount"`
	FACreatorVestingAmount *float64 `gorm:"column:fa_creator_vesting_amount"`

	// Holder vesting configuration, populated once the sale completes
	VestingStartTime    *uint64  `gorm:"column:vesting_start_time"`
	VestingTotalPool    *float64 `gorm:"column:vesting_total_pool"`
	VestingAmountPerNFT *float64 `gorm:"column:vesting_amount_per_nft"`
	VestingCliff        *uint64  `gorm:"column:vesting_cliff"`
	VestingDuration     *uint64  `gorm:"column:vesting_duration"`

	// Creator vesting configuration, populated once the sale completes
	CreatorVestingWalletAddress *string  `gorm:"column:creator_vesting_wallet_address;type:text"`
	CreatorVestingStartTime     *uint64  `gorm:"column:creator_vesting_start_time"`
	CreatorVestingTotalPool     *float64 `gorm:"column:creator_vesting_total_pool"`
	CreatorVestingCliff         *uint64  `gorm:"column:creator_vesting_cliff"`
	CreatorVestingDuration      *uint64  `gorm:"column:creator_vesting_duration"`

	// Refund counters, populated only for failed sales
	RefundNFTsBurned  *uint64  `gorm:"column:refund_nfts_burned"`
	RefundTotalAmount *float64 `gorm:"column:refund_total_amount"`

	// CreatedAt is the on-chain creation time (discovery time when the indexer has no record)
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	// UpdatedAt is the last sync write. Managed explicitly so that
	// suppressed writes leave the row untouched.
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime:false"`
}

// TableName specifies the table name for the Collection model
func (Collection) TableName() string {
	return "collections"
}
