package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Trait is a single metadata attribute bound to an NFT at reveal time.
// Order matters: the chain entry function takes parallel name/value lists.
type Trait struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// Traits is an ordered list of Trait stored as JSONB
type Traits = datatypes.JSONSlice[Trait]

// RevealItem represents the reveal_items table - pre-uploaded metadata
// waiting to be bound to a freshly minted token. Exactly one item flips
// from unrevealed to revealed per successful reveal transaction; selection
// among unrevealed items is uniform-random.
type RevealItem struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CollectionID references the owning collection by canonical address
	CollectionID string `gorm:"column:collection_id;not null;type:text;index:idx_reveal_items_collection_revealed,priority:1"`
	// Name is the metadata name bound at reveal
	Name string `gorm:"column:name;not null;type:text"`
	// Description is the metadata description
	Description string `gorm:"column:description;not null;default:'';type:text"`
	// URI points at the revealed artwork/metadata
	URI string `gorm:"column:uri;not null;type:text"`
	// Traits is the ordered attribute list submitted with the reveal transaction
	Traits Traits `gorm:"column:traits;type:jsonb"`
	// Revealed marks an item consumed by a reveal transaction
	Revealed bool `gorm:"column:revealed;not null;default:false;index:idx_reveal_items_collection_revealed,priority:2"`
	// NFTTokenID is the canonical token address this item was bound to, set only once revealed
	NFTTokenID *string `gorm:"column:nft_token_id;type:text;uniqueIndex"`
	// OwnerAddress is the best-effort owner at reveal time, from the indexer
	OwnerAddress *string `gorm:"column:owner_address;type:text"`
	// MintedAt is the reveal completion time
	MintedAt *time.Time `gorm:"column:minted_at"`
	// CreatedAt is the upload time
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the RevealItem model
func (RevealItem) TableName() string {
	return "reveal_items"
}
