package chain

import (
	"context"

	"github.com/movemint/launchpad-sync/internal/domain"
)

// CollectionView is the parsed aggregate view of a launchpad collection.
// All Move Option fields are unwrapped to pointers at the client boundary.
type CollectionView struct {
	CollectionName         string
	Description            string
	URI                    string
	PlaceholderURI         string
	MaxSupply              uint64
	CurrentSupply          uint64
	SaleDeadline           uint64
	SaleCompleted          bool
	MintEnabled            bool
	TotalFundsCollected    uint64
	RoyaltyAddress         *string
	RoyaltyPercentage      *float64
	FASymbol               string
	FAName                 string
	FAIconURI              string
	FAProjectURI           string
	DevWalletAddress       *string
	FADistribution         *FADistribution
	VestingCliff           *uint64
	VestingDuration        *uint64
	CreatorVestingCliff    *uint64
	CreatorVestingDuration *uint64
	RefundNFTsBurned       *uint64
	RefundTotalAmount      *float64
}

// FADistribution is the fungible-asset payout breakdown, present once the
// sale has completed. Amounts are u128 on chain; float64 here.
type FADistribution struct {
	MetadataAddress      string
	TotalMinted          float64
	LpAmount             float64
	VestingAmount        float64
	DevWalletAmount      float64
	CreatorVestingAmount float64
}

// MintStageInfo is one stage from the launchpad's mint-stage view
type MintStageInfo struct {
	Name             string
	MintFee          uint64
	StartTime        uint64
	EndTime          uint64
	StageType        domain.StageType
	MintLimitPerAddr *uint64
}

// HolderVestingConfig is the NFT-holder vesting view of the vesting program
type HolderVestingConfig struct {
	StartTime    uint64
	TotalPool    float64
	AmountPerNFT float64
}

// CreatorVestingConfig is the creator vesting view of the vesting program
type CreatorVestingConfig struct {
	WalletAddress string
	StartTime     uint64
	TotalPool     float64
}

// TxResult identifies a committed transaction
type TxResult struct {
	Hash    string
	Version uint64
}

// Gateway is the typed surface of the on-chain launchpad and vesting
// programs. View methods are read-only; the remaining methods submit
// transactions signed by the service account and wait for commitment.
//
// Callers must not submit two transactions concurrently: the signing
// account has a single sequence number and the chain hard-rejects
// competing transactions. The reveal serializer enforces this.
//
//go:generate mockgen -source=gateway.go -destination=../mocks/gateway.go -package=mocks -mock_names=Gateway=MockGateway
type Gateway interface {
	// GetRegistry returns the canonical addresses of all collections
	// currently registered with mint enabled
	GetRegistry(ctx context.Context) ([]string, error)
	// GetCollectionView returns the aggregate collection view struct
	GetCollectionView(ctx context.Context, collectionID string) (*CollectionView, error)
	// GetCollectionCreator returns the canonical creator address
	GetCollectionCreator(ctx context.Context, collectionID string) (string, error)
	// GetCollectedFunds returns the sale proceeds in the smallest unit
	GetCollectedFunds(ctx context.Context, collectionID string) (uint64, error)
	// GetSaleDeadline returns the sale cutoff in unix seconds
	GetSaleDeadline(ctx context.Context, collectionID string) (uint64, error)
	// IsSaleCompleted reports whether the sale has completed on chain
	IsSaleCompleted(ctx context.Context, collectionID string) (bool, error)
	// GetMintStages returns the collection's stages, without any
	// fee-reduction applied
	GetMintStages(ctx context.Context, collectionID string) ([]MintStageInfo, error)
	// GetHolderVestingConfig returns the holder vesting view, nil before
	// the sale completes
	GetHolderVestingConfig(ctx context.Context, collectionID string) (*HolderVestingConfig, error)
	// GetCreatorVestingConfig returns the creator vesting view, nil before
	// the sale completes
	GetCreatorVestingConfig(ctx context.Context, collectionID string) (*CreatorVestingConfig, error)

	// CheckAndCompleteSale asks the chain to finalize a minted-out sale.
	// The chain rejects the call when the threshold is not met; callers
	// treat that as "not yet completable".
	CheckAndCompleteSale(ctx context.Context, collectionID string) (*TxResult, error)
	// RevealNFT binds a metadata item to a minted token on chain.
	// traitNames and traitValues are parallel lists.
	RevealNFT(ctx context.Context, collectionID, nftTokenID, name, description, uri string, traitNames, traitValues []string) (*TxResult, error)
	// UpdateMintEnabled toggles the collection's mint flag
	UpdateMintEnabled(ctx context.Context, collectionID string, enabled bool) (*TxResult, error)
}
